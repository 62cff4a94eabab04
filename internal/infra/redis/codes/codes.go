package infra_redis_codes

import (
	"context"

	"github.com/go-redis/redis"
)

// Driver reserves room codes in a shared set so two rooms can never share a
// code, even across both games.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

// Reserve claims code, reporting false when it is already taken.
func (d *Driver) Reserve(ctx context.Context, code string) (bool, error) {
	added, err := d.client.SAdd(d.key, code).Result()
	if err != nil {
		return false, err
	}
	return added == 1, nil
}
