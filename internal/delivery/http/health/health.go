package http_health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"github.com/jmoiron/sqlx"
)

// Controller reports liveness of the process and of its backing stores.
type Controller struct {
	db    *sqlx.DB
	cache *redis.Client
}

func New(db *sqlx.DB, cache *redis.Client) *Controller {
	return &Controller{
		db:    db,
		cache: cache,
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.health)
}

func (c *Controller) health(ctx *gin.Context) {
	checks := gin.H{}
	healthy := true

	if err := c.db.PingContext(ctx); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	} else {
		checks["postgres"] = "OK"
	}

	if err := c.cache.Ping().Err(); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	} else {
		checks["redis"] = "OK"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, gin.H{
		"status":    checks,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
