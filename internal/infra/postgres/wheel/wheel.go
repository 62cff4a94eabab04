package infra_postgres_wheel

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/IRaudaS/games-backend/internal/model"
	usecase_wheel "github.com/IRaudaS/games-backend/internal/usecase/wheel"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type gameDTO struct {
	ID            string    `db:"id"`
	Category      string    `db:"category"`
	CurrentPlayer string    `db:"current_player"`
	Status        string    `db:"status"`
	GameState     []byte    `db:"game_state"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (d *Driver) CreateGame(ctx context.Context, g *model.WheelGame) error {
	state, err := json.Marshal(g.State)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO wheel_games (id, category, current_player, status, game_state)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = d.db.ExecContext(ctx, query, g.Code, g.State.Category, g.State.CurrentPlayer, g.Status, state)
	return err
}

func (d *Driver) SaveState(ctx context.Context, g *model.WheelGame) error {
	state, err := json.Marshal(g.State)
	if err != nil {
		return err
	}

	query := `
		UPDATE wheel_games
		SET game_state = $1, current_player = $2, status = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`

	result, err := d.db.ExecContext(ctx, query, state, g.State.CurrentPlayer, g.Status, g.Code)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_wheel.ErrResourceNotFound
	}

	return nil
}

func (d *Driver) AppendMove(ctx context.Context, rec model.MoveRecord) error {
	query := `
		INSERT INTO wheel_moves (id, game_id, player, move_type, move_data)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := d.db.ExecContext(ctx, query, rec.ID, rec.GameCode, rec.Player, rec.MoveType, []byte(rec.MoveData))
	return err
}

func (d *Driver) LoadByCode(ctx context.Context, code string) (*model.WheelGame, error) {
	var dto gameDTO

	query := `
		SELECT id, category, current_player, status, game_state, updated_at
		FROM wheel_games
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &dto, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, usecase_wheel.ErrResourceNotFound
		}
		return nil, err
	}

	return dtoToGame(dto)
}

func (d *Driver) ListActive(ctx context.Context) ([]*model.WheelGame, error) {
	var dtos []gameDTO

	query := `
		SELECT id, category, current_player, status, game_state, updated_at
		FROM wheel_games
		WHERE status = $1
		ORDER BY updated_at DESC
	`

	if err := d.db.SelectContext(ctx, &dtos, query, model.StatusPlaying); err != nil {
		return nil, err
	}

	games := make([]*model.WheelGame, 0, len(dtos))
	for _, dto := range dtos {
		game, err := dtoToGame(dto)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

func dtoToGame(dto gameDTO) (*model.WheelGame, error) {
	var state model.WheelState
	if err := json.Unmarshal(dto.GameState, &state); err != nil {
		return nil, err
	}
	return &model.WheelGame{
		Code:      dto.ID,
		Status:    dto.Status,
		State:     &state,
		UpdatedAt: dto.UpdatedAt,
	}, nil
}
