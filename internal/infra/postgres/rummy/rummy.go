package infra_postgres_rummy

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/IRaudaS/games-backend/internal/model"
	usecase_rummy "github.com/IRaudaS/games-backend/internal/usecase/rummy"
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
	ID            string         `db:"id"`
	Player1       string         `db:"player1"`
	Player2       sql.NullString `db:"player2"`
	CurrentPlayer string         `db:"current_player"`
	Status        string         `db:"status"`
	GameState     []byte         `db:"game_state"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (d *Driver) CreateGame(ctx context.Context, g *model.RummyGame) error {
	state, err := json.Marshal(g.State)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO games (id, player1, current_player, status, game_state)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = d.db.ExecContext(ctx, query, g.Code, g.Player1, g.State.CurrentPlayer, g.Status, state)
	return err
}

func (d *Driver) SetPlayer2(ctx context.Context, code, player2 string, status model.Status) error {
	query := `
		UPDATE games
		SET player2 = $1, status = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`

	result, err := d.db.ExecContext(ctx, query, player2, status, code)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_rummy.ErrResourceNotFound
	}

	return nil
}

func (d *Driver) SaveState(ctx context.Context, g *model.RummyGame) error {
	state, err := json.Marshal(g.State)
	if err != nil {
		return err
	}

	query := `
		UPDATE games
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
		return usecase_rummy.ErrResourceNotFound
	}

	return nil
}

func (d *Driver) AppendMove(ctx context.Context, rec model.MoveRecord) error {
	query := `
		INSERT INTO game_moves (id, game_id, player, move_type, move_data)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := d.db.ExecContext(ctx, query, rec.ID, rec.GameCode, rec.Player, rec.MoveType, []byte(rec.MoveData))
	return err
}

func (d *Driver) LoadByCode(ctx context.Context, code string) (*model.RummyGame, error) {
	var dto gameDTO

	query := `
		SELECT id, player1, player2, current_player, status, game_state, updated_at
		FROM games
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &dto, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, usecase_rummy.ErrResourceNotFound
		}
		return nil, err
	}

	var state model.RummyState
	if err := json.Unmarshal(dto.GameState, &state); err != nil {
		return nil, err
	}

	return &model.RummyGame{
		Code:      dto.ID,
		Player1:   dto.Player1,
		Player2:   dto.Player2.String,
		Status:    dto.Status,
		State:     &state,
		UpdatedAt: dto.UpdatedAt,
	}, nil
}
