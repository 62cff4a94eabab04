package http_rummy

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	http_common "github.com/IRaudaS/games-backend/internal/delivery/http/common"
	"github.com/IRaudaS/games-backend/internal/model"
	usecase_rummy "github.com/IRaudaS/games-backend/internal/usecase/rummy"
)

type Controller struct {
	usecase *usecase_rummy.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_rummy.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	games := router.Group("/rummy")
	{
		games.GET("/health", c.health)
		games.POST("/games", c.create)
		games.POST("/games/:game_id/join", c.join)
		games.POST("/games/:game_id/moves", c.move)
		games.GET("/games/:game_id", c.state)
	}
}

// CreateRequestDTO carries the creator name and an optional opening-meld
// threshold (0 means the configured default).
type CreateRequestDTO struct {
	PlayerName string `json:"player_name" binding:"required"`
	MeldPoints int    `json:"meld_points"`
}

type CreateResponseDTO struct {
	GameID  string `json:"game_id"`
	Player  string `json:"player"`
	Message string `json:"message"`
}

func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	game, err := c.usecase.Create(ctx, req.PlayerName, req.MeldPoints)
	if err != nil {
		c.logger.Error("failed to create game", slog.String("error", err.Error()))
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, CreateResponseDTO{
		GameID:  game.Code,
		Player:  game.Player1,
		Message: "Game created. Share the code: " + game.Code,
	})
}

type JoinRequestDTO struct {
	PlayerName string `json:"player_name" binding:"required"`
}

type JoinResponseDTO struct {
	GameID   string `json:"game_id"`
	Player   string `json:"player"`
	Opponent string `json:"opponent"`
	Message  string `json:"message"`
}

func (c *Controller) join(ctx *gin.Context) {
	code := ctx.Param("game_id")

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	game, err := c.usecase.Join(ctx, code, req.PlayerName)
	if err != nil {
		c.logger.Error("failed to join game",
			slog.String("game", code),
			slog.String("error", err.Error()))
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, JoinResponseDTO{
		GameID:   game.Code,
		Player:   game.Player2,
		Opponent: game.Player1,
		Message:  "You joined the game. Let's play!",
	})
}

// MoveRequestDTO is one move submission: who moves, what kind, and the
// move-specific payload.
type MoveRequestDTO struct {
	PlayerName string `json:"player_name" binding:"required"`
	MoveType   string `json:"move_type" binding:"required"`
	TileIDs    []int  `json:"tile_ids"`
}

type MoveResponseDTO struct {
	Message string       `json:"message"`
	Game    GameStateDTO `json:"game"`
}

func (c *Controller) move(ctx *gin.Context) {
	code := ctx.Param("game_id")

	var req MoveRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	outcome, game, err := c.usecase.Move(ctx, code, req.PlayerName, req.MoveType, usecase_rummy.MovePayload{
		TileIDs: req.TileIDs,
	})
	if err != nil {
		c.logger.Error("move rejected",
			slog.String("game", code),
			slog.String("player", req.PlayerName),
			slog.String("move_type", req.MoveType),
			slog.String("error", err.Error()))
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MoveResponseDTO{
		Message: outcome.Message,
		Game:    toGameStateDTO(game),
	})
}

// GameStateDTO is the full room snapshot returned by the polling paths.
type GameStateDTO struct {
	GameID        string         `json:"game_id"`
	Player1       string         `json:"player1"`
	Player2       string         `json:"player2,omitempty"`
	Status        string         `json:"status"`
	CurrentPlayer string         `json:"current_player"`
	CurrentTip    string         `json:"current_tip"`
	MeldPoints    int            `json:"meld_points"`
	PileCount     int            `json:"pile_count"`
	Player1Hand   []model.Tile   `json:"player1_hand"`
	Player2Hand   []model.Tile   `json:"player2_hand"`
	TableMelds    [][]model.Tile `json:"table_melds"`
	Player1Score  int            `json:"player1_score"`
	Player2Score  int            `json:"player2_score"`
	Player1Opened bool           `json:"player1_opened"`
	Player2Opened bool           `json:"player2_opened"`
	HasDrawn      bool           `json:"has_drawn_this_turn"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (c *Controller) state(ctx *gin.Context) {
	code := ctx.Param("game_id")

	game, err := c.usecase.Game(ctx, code)
	if err != nil {
		c.logger.Error("failed to get game", slog.String("game", code), slog.String("error", err.Error()))
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toGameStateDTO(game))
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"game":      "Rummy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (c *Controller) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase_rummy.ErrResourceNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
	case errors.Is(err, usecase_rummy.ErrRoomBusy):
		ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
			Message: err.Error(),
		})
	case errors.Is(err, usecase_rummy.ErrRoomsUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
			Message: "unavailable",
		})
	case errors.Is(err, usecase_rummy.ErrInternal):
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
	default:
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: err.Error(),
		})
	}
}

func toGameStateDTO(g *model.RummyGame) GameStateDTO {
	return GameStateDTO{
		GameID:        g.Code,
		Player1:       g.Player1,
		Player2:       g.Player2,
		Status:        g.Status,
		CurrentPlayer: g.State.CurrentPlayer,
		CurrentTip:    g.State.CurrentTip,
		MeldPoints:    g.State.MeldPoints,
		PileCount:     len(g.State.Pile),
		Player1Hand:   g.State.Player1Hand,
		Player2Hand:   g.State.Player2Hand,
		TableMelds:    g.State.TableMelds,
		Player1Score:  g.State.Player1Score,
		Player2Score:  g.State.Player2Score,
		Player1Opened: g.State.Player1Opened,
		Player2Opened: g.State.Player2Opened,
		HasDrawn:      g.State.HasDrawnThisTurn,
		UpdatedAt:     g.UpdatedAt,
	}
}
