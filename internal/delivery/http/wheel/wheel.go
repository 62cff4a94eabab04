package http_wheel

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	http_common "github.com/IRaudaS/games-backend/internal/delivery/http/common"
	"github.com/IRaudaS/games-backend/internal/engine/wheel"
	"github.com/IRaudaS/games-backend/internal/model"
	usecase_wheel "github.com/IRaudaS/games-backend/internal/usecase/wheel"
)

type Controller struct {
	usecase *usecase_wheel.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_wheel.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	games := router.Group("/wheel")
	{
		games.GET("/health", c.health)
		games.POST("/games", c.create)
		games.GET("/games/:game_id", c.state)
		games.POST("/games/:game_id/play", c.play)
		games.GET("/my-games/:player", c.myGames)
	}
}

// CreateRequestDTO optionally pins the phrase category. An empty category
// means pick one at random.
type CreateRequestDTO struct {
	Category string `json:"category"`
}

type CreateResponseDTO struct {
	GameID   string       `json:"game_id"`
	Category string       `json:"category"`
	Game     GameStateDTO `json:"game"`
}

func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	game, err := c.usecase.Create(ctx, req.Category)
	if err != nil {
		c.logger.Error("failed to create game", slog.String("error", err.Error()))
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, CreateResponseDTO{
		GameID:   game.Code,
		Category: game.State.Category,
		Game:     toGameStateDTO(game),
	})
}

// PlayRequestDTO is one wheel action. Letter is set for guesses and vowel
// buys, Value carries the prior spin reward for a consonant guess, Attempt
// is the full-phrase text for a solve.
type PlayRequestDTO struct {
	PlayerName string `json:"player_name" binding:"required"`
	Action     string `json:"action" binding:"required"`
	Letter     string `json:"letter"`
	Value      int    `json:"value"`
	Attempt    string `json:"attempt"`
}

type PlayResponseDTO struct {
	Message string            `json:"message"`
	Spin    *wheel.SpinResult `json:"spin,omitempty"`
	Winner  string            `json:"winner,omitempty"`
	Game    GameStateDTO      `json:"game"`
}

func (c *Controller) play(ctx *gin.Context) {
	code := ctx.Param("game_id")

	var req PlayRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	outcome, game, err := c.usecase.Play(ctx, code, req.PlayerName, req.Action, usecase_wheel.PlayPayload{
		Letter:  req.Letter,
		Value:   req.Value,
		Attempt: req.Attempt,
	})
	if err != nil {
		c.logger.Error("play rejected",
			slog.String("game", code),
			slog.String("player", req.PlayerName),
			slog.String("action", req.Action),
			slog.String("error", err.Error()))
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, PlayResponseDTO{
		Message: outcome.Message,
		Spin:    outcome.Spin,
		Winner:  outcome.Winner,
		Game:    toGameStateDTO(game),
	})
}

// GameStateDTO exposes the board as players see it: the phrase is masked
// until the round finishes.
type GameStateDTO struct {
	GameID         string         `json:"game_id"`
	Status         string         `json:"status"`
	Category       string         `json:"category"`
	DisplayPhrase  string         `json:"display_phrase"`
	Roster         []string       `json:"roster"`
	CurrentPlayer  string         `json:"current_player"`
	ConsonantsUsed []string       `json:"consonants_used"`
	VowelsUsed     []string       `json:"vowels_used"`
	Money          map[string]int `json:"money"`
	UpdatedAt      time.Time      `json:"updated_at"`
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

type MyGamesResponseDTO struct {
	Games []usecase_wheel.GameSummary `json:"games"`
}

func (c *Controller) myGames(ctx *gin.Context) {
	player := ctx.Param("player")

	summaries, err := c.usecase.MyGames(ctx, player)
	if err != nil {
		c.logger.Error("failed to list games", slog.String("player", player), slog.String("error", err.Error()))
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MyGamesResponseDTO{Games: summaries})
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"game":      "Wheel",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (c *Controller) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase_wheel.ErrResourceNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
	case errors.Is(err, usecase_wheel.ErrRoomsUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
			Message: "unavailable",
		})
	case errors.Is(err, usecase_wheel.ErrInternal):
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
	default:
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: err.Error(),
		})
	}
}

func toGameStateDTO(g *model.WheelGame) GameStateDTO {
	display := wheel.DisplayPhrase(g.State.Phrase, g.State.Revealed)
	return GameStateDTO{
		GameID:         g.Code,
		Status:         g.Status,
		Category:       g.State.Category,
		DisplayPhrase:  display,
		Roster:         g.State.Roster,
		CurrentPlayer:  g.State.CurrentPlayer,
		ConsonantsUsed: g.State.ConsonantsUsed,
		VowelsUsed:     g.State.VowelsUsed,
		Money:          g.State.Money,
		UpdatedAt:      g.UpdatedAt,
	}
}
