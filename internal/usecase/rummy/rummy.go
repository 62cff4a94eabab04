// Package usecase_rummy coordinates the tile game: room creation and join,
// the validated move pipeline (turn discipline, busy guard, engine apply,
// write-through persistence, broadcast fan-out) and read-only state queries.
package usecase_rummy

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/IRaudaS/games-backend/internal/engine/rummy"
	"github.com/IRaudaS/games-backend/internal/model"
	"github.com/IRaudaS/games-backend/internal/registry"
)

var (
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such game")
	ErrRoomsUnavailable = errors.New("no available room codes")
	ErrInvalidInput     = errors.New("invalid input")
	ErrRoomFull         = errors.New("game already has two players")
	ErrNameTaken        = errors.New("that name is already in this game")
	ErrNotParticipant   = errors.New("you are not part of this game")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrRoomBusy         = errors.New("another move is being processed, retry shortly")
	ErrGameNotStarted   = errors.New("game has not started yet")
	ErrGameFinished     = errors.New("game is finished")
	ErrUnknownMove      = errors.New("unknown move type")
	ErrInvalidMove      = errors.New("invalid move")
)

const (
	MoveFormMeld = "formGroup"
	MoveDrawTile = "drawTile"
	MoveEndTurn  = "endTurn"
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	CreateGame(ctx context.Context, g *model.RummyGame) error
	SetPlayer2(ctx context.Context, code, player2 string, status model.Status) error
	SaveState(ctx context.Context, g *model.RummyGame) error
	AppendMove(ctx context.Context, rec model.MoveRecord) error
	LoadByCode(ctx context.Context, code string) (*model.RummyGame, error)
}

//go:generate mockery --name=CodeReserver --output=./mocks/codereserver --filename=codereserver.go
type CodeReserver interface {
	Reserve(ctx context.Context, code string) (bool, error)
}

//go:generate mockery --name=FlavorService --output=./mocks/flavorservice --filename=flavorservice.go
type FlavorService interface {
	MeldTip(ctx context.Context, player string) string
}

// Notifier fans a successful move out to the room's connected clients.
//
//go:generate mockery --name=Notifier --output=./mocks/notifier --filename=notifier.go
type Notifier interface {
	NotifyPlayerJoined(code, player string)
	NotifyGameUpdated(g *model.RummyGame, mover, moveType, message string)
}

// MovePayload is the move-specific part of a move submission.
type MovePayload struct {
	TileIDs []int `json:"tile_ids"`
}

type Usecase struct {
	repository Repository
	codes      CodeReserver
	flavor     FlavorService
	notifier   Notifier
	games      *registry.Registry[*model.RummyGame]

	defaultMeldPoints int
	logger            *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	repository Repository,
	codes CodeReserver,
	flavor FlavorService,
	notifier Notifier,
	defaultMeldPoints int,
	opts ...UsecaseOption,
) *Usecase {
	if defaultMeldPoints <= 0 {
		defaultMeldPoints = 30
	}
	u := &Usecase{
		repository:        repository,
		codes:             codes,
		flavor:            flavor,
		notifier:          notifier,
		games:             registry.New[*model.RummyGame](),
		defaultMeldPoints: defaultMeldPoints,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create deals a fresh game for playerName and reserves a shareable code.
func (u *Usecase) Create(ctx context.Context, playerName string, meldPoints int) (*model.RummyGame, error) {
	if strings.TrimSpace(playerName) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("player name required"))
	}
	if meldPoints <= 0 {
		meldPoints = u.defaultMeldPoints
	}

	code, err := u.reserveCode(ctx, "RUMMY-")
	if err != nil {
		return nil, err
	}

	state := rummy.NewState(playerName, meldPoints)
	state.CurrentTip = "Let the match begin!"
	game := &model.RummyGame{
		Code:      code,
		Player1:   playerName,
		Status:    model.StatusWaiting,
		State:     state,
		UpdatedAt: time.Now(),
	}

	if err := u.repository.CreateGame(ctx, game); err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	u.games.Store(code, game)

	return game, nil
}

// Join adds the second participant and flips the room to playing.
func (u *Usecase) Join(ctx context.Context, code, playerName string) (*model.RummyGame, error) {
	if strings.TrimSpace(playerName) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("player name required"))
	}

	game, err := u.loadGame(ctx, code)
	if err != nil {
		return nil, err
	}
	if game.Status == model.StatusFinished {
		return nil, ErrGameFinished
	}
	if game.Player2 != "" {
		return nil, ErrRoomFull
	}
	if game.Player1 == playerName {
		return nil, ErrNameTaken
	}

	if err := u.repository.SetPlayer2(ctx, code, playerName, model.StatusPlaying); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}

	joined := &model.RummyGame{
		Code:      game.Code,
		Player1:   game.Player1,
		Player2:   playerName,
		Status:    model.StatusPlaying,
		State:     game.State,
		UpdatedAt: time.Now(),
	}
	u.games.Store(code, joined)

	u.notifier.NotifyPlayerJoined(code, playerName)
	return joined, nil
}

// Move runs the full pipeline for one submitted move: busy guard, turn
// check, engine validation and apply on a draft, write-through persistence,
// registry swap, broadcast. A rejected move leaves every layer untouched.
func (u *Usecase) Move(ctx context.Context, code, player, moveType string, payload MovePayload) (rummy.Outcome, *model.RummyGame, error) {
	game, err := u.loadGame(ctx, code)
	if err != nil {
		return rummy.Outcome{}, nil, err
	}
	switch game.Status {
	case model.StatusWaiting:
		return rummy.Outcome{}, nil, ErrGameNotStarted
	case model.StatusFinished:
		return rummy.Outcome{}, nil, ErrGameFinished
	}
	if !game.IsParticipant(player) {
		return rummy.Outcome{}, nil, ErrNotParticipant
	}
	if game.State.CurrentPlayer != player {
		return rummy.Outcome{}, nil, ErrNotYourTurn
	}

	// The enrichment call sits inside the move, so the room must be held
	// for the whole apply-persist window.
	if !game.TryBeginMove() {
		return rummy.Outcome{}, nil, ErrRoomBusy
	}
	defer game.EndMove()

	draft := &model.RummyGame{
		Code:      game.Code,
		Player1:   game.Player1,
		Player2:   game.Player2,
		Status:    game.Status,
		State:     game.State.Clone(),
		UpdatedAt: time.Now(),
	}

	var outcome rummy.Outcome
	switch moveType {
	case MoveFormMeld:
		outcome, err = rummy.FormMeld(draft, player, payload.TileIDs)
	case MoveDrawTile:
		outcome, err = rummy.DrawTile(draft, player)
	case MoveEndTurn:
		outcome, err = rummy.EndTurn(draft, player)
	default:
		return rummy.Outcome{}, nil, ErrUnknownMove
	}
	if err != nil {
		return rummy.Outcome{}, nil, errors.Join(ErrInvalidMove, err)
	}

	if outcome.OpenedNow {
		draft.State.CurrentTip = u.flavor.MeldTip(ctx, player)
	}

	if err := u.repository.SaveState(ctx, draft); err != nil {
		return rummy.Outcome{}, nil, errors.Join(ErrInternal, err)
	}
	if err := u.repository.AppendMove(ctx, model.NewMoveRecord(code, player, moveType, payload)); err != nil {
		// The move itself is durable; a lost audit row is logged, not fatal.
		u.logger.Error("failed to append move record",
			slog.String("game", code),
			slog.String("player", player),
			slog.String("error", err.Error()))
	}
	u.games.Store(code, draft)

	u.notifier.NotifyGameUpdated(draft, player, moveType, outcome.Message)
	return outcome, draft, nil
}

// Game returns a read-only snapshot of the room.
func (u *Usecase) Game(ctx context.Context, code string) (*model.RummyGame, error) {
	return u.loadGame(ctx, code)
}

// loadGame serves from the in-process registry, reloading from the durable
// store when the room is not resident.
func (u *Usecase) loadGame(ctx context.Context, code string) (*model.RummyGame, error) {
	if game, ok := u.games.Load(code); ok {
		return game, nil
	}
	game, err := u.repository.LoadByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}
	return u.games.LoadOrStore(code, game), nil
}

// Assuming that codes can conflict.
// Retrying...
func (u *Usecase) reserveCode(ctx context.Context, prefix string) (string, error) {
	var retries = 3
	for retries > 0 {
		code := prefix + buildCode()
		ok, err := u.codes.Reserve(ctx, code)
		if err != nil {
			return "", errors.Join(ErrInternal, err)
		}
		if ok {
			return code, nil
		}
		retries--
	}
	return "", ErrRoomsUnavailable
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func buildCode() string {
	const codeLen = 6
	var builder strings.Builder
	builder.Grow(codeLen)

	for i := 0; i < codeLen; i++ {
		builder.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}

	return builder.String()
}
