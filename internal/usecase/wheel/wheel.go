// Package usecase_wheel coordinates the letter-wheel game: room creation
// with a generated-or-catalog phrase, the validated move pipeline over the
// fixed roster, and the polling read paths.
package usecase_wheel

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/IRaudaS/games-backend/internal/engine/wheel"
	"github.com/IRaudaS/games-backend/internal/model"
	"github.com/IRaudaS/games-backend/internal/registry"
)

var (
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such game")
	ErrRoomsUnavailable = errors.New("no available room codes")
	ErrNotParticipant   = errors.New("you are not part of this game")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrGameFinished     = errors.New("game is finished")
	ErrUnknownMove      = errors.New("unknown action")
	ErrInvalidMove      = errors.New("invalid move")
)

const (
	ActionSpin           = "spin"
	ActionGuessConsonant = "guess_consonant"
	ActionBuyVowel       = "buy_vowel"
	ActionSolvePhrase    = "solve_phrase"
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	CreateGame(ctx context.Context, g *model.WheelGame) error
	SaveState(ctx context.Context, g *model.WheelGame) error
	AppendMove(ctx context.Context, rec model.MoveRecord) error
	LoadByCode(ctx context.Context, code string) (*model.WheelGame, error)
	ListActive(ctx context.Context) ([]*model.WheelGame, error)
}

//go:generate mockery --name=CodeReserver --output=./mocks/codereserver --filename=codereserver.go
type CodeReserver interface {
	Reserve(ctx context.Context, code string) (bool, error)
}

//go:generate mockery --name=PhraseService --output=./mocks/phraseservice --filename=phraseservice.go
type PhraseService interface {
	Phrase(ctx context.Context, category string) (phrase, selected string)
}

// PlayPayload is the move-specific part of a play submission.
type PlayPayload struct {
	Letter  string `json:"letter,omitempty"`
	Value   int    `json:"value,omitempty"`
	Attempt string `json:"attempt,omitempty"`
}

// GameSummary is one row of a player's active-games listing.
type GameSummary struct {
	GameID        string    `json:"game_id"`
	Category      string    `json:"category"`
	CurrentPlayer string    `json:"current_player"`
	IsMyTurn      bool      `json:"is_my_turn"`
	MyMoney       int       `json:"my_money"`
	Status        string    `json:"status"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Usecase struct {
	repository Repository
	codes      CodeReserver
	phrases    PhraseService
	games      *registry.Registry[*model.WheelGame]

	// Per-room move serialization. The wheel has no mid-move async work,
	// so a plain lock preserves receipt order.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	logger *slog.Logger
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
	phrases PhraseService,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		repository: repository,
		codes:      codes,
		phrases:    phrases,
		games:      registry.New[*model.WheelGame](),
		locks:      make(map[string]*sync.Mutex),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create starts a game for the fixed roster. The wheel skips the waiting
// phase entirely: the roster is known, so the room opens already playing.
func (u *Usecase) Create(ctx context.Context, category string) (*model.WheelGame, error) {
	code, err := u.reserveCode(ctx, "WHEEL-")
	if err != nil {
		return nil, err
	}

	phrase, selected := u.phrases.Phrase(ctx, category)
	game := &model.WheelGame{
		Code:      code,
		Status:    model.StatusPlaying,
		State:     wheel.NewState(phrase, selected, model.DefaultWheelRoster()),
		UpdatedAt: time.Now(),
	}

	if err := u.repository.CreateGame(ctx, game); err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	u.games.Store(code, game)

	return game, nil
}

// Play validates and applies one action. Moves on a room are serialized and
// applied to a draft that is persisted before it becomes visible.
func (u *Usecase) Play(ctx context.Context, code, player, action string, payload PlayPayload) (wheel.Outcome, *model.WheelGame, error) {
	lock := u.roomLock(code)
	lock.Lock()
	defer lock.Unlock()

	game, err := u.loadGame(ctx, code)
	if err != nil {
		return wheel.Outcome{}, nil, err
	}
	if game.Status == model.StatusFinished {
		return wheel.Outcome{}, nil, ErrGameFinished
	}
	if !game.IsParticipant(player) {
		return wheel.Outcome{}, nil, ErrNotParticipant
	}
	if game.State.CurrentPlayer != player {
		return wheel.Outcome{}, nil, ErrNotYourTurn
	}

	draft := &model.WheelGame{
		Code:      game.Code,
		Status:    game.Status,
		State:     game.State.Clone(),
		UpdatedAt: time.Now(),
	}

	var outcome wheel.Outcome
	switch action {
	case ActionSpin:
		outcome, err = wheel.ApplySpin(draft, player)
	case ActionGuessConsonant:
		outcome, err = wheel.GuessConsonant(draft, player, payload.Letter, payload.Value)
	case ActionBuyVowel:
		outcome, err = wheel.BuyVowel(draft, player, payload.Letter)
	case ActionSolvePhrase:
		outcome, err = wheel.SolvePhrase(draft, player, payload.Attempt)
	default:
		return wheel.Outcome{}, nil, ErrUnknownMove
	}
	if err != nil {
		return wheel.Outcome{}, nil, errors.Join(ErrInvalidMove, err)
	}

	if err := u.repository.SaveState(ctx, draft); err != nil {
		return wheel.Outcome{}, nil, errors.Join(ErrInternal, err)
	}
	if err := u.repository.AppendMove(ctx, model.NewMoveRecord(code, player, action, payload)); err != nil {
		u.logger.Error("failed to append move record",
			slog.String("game", code),
			slog.String("player", player),
			slog.String("error", err.Error()))
	}
	u.games.Store(code, draft)

	return outcome, draft, nil
}

// Game returns a read-only snapshot of the room.
func (u *Usecase) Game(ctx context.Context, code string) (*model.WheelGame, error) {
	return u.loadGame(ctx, code)
}

// MyGames lists the player's active games, newest first as returned by the
// repository.
func (u *Usecase) MyGames(ctx context.Context, player string) ([]GameSummary, error) {
	games, err := u.repository.ListActive(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	summaries := make([]GameSummary, 0, len(games))
	for _, g := range games {
		if !g.IsParticipant(player) {
			continue
		}
		summaries = append(summaries, GameSummary{
			GameID:        g.Code,
			Category:      g.State.Category,
			CurrentPlayer: g.State.CurrentPlayer,
			IsMyTurn:      g.State.CurrentPlayer == player,
			MyMoney:       g.State.Money[player],
			Status:        g.Status,
			UpdatedAt:     g.UpdatedAt,
		})
	}
	return summaries, nil
}

func (u *Usecase) loadGame(ctx context.Context, code string) (*model.WheelGame, error) {
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

func (u *Usecase) roomLock(code string) *sync.Mutex {
	u.locksMu.Lock()
	defer u.locksMu.Unlock()
	if lock, ok := u.locks[code]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	u.locks[code] = lock
	return lock
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
