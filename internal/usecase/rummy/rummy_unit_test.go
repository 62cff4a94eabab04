package usecase_rummy

import (
	"context"
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/IRaudaS/games-backend/internal/model"
	codes_mocks "github.com/IRaudaS/games-backend/internal/usecase/rummy/mocks/codereserver"
	flavor_mocks "github.com/IRaudaS/games-backend/internal/usecase/rummy/mocks/flavorservice"
	notifier_mocks "github.com/IRaudaS/games-backend/internal/usecase/rummy/mocks/notifier"
	repo_mocks "github.com/IRaudaS/games-backend/internal/usecase/rummy/mocks/repository"
)

type UsecaseRummyUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	repo     *repo_mocks.Repository
	codes    *codes_mocks.CodeReserver
	flavor   *flavor_mocks.FlavorService
	notifier *notifier_mocks.Notifier
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewRepository(t)
	codes := codes_mocks.NewCodeReserver(t)
	flavor := flavor_mocks.NewFlavorService(t)
	notifier := notifier_mocks.NewNotifier(t)
	usecase := New(repo, codes, flavor, notifier, 30)

	return &resources{
		usecase:  usecase,
		repo:     repo,
		codes:    codes,
		flavor:   flavor,
		notifier: notifier,
		ctx:      context.Background(),
	}
}

// playingGame is a deterministic two-player room with alice to move. Her hand
// holds a ready set of three 10s worth exactly the opening threshold.
func playingGame() *model.RummyGame {
	return &model.RummyGame{
		Code:    "RUMMY-AAAAAA",
		Player1: "alice",
		Player2: "bob",
		Status:  model.StatusPlaying,
		State: &model.RummyState{
			Pile: []model.Tile{{ID: 50, Number: 1, Color: model.ColorRed}},
			Player1Hand: []model.Tile{
				{ID: 1, Number: 10, Color: model.ColorRed},
				{ID: 2, Number: 10, Color: model.ColorBlue},
				{ID: 3, Number: 10, Color: model.ColorGreen},
				{ID: 4, Number: 2, Color: model.ColorOrange},
			},
			Player2Hand: []model.Tile{
				{ID: 10, Number: 5, Color: model.ColorRed},
			},
			TableMelds:    [][]model.Tile{},
			MeldPoints:    30,
			CurrentPlayer: "alice",
		},
	}
}

// seedGame arranges a cold registry load of game.
func seedGame(r *resources, game *model.RummyGame) {
	r.repo.On("LoadByCode", r.ctx, game.Code).Return(game, nil).Once()
}

func (s *UsecaseRummyUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		playerName    string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name:       "Should create game successfully",
			playerName: "alice",
			setupMocks: func(r *resources) {
				r.codes.On("Reserve", r.ctx, mock.AnythingOfType("string")).Return(true, nil).Once()
				r.repo.On("CreateGame", r.ctx, mock.AnythingOfType("*model.RummyGame")).Return(nil).Once()
			},
			expectError: false,
		},
		{
			name:          "Should reject empty player name",
			playerName:    "  ",
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: ErrInvalidInput,
		},
		{
			name:       "Should give up when codes are exhausted",
			playerName: "alice",
			setupMocks: func(r *resources) {
				r.codes.On("Reserve", r.ctx, mock.AnythingOfType("string")).Return(false, nil).Times(3)
			},
			expectError:   true,
			expectedError: ErrRoomsUnavailable,
		},
		{
			name:       "Should wrap repository failure",
			playerName: "alice",
			setupMocks: func(r *resources) {
				r.codes.On("Reserve", r.ctx, mock.AnythingOfType("string")).Return(true, nil).Once()
				r.repo.On("CreateGame", r.ctx, mock.AnythingOfType("*model.RummyGame")).Return(errors.New("db down")).Once()
			},
			expectError:   true,
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			game, err := r.usecase.Create(r.ctx, tc.playerName, 0)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, game)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "alice", game.Player1)
				assert.Equal(t, model.StatusWaiting, game.Status)
				assert.Len(t, game.State.Player1Hand, 14)
				assert.Len(t, game.State.Player2Hand, 14)
				assert.Equal(t, 30, game.State.MeldPoints)
				assert.Contains(t, game.Code, "RUMMY-")
			}
			r.repo.AssertExpectations(t)
			r.codes.AssertExpectations(t)
		})
	}
}

func (s *UsecaseRummyUnitSuite) TestJoin(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		playerName    string
		game          func() *model.RummyGame
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name:       "Should join waiting game",
			playerName: "bob",
			game: func() *model.RummyGame {
				g := playingGame()
				g.Player2 = ""
				g.Status = model.StatusWaiting
				return g
			},
			setupMocks: func(r *resources) {
				r.repo.On("SetPlayer2", r.ctx, "RUMMY-AAAAAA", "bob", model.StatusPlaying).Return(nil).Once()
				r.notifier.On("NotifyPlayerJoined", "RUMMY-AAAAAA", "bob").Once()
			},
			expectError: false,
		},
		{
			name:          "Should reject full room",
			playerName:    "carol",
			game:          playingGame,
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: ErrRoomFull,
		},
		{
			name:       "Should reject taken name",
			playerName: "alice",
			game: func() *model.RummyGame {
				g := playingGame()
				g.Player2 = ""
				g.Status = model.StatusWaiting
				return g
			},
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: ErrNameTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			seedGame(r, tc.game())
			tc.setupMocks(r)

			game, err := r.usecase.Join(r.ctx, "RUMMY-AAAAAA", tc.playerName)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.playerName, game.Player2)
				assert.Equal(t, model.StatusPlaying, game.Status)
			}
			r.repo.AssertExpectations(t)
			r.notifier.AssertExpectations(t)
		})
	}
}

func (s *UsecaseRummyUnitSuite) TestJoinUnknownGame(t provider.T) {
	t.Parallel()
	r := initResources(t)
	r.repo.On("LoadByCode", r.ctx, "RUMMY-ZZZZZZ").Return(nil, ErrResourceNotFound).Once()

	_, err := r.usecase.Join(r.ctx, "RUMMY-ZZZZZZ", "bob")

	assert.ErrorIs(t, err, ErrResourceNotFound)
	r.repo.AssertExpectations(t)
}

func (s *UsecaseRummyUnitSuite) TestMove(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		player        string
		moveType      string
		payload       MovePayload
		game          func() *model.RummyGame
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name:     "Should apply end turn and broadcast",
			player:   "alice",
			moveType: MoveEndTurn,
			game:     playingGame,
			setupMocks: func(r *resources) {
				r.repo.On("SaveState", r.ctx, mock.AnythingOfType("*model.RummyGame")).Return(nil).Once()
				r.repo.On("AppendMove", r.ctx, mock.AnythingOfType("model.MoveRecord")).Return(nil).Once()
				r.notifier.On("NotifyGameUpdated", mock.AnythingOfType("*model.RummyGame"), "alice", MoveEndTurn, mock.AnythingOfType("string")).Once()
			},
			expectError: false,
		},
		{
			name:     "Should enrich tip on opening meld",
			player:   "alice",
			moveType: MoveFormMeld,
			payload:  MovePayload{TileIDs: []int{1, 2, 3}},
			game:     playingGame,
			setupMocks: func(r *resources) {
				r.flavor.On("MeldTip", r.ctx, "alice").Return("What an opening!").Once()
				r.repo.On("SaveState", r.ctx, mock.AnythingOfType("*model.RummyGame")).Return(nil).Once()
				r.repo.On("AppendMove", r.ctx, mock.AnythingOfType("model.MoveRecord")).Return(nil).Once()
				r.notifier.On("NotifyGameUpdated", mock.AnythingOfType("*model.RummyGame"), "alice", MoveFormMeld, mock.AnythingOfType("string")).Once()
			},
			expectError: false,
		},
		{
			name:          "Should reject move out of turn",
			player:        "bob",
			moveType:      MoveDrawTile,
			game:          playingGame,
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: ErrNotYourTurn,
		},
		{
			name:          "Should reject outsider",
			player:        "mallory",
			moveType:      MoveDrawTile,
			game:          playingGame,
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: ErrNotParticipant,
		},
		{
			name:     "Should reject unknown move type",
			player:   "alice",
			moveType: "teleport",
			game:     playingGame,
			setupMocks: func(r *resources) {
			},
			expectError:   true,
			expectedError: ErrUnknownMove,
		},
		{
			name:     "Should reject move before second player arrives",
			player:   "alice",
			moveType: MoveDrawTile,
			game: func() *model.RummyGame {
				g := playingGame()
				g.Player2 = ""
				g.Status = model.StatusWaiting
				return g
			},
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: ErrGameNotStarted,
		},
		{
			name:          "Should wrap engine rejection",
			player:        "alice",
			moveType:      MoveFormMeld,
			payload:       MovePayload{TileIDs: []int{1, 2}},
			game:          playingGame,
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: ErrInvalidMove,
		},
		{
			name:     "Should wrap persistence failure",
			player:   "alice",
			moveType: MoveEndTurn,
			game:     playingGame,
			setupMocks: func(r *resources) {
				r.repo.On("SaveState", r.ctx, mock.AnythingOfType("*model.RummyGame")).Return(errors.New("db down")).Once()
			},
			expectError:   true,
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			seedGame(r, tc.game())
			tc.setupMocks(r)

			outcome, game, err := r.usecase.Move(r.ctx, "RUMMY-AAAAAA", tc.player, tc.moveType, tc.payload)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, game)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, outcome.Message)
				assert.NotNil(t, game)
			}
			r.repo.AssertExpectations(t)
			r.flavor.AssertExpectations(t)
			r.notifier.AssertExpectations(t)
		})
	}
}

func (s *UsecaseRummyUnitSuite) TestMoveWhileRoomBusy(t provider.T) {
	t.Parallel()
	r := initResources(t)
	seedGame(r, playingGame())

	// The busy flag lives on the resident registry record.
	game, err := r.usecase.Game(r.ctx, "RUMMY-AAAAAA")
	assert.NoError(t, err)
	assert.True(t, game.TryBeginMove(), "simulated in-flight move")

	_, moved, err := r.usecase.Move(r.ctx, "RUMMY-AAAAAA", "alice", MoveEndTurn, MovePayload{})

	// Rejected with the retry-later conflict, never queued: no repository
	// write, no broadcast, state untouched.
	assert.ErrorIs(t, err, ErrRoomBusy)
	assert.Nil(t, moved)
	assert.Equal(t, "alice", game.State.CurrentPlayer)
	r.repo.AssertExpectations(t)
	r.notifier.AssertExpectations(t)

	// Once the in-flight move ends, a retry goes through.
	game.EndMove()
	r.repo.On("SaveState", r.ctx, mock.AnythingOfType("*model.RummyGame")).Return(nil).Once()
	r.repo.On("AppendMove", r.ctx, mock.AnythingOfType("model.MoveRecord")).Return(nil).Once()
	r.notifier.On("NotifyGameUpdated", mock.AnythingOfType("*model.RummyGame"), "alice", MoveEndTurn, mock.AnythingOfType("string")).Once()

	_, _, err = r.usecase.Move(r.ctx, "RUMMY-AAAAAA", "alice", MoveEndTurn, MovePayload{})
	assert.NoError(t, err)
	r.repo.AssertExpectations(t)
}

func (s *UsecaseRummyUnitSuite) TestMoveRejectionLeavesStateUntouched(t provider.T) {
	t.Parallel()
	r := initResources(t)
	seedGame(r, playingGame())
	r.repo.On("SaveState", r.ctx, mock.AnythingOfType("*model.RummyGame")).Return(errors.New("db down")).Once()

	_, _, err := r.usecase.Move(r.ctx, "RUMMY-AAAAAA", "alice", MoveEndTurn, MovePayload{})
	assert.ErrorIs(t, err, ErrInternal)

	// The registry still serves the pre-move record.
	game, err := r.usecase.Game(r.ctx, "RUMMY-AAAAAA")
	assert.NoError(t, err)
	assert.Equal(t, "alice", game.State.CurrentPlayer)
	r.repo.AssertExpectations(t)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRummyUnitSuite))
}
