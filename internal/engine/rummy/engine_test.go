package rummy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IRaudaS/games-backend/internal/model"
)

func newTestGame(p1Hand, p2Hand, pile []model.Tile) *model.RummyGame {
	return &model.RummyGame{
		Code:    "RUMMY-TEST01",
		Player1: "alice",
		Player2: "bob",
		Status:  model.StatusPlaying,
		State: &model.RummyState{
			Pile:          pile,
			Player1Hand:   p1Hand,
			Player2Hand:   p2Hand,
			TableMelds:    [][]model.Tile{},
			MeldPoints:    30,
			CurrentPlayer: "alice",
		},
	}
}

func TestNewStateDealsFullUniverse(t *testing.T) {
	state := NewState("alice", 30)

	assert.Len(t, state.Player1Hand, 14)
	assert.Len(t, state.Player2Hand, 14)
	assert.Len(t, state.Pile, model.TotalTiles-28)
	assert.Equal(t, "alice", state.CurrentPlayer)
	assert.Equal(t, 30, state.MeldPoints)

	seen := make(map[int]struct{}, model.TotalTiles)
	for _, group := range [][]model.Tile{state.Player1Hand, state.Player2Hand, state.Pile} {
		for _, tl := range group {
			_, dup := seen[tl.ID]
			require.False(t, dup, "tile id %d dealt twice", tl.ID)
			seen[tl.ID] = struct{}{}
		}
	}
	assert.Len(t, seen, model.TotalTiles)
}

// assertFullUniverse requires the union of pile, both hands and all table
// melds to be exactly the dealt tile universe, no id twice.
func assertFullUniverse(t *testing.T, s *model.RummyState) {
	t.Helper()
	seen := make(map[int]struct{}, model.TotalTiles)
	add := func(tiles []model.Tile) {
		for _, tl := range tiles {
			_, dup := seen[tl.ID]
			require.False(t, dup, "tile id %d appears twice", tl.ID)
			seen[tl.ID] = struct{}{}
		}
	}
	add(s.Pile)
	add(s.Player1Hand)
	add(s.Player2Hand)
	for _, meld := range s.TableMelds {
		add(meld)
	}
	require.Len(t, seen, model.TotalTiles)
}

func TestMovesConserveTileUniverse(t *testing.T) {
	tiles := model.NewTileSet()
	g := newTestGame(
		append([]model.Tile(nil), tiles[:14]...),
		append([]model.Tile(nil), tiles[14:28]...),
		append([]model.Tile(nil), tiles[28:]...),
	)
	g.State.Player1Opened = true
	assertFullUniverse(t, g.State)

	// Ids 0, 1, 2 are red 1-2-3, a low run.
	_, err := FormMeld(g, "alice", []int{0, 1, 2})
	require.NoError(t, err)
	assertFullUniverse(t, g.State)

	_, err = DrawTile(g, "alice")
	require.NoError(t, err)
	assertFullUniverse(t, g.State)

	_, err = EndTurn(g, "alice")
	require.NoError(t, err)
	assertFullUniverse(t, g.State)
}

func TestFormMeldOpening(t *testing.T) {
	tests := []struct {
		name      string
		hand      []model.Tile
		tileIDs   []int
		wantErr   error
		wantOpen  bool
		wantMelds int
	}{
		{
			name:      "opening meld at threshold",
			hand:      []model.Tile{tile(1, 10, model.ColorRed), tile(2, 10, model.ColorBlue), tile(3, 10, model.ColorGreen), tile(4, 2, model.ColorRed)},
			tileIDs:   []int{1, 2, 3},
			wantOpen:  true,
			wantMelds: 1,
		},
		{
			name:    "opening meld below threshold",
			hand:    []model.Tile{tile(1, 2, model.ColorRed), tile(2, 3, model.ColorRed), tile(3, 4, model.ColorRed), tile(4, 10, model.ColorBlue)},
			tileIDs: []int{1, 2, 3},
			wantErr: ErrBelowThreshold,
		},
		{
			name:    "tiles not in hand",
			hand:    []model.Tile{tile(1, 10, model.ColorRed), tile(2, 10, model.ColorBlue), tile(3, 10, model.ColorGreen)},
			tileIDs: []int{1, 2, 99},
			wantErr: ErrTileNotOwned,
		},
		{
			name:    "duplicate ids rejected",
			hand:    []model.Tile{tile(1, 10, model.ColorRed), tile(2, 10, model.ColorBlue), tile(3, 10, model.ColorGreen)},
			tileIDs: []int{1, 2, 2},
			wantErr: ErrTileNotOwned,
		},
		{
			name:    "invalid group",
			hand:    []model.Tile{tile(1, 10, model.ColorRed), tile(2, 11, model.ColorBlue), tile(3, 12, model.ColorGreen), tile(4, 13, model.ColorRed)},
			tileIDs: []int{1, 2, 3},
			wantErr: ErrInvalidMeld,
		},
		{
			name:    "too few tiles",
			hand:    []model.Tile{tile(1, 10, model.ColorRed), tile(2, 10, model.ColorBlue), tile(3, 10, model.ColorGreen)},
			tileIDs: []int{1, 2},
			wantErr: ErrTooFewTiles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(tt.hand, runOf(model.ColorBlue, 1, 5), runOf(model.ColorGreen, 1, 5))

			out, err := FormMeld(g, "alice", tt.tileIDs)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, g.State.TableMelds, "rejected move must not touch the table")
				assert.Len(t, g.State.Player1Hand, len(tt.hand), "rejected move must not touch the hand")
				assert.False(t, g.State.Player1Opened)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOpen, out.OpenedNow)
			assert.Len(t, g.State.TableMelds, tt.wantMelds)
			assert.True(t, g.State.Player1Opened)
			assert.Len(t, g.State.Player1Hand, len(tt.hand)-len(tt.tileIDs))
		})
	}
}

func TestFormMeldAfterOpeningSkipsThreshold(t *testing.T) {
	hand := []model.Tile{tile(1, 2, model.ColorRed), tile(2, 3, model.ColorRed), tile(3, 4, model.ColorRed), tile(4, 10, model.ColorBlue)}
	g := newTestGame(hand, nil, runOf(model.ColorGreen, 1, 5))
	g.State.Player1Opened = true

	out, err := FormMeld(g, "alice", []int{1, 2, 3})

	require.NoError(t, err)
	assert.False(t, out.OpenedNow)
	assert.Len(t, g.State.TableMelds, 1)
}

func TestFormMeldWinsOnEmptyHand(t *testing.T) {
	hand := []model.Tile{tile(1, 10, model.ColorRed), tile(2, 11, model.ColorRed), tile(3, 12, model.ColorRed)}
	opponent := []model.Tile{tile(10, 5, model.ColorBlue), tile(11, 13, model.ColorGreen)}
	g := newTestGame(hand, opponent, runOf(model.ColorGreen, 1, 5))

	out, err := FormMeld(g, "alice", []int{1, 2, 3})

	require.NoError(t, err)
	assert.True(t, out.Won)
	assert.Equal(t, model.StatusFinished, g.Status)
	assert.Equal(t, 18, g.State.Player1Score, "winner scores the opponent's remaining hand value")
	assert.Empty(t, g.State.Player1Hand)
}

func TestDrawTile(t *testing.T) {
	pile := runOf(model.ColorGreen, 1, 3)
	g := newTestGame(runOf(model.ColorRed, 1, 3), nil, pile)
	front := pile[0]

	out, err := DrawTile(g, "alice")
	require.NoError(t, err)
	assert.Contains(t, out.Message, "alice")
	assert.Len(t, g.State.Player1Hand, 4)
	assert.Equal(t, front, g.State.Player1Hand[3])
	assert.Len(t, g.State.Pile, 2)

	_, err = DrawTile(g, "alice")
	assert.ErrorIs(t, err, ErrAlreadyDrawn, "one draw per turn")
}

func TestDrawTileEmptyPile(t *testing.T) {
	g := newTestGame(runOf(model.ColorRed, 1, 3), nil, nil)

	_, err := DrawTile(g, "alice")
	assert.ErrorIs(t, err, ErrPileEmpty)
}

func TestEndTurn(t *testing.T) {
	g := newTestGame(runOf(model.ColorRed, 1, 3), nil, runOf(model.ColorGreen, 1, 3))
	g.State.HasDrawnThisTurn = true

	_, err := EndTurn(g, "alice")
	require.NoError(t, err)
	assert.Equal(t, "bob", g.State.CurrentPlayer)
	assert.False(t, g.State.HasDrawnThisTurn)

	_, err = EndTurn(g, "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", g.State.CurrentPlayer, "turn order is cyclic")
}
