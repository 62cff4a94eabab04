// Package rummy implements the tile-matching move engine: meld legality,
// opening-point threshold, one-draw-per-turn discipline and win detection.
// Functions validate a proposed move against current state and either reject
// it with a sentinel error, leaving state untouched, or apply it and describe
// the outcome.
package rummy

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/IRaudaS/games-backend/internal/engine/turn"
	"github.com/IRaudaS/games-backend/internal/model"
)

const handSize = 14

var (
	ErrTooFewTiles    = errors.New("a meld needs at least 3 tiles")
	ErrInvalidMeld    = errors.New("selected tiles do not form a valid meld")
	ErrTileNotOwned   = errors.New("you can only play tiles from your own hand")
	ErrBelowThreshold = errors.New("opening meld below point threshold")
	ErrAlreadyDrawn   = errors.New("already drew a tile this turn")
	ErrPileEmpty      = errors.New("the draw pile is empty")
)

// Outcome describes a successfully applied move.
type Outcome struct {
	Message string
	// OpenedNow is set when this meld was the player's qualifying opening
	// meld, the milestone that triggers flavor-text enrichment.
	OpenedNow bool
	Won       bool
}

// NewState deals a fresh game: shuffled 106-tile universe, 14 tiles to each
// hand, remainder to the draw pile with the front tile drawn first. The
// creator opens play.
func NewState(creator string, meldPoints int) *model.RummyState {
	tiles := model.NewTileSet()
	rand.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return &model.RummyState{
		Player1Hand:      tiles[:handSize],
		Player2Hand:      tiles[handSize : 2*handSize],
		Pile:             tiles[2*handSize:],
		TableMelds:       [][]model.Tile{},
		MeldPoints:       meldPoints,
		CurrentPlayer:    creator,
		HasDrawnThisTurn: false,
	}
}

// FormMeld places a group of tiles from the acting player's hand onto the
// table. The candidate tiles are matched against the hand by id, so a client
// cannot forge values. Emptying the hand wins the game: the opponent's
// remaining hand value is scored to the winner and the game finishes.
func FormMeld(g *model.RummyGame, player string, tileIDs []int) (Outcome, error) {
	if len(tileIDs) < MinMeldSize {
		return Outcome{}, ErrTooFewTiles
	}

	hand := g.HandOf(player)
	tiles, ok := tilesByID(hand, tileIDs)
	if !ok {
		return Outcome{}, ErrTileNotOwned
	}
	if !IsValidMeld(tiles) {
		return Outcome{}, ErrInvalidMeld
	}

	isPlayer1 := player == g.Player1
	opened := g.State.Player1Opened
	if !isPlayer1 {
		opened = g.State.Player2Opened
	}
	if !opened {
		if value := MeldValue(tiles); value < g.State.MeldPoints {
			return Outcome{}, fmt.Errorf("%w: %d of %d points", ErrBelowThreshold, value, g.State.MeldPoints)
		}
	}

	g.State.TableMelds = append(g.State.TableMelds, tiles)
	remaining := removeByID(hand, tileIDs)
	if isPlayer1 {
		g.State.Player1Hand = remaining
		g.State.Player1Opened = true
	} else {
		g.State.Player2Hand = remaining
		g.State.Player2Opened = true
	}

	out := Outcome{
		Message:   fmt.Sprintf("%s placed a valid meld", player),
		OpenedNow: !opened,
	}
	if len(remaining) == 0 {
		finishGame(g, player)
		out.Won = true
		out.Message = fmt.Sprintf("%s has won the game!", player)
	}
	return out, nil
}

// DrawTile moves the front tile of the pile into the acting player's hand.
// At most one draw per turn.
func DrawTile(g *model.RummyGame, player string) (Outcome, error) {
	if g.State.HasDrawnThisTurn {
		return Outcome{}, ErrAlreadyDrawn
	}
	if len(g.State.Pile) == 0 {
		return Outcome{}, ErrPileEmpty
	}

	tile := g.State.Pile[0]
	g.State.Pile = g.State.Pile[1:]
	if player == g.Player1 {
		g.State.Player1Hand = append(g.State.Player1Hand, tile)
	} else {
		g.State.Player2Hand = append(g.State.Player2Hand, tile)
	}
	g.State.HasDrawnThisTurn = true

	return Outcome{Message: fmt.Sprintf("%s drew a tile from the pile", player)}, nil
}

// EndTurn hands the turn to the other participant and resets the per-turn
// draw flag.
func EndTurn(g *model.RummyGame, player string) (Outcome, error) {
	roster := turn.Roster{g.Player1, g.Player2}
	g.State.CurrentPlayer = roster.Next(player)
	g.State.HasDrawnThisTurn = false

	return Outcome{Message: fmt.Sprintf("Turn over. Now playing: %s", g.State.CurrentPlayer)}, nil
}

func finishGame(g *model.RummyGame, winner string) {
	g.Status = model.StatusFinished
	if winner == g.Player1 {
		g.State.Player1Score += MeldValue(g.State.Player2Hand)
	} else {
		g.State.Player2Score += MeldValue(g.State.Player1Hand)
	}
}

// tilesByID resolves candidate ids against the hand, failing if any id is
// not owned. Duplicate ids in the request resolve to the same tile and are
// rejected by the meld validators downstream, never duplicated on the table.
func tilesByID(hand []model.Tile, ids []int) ([]model.Tile, bool) {
	byID := make(map[int]model.Tile, len(hand))
	for _, t := range hand {
		byID[t.ID] = t
	}
	tiles := make([]model.Tile, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			return nil, false
		}
		seen[id] = struct{}{}
		tiles = append(tiles, t)
	}
	return tiles, true
}

func removeByID(hand []model.Tile, ids []int) []model.Tile {
	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	out := make([]model.Tile, 0, len(hand))
	for _, t := range hand {
		if _, ok := drop[t.ID]; !ok {
			out = append(out, t)
		}
	}
	return out
}
