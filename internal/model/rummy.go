package model

import (
	"sync/atomic"
	"time"
)

// RummyState is the mutable, server-authoritative state of one rummy room.
// It is persisted as a single JSON document.
type RummyState struct {
	Pile             []Tile   `json:"pile"`
	Player1Hand      []Tile   `json:"player1_hand"`
	Player2Hand      []Tile   `json:"player2_hand"`
	TableMelds       [][]Tile `json:"table_melds"`
	Player1Score     int      `json:"player1_score"`
	Player2Score     int      `json:"player2_score"`
	Player1Opened    bool     `json:"player1_opened"`
	Player2Opened    bool     `json:"player2_opened"`
	MeldPoints       int      `json:"meld_points"`
	CurrentPlayer    string   `json:"current_player"`
	HasDrawnThisTurn bool     `json:"has_drawn_this_turn"`
	CurrentTip       string   `json:"current_tip"`
}

// Clone deep-copies the state so a move can be applied to a draft and
// swapped in only after persistence succeeds.
func (s *RummyState) Clone() *RummyState {
	c := *s
	c.Pile = append([]Tile(nil), s.Pile...)
	c.Player1Hand = append([]Tile(nil), s.Player1Hand...)
	c.Player2Hand = append([]Tile(nil), s.Player2Hand...)
	c.TableMelds = make([][]Tile, len(s.TableMelds))
	for i, meld := range s.TableMelds {
		c.TableMelds[i] = append([]Tile(nil), meld...)
	}
	return &c
}

type RummyGame struct {
	Code      string
	Player1   string
	Player2   string
	Status    Status
	State     *RummyState
	UpdatedAt time.Time

	busy atomic.Bool
}

// TryBeginMove acquires the per-room mutation guard. A second mover sees
// false and must retry later; moves are never queued.
func (g *RummyGame) TryBeginMove() bool {
	return g.busy.CompareAndSwap(false, true)
}

func (g *RummyGame) EndMove() {
	g.busy.Store(false)
}

func (g *RummyGame) IsParticipant(player string) bool {
	return player == g.Player1 || player == g.Player2
}

// HandOf returns the hand owned by player, or nil for a non-participant.
func (g *RummyGame) HandOf(player string) []Tile {
	switch player {
	case g.Player1:
		return g.State.Player1Hand
	case g.Player2:
		return g.State.Player2Hand
	}
	return nil
}
