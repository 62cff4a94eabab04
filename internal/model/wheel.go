package model

import "time"

// DefaultWheelRoster is the fixed, ordered roster the wheel game rotates
// through. Order determines turn succession.
func DefaultWheelRoster() []string {
	return []string{"Peepo", "Nachito", "Fer"}
}

// WheelState is the mutable state of one letter-wheel room, persisted as a
// single JSON document. Revealed, ConsonantsUsed and VowelsUsed are
// append-only letter sets.
type WheelState struct {
	Phrase         string         `json:"phrase"`
	Category       string         `json:"category"`
	Roster         []string       `json:"roster"`
	Revealed       []string       `json:"revealed"`
	ConsonantsUsed []string       `json:"consonants_used"`
	VowelsUsed     []string       `json:"vowels_used"`
	Money          map[string]int `json:"money"`
	CurrentPlayer  string         `json:"current_player"`
}

func (s *WheelState) Clone() *WheelState {
	c := *s
	c.Roster = append([]string(nil), s.Roster...)
	c.Revealed = append([]string(nil), s.Revealed...)
	c.ConsonantsUsed = append([]string(nil), s.ConsonantsUsed...)
	c.VowelsUsed = append([]string(nil), s.VowelsUsed...)
	c.Money = make(map[string]int, len(s.Money))
	for p, m := range s.Money {
		c.Money[p] = m
	}
	return &c
}

type WheelGame struct {
	Code      string
	Status    Status
	State     *WheelState
	UpdatedAt time.Time
}

func (g *WheelGame) IsParticipant(player string) bool {
	for _, p := range g.State.Roster {
		if p == player {
			return true
		}
	}
	return false
}
