// Package turn holds the turn-order primitives shared by both game engines:
// an ordered roster with a cyclic successor, used by every turn-passing
// branch instead of ad hoc equality checks.
package turn

// Roster is a fixed, ordered list of player names.
type Roster []string

// Next returns the cyclic successor of current. If current is not on the
// roster the first player is returned.
func (r Roster) Next(current string) string {
	if len(r) == 0 {
		return ""
	}
	for i, p := range r {
		if p == current {
			return r[(i+1)%len(r)]
		}
	}
	return r[0]
}

func (r Roster) Contains(player string) bool {
	for _, p := range r {
		if p == player {
			return true
		}
	}
	return false
}
