package rummy

import (
	"sort"

	"github.com/IRaudaS/games-backend/internal/model"
)

// MinMeldSize is the smallest group that can be placed on the table.
const MinMeldSize = 3

// IsValidRun reports whether tiles form a run: all non-joker tiles of one
// color whose values, sorted, are strictly consecutive. Jokers carry no
// positional constraint and are excluded from the consecutiveness check.
func IsValidRun(tiles []model.Tile) bool {
	if len(tiles) < MinMeldSize {
		return false
	}
	nonJokers := withoutJokers(tiles)
	if len(nonJokers) == 0 {
		return false
	}
	color := nonJokers[0].Color
	for _, t := range nonJokers {
		if t.Color != color {
			return false
		}
	}
	numbers := make([]int, len(nonJokers))
	for i, t := range nonJokers {
		numbers[i] = t.Number
	}
	sort.Ints(numbers)
	for i := 1; i < len(numbers); i++ {
		if numbers[i] != numbers[i-1]+1 {
			return false
		}
	}
	return true
}

// IsValidSet reports whether tiles form a set: all non-joker tiles share one
// value and have pairwise-distinct colors.
func IsValidSet(tiles []model.Tile) bool {
	if len(tiles) < MinMeldSize {
		return false
	}
	nonJokers := withoutJokers(tiles)
	if len(nonJokers) == 0 {
		return false
	}
	number := nonJokers[0].Number
	colors := make(map[model.Color]struct{}, len(nonJokers))
	for _, t := range nonJokers {
		if t.Number != number {
			return false
		}
		colors[t.Color] = struct{}{}
	}
	return len(colors) == len(nonJokers)
}

func IsValidMeld(tiles []model.Tile) bool {
	return IsValidRun(tiles) || IsValidSet(tiles)
}

// MeldValue is the point value of a group. Jokers count as zero.
func MeldValue(tiles []model.Tile) int {
	sum := 0
	for _, t := range tiles {
		sum += t.Value()
	}
	return sum
}

func withoutJokers(tiles []model.Tile) []model.Tile {
	out := make([]model.Tile, 0, len(tiles))
	for _, t := range tiles {
		if !t.Joker {
			out = append(out, t)
		}
	}
	return out
}
