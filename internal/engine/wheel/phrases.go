package wheel

import (
	"math/rand"
	"strings"
)

// Catalog is the fixed category→phrase pool used when the phrase generator
// is unavailable or returns an unusable phrase.
var Catalog = map[string][]string{
	"BASKETBALL NBA": {
		"LEBRON JAMES LOS ANGELES LAKERS",
		"STEPHEN CURRY GOLDEN STATE",
		"NIKOLA JOKIC DENVER NUGGETS",
	},
	"TRAVELING THROUGH SPAIN": {
		"LA SAGRADA FAMILIA BARCELONA",
		"MUSEO DEL PRADO EN MADRID",
		"LA ALHAMBRA DE GRANADA",
	},
	"ALL ABOUT MR BEAST": {
		"MR BEAST GIVES AWAY MONEY",
		"FEASTABLES CHOCOLATE BAR",
		"LAST TO LEAVE WINS IT",
	},
	"MARVEL MOVIES": {
		"SPIDERMAN NO WAY HOME",
		"AVENGERS ENDGAME THANOS",
		"GUARDIANS OF THE GALAXY",
	},
	"DC COMICS": {
		"THE BATMAN ROBERT PATTINSON",
		"JOKER ARTHUR FLECK",
		"JUSTICE LEAGUE SNYDER CUT",
	},
}

// Generated phrases outside this window are discarded in favor of the
// catalog.
const (
	minPhraseLen = 20
	maxPhraseLen = 30
)

func Categories() []string {
	cats := make([]string, 0, len(Catalog))
	for c := range Catalog {
		cats = append(cats, c)
	}
	return cats
}

// CatalogPhrase picks a random phrase for category, choosing a random
// category when the given one is empty or unknown.
func CatalogPhrase(category string) (phrase, selected string) {
	pool, ok := Catalog[category]
	if !ok {
		cats := Categories()
		category = cats[rand.Intn(len(cats))]
		pool = Catalog[category]
	}
	return pool[rand.Intn(len(pool))], category
}

// UsablePhrase reports whether a generated phrase fits the board.
func UsablePhrase(phrase string) bool {
	return len(phrase) >= minPhraseLen && len(phrase) <= maxPhraseLen
}

// DisplayPhrase renders the board: revealed letters shown, hidden letters as
// underscores, word gaps widened.
func DisplayPhrase(phrase string, revealed []string) string {
	shown := make(map[string]bool, len(revealed))
	for _, l := range revealed {
		shown[strings.ToUpper(l)] = true
	}
	cells := make([]string, 0, len(phrase))
	for _, r := range phrase {
		switch {
		case r == ' ':
			cells = append(cells, "  ")
		case shown[strings.ToUpper(string(r))]:
			cells = append(cells, string(r))
		default:
			cells = append(cells, "_")
		}
	}
	return strings.Join(cells, " ")
}

// IsComplete reports whether every distinct non-space letter of the phrase
// has been revealed.
func IsComplete(phrase string, revealed []string) bool {
	shown := make(map[string]bool, len(revealed))
	for _, l := range revealed {
		shown[strings.ToUpper(l)] = true
	}
	for _, r := range phrase {
		if r == ' ' {
			continue
		}
		if !shown[strings.ToUpper(string(r))] {
			return false
		}
	}
	return true
}

// Normalize collapses runs of whitespace and uppercases, so solve attempts
// compare on content rather than spacing.
func Normalize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// distinctLetters lists every non-space letter of the phrase once, in order
// of first appearance.
func distinctLetters(phrase string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range phrase {
		if r == ' ' {
			continue
		}
		l := strings.ToUpper(string(r))
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

func isVowel(letter string) bool {
	return strings.Contains("AEIOU", letter)
}

func containsLetter(set []string, letter string) bool {
	for _, l := range set {
		if l == letter {
			return true
		}
	}
	return false
}
