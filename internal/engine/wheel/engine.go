// Package wheel implements the letter-wheel move engine: the reward wheel,
// consonant/vowel-purchase economics, solve detection and turn rotation over
// a fixed roster.
package wheel

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/IRaudaS/games-backend/internal/engine/turn"
	"github.com/IRaudaS/games-backend/internal/model"
)

// VowelCost is debited on every vowel purchase, hit or miss.
const VowelCost = 250

var (
	ErrLetterUsed        = errors.New("letter already used")
	ErrNotAConsonant     = errors.New("expected a single consonant")
	ErrNotAVowel         = errors.New("expected a single vowel")
	ErrInsufficientFunds = errors.New("not enough money to buy a vowel")
)

type Penalty = string

const (
	// PenaltyBankrupt halves the spinning player's money.
	PenaltyBankrupt Penalty = "BANKRUPT"
	PenaltyLoseTurn Penalty = "LOSE_TURN"
)

// SpinResult is one slot of the reward wheel: either a cash value for a
// follow-up consonant guess, or a penalty that resolves the turn on its own.
type SpinResult struct {
	Value   int     `json:"value,omitempty"`
	Penalty Penalty `json:"penalty,omitempty"`
}

var rewardWheel = []SpinResult{
	{Value: 500}, {Value: 800}, {Value: 1000}, {Value: 1500}, {Value: 2000}, {Value: 2500},
	{Penalty: PenaltyBankrupt}, {Penalty: PenaltyLoseTurn},
	{Value: 500}, {Value: 1000}, {Value: 1500}, {Value: 2000},
}

// Spin selects one wheel slot uniformly.
func Spin() SpinResult {
	return rewardWheel[rand.Intn(len(rewardWheel))]
}

// Outcome describes a successfully applied wheel move.
type Outcome struct {
	Message  string
	Spin     *SpinResult
	Finished bool
	Winner   string
}

// NewState starts a game over the fixed roster with the given phrase. The
// first roster entry opens play and everyone starts broke.
func NewState(phrase, category string, roster []string) *model.WheelState {
	money := make(map[string]int, len(roster))
	for _, p := range roster {
		money[p] = 0
	}
	return &model.WheelState{
		Phrase:         strings.ToUpper(phrase),
		Category:       category,
		Roster:         roster,
		Revealed:       []string{},
		ConsonantsUsed: []string{},
		VowelsUsed:     []string{},
		Money:          money,
		CurrentPlayer:  roster[0],
	}
}

// ApplySpin spins the wheel for player. A cash slot keeps the turn open for
// a consonant guess at that value; either penalty resolves the turn
// immediately.
func ApplySpin(g *model.WheelGame, player string) (Outcome, error) {
	spin := Spin()
	switch spin.Penalty {
	case PenaltyBankrupt:
		g.State.Money[player] /= 2
		passTurn(g)
		return Outcome{
			Message: fmt.Sprintf("%s went bankrupt and lost half their money. Now playing: %s", player, g.State.CurrentPlayer),
			Spin:    &spin,
		}, nil
	case PenaltyLoseTurn:
		passTurn(g)
		return Outcome{
			Message: fmt.Sprintf("%s lost the turn. Now playing: %s", player, g.State.CurrentPlayer),
			Spin:    &spin,
		}, nil
	}
	return Outcome{
		Message: fmt.Sprintf("%s spun %d. Guess a consonant!", player, spin.Value),
		Spin:    &spin,
	}, nil
}

// GuessConsonant reveals every occurrence of letter and credits the player
// value per occurrence. A repeated letter is rejected before any billing; a
// miss passes the turn.
func GuessConsonant(g *model.WheelGame, player, letter string, value int) (Outcome, error) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || letter < "A" || letter > "Z" || isVowel(letter) {
		return Outcome{}, ErrNotAConsonant
	}
	if containsLetter(g.State.ConsonantsUsed, letter) {
		return Outcome{}, ErrLetterUsed
	}

	g.State.ConsonantsUsed = append(g.State.ConsonantsUsed, letter)
	count := strings.Count(g.State.Phrase, letter)
	if count == 0 {
		passTurn(g)
		return Outcome{
			Message: fmt.Sprintf("No %s in the phrase. Now playing: %s", letter, g.State.CurrentPlayer),
		}, nil
	}

	g.State.Revealed = append(g.State.Revealed, letter)
	earned := value * count
	g.State.Money[player] += earned
	if IsComplete(g.State.Phrase, g.State.Revealed) {
		return finish(g, player, fmt.Sprintf("%s revealed the last letter and wins with %d!", player, g.State.Money[player])), nil
	}
	return Outcome{
		Message: fmt.Sprintf("%s found %d x %s and earned %d", player, count, letter, earned),
	}, nil
}

// BuyVowel debits the fixed cost unconditionally; the cost buys the attempt,
// not the hit. Insufficient balance and repeats reject without debiting.
func BuyVowel(g *model.WheelGame, player, letter string) (Outcome, error) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || !isVowel(letter) {
		return Outcome{}, ErrNotAVowel
	}
	if containsLetter(g.State.VowelsUsed, letter) {
		return Outcome{}, ErrLetterUsed
	}
	if g.State.Money[player] < VowelCost {
		return Outcome{}, ErrInsufficientFunds
	}

	g.State.Money[player] -= VowelCost
	g.State.VowelsUsed = append(g.State.VowelsUsed, letter)
	count := strings.Count(g.State.Phrase, letter)
	if count == 0 {
		passTurn(g)
		return Outcome{
			Message: fmt.Sprintf("No %s in the phrase. Now playing: %s", letter, g.State.CurrentPlayer),
		}, nil
	}

	g.State.Revealed = append(g.State.Revealed, letter)
	if IsComplete(g.State.Phrase, g.State.Revealed) {
		return finish(g, player, fmt.Sprintf("%s bought the last letter and wins with %d!", player, g.State.Money[player])), nil
	}
	return Outcome{
		Message: fmt.Sprintf("%s bought %s and revealed %d occurrence(s)", player, letter, count),
	}, nil
}

// SolvePhrase compares the attempt against the target with whitespace
// collapsed and case ignored. A match ends the game; a mismatch only passes
// the turn.
func SolvePhrase(g *model.WheelGame, player, attempt string) (Outcome, error) {
	if Normalize(attempt) != Normalize(g.State.Phrase) {
		passTurn(g)
		return Outcome{
			Message: fmt.Sprintf("Wrong guess. Now playing: %s", g.State.CurrentPlayer),
		}, nil
	}
	return finish(g, player, fmt.Sprintf("%s solved the phrase and wins with %d!", player, g.State.Money[player])), nil
}

func passTurn(g *model.WheelGame) {
	g.State.CurrentPlayer = turn.Roster(g.State.Roster).Next(g.State.CurrentPlayer)
}

func finish(g *model.WheelGame, winner, message string) Outcome {
	g.State.Revealed = distinctLetters(g.State.Phrase)
	g.Status = model.StatusFinished
	return Outcome{Message: message, Finished: true, Winner: winner}
}
