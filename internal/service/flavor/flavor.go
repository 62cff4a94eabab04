// Package flavor decorates move outcomes with generated text. Generation is
// best-effort: any failure falls back to a fixed message pool and is never
// surfaced to the move itself.
package flavor

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/IRaudaS/games-backend/internal/engine/wheel"
)

// Generator is the external text-generation capability.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// InitialTip opens every rummy game before the first meld lands.
const InitialTip = "Let the match begin!"

var backupTips = []string{
	"A saved joker is a promise to the rest of the game.",
	"Was that move as bright as it looked from here?",
	"From one side of the table to the other, what a play!",
	"Remember, in rummy patience is everything.",
	"A move worthy of the table's favorite player.",
}

type Service struct {
	generator Generator
	logger    *slog.Logger
}

type ServiceOption func(*Service)

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(generator Generator, opts ...ServiceOption) *Service {
	s := &Service{
		generator: generator,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MeldTip celebrates a player's qualifying opening meld. Never fails.
func (s *Service) MeldTip(ctx context.Context, player string) string {
	prompt := fmt.Sprintf(
		"Act as a playful commentator for a tile rummy game. The player named %q just placed their first qualifying meld. Reply with a single short, playful message celebrating the moment.",
		player,
	)
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("tip generation failed, using backup pool", slog.String("error", err.Error()))
		return backupTips[rand.Intn(len(backupTips))]
	}
	return strings.ReplaceAll(strings.TrimSpace(text), `"`, "")
}

// Phrase produces an uppercase puzzle phrase for the given category, falling
// back to the fixed catalog when generation fails or the result does not fit
// the board. Never fails.
func (s *Service) Phrase(ctx context.Context, category string) (phrase, selected string) {
	fallback, selected := wheel.CatalogPhrase(category)

	prompt := fmt.Sprintf(
		"Generate a phrase for a wheel-of-fortune style game, category %q. The phrase must be 20 to 30 characters long including spaces and understandable by teenagers. Reply with only the phrase, in uppercase.",
		selected,
	)
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("phrase generation failed, using catalog", slog.String("error", err.Error()), slog.String("category", selected))
		return fallback, selected
	}

	phrase = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(text), `"`, ""))
	if !wheel.UsablePhrase(phrase) {
		s.logger.Warn("generated phrase does not fit the board, using catalog", slog.String("phrase", phrase))
		return fallback, selected
	}
	return phrase, selected
}
