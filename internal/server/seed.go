package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trailworks/cluehunt/internal/hunt"
)

// SeedClues inserts a six-clue placeholder trail on an empty install so
// the game is playable out of the box. A database with any clues at all
// is left alone.
func SeedClues(ctx context.Context, logger *slog.Logger, store Store) error {
	existing, err := store.ListClues(ctx)
	if err != nil {
		return fmt.Errorf("seed: list clues: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	slugs := make(map[string]bool)
	for i := 1; i <= 6; i++ {
		slug := newSlug(slugs)
		slugs[slug] = true
		clue := hunt.Clue{
			Title:        fmt.Sprintf("Clue %d", i),
			BodyVariantA: fmt.Sprintf("Placeholder for clue %d, route A. Edit me in the admin panel.", i),
			BodyVariantB: fmt.Sprintf("Placeholder for clue %d, route B. Edit me in the admin panel.", i),
			Kind:         hunt.AnswerTap,
			HintText:     fmt.Sprintf("Hint for Clue %d", i),
			Slug:         slug,
			OrderIndex:   i,
			Final:        i == 6,
		}
		if _, err := store.CreateClue(ctx, clue); err != nil {
			return fmt.Errorf("seed: create clue %d: %w", i, err)
		}
	}

	logger.Info("seeded placeholder clues", "count", 6)
	return nil
}
