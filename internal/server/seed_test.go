package server

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestSeedClues(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := SeedClues(ctx, logger, store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	clues, err := store.ListClues(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clues) != 6 {
		t.Fatalf("seeded clues = %d, want 6", len(clues))
	}
	for i, c := range clues {
		if c.OrderIndex != i+1 {
			t.Errorf("clue %d order = %d, want %d", i, c.OrderIndex, i+1)
		}
		if c.Slug == "" {
			t.Errorf("clue %d has no slug", i)
		}
		if c.Final != (i == 5) {
			t.Errorf("clue %d final = %v", i, c.Final)
		}
	}

	// A second run leaves the set alone.
	if err := SeedClues(ctx, logger, store); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	again, _ := store.ListClues(ctx)
	if len(again) != 6 {
		t.Errorf("clues after second seed = %d, want 6", len(again))
	}
}
