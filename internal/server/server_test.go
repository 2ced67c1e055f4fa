package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/trailworks/cluehunt/internal/database"
	"github.com/trailworks/cluehunt/internal/hunt"
	"github.com/trailworks/cluehunt/internal/migrations"
)

const testAdminSecret = "letmein-admin"

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return NewSQLiteStore(db)
}

func newTestServer(t *testing.T) (*chi.Mux, *SQLiteStore) {
	t.Helper()
	store := newTestStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	addRoutes(r, logger, store, store.db, testAdminSecret)
	return r, store
}

// seedTrail inserts a three-clue trail: a text clue, a choice clue, and a
// final tap clue.
func seedTrail(t *testing.T, store *SQLiteStore) []hunt.Clue {
	t.Helper()
	ctx := context.Background()

	trail := []hunt.Clue{
		{
			Title:         "The Old Lamp",
			BodyVariantA:  "Find the green lamp by the gate.",
			BodyVariantB:  "Find the green lamp by the pond.",
			Kind:          hunt.AnswerText,
			AnswerPayload: "lamp post, lamppost",
			HintText:      "It lights up at dusk.",
			Slug:          "amber-lantern-0001",
			OrderIndex:    1,
		},
		{
			Title:         "Pick the Door",
			BodyVariantA:  "Three doors. Which one is painted?",
			BodyVariantB:  "Three doors. One stands out.",
			Kind:          hunt.AnswerChoice,
			AnswerPayload: `["red", "*blue", "green"]`,
			HintText:      "The sky knows.",
			Slug:          "azure-harbor-0002",
			OrderIndex:    2,
		},
		{
			Title:        "The Finish",
			BodyVariantA: "You made it. Tap to finish.",
			BodyVariantB: "You made it. Tap to finish.",
			Kind:         hunt.AnswerTap,
			HintText:     "Just tap.",
			Slug:         "golden-sunrise-0003",
			OrderIndex:   3,
			Final:        true,
		},
	}

	out := make([]hunt.Clue, 0, len(trail))
	for _, c := range trail {
		created, err := store.CreateClue(ctx, c)
		if err != nil {
			t.Fatalf("seed clue %q: %v", c.Title, err)
		}
		out = append(out, created)
	}
	return out
}

func startGame(t *testing.T, store *SQLiteStore) {
	t.Helper()
	if err := store.SetConfig(context.Background(), hunt.KeyGameStartedAt, nowUTC()); err != nil {
		t.Fatalf("start game: %v", err)
	}
}
