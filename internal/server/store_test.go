package server

import (
	"context"
	"sync"
	"testing"

	"github.com/trailworks/cluehunt/internal/hunt"
)

func TestGetOrCreateProgressIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	clues := seedTrail(t, store)

	team, err := store.CreateTeam(ctx, "Foxes", newToken())
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	first, err := store.GetOrCreateProgress(ctx, team, clues[0])
	if err != nil {
		t.Fatalf("first touch: %v", err)
	}
	second, err := store.GetOrCreateProgress(ctx, team, clues[0])
	if err != nil {
		t.Fatalf("second touch: %v", err)
	}

	if first.Variant != second.Variant {
		t.Errorf("variant changed between touches: %q then %q", first.Variant, second.Variant)
	}
	if !first.StartedAt.Equal(second.StartedAt) {
		t.Errorf("started_at changed between touches: %v then %v", first.StartedAt, second.StartedAt)
	}
	if first.Variant != hunt.AssignVariant(team.Token, clues[0].ID) {
		t.Errorf("stored variant %q does not match assignment", first.Variant)
	}

	entries, err := store.ProgressByTeam(ctx, team.ID)
	if err != nil {
		t.Fatalf("list progress: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(entries))
	}
}

func TestGetOrCreateProgressConcurrent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	clues := seedTrail(t, store)

	team, err := store.CreateTeam(ctx, "Owls", newToken())
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.GetOrCreateProgress(ctx, team, clues[0]); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent touch: %v", err)
	}

	entries, err := store.ProgressByTeam(ctx, team.ID)
	if err != nil {
		t.Fatalf("list progress: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 ledger entry after concurrent touches, got %d", len(entries))
	}
}

func TestMarkSolvedFirstWriteWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	clues := seedTrail(t, store)

	team, _ := store.CreateTeam(ctx, "Crows", newToken())
	if _, err := store.GetOrCreateProgress(ctx, team, clues[0]); err != nil {
		t.Fatalf("touch: %v", err)
	}

	if err := store.MarkSolved(ctx, team.ID, clues[0].ID); err != nil {
		t.Fatalf("first solve: %v", err)
	}
	first, _ := store.ProgressByTeam(ctx, team.ID)

	if err := store.MarkSolved(ctx, team.ID, clues[0].ID); err != nil {
		t.Fatalf("second solve: %v", err)
	}
	second, _ := store.ProgressByTeam(ctx, team.ID)

	if first[0].SolvedAt == nil || second[0].SolvedAt == nil {
		t.Fatal("expected solved_at to be set")
	}
	if !first[0].SolvedAt.Equal(*second[0].SolvedAt) {
		t.Errorf("solved_at moved on re-solve: %v then %v", first[0].SolvedAt, second[0].SolvedAt)
	}
}

func TestMarkSkippedKeepsSolvedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	clues := seedTrail(t, store)

	team, _ := store.CreateTeam(ctx, "Bats", newToken())
	store.GetOrCreateProgress(ctx, team, clues[0])

	if err := store.MarkSolved(ctx, team.ID, clues[0].ID); err != nil {
		t.Fatalf("solve: %v", err)
	}
	solved, _ := store.ProgressByTeam(ctx, team.ID)

	if err := store.MarkSkipped(ctx, team.ID, clues[0].ID); err != nil {
		t.Fatalf("skip: %v", err)
	}
	after, _ := store.ProgressByTeam(ctx, team.ID)

	if !after[0].Skipped {
		t.Error("expected skipped flag")
	}
	if !after[0].SolvedAt.Equal(*solved[0].SolvedAt) {
		t.Errorf("skip moved solved_at: %v then %v", solved[0].SolvedAt, after[0].SolvedAt)
	}
}

func TestCompleteTeamOnce(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	team, _ := store.CreateTeam(ctx, "Herons", newToken())

	if err := store.CompleteTeam(ctx, team.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	first, _ := store.TeamByID(ctx, team.ID)

	if err := store.CompleteTeam(ctx, team.ID); err != nil {
		t.Fatalf("second complete: %v", err)
	}
	second, _ := store.TeamByID(ctx, team.ID)

	if first.CompletedAt == nil || second.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}
	if !first.CompletedAt.Equal(*second.CompletedAt) {
		t.Errorf("completed_at moved on re-complete: %v then %v", first.CompletedAt, second.CompletedAt)
	}
}

func TestResetGameKeepsClues(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	clues := seedTrail(t, store)

	team, _ := store.CreateTeam(ctx, "Moles", newToken())
	store.GetOrCreateProgress(ctx, team, clues[0])

	if err := store.ResetGame(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	teams, _ := store.ListTeams(ctx)
	if len(teams) != 0 {
		t.Errorf("expected no teams after reset, got %d", len(teams))
	}
	entries, _ := store.AllProgress(ctx)
	if len(entries) != 0 {
		t.Errorf("expected no progress after reset, got %d", len(entries))
	}
	kept, _ := store.ListClues(ctx)
	if len(kept) != len(clues) {
		t.Errorf("expected %d clues after reset, got %d", len(clues), len(kept))
	}
}

func TestDeleteClueCascadesProgress(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	clues := seedTrail(t, store)

	team, _ := store.CreateTeam(ctx, "Stoats", newToken())
	store.GetOrCreateProgress(ctx, team, clues[0])
	store.GetOrCreateProgress(ctx, team, clues[1])

	if err := store.DeleteClue(ctx, clues[0].ID); err != nil {
		t.Fatalf("delete clue: %v", err)
	}

	entries, _ := store.ProgressByTeam(ctx, team.ID)
	if len(entries) != 1 {
		t.Fatalf("expected 1 surviving entry, got %d", len(entries))
	}
	if entries[0].ClueID != clues[1].ID {
		t.Errorf("surviving entry is for clue %d, want %d", entries[0].ClueID, clues[1].ID)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	got, err := store.GetConfig(ctx, "missing_key")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != "" {
		t.Errorf("missing key = %q, want empty", got)
	}

	if err := store.SetConfig(ctx, hunt.KeyPointsSolve, "25"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.SetConfig(ctx, hunt.KeyPointsSolve, "30"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, _ = store.GetConfig(ctx, hunt.KeyPointsSolve)
	if got != "30" {
		t.Errorf("value = %q, want 30", got)
	}
}

func TestEmptySlugsDoNotCollide(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		_, err := store.CreateClue(ctx, hunt.Clue{
			Title:      "Untagged",
			Kind:       hunt.AnswerTap,
			OrderIndex: i,
		})
		if err != nil {
			t.Fatalf("create clue %d without slug: %v", i, err)
		}
	}

	clues, _ := store.ListClues(ctx)
	if len(clues) != 2 {
		t.Fatalf("expected 2 clues, got %d", len(clues))
	}
}

func TestReplaceBundleKeepsExplicitIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	clues := seedTrail(t, store)

	replacement := []hunt.Clue{
		{ID: clues[0].ID, Title: "Kept", Kind: hunt.AnswerTap, Slug: "kept-slug-0001", OrderIndex: 1, Final: true},
		{Title: "Fresh", Kind: hunt.AnswerTap, Slug: "fresh-slug-0002", OrderIndex: 2},
	}
	cfg := map[string]string{hunt.KeyPointsSolve: "12"}

	if err := store.ReplaceBundle(ctx, replacement, cfg); err != nil {
		t.Fatalf("replace bundle: %v", err)
	}

	kept, err := store.ClueByID(ctx, clues[0].ID)
	if err != nil {
		t.Fatalf("kept clue: %v", err)
	}
	if kept.Title != "Kept" {
		t.Errorf("kept clue title = %q, want Kept", kept.Title)
	}

	all, _ := store.ListClues(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 clues after import, got %d", len(all))
	}
	got, _ := store.GetConfig(ctx, hunt.KeyPointsSolve)
	if got != "12" {
		t.Errorf("config after import = %q, want 12", got)
	}
}
