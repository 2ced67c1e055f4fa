package server

import (
	"context"
	"errors"

	"github.com/trailworks/cluehunt/internal/hunt"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence surface for teams, clues, the progress ledger,
// and the config key/value table.
type Store interface {
	CreateTeam(ctx context.Context, name, token string) (hunt.Team, error)
	TeamByID(ctx context.Context, id int64) (hunt.Team, error)
	ListTeams(ctx context.Context) ([]hunt.Team, error)
	// CompleteTeam sets completed_at once; later calls are no-ops.
	CompleteTeam(ctx context.Context, teamID int64) error
	// ResetGame clears all teams and progress in one transaction. Clues
	// are untouched.
	ResetGame(ctx context.Context) error

	ListClues(ctx context.Context) ([]hunt.Clue, error)
	ClueByID(ctx context.Context, id int64) (hunt.Clue, error)
	ClueBySlug(ctx context.Context, slug string) (hunt.Clue, error)
	CreateClue(ctx context.Context, c hunt.Clue) (hunt.Clue, error)
	UpdateClue(ctx context.Context, c hunt.Clue) (hunt.Clue, error)
	DeleteClue(ctx context.Context, id int64) error
	ListSlugs(ctx context.Context) (map[string]bool, error)

	// GetOrCreateProgress returns the ledger entry for the pair, creating
	// it on first touch. At most one entry ever exists per pair, also
	// under concurrent first-touch requests.
	GetOrCreateProgress(ctx context.Context, team hunt.Team, clue hunt.Clue) (hunt.Progress, error)
	// MarkSolved sets solved_at once; the first write wins.
	MarkSolved(ctx context.Context, teamID, clueID int64) error
	MarkHintUsed(ctx context.Context, teamID, clueID int64) error
	// MarkSkipped sets the skipped flag and, if the entry is unsolved,
	// also marks it solved (skipping passes the clue for sequencing).
	MarkSkipped(ctx context.Context, teamID, clueID int64) error
	RecordWrongAttempt(ctx context.Context, teamID, clueID int64) error
	ProgressByTeam(ctx context.Context, teamID int64) ([]hunt.Progress, error)
	AllProgress(ctx context.Context) ([]hunt.Progress, error)

	// GetConfig returns "" for missing keys.
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
	AllConfig(ctx context.Context) (map[string]string, error)
	// ReplaceBundle swaps the entire clue set and config in one
	// transaction (delete then insert).
	ReplaceBundle(ctx context.Context, clues []hunt.Clue, config map[string]string) error
}
