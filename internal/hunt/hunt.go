// Package hunt defines the core domain types and game rules: variant
// assignment, answer checking, scoring, clue sequencing, and leaderboard
// ranking. It has zero external dependencies — everything here is pure Go.
package hunt

import "time"

// Variant is one of the two content forks of a clue, fixed per team.
type Variant string

const (
	VariantA Variant = "A"
	VariantB Variant = "B"
)

// AnswerKind selects how a clue is answered.
type AnswerKind string

const (
	AnswerTap    AnswerKind = "tap"
	AnswerText   AnswerKind = "text"
	AnswerChoice AnswerKind = "choice"
)

// ValidKind reports whether k is a known answer kind.
func ValidKind(k AnswerKind) bool {
	switch k {
	case AnswerTap, AnswerText, AnswerChoice:
		return true
	}
	return false
}

type Team struct {
	ID          int64
	Name        string
	Token       string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type Clue struct {
	ID            int64
	Title         string
	BodyVariantA  string
	BodyVariantB  string
	Kind          AnswerKind
	AnswerPayload string
	HintText      string
	Slug          string
	OrderIndex    int
	Final         bool
}

// Body returns the clue body for the given variant.
func (c Clue) Body(v Variant) string {
	if v == VariantB {
		return c.BodyVariantB
	}
	return c.BodyVariantA
}

// Progress records one team's encounter with one clue. At most one entry
// exists per (team, clue) pair.
type Progress struct {
	TeamID        int64
	ClueID        int64
	Variant       Variant
	StartedAt     time.Time
	SolvedAt      *time.Time
	UsedHint      bool
	Skipped       bool
	WrongAttempts int
}

// Config keys shared between the settings surface and the scoring engine.
const (
	KeyGameStartedAt     = "game_started_at"
	KeyPointsSolve       = "points_solve"
	KeyPenaltyHint       = "penalty_hint"
	KeyPenaltySkip       = "penalty_skip"
	KeyTimePenaltyWindow = "time_penalty_window_seconds"
	KeyTimePenaltyPoints = "time_penalty_points"
	KeyHintDelay         = "hint_delay_seconds"
)
