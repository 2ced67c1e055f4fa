package hunt

import (
	"strconv"
	"time"
)

// Weights are the scoring parameters, all overridable through config keys.
type Weights struct {
	PointsSolve       int
	PenaltyHint       int
	PenaltySkip       int
	TimePenaltyWindow time.Duration
	TimePenaltyPoints int
	HintDelay         time.Duration
}

// wrongAttemptPenalty is the per-attempt deduction for incorrect
// multiple-choice submissions. Unlike its sibling weights it is not
// configurable.
const wrongAttemptPenalty = 2

// DefaultWeights returns the built-in scoring parameters: +10 per solve,
// -3 per hint, -8 per skip, -1 per full 120 s elapsed.
func DefaultWeights() Weights {
	return Weights{
		PointsSolve:       10,
		PenaltyHint:       3,
		PenaltySkip:       8,
		TimePenaltyWindow: 120 * time.Second,
		TimePenaltyPoints: 1,
		HintDelay:         20 * time.Second,
	}
}

// WeightsFromConfig overlays config values onto the defaults. Missing or
// unparsable values keep their default.
func WeightsFromConfig(cfg map[string]string) Weights {
	w := DefaultWeights()
	if v, ok := parseInt(cfg[KeyPointsSolve]); ok {
		w.PointsSolve = v
	}
	if v, ok := parseInt(cfg[KeyPenaltyHint]); ok {
		w.PenaltyHint = v
	}
	if v, ok := parseInt(cfg[KeyPenaltySkip]); ok {
		w.PenaltySkip = v
	}
	if v, ok := parseInt(cfg[KeyTimePenaltyWindow]); ok && v > 0 {
		w.TimePenaltyWindow = time.Duration(v) * time.Second
	}
	if v, ok := parseInt(cfg[KeyTimePenaltyPoints]); ok {
		w.TimePenaltyPoints = v
	}
	if v, ok := parseInt(cfg[KeyHintDelay]); ok && v >= 0 {
		w.HintDelay = time.Duration(v) * time.Second
	}
	return w
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Score is a team's derived standing: fully recomputable from the
// progress ledger, the clue set, the weights, and the elapsed baseline.
type Score struct {
	Points  int
	Solved  int
	Hints   int
	Skips   int
	Wrong   int
	Elapsed *time.Duration
}

// ComputeScore derives a team's score from its ledger entries. Wrong
// attempts only count for multiple-choice clues; the time penalty applies
// only once the team has completed, measured from baseline and
// floor-divided by the penalty window.
func ComputeScore(team Team, entries []Progress, clues map[int64]Clue, w Weights, baseline time.Time) Score {
	var s Score
	for _, p := range entries {
		if p.SolvedAt != nil {
			s.Solved++
		}
		if p.UsedHint {
			s.Hints++
		}
		if p.Skipped {
			s.Skips++
		}
		if c, ok := clues[p.ClueID]; ok && c.Kind == AnswerChoice {
			s.Wrong += p.WrongAttempts
		}
	}

	s.Points = w.PointsSolve*s.Solved -
		w.PenaltyHint*s.Hints -
		w.PenaltySkip*s.Skips -
		wrongAttemptPenalty*s.Wrong

	if team.CompletedAt != nil {
		elapsed := team.CompletedAt.Sub(baseline)
		s.Elapsed = &elapsed
		if w.TimePenaltyWindow > 0 {
			windows := int(elapsed / w.TimePenaltyWindow)
			s.Points -= w.TimePenaltyPoints * windows
		}
	}

	return s
}
