package hunt

import (
	"encoding/json"
	"strings"
)

// AnswerSpec is the parsed form of a clue's answer payload, decided once at
// parse time rather than re-interpreted at each submission.
//
//   - tap: no payload; any submission solves the clue.
//   - text: comma-separated accepted strings, matched case-insensitively
//     after trimming.
//   - choice: JSON array of option strings; a leading "*" marks a correct
//     option and is stripped for display. Malformed payloads degrade to
//     zero options, so every submission is simply wrong.
type AnswerSpec struct {
	Kind     AnswerKind
	Accepted map[string]bool // text
	Options  []string        // choice, display order
	Correct  map[string]bool // choice
}

// ParseAnswerSpec interprets a raw answer payload for the given kind.
// It never fails: malformed payloads yield a spec that accepts nothing.
func ParseAnswerSpec(kind AnswerKind, payload string) AnswerSpec {
	spec := AnswerSpec{Kind: kind}

	switch kind {
	case AnswerText:
		spec.Accepted = make(map[string]bool)
		for _, part := range strings.Split(payload, ",") {
			if v := normalizeAnswer(part); v != "" {
				spec.Accepted[v] = true
			}
		}
	case AnswerChoice:
		spec.Correct = make(map[string]bool)
		var raw []string
		if err := json.Unmarshal([]byte(payload), &raw); err != nil {
			return spec
		}
		for _, opt := range raw {
			display, marked := strings.CutPrefix(opt, "*")
			display = strings.TrimSpace(display)
			if display == "" {
				continue
			}
			spec.Options = append(spec.Options, display)
			if marked {
				spec.Correct[normalizeAnswer(display)] = true
			}
		}
		// An array with no marked option treats the first as correct, so
		// an authored list of plain strings still has a right answer.
		if len(spec.Correct) == 0 && len(spec.Options) > 0 {
			spec.Correct[normalizeAnswer(spec.Options[0])] = true
		}
	}

	return spec
}

// Check reports whether the submitted answer solves the clue.
func (s AnswerSpec) Check(submitted string) bool {
	switch s.Kind {
	case AnswerTap:
		return true
	case AnswerText:
		return s.Accepted[normalizeAnswer(submitted)]
	case AnswerChoice:
		return s.Correct[normalizeAnswer(submitted)]
	}
	return false
}

// CountsWrong reports whether an incorrect submission should increment the
// wrong-attempt counter: only non-empty multiple-choice submissions do.
func (s AnswerSpec) CountsWrong(submitted string) bool {
	return s.Kind == AnswerChoice &&
		strings.TrimSpace(submitted) != "" &&
		!s.Check(submitted)
}

func normalizeAnswer(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
