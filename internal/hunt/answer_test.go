package hunt

import "testing"

func TestParseAnswerSpecTap(t *testing.T) {
	spec := ParseAnswerSpec(AnswerTap, "")
	if !spec.Check("") {
		t.Error("tap: empty submission should solve")
	}
	if !spec.Check("anything") {
		t.Error("tap: any submission should solve")
	}
	if spec.CountsWrong("nope") {
		t.Error("tap: nothing counts as a wrong attempt")
	}
}

func TestParseAnswerSpecText(t *testing.T) {
	spec := ParseAnswerSpec(AnswerText, "Lighthouse, old mill ,FOUNTAIN")

	for _, good := range []string{"lighthouse", "  Lighthouse ", "OLD MILL", "fountain"} {
		if !spec.Check(good) {
			t.Errorf("text: %q should be accepted", good)
		}
	}
	for _, bad := range []string{"", "mill", "light house"} {
		if spec.Check(bad) {
			t.Errorf("text: %q should be rejected", bad)
		}
	}
	if spec.CountsWrong("mill") {
		t.Error("text: wrong attempts are never counted for text clues")
	}
}

func TestParseAnswerSpecChoice(t *testing.T) {
	spec := ParseAnswerSpec(AnswerChoice, `["Tower Bridge", "*London Bridge", "Millennium Bridge"]`)

	if len(spec.Options) != 3 {
		t.Fatalf("expected 3 options, got %d: %v", len(spec.Options), spec.Options)
	}
	for _, opt := range spec.Options {
		if opt[0] == '*' {
			t.Errorf("display option %q still carries the correct marker", opt)
		}
	}

	if !spec.Check("London Bridge") {
		t.Error("marked option should be correct")
	}
	if !spec.Check(" london bridge ") {
		t.Error("matching is case-insensitive and trimmed")
	}
	if spec.Check("Tower Bridge") {
		t.Error("unmarked option should be wrong")
	}

	if !spec.CountsWrong("Tower Bridge") {
		t.Error("wrong non-empty choice submission should count")
	}
	if spec.CountsWrong("") {
		t.Error("empty submission never counts as a wrong attempt")
	}
	if spec.CountsWrong("London Bridge") {
		t.Error("correct submission never counts as a wrong attempt")
	}
}

func TestParseAnswerSpecChoiceNoMarkedOption(t *testing.T) {
	// A plain list of strings still has a right answer: the first option.
	spec := ParseAnswerSpec(AnswerChoice, `["North Gate", "South Gate"]`)
	if !spec.Check("North Gate") {
		t.Error("first option should be correct when none is marked")
	}
	if spec.Check("South Gate") {
		t.Error("second option should be wrong")
	}
}

func TestParseAnswerSpecChoiceMalformed(t *testing.T) {
	for _, payload := range []string{"", "not json", `{"options": []}`, `[1, 2, 3]`} {
		spec := ParseAnswerSpec(AnswerChoice, payload)
		if len(spec.Options) != 0 {
			t.Errorf("payload %q: expected zero options, got %v", payload, spec.Options)
		}
		if spec.Check("anything") {
			t.Errorf("payload %q: nothing should be correct", payload)
		}
	}
}
