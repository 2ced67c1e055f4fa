package hunt

import "testing"

func seqClues() []Clue {
	return []Clue{
		{ID: 10, OrderIndex: 1},
		{ID: 20, OrderIndex: 2},
		{ID: 30, OrderIndex: 5, Final: true},
		{ID: 25, OrderIndex: 3},
	}
}

func TestFirstClue(t *testing.T) {
	if got := FirstClue(nil); got != nil {
		t.Errorf("empty set: first = %+v, want nil", got)
	}
	first := FirstClue(seqClues())
	if first == nil || first.ID != 10 {
		t.Errorf("first = %+v, want clue 10", first)
	}
}

func TestNextClue(t *testing.T) {
	clues := seqClues()

	next := NextClue(clues, clues[1]) // order 2
	if next == nil || next.ID != 25 {
		t.Errorf("next after order 2 = %+v, want clue 25 (order 3)", next)
	}

	if got := NextClue(clues, clues[2]); got != nil { // order 5, last
		t.Errorf("next after last = %+v, want nil", got)
	}
}

func TestTerminal(t *testing.T) {
	clues := seqClues()

	if Terminal(clues, clues[0]) {
		t.Error("clue 10 has successors and is not final")
	}
	if !Terminal(clues, clues[2]) {
		t.Error("final-marked clue is terminal")
	}

	// A clue with no successor is terminal even without the final flag.
	noFinal := []Clue{{ID: 1, OrderIndex: 1}, {ID: 2, OrderIndex: 2}}
	if !Terminal(noFinal, noFinal[1]) {
		t.Error("last clue by order is terminal without the flag")
	}

	// Multiple final-marked clues are tolerated: each is terminal.
	multi := []Clue{
		{ID: 1, OrderIndex: 1, Final: true},
		{ID: 2, OrderIndex: 2, Final: true},
	}
	if !Terminal(multi, multi[0]) || !Terminal(multi, multi[1]) {
		t.Error("every final-marked clue is terminal")
	}
}
