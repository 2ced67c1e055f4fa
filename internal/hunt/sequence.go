package hunt

// FirstClue returns the clue with the minimum order index, or nil when no
// clues exist.
func FirstClue(clues []Clue) *Clue {
	var first *Clue
	for i := range clues {
		if first == nil || clues[i].OrderIndex < first.OrderIndex {
			first = &clues[i]
		}
	}
	return first
}

// NextClue returns the clue with the smallest order index strictly greater
// than current's, or nil when current is the last in sequence.
func NextClue(clues []Clue, current Clue) *Clue {
	var next *Clue
	for i := range clues {
		if clues[i].OrderIndex <= current.OrderIndex {
			continue
		}
		if next == nil || clues[i].OrderIndex < next.OrderIndex {
			next = &clues[i]
		}
	}
	return next
}

// Terminal reports whether passing c ends the hunt: either the clue is
// explicitly marked final or it has no successor by order index. Zero or
// multiple final-marked clues are tolerated.
func Terminal(clues []Clue, c Clue) bool {
	return c.Final || NextClue(clues, c) == nil
}
