package board

import "loa/square"

// Move is a single piece displacement. IsCapture is recomputed from the
// destination contents when the move is applied. Score is assigned by the
// search engine for move selection and ordering; it carries no meaning to the
// rules engine.
type Move struct {
	From, To  square.Square
	IsCapture bool
	Score     int32
}

func (m Move) String() string {
	sep := "-"
	if m.IsCapture {
		sep = "x"
	}
	return m.From.Notation() + sep + m.To.Notation()
}

// Equals compares the squares of two moves, ignoring capture flag and score.
func (m Move) Equals(other Move) bool {
	return m.From == other.From && m.To == other.To
}
