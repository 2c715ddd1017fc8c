package board

// Piece is the contents of a single square.
type Piece uint8

const (
	PieceEmpty Piece = iota
	PieceWhite
	PieceBlack
)

func (p Piece) String() string {
	switch p {
	case PieceWhite:
		return "White"
	case PieceBlack:
		return "Black"
	default:
		return "Empty"
	}
}

// Opposite returns the opposing color. The empty sentinel has no opposite.
func (p Piece) Opposite() Piece {
	switch p {
	case PieceWhite:
		return PieceBlack
	case PieceBlack:
		return PieceWhite
	default:
		return PieceEmpty
	}
}

// Symbol returns the one-letter notation symbol for the piece.
func (p Piece) Symbol() string {
	switch p {
	case PieceWhite:
		return "w"
	case PieceBlack:
		return "b"
	default:
		return "-"
	}
}

// SymbolUnicode returns the disc symbol used for terminal drawing.
func (p Piece) SymbolUnicode() string {
	switch p {
	case PieceWhite:
		return "●"
	case PieceBlack:
		return "○"
	default:
		return " "
	}
}

// Result is the outcome of a game, if any.
type Result uint8

const (
	// ResultUnknown is when the game is still in progress.
	ResultUnknown Result = iota

	// ResultWhiteWins is when all White pieces are contiguous.
	ResultWhiteWins

	// ResultBlackWins is when all Black pieces are contiguous.
	ResultBlackWins

	// ResultDraw is when the move limit was reached with no winner.
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultWhiteWins:
		return "White wins"
	case ResultBlackWins:
		return "Black wins"
	case ResultDraw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Winner returns the winning color, or the empty sentinel for a draw or an
// unfinished game.
func (r Result) Winner() Piece {
	switch r {
	case ResultWhiteWins:
		return PieceWhite
	case ResultBlackWins:
		return PieceBlack
	default:
		return PieceEmpty
	}
}

func resultOf(p Piece) Result {
	switch p {
	case PieceWhite:
		return ResultWhiteWins
	case PieceBlack:
		return ResultBlackWins
	default:
		return ResultUnknown
	}
}
