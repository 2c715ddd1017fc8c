package square

import (
	"errors"
	"fmt"
)

const (
	// Size is the side length of the board the square system supports.
	Size Square = 8

	// TotalSquares is the number of squares on the board.
	TotalSquares = Size * Size
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square designates a single board square using little-endian rank-file
// mapping (a1=0, h1=7, a8=56, h8=63).
type Square int8

// Direction is one of the 8 compass lines a piece may move along.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionN
	DirectionNE
	DirectionE
	DirectionSE
	DirectionS
	DirectionSW
	DirectionW
	DirectionNW
)

var directionDeltas = [9][2]Square{
	DirectionNone: {0, 0},
	DirectionN:    {0, 1},
	DirectionNE:   {1, 1},
	DirectionE:    {1, 0},
	DirectionSE:   {1, -1},
	DirectionS:    {0, -1},
	DirectionSW:   {-1, -1},
	DirectionW:    {-1, 0},
	DirectionNW:   {-1, 1},
}

// Directions lists all 8 compass directions, clockwise from North.
var Directions = []Direction{
	DirectionN,
	DirectionNE,
	DirectionE,
	DirectionSE,
	DirectionS,
	DirectionSW,
	DirectionW,
	DirectionNW,
}

func (d Direction) String() string {
	switch d {
	case DirectionN:
		return "N"
	case DirectionNE:
		return "NE"
	case DirectionE:
		return "E"
	case DirectionSE:
		return "SE"
	case DirectionS:
		return "S"
	case DirectionSW:
		return "SW"
	case DirectionW:
		return "W"
	case DirectionNW:
		return "NW"
	default:
		return ""
	}
}

// Opposite returns the reverse compass direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionN:
		return DirectionS
	case DirectionNE:
		return DirectionSW
	case DirectionE:
		return DirectionW
	case DirectionSE:
		return DirectionNW
	case DirectionS:
		return DirectionN
	case DirectionSW:
		return DirectionNE
	case DirectionW:
		return DirectionE
	case DirectionNW:
		return DirectionSE
	default:
		return DirectionNone
	}
}

// New builds a Square from file and rank components.
func New(x, y Square) Square {
	return Size*y + x
}

// FromNotation parses standard square notation ("a1" through "h8").
func FromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, n)
	}
	x := Square(n[0] - 'a')
	y := Square(n[1] - '1')
	if x < 0 || Size <= x || y < 0 || Size <= y {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, n)
	}
	return New(x, y), nil
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if !s.Valid() {
		return ""
	}
	return string(rune('a'+s.X())) + string(rune('1'+s.Y()))
}

func (s Square) X() Square {
	return s % Size
}

func (s Square) Y() Square {
	return s / Size
}

func (s Square) Valid() bool {
	return 0 <= s && s < TotalSquares
}

// NotationComponentX renders a file component ("a".."h").
func (s Square) NotationComponentX() string {
	if s < 0 || Size <= s {
		return ""
	}
	return string(rune('a' + s))
}

// NotationComponentY renders a rank component ("1".."8").
func (s Square) NotationComponentY() string {
	if s < 0 || Size <= s {
		return ""
	}
	return string(rune('1' + s))
}

// DirectionTo classifies the line from s to another square, returning
// DirectionNone when the two squares are not on a common compass line.
func (s Square) DirectionTo(to Square) Direction {
	if s == to || !s.Valid() || !to.Valid() {
		return DirectionNone
	}
	dx, dy := to.X()-s.X(), to.Y()-s.Y()
	if dx != 0 && dy != 0 && dx != dy && dx != -dy {
		return DirectionNone
	}
	switch {
	case dx == 0 && dy > 0:
		return DirectionN
	case dx > 0 && dy > 0:
		return DirectionNE
	case dx > 0 && dy == 0:
		return DirectionE
	case dx > 0 && dy < 0:
		return DirectionSE
	case dx == 0 && dy < 0:
		return DirectionS
	case dx < 0 && dy < 0:
		return DirectionSW
	case dx < 0 && dy == 0:
		return DirectionW
	default:
		return DirectionNW
	}
}

// Distance returns the Chebyshev distance between two squares, which along a
// compass line equals the number of steps between them.
func (s Square) Distance(to Square) int {
	dx, dy := int(to.X()-s.X()), int(to.Y()-s.Y())
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// MoveDest projects s by the given number of steps along a direction. The
// second return value is false when the destination falls off the board.
func (s Square) MoveDest(d Direction, steps int) (Square, bool) {
	if d == DirectionNone || steps < 0 {
		return 0, false
	}
	delta := directionDeltas[d]
	x := s.X() + delta[0]*Square(steps)
	y := s.Y() + delta[1]*Square(steps)
	if x < 0 || Size <= x || y < 0 || Size <= y {
		return 0, false
	}
	return New(x, y), true
}

// Adjacent returns the squares in the 8-neighborhood of s, clipped to the
// board edge.
func (s Square) Adjacent() []Square {
	adj := make([]Square, 0, 8)
	for _, d := range Directions {
		if n, ok := s.MoveDest(d, 1); ok {
			adj = append(adj, n)
		}
	}
	return adj
}

// IsValidMove reports whether to is a distinct square reachable from s along
// one of the 8 compass lines.
func (s Square) IsValidMove(to Square) bool {
	return s.DirectionTo(to) != DirectionNone
}
