package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"loa/square"
)

// DefaultStartingNotation is the standard Lines of Action starting position:
// Black occupies the top and bottom rows, White the left and right columns,
// Black to move.
const DefaultStartingNotation = "1bbbbbb1/w6w/w6w/w6w/w6w/w6w/w6w/1bbbbbb1 b 0 60"

var (
	ErrInvalidNotation = errors.New("invalid notation")
)

// parseNotation reads a position in the four-segment notation
// "<grid> <turn> <plies> <limit>". The grid lists rows 8 through 1 separated
// by "/", with "w"/"b" for pieces and digits for runs of empty squares.
func parseNotation(nt string) ([TotalCells]Piece, Piece, int, int, error) {
	var grid [TotalCells]Piece

	segments := strings.Split(nt, " ")
	if len(segments) != 4 {
		return grid, PieceEmpty, 0, 0, fmt.Errorf("%w: incorrect number of segments", ErrInvalidNotation)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return grid, PieceEmpty, 0, 0, fmt.Errorf("%w: invalid board configuration", ErrInvalidNotation)
	}
	for y := square.Square(0); y < Height; y++ {
		row := rows[Height-1-y]
		x := square.Square(0)
		for _, cell := range row {
			if x >= Width {
				return grid, PieceEmpty, 0, 0, fmt.Errorf("%w: excess cells in row %d", ErrInvalidNotation, y+1)
			}
			switch cell {
			case 'w':
				grid[square.New(x, y)] = PieceWhite
				x++
			case 'b':
				grid[square.New(x, y)] = PieceBlack
				x++
			default:
				skip := square.Square(cell - '0')
				if skip < 1 || Width < skip {
					return grid, PieceEmpty, 0, 0, fmt.Errorf("%w: unknown symbol %q", ErrInvalidNotation, string(cell))
				}
				x += skip
			}
		}
		if x != Width {
			return grid, PieceEmpty, 0, 0, fmt.Errorf("%w: missing cells in row %d", ErrInvalidNotation, y+1)
		}
	}

	var turn Piece
	switch segments[1] {
	case "w":
		turn = PieceWhite
	case "b":
		turn = PieceBlack
	default:
		return grid, PieceEmpty, 0, 0, fmt.Errorf("%w: invalid turn", ErrInvalidNotation)
	}

	plies, err := strconv.Atoi(segments[2])
	if err != nil || plies < 0 {
		return grid, PieceEmpty, 0, 0, fmt.Errorf("%w: invalid ply count", ErrInvalidNotation)
	}

	moveLimit, err := strconv.Atoi(segments[3])
	if err != nil || moveLimit <= 0 {
		return grid, PieceEmpty, 0, 0, fmt.Errorf("%w: invalid move limit", ErrInvalidNotation)
	}

	return grid, turn, plies, moveLimit, nil
}

// Notation serializes the position. The result round-trips through NewBoard
// with WithNotation.
func (b *Board) Notation() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		skip := 0
		for x := square.Square(0); x < Width; x++ {
			p := b.grid[square.New(x, y)]
			if p == PieceEmpty {
				skip++
				continue
			}
			if skip > 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.Symbol())
		}
		if skip > 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %s %d %d", b.turn.Symbol(), b.plies, b.moveLimit))

	return builder.String()
}
