package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/slices"

	"loa/square"
)

const (
	Width      = square.Size
	Height     = square.Size
	TotalCells = square.TotalSquares

	// DefaultMoveLimit is the number of plies after which the game is drawn.
	DefaultMoveLimit = 60
)

// Board holds the full state of a game of Lines of Action: the 8x8 grid, the
// side to move, the undo history and the derived connectivity metadata. The
// derived values (winner, region sizes) are invalidated on every grid change
// and lazily recomputed on the next query.
type Board struct {
	grid      [TotalCells]Piece
	turn      Piece
	history   []Move
	plies     int
	moveLimit int

	// cache
	result       Result
	resultKnown  bool
	regionsKnown bool
	whiteRegions []int
	blackRegions []int
}

type boardConfig struct {
	notation string
}

type BoardOption func(*boardConfig)

func WithNotation(notation string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.notation = notation
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		notation: DefaultStartingNotation,
	}
	for _, f := range opts {
		f(cfg)
	}
	grid, turn, plies, moveLimit, err := parseNotation(cfg.notation)
	if err != nil {
		return nil, err
	}

	return &Board{
		grid:      grid,
		turn:      turn,
		plies:     plies,
		moveLimit: moveLimit,
	}, nil
}

// Get returns the contents of a square.
func (b *Board) Get(sq square.Square) Piece {
	return b.grid[sq]
}

// Set places a piece on a square directly, bypassing move legality. Intended
// for position setup.
func (b *Board) Set(sq square.Square, p Piece) {
	b.grid[sq] = p
	b.invalidate()
}

// Turn returns the side to move.
func (b *Board) Turn() Piece {
	return b.turn
}

// SetTurn sets the side to move without touching the grid.
func (b *Board) SetTurn(p Piece) {
	b.turn = p
	b.invalidate()
}

// MovesMade returns the number of applied, unretracted plies.
func (b *Board) MovesMade() int {
	return b.plies
}

// MoveLimit returns the draw limit in plies.
func (b *Board) MoveLimit() int {
	return b.moveLimit
}

// SetMoveLimit sets the draw limit to the given number of moves per side,
// doubled internally to count plies.
func (b *Board) SetMoveLimit(moves int) {
	b.moveLimit = 2 * moves
	b.resultKnown = false
}

// History returns the applied moves in order, oldest first.
func (b *Board) History() []Move {
	h := make([]Move, len(b.history))
	copy(h, b.history)
	return h
}

// lineCount returns the total number of pieces of either color on the full
// line of action through from, scanning dir and its opposite and counting
// from itself exactly once.
func (b *Board) lineCount(from square.Square, dir square.Direction) int {
	count := 1
	for _, d := range [2]square.Direction{dir, dir.Opposite()} {
		for step := 1; ; step++ {
			sq, ok := from.MoveDest(d, step)
			if !ok {
				break
			}
			if b.grid[sq] != PieceEmpty {
				count++
			}
		}
	}
	return count
}

// IsLegal reports whether moving from from to to is legal for the side on
// move: the piece must belong to the mover, the destination must lie on a
// compass line, the line distance must equal the piece count on that line of
// action, the destination must not hold the mover's color, and no enemy piece
// may be jumped over.
func (b *Board) IsLegal(from, to square.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if b.grid[from] != b.turn {
		return false
	}
	dir := from.DirectionTo(to)
	if dir == square.DirectionNone {
		return false
	}
	if b.grid[to] == b.turn {
		return false
	}
	if from.Distance(to) != b.lineCount(from, dir) {
		return false
	}
	enemy := b.turn.Opposite()
	for step := 1; ; step++ {
		sq, ok := from.MoveDest(dir, step)
		if !ok {
			return false
		}
		if sq == to {
			return true
		}
		if b.grid[sq] == enemy {
			return false
		}
	}
}

// IsLegalMove reports whether the move is legal for the side on move. The
// IsCapture flag is ignored.
func (b *Board) IsLegalMove(mv Move) bool {
	return b.IsLegal(mv.From, mv.To)
}

// LegalMoves enumerates all legal moves for the side on move, with IsCapture
// set when the destination holds an enemy piece.
func (b *Board) LegalMoves() []Move {
	enemy := b.turn.Opposite()
	var mvs []Move
	for from := square.Square(0); from < TotalCells; from++ {
		if b.grid[from] != b.turn {
			continue
		}
		for to := square.Square(0); to < TotalCells; to++ {
			if !b.IsLegal(from, to) {
				continue
			}
			mvs = append(mvs, Move{
				From:      from,
				To:        to,
				IsCapture: b.grid[to] == enemy,
			})
		}
	}
	return mvs
}

// MakeMove applies mv. The move must be legal; applying an illegal move is a
// caller defect and panics. The capture flag recorded in the history is
// recomputed from the pre-move destination contents.
func (b *Board) MakeMove(mv Move) {
	if !b.IsLegal(mv.From, mv.To) {
		panic(fmt.Sprintf("board: illegal move %s for %s", mv, b.turn))
	}
	mv.IsCapture = b.grid[mv.To] == b.turn.Opposite()
	b.grid[mv.To] = b.grid[mv.From]
	b.grid[mv.From] = PieceEmpty
	b.turn = b.turn.Opposite()
	b.plies++
	b.history = append(b.history, mv)
	b.invalidate()
}

// Retract unmakes the last applied move, restoring the grid, side to move and
// ply count to their exact pre-move values. Retracting with an empty history
// is a caller defect and panics.
func (b *Board) Retract() {
	if len(b.history) == 0 {
		panic("board: retract with no moves made")
	}
	last := b.history[len(b.history)-1]
	mover := b.grid[last.To]
	b.grid[last.From] = mover
	if last.IsCapture {
		b.grid[last.To] = mover.Opposite()
	} else {
		b.grid[last.To] = PieceEmpty
	}
	b.turn = mover
	b.plies--
	b.history = b.history[:len(b.history)-1]
	b.invalidate()
}

func (b *Board) invalidate() {
	b.resultKnown = false
	b.regionsKnown = false
}

// computeRegions partitions each color's pieces into maximal 8-connected
// clusters and records the cluster sizes in descending order. The flood fill
// runs on an explicit work stack.
func (b *Board) computeRegions() {
	if b.regionsKnown {
		return
	}
	b.whiteRegions = b.whiteRegions[:0]
	b.blackRegions = b.blackRegions[:0]

	var visited [TotalCells]bool
	var stack []square.Square
	for sq := square.Square(0); sq < TotalCells; sq++ {
		p := b.grid[sq]
		if p == PieceEmpty || visited[sq] {
			continue
		}
		size := 0
		stack = append(stack[:0], sq)
		visited[sq] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, adj := range cur.Adjacent() {
				if !visited[adj] && b.grid[adj] == p {
					visited[adj] = true
					stack = append(stack, adj)
				}
			}
		}
		if p == PieceWhite {
			b.whiteRegions = append(b.whiteRegions, size)
		} else {
			b.blackRegions = append(b.blackRegions, size)
		}
	}

	descending := func(a, b int) int { return b - a }
	slices.SortFunc(b.whiteRegions, descending)
	slices.SortFunc(b.blackRegions, descending)
	b.regionsKnown = true
}

// RegionSizes returns the sizes of the color's contiguous clusters, largest
// first.
func (b *Board) RegionSizes(p Piece) []int {
	b.computeRegions()
	var regions []int
	if p == PieceWhite {
		regions = b.whiteRegions
	} else {
		regions = b.blackRegions
	}
	out := make([]int, len(regions))
	copy(out, regions)
	return out
}

func (b *Board) regionCount(p Piece) int {
	b.computeRegions()
	if p == PieceWhite {
		return len(b.whiteRegions)
	}
	return len(b.blackRegions)
}

// PiecesContiguous reports whether the color's pieces form a single region.
func (b *Board) PiecesContiguous(p Piece) bool {
	return b.regionCount(p) == 1
}

// Winner returns the game outcome. The side that just moved is checked
// before the side to move, so a move that connects both sides at once is
// scored for the mover.
func (b *Board) Winner() Result {
	if !b.resultKnown {
		moved := b.turn.Opposite()
		switch {
		case b.PiecesContiguous(moved):
			b.result = resultOf(moved)
			b.resultKnown = true
		case b.PiecesContiguous(b.turn):
			b.result = resultOf(b.turn)
			b.resultKnown = true
		case b.plies >= b.moveLimit:
			b.result = ResultDraw
			b.resultKnown = true
		default:
			b.result = ResultUnknown
		}
	}
	return b.result
}

// GameOver reports whether either side has connected or the move limit was
// reached.
func (b *Board) GameOver() bool {
	return b.Winner() != ResultUnknown
}

// Count returns the number of pieces of the given color on the board.
func (b *Board) Count(p Piece) int {
	n := 0
	for sq := square.Square(0); sq < TotalCells; sq++ {
		if b.grid[sq] == p {
			n++
		}
	}
	return n
}

// Squares returns the squares holding the given color.
func (b *Board) Squares(p Piece) []square.Square {
	var sqs []square.Square
	for sq := square.Square(0); sq < TotalCells; sq++ {
		if b.grid[sq] == p {
			sqs = append(sqs, sq)
		}
	}
	return sqs
}

// Clone returns an independent copy of the board, history included.
func (b *Board) Clone() *Board {
	history := make([]Move, len(b.history))
	copy(history, b.history)
	return &Board{
		grid:      b.grid,
		turn:      b.turn,
		history:   history,
		plies:     b.plies,
		moveLimit: b.moveLimit,
	}
}

// Equal compares grid and side to move.
func (b *Board) Equal(other *Board) bool {
	return b.grid == other.grid && b.turn == other.turn
}

// Dump renders the board as plain ASCII.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := square.Square(0); x < Width; x++ {
			_, _ = builder.WriteString(fmt.Sprintf(" %s ", b.grid[square.New(x, y)].Symbol()))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := square.Square(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

var (
	drawLightCell = color.New(color.FgBlack, color.BgHiGreen)
	drawDarkCell  = color.New(color.FgBlack, color.BgGreen)
	drawEdge      = color.New(color.Bold)
)

// Draw renders the board with a checkered background for terminals.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(drawEdge.Sprintf(" %d ", y+1))
		for x := square.Square(0); x < Width; x++ {
			cell := drawDarkCell
			if x%2^y%2 == 0 {
				cell = drawLightCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", b.grid[square.New(x, y)].SymbolUnicode()))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := square.Square(0); x < Width; x++ {
		_, _ = builder.WriteString(drawEdge.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
