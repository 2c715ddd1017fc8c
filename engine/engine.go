package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"loa/board"
)

const (
	ScoreInfinite int32 = math.MaxInt32

	// ScoreWinning is the leaf score magnitude of a decided position,
	// positive for White.
	ScoreWinning int32 = math.MaxInt32 - 20

	DefaultDepth = 2
)

var (
	ErrGameOver = errors.New("game is already over")
	ErrNoMove   = errors.New("no legal move available")
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// RandSource supplies the heuristic's randomized scoring bands. *rand.Rand
// satisfies it; tests inject a deterministic source.
type RandSource interface {
	Intn(n int) int
}

type Config struct {
	Depth    int
	Rand     RandSource
	Evaluate func(*board.Board) int32
	Logger   func(...any)
	Debug    bool
}

// Engine is a fixed-depth alpha-beta minimax searcher. It is not safe for
// concurrent use: a search exclusively owns its board and the evaluator's
// momentum cell for the duration of the call.
type Engine struct {
	depth    int
	rand     RandSource
	evaluate func(*board.Board) int32
	logger   func(...any)
	debug    bool

	rootSide    board.Piece
	lastScore   int32
	nodes       uint32
	elapsedTime time.Duration
}

func NewEngine(cfg *Config) *Engine {
	e := &Engine{
		depth:    cfg.Depth,
		rand:     cfg.Rand,
		evaluate: cfg.Evaluate,
		logger:   cfg.Logger,
		debug:    cfg.Debug,
	}
	if e.depth <= 0 {
		e.depth = DefaultDepth
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.evaluate == nil {
		e.evaluate = e.heuristic
	}
	if e.logger == nil {
		e.logger = DefaultLogger
	}
	return e
}

// Nodes returns the number of nodes visited by the last search.
func (e *Engine) Nodes() uint32 {
	return e.nodes
}

// Search returns the move judged best for the side to move, searching the
// game tree to the configured depth. The board is mutated in place during the
// search but every applied move is retracted before returning; the net
// mutation is zero.
func (e *Engine) Search(b *board.Board) (board.Move, error) {
	if b.GameOver() {
		return board.Move{}, ErrGameOver
	}
	mvs := b.LegalMoves()
	if len(mvs) == 0 {
		return board.Move{}, ErrNoMove
	}

	e.rootSide = b.Turn()
	e.nodes = 0
	e.lastScore = e.positionScore(b)

	maximizing := e.rootSide == board.PieceWhite
	alpha, beta := -ScoreInfinite, ScoreInfinite
	var bestMove board.Move
	var bestScore int32

	startTime := time.Now()
	for i, mv := range mvs {
		b.MakeMove(mv)
		score := e.alphabeta(b, e.depth-1, alpha, beta, !maximizing)
		b.Retract()

		mv.Score = score
		if maximizing {
			if i == 0 || score > bestScore {
				bestMove, bestScore = mv, score
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if i == 0 || score < bestScore {
				bestMove, bestScore = mv, score
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
	}
	e.elapsedTime = time.Since(startTime)

	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("depth:%d move:%s score:%d nodes:%d (%.0fn/s) t:%s",
				e.depth, bestMove, bestScore, e.nodes,
				float64(e.nodes)/(e.elapsedTime + 1).Seconds(), e.elapsedTime))
	}

	return bestMove, nil
}

// alphabeta walks the move tree depth-first, applying and retracting
// candidate moves on the shared board in strict LIFO order. Pruning breaks
// out of the move loop, never past a pending retract.
func (e *Engine) alphabeta(b *board.Board, depth int, alpha, beta int32, maximizing bool) int32 {
	e.nodes++
	if depth <= 0 || b.GameOver() {
		return e.evaluate(b)
	}
	mvs := b.LegalMoves()
	if len(mvs) == 0 {
		return e.evaluate(b)
	}

	if maximizing {
		best := -ScoreInfinite
		for _, mv := range mvs {
			b.MakeMove(mv)
			score := e.alphabeta(b, depth-1, alpha, beta, false)
			b.Retract()
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := ScoreInfinite
	for _, mv := range mvs {
		b.MakeMove(mv)
		score := e.alphabeta(b, depth-1, alpha, beta, true)
		b.Retract()
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
