package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"loa/board"
)

// Reporter is invoked once per chosen move, after the move has been applied.
type Reporter func(side board.Piece, mv board.Move)

// Game alternates turns between two players on a single board until the
// board reports a result.
type Game struct {
	board    *board.Board
	white    Player
	black    Player
	reporter Reporter
}

type GameOption func(*Game)

func WithBoard(b *board.Board) GameOption {
	return func(g *Game) {
		if b != nil {
			g.board = b
		}
	}
}

func WithReporter(r Reporter) GameOption {
	return func(g *Game) {
		if r != nil {
			g.reporter = r
		}
	}
}

func NewGame(white, black Player, opts ...GameOption) (*Game, error) {
	if white.Side() != board.PieceWhite || black.Side() != board.PieceBlack {
		return nil, fmt.Errorf("game: players assigned to wrong sides: %s/%s", white.Side(), black.Side())
	}
	b, err := board.NewBoard()
	if err != nil {
		return nil, err
	}
	g := &Game{
		board: b,
		white: white,
		black: black,
	}
	for _, f := range opts {
		f(g)
	}
	return g, nil
}

func (g *Game) Board() *board.Board {
	return g.board
}

// Run executes the game loop until the game is over or a player fails to
// produce a move. Precondition violations inside the core (an illegal move
// reaching MakeMove) panic and are deliberately not recovered here.
func (g *Game) Run() (board.Result, error) {
	log.Info().
		Stringer("side", g.board.Turn()).
		Int("limit", g.board.MoveLimit()).
		Msg("game starting")

	for !g.board.GameOver() {
		player := g.white
		if g.board.Turn() == board.PieceBlack {
			player = g.black
		}

		mv, err := player.NextMove(g.board)
		if err != nil {
			return board.ResultUnknown, fmt.Errorf("game: %s (%s) move %d: %w",
				player.Name(), player.Side(), g.board.MovesMade()+1, err)
		}

		side := g.board.Turn()
		mv.IsCapture = g.board.Get(mv.To) == side.Opposite()
		g.board.MakeMove(mv)
		if g.reporter != nil {
			g.reporter(side, mv)
		}
		log.Info().
			Str("player", player.Name()).
			Stringer("side", side).
			Stringer("move", mv).
			Int("ply", g.board.MovesMade()).
			Msg("move played")
	}

	result := g.board.Winner()
	log.Info().
		Stringer("result", result).
		Int("plies", g.board.MovesMade()).
		Msg("game over")
	return result, nil
}
