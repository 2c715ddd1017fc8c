package game

import (
	"fmt"

	"loa/board"
	"loa/engine"
)

// Player produces a move for its side when the board says it is on turn.
type Player interface {
	Name() string
	Side() board.Piece
	NextMove(b *board.Board) (board.Move, error)
}

// MachinePlayer picks moves with the search engine.
type MachinePlayer struct {
	side   board.Piece
	engine *engine.Engine
}

func NewMachinePlayer(side board.Piece, e *engine.Engine) *MachinePlayer {
	return &MachinePlayer{
		side:   side,
		engine: e,
	}
}

func (p *MachinePlayer) Name() string {
	return "machine"
}

func (p *MachinePlayer) Side() board.Piece {
	return p.side
}

func (p *MachinePlayer) NextMove(b *board.Board) (board.Move, error) {
	return p.engine.Search(b)
}

// RandomPlayer picks a uniformly random legal move, as the baseline opponent.
type RandomPlayer struct {
	side board.Piece
	rand engine.RandSource
}

func NewRandomPlayer(side board.Piece, rand engine.RandSource) *RandomPlayer {
	return &RandomPlayer{
		side: side,
		rand: rand,
	}
}

func (p *RandomPlayer) Name() string {
	return "random"
}

func (p *RandomPlayer) Side() board.Piece {
	return p.side
}

func (p *RandomPlayer) NextMove(b *board.Board) (board.Move, error) {
	mvs := b.LegalMoves()
	if len(mvs) == 0 {
		return board.Move{}, engine.ErrNoMove
	}
	return mvs[p.rand.Intn(len(mvs))], nil
}

// ScriptedPlayer replays a fixed move list. Used by tests and replays.
type ScriptedPlayer struct {
	side  board.Piece
	moves []board.Move
	next  int
}

func NewScriptedPlayer(side board.Piece, moves []board.Move) *ScriptedPlayer {
	return &ScriptedPlayer{
		side:  side,
		moves: moves,
	}
}

func (p *ScriptedPlayer) Name() string {
	return "scripted"
}

func (p *ScriptedPlayer) Side() board.Piece {
	return p.side
}

func (p *ScriptedPlayer) NextMove(_ *board.Board) (board.Move, error) {
	if p.next >= len(p.moves) {
		return board.Move{}, fmt.Errorf("scripted player %s: out of moves after %d", p.side, p.next)
	}
	mv := p.moves[p.next]
	p.next++
	return mv, nil
}
