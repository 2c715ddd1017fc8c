package main

import (
	"fmt"
	"math/rand"
	"time"

	"loa/board"
	"loa/engine"
	"loa/game"
)

func play(notation string, depth int, seed int64, limit int, whiteKind, blackKind string) error {
	if seed == 0 {
		seed = time.Now().Unix()
	}
	rnd := rand.New(rand.NewSource(seed))

	b, err := board.NewBoard(board.WithNotation(notation))
	if err != nil {
		return err
	}
	if limit > 0 {
		b.SetMoveLimit(limit)
	}

	newPlayer := func(side board.Piece, kind string) (game.Player, error) {
		switch kind {
		case "machine":
			e := engine.NewEngine(&engine.Config{
				Depth: depth,
				Rand:  rnd,
				Debug: true,
			})
			return game.NewMachinePlayer(side, e), nil
		case "random":
			return game.NewRandomPlayer(side, rnd), nil
		default:
			return nil, fmt.Errorf("unknown player kind %q", kind)
		}
	}

	white, err := newPlayer(board.PieceWhite, whiteKind)
	if err != nil {
		return err
	}
	black, err := newPlayer(board.PieceBlack, blackKind)
	if err != nil {
		return err
	}

	fmt.Println(b.Draw())
	fmt.Println(b.Notation())

	g, err := game.NewGame(white, black,
		game.WithBoard(b),
		game.WithReporter(func(side board.Piece, mv board.Move) {
			fmt.Printf("\n>>> %s: %s\n", side, mv)
			fmt.Println(b.Draw())
			fmt.Println(b.Notation())
		}),
	)
	if err != nil {
		return err
	}

	result, err := g.Run()
	if err != nil {
		return err
	}
	fmt.Println("\n===============", result)
	return nil
}
