package main

import (
	"fmt"
	"log"
	"strconv"

	"loa/board"
)

func movegen(notation string, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithNotation(notation))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Winner())
	dumpMoves(b)

	if draw {
		for _, mv := range b.LegalMoves() {
			b.MakeMove(mv)
			fmt.Println(mv)
			fmt.Println(b.Draw())
			fmt.Println(b.Notation())
			b.Retract()
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.LegalMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] %s => %s (cap=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, mv.From, mv.To, mv.IsCapture)
	}
}
