package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"loa/board"
)

func step(notation string, seed int64, delayMillis int) error {
	log.Println("============ step")
	if seed == 0 {
		seed = time.Now().Unix()
	}
	rnd := rand.New(rand.NewSource(seed))

	var (
		timesLegalMoves []time.Duration
		timesMakeMove   []time.Duration
		timesWinner     []time.Duration
	)
	b, err := board.NewBoard(board.WithNotation(notation))
	if err != nil {
		return err
	}

	for !b.GameOver() {
		t1 := time.Now()
		mvs := b.LegalMoves()
		t2 := time.Now()
		timesLegalMoves = append(timesLegalMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: result=%s", b.Winner())
		}
		mv := mvs[rnd.Intn(len(mvs))]
		side := b.Turn()

		t1 = time.Now()
		b.MakeMove(mv)
		t2 = time.Now()
		timesMakeMove = append(timesMakeMove, t2.Sub(t1))

		t1 = time.Now()
		b.Winner()
		t2 = time.Now()
		timesWinner = append(timesWinner, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", b.MovesMade(), side, mv)
		fmt.Println(b.Draw())
		fmt.Println(b.Notation())
		<-time.Tick(time.Duration(delayMillis) * time.Millisecond)
	}

	avg := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return time.Duration(s.Seconds() / float64(len(ds)) * float64(time.Second))
	}

	fmt.Println()
	fmt.Println(b.Winner())
	fmt.Println("legal:", avg(timesLegalMoves))
	fmt.Println("apply:", avg(timesMakeMove))
	fmt.Println("winnr:", avg(timesWinner))
	return nil
}
