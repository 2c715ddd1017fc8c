package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"loa/board"
)

// Count walks the legal-move tree of the given position to the given depth
// and reports node, capture and terminal-position counts on out. The
// sequential walk applies and retracts moves on a single board; the parallel
// walk clones the board once per root move.
func Count(depth int, notation string, parallel, verbose bool, out chan string) error {
	var captures, terminals uint64
	b, err := board.NewBoard(board.WithNotation(notation))
	if err != nil {
		return err
	}

	var run countFunc = runCount
	if parallel {
		run = runCountParallel
	}

	start := time.Now()
	nodes := run(b, depth, true, verbose, out, &captures, &terminals)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d term=%d (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/end.Sub(start).Seconds()), captures, terminals, end.Sub(start).Seconds())

	return nil
}

type countFunc func(b *board.Board, d int, root, verbose bool, out chan string, captures, terminals *uint64) uint64

func runCount(b *board.Board, d int, root, verbose bool, out chan string, captures, terminals *uint64) uint64 {
	if d == 0 {
		return 1
	}
	if b.GameOver() {
		atomic.AddUint64(terminals, 1)
		return 1
	}

	var sum uint64
	for _, mv := range b.LegalMoves() {
		if mv.IsCapture {
			atomic.AddUint64(captures, 1)
		}
		b.MakeMove(mv)
		child := runCount(b, d-1, false, verbose, out, captures, terminals)
		b.Retract()
		sum += child
		if root && verbose {
			out <- fmt.Sprintf("%s: %d", mv, child)
		}
	}
	return sum
}

func runCountParallel(b *board.Board, d int, root, verbose bool, out chan string, captures, terminals *uint64) uint64 {
	if d == 0 || b.GameOver() {
		return runCount(b, d, root, verbose, out, captures, terminals)
	}

	var wg sync.WaitGroup
	var sum uint64
	for _, mv := range b.LegalMoves() {
		mv := mv
		bb := b.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if mv.IsCapture {
				atomic.AddUint64(captures, 1)
			}
			bb.MakeMove(mv)
			child := runCount(bb, d-1, false, verbose, out, captures, terminals)
			atomic.AddUint64(&sum, child)
			if root && verbose {
				out <- fmt.Sprintf("%s: %d", mv, child)
			}
		}()
	}
	wg.Wait()
	return sum
}
