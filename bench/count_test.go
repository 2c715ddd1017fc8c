package bench

import (
	"strings"
	"testing"

	"loa/board"
)

func TestRunCount(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var captures, terminals uint64
	if got := runCount(b, 1, true, false, nil, &captures, &terminals); got != 36 {
		t.Errorf("unexpected node count at depth 1: got=%d want=36", got)
	}
	if got := b.Notation(); got != board.DefaultStartingNotation {
		t.Errorf("count walk must leave the board unchanged: got=%s", got)
	}
}

func TestRunCountParallelMatchesSequential(t *testing.T) {
	t.Parallel()
	for _, notation := range []string{
		board.DefaultStartingNotation,
		"8/2w2b2/1b4w1/3wb3/2bw1w2/8/1b4b1/8 w 17 120",
	} {
		notation := notation
		t.Run(notation, func(t *testing.T) {
			t.Parallel()
			var seqCaptures, seqTerminals uint64
			seq, err := board.NewBoard(board.WithNotation(notation))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			seqNodes := runCount(seq, 3, true, false, nil, &seqCaptures, &seqTerminals)

			var parCaptures, parTerminals uint64
			par, err := board.NewBoard(board.WithNotation(notation))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			parNodes := runCountParallel(par, 3, true, false, nil, &parCaptures, &parTerminals)

			if seqNodes != parNodes {
				t.Errorf("node count mismatch: sequential=%d parallel=%d", seqNodes, parNodes)
			}
			if seqCaptures != parCaptures {
				t.Errorf("capture count mismatch: sequential=%d parallel=%d", seqCaptures, parCaptures)
			}
			if seqTerminals != parTerminals {
				t.Errorf("terminal count mismatch: sequential=%d parallel=%d", seqTerminals, parTerminals)
			}
			if got := par.Notation(); got != notation {
				t.Errorf("parallel walk must leave the root board unchanged: got=%s", got)
			}
		})
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	t.Run("summary", func(t *testing.T) {
		t.Parallel()
		out := make(chan string, 64)
		if err := Count(1, board.DefaultStartingNotation, false, true, out); err != nil {
			t.Fatal("unexpected error:", err)
		}
		close(out)

		var lines []string
		for line := range out {
			lines = append(lines, line)
		}
		if len(lines) != 37 { // one line per root move plus the summary
			t.Fatalf("unexpected output line count: got=%d want=37", len(lines))
		}
		if summary := lines[len(lines)-1]; !strings.Contains(summary, "nodes=36") {
			t.Errorf("unexpected summary: %s", summary)
		}
	})

	t.Run("invalid notation", func(t *testing.T) {
		t.Parallel()
		if err := Count(1, "not a position", false, false, nil); err == nil {
			t.Error("expected an error for invalid notation")
		}
	})
}
