package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"loa/board"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepSeed  = flag.Int64("step.seed", 0, "random seed in step mode")
	stepDelay = flag.Int("step.delay", 100, "delay between plies in milliseconds in step mode")

	playRun   = flag.Bool("play", false, "run play mode")
	playDepth = flag.Int("play.depth", 0, "search depth in play mode")
	playSeed  = flag.Int64("play.seed", 0, "random seed in play mode")
	playLimit = flag.Int("play.limit", 0, "move limit per side in play mode")
	playWhite = flag.String("play.white", "machine", "white player kind in play mode (machine|random)")
	playBlack = flag.String("play.black", "random", "black player kind in play mode (machine|random)")

	countRun      = flag.Bool("count", false, "run count mode")
	countDepth    = flag.Int("count.depth", 4, "tree depth in count mode")
	countParallel = flag.Bool("count.parallel", true, "parallelize count mode")
	countVerbose  = flag.Bool("count.verbose", false, "per-root-move counts in count mode")
)

func main() {
	flag.Parse()
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	notation := board.DefaultStartingNotation
	if len(args) > 0 {
		notation = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(notation, *movegenDraw)
	}
	if *stepRun {
		return step(notation, *stepSeed, *stepDelay)
	}
	if *countRun {
		return count(notation, *countDepth, *countParallel, *countVerbose)
	}

	return play(notation, *playDepth, *playSeed, *playLimit, *playWhite, *playBlack)
}
