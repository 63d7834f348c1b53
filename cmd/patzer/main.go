package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"patzer/cli"
	"patzer/game"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	serveRun  = flag.Bool("serve", false, "run server mode")
	serveAddr = flag.String("serve.addr", getenv("PATZER_ADDR", ":8080"), "listen address in server mode")

	demoRun   = flag.Bool("demo", false, "run demo mode")
	demoMoves = flag.Int("demo.moves", 40, "number of moves to play in demo mode")
	demoDelay = flag.Duration("demo.delay", 200*time.Millisecond, "pause between moves in demo mode")

	censusRun      = flag.Bool("census", false, "run census mode")
	censusDepth    = flag.Int("census.depth", 4, "walk depth in census mode")
	censusParallel = flag.Bool("census.parallel", true, "walk the tree in parallel in census mode")

	playSave = flag.String("play.save", game.DefaultSaveFile, "save file used by the interactive game")
)

func main() {
	flag.Parse()

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
	savePath := *playSave
	if len(args) > 0 {
		savePath = args[0]
	}

	if *serveRun {
		return serve(*serveAddr)
	}
	if *demoRun {
		return demo(*demoMoves, *demoDelay)
	}
	if *censusRun {
		return census(*censusDepth, *censusParallel)
	}

	return cli.NewInterface(cli.WithSavePath(savePath)).Run()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
