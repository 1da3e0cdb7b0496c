package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 4, "perft depth in perft mode")
	perftParallel = flag.Bool("perft.parallel", true, "parallelize root moves in perft mode")

	mateRun      = flag.Bool("mate", false, "run forced-mate search mode")
	mateParallel = flag.Bool("mate.parallel", false, "parallelize candidate evaluation in mate mode")

	serveRun   = flag.Bool("serve", false, "run analysis server mode")
	serveAddr  = flag.String("serve.addr", ":8080", "listen address in server mode")
	serveCache = flag.String("serve.cache", "", "verdict cache directory in server mode, empty disables caching")
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
	fen := strings.Join(args, " ")
	if *movegenRun {
		return movegen(fen)
	}
	if *perftRun {
		return perft(*perftDepth, fen, *perftParallel)
	}
	if *mateRun {
		return mate(fen, *mateParallel)
	}
	if *serveRun {
		return serve(*serveAddr, *serveCache)
	}

	return prompt()
}
