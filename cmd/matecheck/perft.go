package main

import (
	"fmt"
	"log"

	"matecheck/bench"
	"matecheck/board"
)

func perft(depth int, fen string, parallel bool) error {
	log.Println("============ perft")
	if fen == "" {
		fen = board.DefaultStartingPositionFEN
	}

	out := make(chan string, 4)
	errc := make(chan error, 1)
	go func() {
		errc <- bench.Perft(depth, fen, parallel, out)
		close(out)
	}()
	for line := range out {
		fmt.Println(line)
	}
	return <-errc
}
