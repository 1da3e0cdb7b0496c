package main

import (
	"fmt"
	"log"

	"matecheck/board"
	"matecheck/engine"
)

func mate(fen string, parallel bool) error {
	log.Println("============ mate")
	if fen == "" {
		fen = board.DefaultStartingPositionFEN
	}
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Draw())

	var opts []engine.Option
	if parallel {
		opts = append(opts, engine.WithParallelSearch(0))
	}
	found, ply, mvs := engine.NewOracle(opts...).FindForcedMate(b)
	switch {
	case found && ply == engine.PlyImmediate:
		fmt.Println("This position is checkmate.")
	case found && ply == engine.PlyInOne:
		fmt.Printf("%s mates in one: %s\n", b.Turn(), mvs[0].UCI())
	default:
		fmt.Println("No forced mate within one move.")
	}
	return nil
}
