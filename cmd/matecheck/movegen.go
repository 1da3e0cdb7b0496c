package main

import (
	"fmt"
	"log"
	"strconv"

	"golang.org/x/exp/slices"

	"matecheck/board"
)

func movegen(fen string) error {
	log.Println("============ movegen")
	if fen == "" {
		fen = board.DefaultStartingPositionFEN
	}
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	dumpMoves(b)
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GenerateLegalMoves()
	slices.SortFunc(mvs, func(a, b board.Move) bool {
		return a.UCI() < b.UCI()
	})
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (kind=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.Side, mv.Piece, mv.From, mv.To, mv.Kind)
	}
}
