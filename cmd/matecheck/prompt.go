package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"matecheck/board"
	"matecheck/engine"
)

// prompt reads one FEN record, reports the parsed board, and prints the
// checkmate verdict.
func prompt() error {
	fmt.Print("Put in the FEN for your board: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	b, err := board.NewBoard(board.WithFEN(strings.TrimSpace(line)))
	if err != nil {
		return err
	}
	fmt.Println(b.Draw())

	if engine.IsCheckmate(b) {
		fmt.Println("This position is checkmate.")
	} else {
		fmt.Println("This position isn't checkmate.")
	}
	return nil
}
