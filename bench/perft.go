// Package bench walks the full legal-move tree to a fixed depth and
// tallies what it finds. Matching the canonical node counts exercises
// the generators, the legality filter, and the mutator together.
package bench

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"matecheck/board"
)

// Counters tallies leaf nodes and the special-move classes of the moves
// reaching them.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Checks     uint64
}

func (c *Counters) add(o Counters) {
	atomic.AddUint64(&c.Nodes, o.Nodes)
	atomic.AddUint64(&c.Captures, o.Captures)
	atomic.AddUint64(&c.EnPassants, o.EnPassants)
	atomic.AddUint64(&c.Castles, o.Castles)
	atomic.AddUint64(&c.Checks, o.Checks)
}

func Perft(depth int, fen string, parallel bool, out chan<- string) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	var c Counters
	start := time.Now()
	if parallel {
		runPerftParallel(b, depth, &c)
	} else {
		runPerft(b, depth, &c)
	}
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d chk=%d (%.3fs elapsed)",
			depth, c.Nodes, int(float64(c.Nodes)/elapsed.Seconds()),
			c.Captures, c.EnPassants, c.Castles, c.Checks, elapsed.Seconds())

	return nil
}

func runPerft(b *board.Board, d int, c *Counters) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}
	var total uint64
	for _, mv := range b.GenerateLegalMoves() {
		bb := b.Apply(mv)
		if d == 1 {
			classify(b, bb, mv, c)
		}
		total += runPerft(bb, d-1, c)
	}
	return total
}

// runPerftParallel fans the root moves out across goroutines; Boards are
// immutable by replacement, so each branch owns its own chain.
func runPerftParallel(b *board.Board, d int, c *Counters) {
	if d == 0 {
		c.Nodes++
		return
	}
	var wg sync.WaitGroup
	for _, mv := range b.GenerateLegalMoves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb := b.Apply(mv)
			var sub Counters
			if d == 1 {
				classify(b, bb, mv, &sub)
			}
			runPerft(bb, d-1, &sub)
			c.add(sub)
		}()
	}
	wg.Wait()
}

func classify(before, after *board.Board, mv board.Move, c *Counters) {
	switch mv.Kind {
	case board.MoveKindEnPassant:
		c.EnPassants++
		c.Captures++
	case board.MoveKindCastle:
		c.Castles++
	default:
		if _, p := before.Get(mv.To); p != board.PieceUnknown {
			c.Captures++
		}
	}
	if after.IsKingChecked(after.Turn()) {
		c.Checks++
	}
}
