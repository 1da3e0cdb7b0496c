// Package engine decides checkmate verdicts: whether a position is
// checkmate now, and whether either side can force checkmate in one
// more move. It is the only layer that enumerates fully legal moves.
package engine

import (
	"runtime"
	"sync"

	"matecheck/board"
)

// Mate search outcomes for FindForcedMate's ply result.
const (
	PlyNone      = -1 // no forced mate within one ply
	PlyImmediate = 0  // the position is already checkmate
	PlyInOne     = 1  // the returned move delivers checkmate
)

type Oracle struct {
	parallel bool
	workers  int
}

type Option func(*Oracle)

// WithParallelSearch evaluates mate-in-1 candidates across worker
// goroutines. Each worker applies moves onto its own board copies, so no
// synchronization beyond the result slice is needed.
func WithParallelSearch(workers int) Option {
	return func(o *Oracle) {
		o.parallel = true
		if workers > 0 {
			o.workers = workers
		}
	}
}

func NewOracle(opts ...Option) *Oracle {
	o := &Oracle{
		workers: runtime.NumCPU(),
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

// IsCheckmate reports whether the side to move is checkmated: no fully
// legal moves remain and its king is attacked. Zero moves without check
// is stalemate and never reported as checkmate.
func (o *Oracle) IsCheckmate(b *board.Board) bool {
	return len(b.GenerateLegalMoves()) == 0 && b.IsKingChecked(b.Turn())
}

// FindForcedMate looks for checkmate at most one ply ahead. It reports
// (true, PlyImmediate, nil) when the position is already checkmate,
// (true, PlyInOne, [mv]) for the first legal move in generation order
// whose resulting position is checkmate, and (false, PlyNone, nil)
// otherwise.
func (o *Oracle) FindForcedMate(b *board.Board) (bool, int, []board.Move) {
	if o.IsCheckmate(b) {
		return true, PlyImmediate, nil
	}

	mvs := b.GenerateLegalMoves()
	if o.parallel {
		if i := o.firstMatingMoveParallel(b, mvs); i >= 0 {
			return true, PlyInOne, []board.Move{mvs[i]}
		}
		return false, PlyNone, nil
	}
	for _, mv := range mvs {
		if o.IsCheckmate(b.Apply(mv)) {
			return true, PlyInOne, []board.Move{mv}
		}
	}
	return false, PlyNone, nil
}

// firstMatingMoveParallel evaluates every candidate and returns the
// lowest mating index, preserving the sequential first-match semantics.
func (o *Oracle) firstMatingMoveParallel(b *board.Board, mvs []board.Move) int {
	mates := make([]bool, len(mvs))
	var wg sync.WaitGroup
	next := make(chan int)
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				mates[i] = o.IsCheckmate(b.Apply(mvs[i]))
			}
		}()
	}
	for i := range mvs {
		next <- i
	}
	close(next)
	wg.Wait()

	for i, mate := range mates {
		if mate {
			return i
		}
	}
	return -1
}

// IsCheckmate is the package-level shorthand using a default Oracle.
func IsCheckmate(b *board.Board) bool {
	return NewOracle().IsCheckmate(b)
}

// FindForcedMate is the package-level shorthand using a default Oracle.
func FindForcedMate(b *board.Board) (bool, int, []board.Move) {
	return NewOracle().FindForcedMate(b)
}
