package board

import (
	"testing"

	"matecheck/position"
)

func findMove(t *testing.T, b *Board, uci string) Move {
	t.Helper()
	for _, mv := range b.GenerateLegalMoves() {
		if mv.UCI() == uci {
			return mv
		}
	}
	t.Fatalf("move %s not found in legal moves", uci)
	return Move{}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	before := b.FEN()
	_ = b.Apply(findMove(t, b, "e2e4"))
	if got := b.FEN(); got != before {
		t.Errorf("receiver mutated by Apply: got=%s want=%s", got, before)
	}
}

func TestApplyTurnAndClocks(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	if b.Turn() != SideWhite {
		t.Fatal("expected white to move")
	}

	b = b.Apply(findMove(t, b, "g1f3"))
	if b.Turn() != SideBlack {
		t.Error("turn did not flip to black")
	}
	if b.HalfMoveClock() != 1 {
		t.Errorf("unexpected halfmove clock: got=%d want=1", b.HalfMoveClock())
	}
	if b.FullMoveClock() != 1 {
		t.Errorf("fullmove clock incremented on white move: got=%d", b.FullMoveClock())
	}

	b = b.Apply(findMove(t, b, "b8c6"))
	if b.Turn() != SideWhite {
		t.Error("turn did not flip back to white")
	}
	if b.HalfMoveClock() != 2 {
		t.Errorf("unexpected halfmove clock: got=%d want=2", b.HalfMoveClock())
	}
	if b.FullMoveClock() != 2 {
		t.Errorf("fullmove clock not incremented after black move: got=%d", b.FullMoveClock())
	}

	// A pawn push resets the halfmove clock.
	b = b.Apply(findMove(t, b, "e2e4"))
	if b.HalfMoveClock() != 0 {
		t.Errorf("halfmove clock not reset by pawn move: got=%d", b.HalfMoveClock())
	}
}

func TestApplyEnPassantTarget(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")

	b = b.Apply(findMove(t, b, "d7d5"))
	want, _ := position.NewSquareFromNotation("d6")
	if got := b.EnPassantTarget(); got != want {
		t.Errorf("unexpected en passant target: got=%v want=%v", got, want)
	}

	// Any following move clears the target.
	b = b.Apply(findMove(t, b, "e1e2"))
	if got := b.EnPassantTarget(); got != position.None {
		t.Errorf("en passant target not cleared: got=%v", got)
	}
}

func TestApplyEnPassantCapture(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	mv := findMove(t, b, "e5d6")
	if mv.Kind != MoveKindEnPassant {
		t.Fatalf("unexpected move kind: got=%s want=%s", mv.Kind, MoveKindEnPassant)
	}

	after := b.Apply(mv)
	d6, _ := position.NewSquareFromNotation("d6")
	d5, _ := position.NewSquareFromNotation("d5")
	e5, _ := position.NewSquareFromNotation("e5")

	if s, p := after.Get(d6); s != SideWhite || p != PiecePawn {
		t.Errorf("capturing pawn not on d6: side=%v piece=%v", s, p)
	}
	if _, p := after.Get(d5); p != PieceUnknown {
		t.Error("captured pawn still on d5")
	}
	if _, p := after.Get(e5); p != PieceUnknown {
		t.Error("origin square e5 not vacated")
	}
	if after.HalfMoveClock() != 0 {
		t.Errorf("halfmove clock not reset by capture: got=%d", after.HalfMoveClock())
	}
}

func TestApplyCastleMovesRook(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	after := b.Apply(findMove(t, b, "e1g1"))

	for notation, want := range map[string]Piece{
		"g1": PieceKing,
		"f1": PieceRook,
		"e1": PieceUnknown,
		"h1": PieceUnknown,
	} {
		sq, _ := position.NewSquareFromNotation(notation)
		if _, p := after.Get(sq); p != want {
			t.Errorf("unexpected piece on %s: got=%v want=%v", notation, p, want)
		}
	}
	if after.CastleRights().IsAllowed(CastleDirectionWhiteRight) ||
		after.CastleRights().IsAllowed(CastleDirectionWhiteLeft) {
		t.Error("white rights survived castling")
	}
	if !after.CastleRights().IsAllowed(CastleDirectionBlackRight) {
		t.Error("black rights revoked by white castling")
	}
}

func TestApplyRightsRevocation(t *testing.T) {
	t.Parallel()

	// A king move revokes both of that side's rights.
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	after := b.Apply(findMove(t, b, "e1e2"))
	if after.CastleRights().IsAllowed(CastleDirectionWhiteRight) ||
		after.CastleRights().IsAllowed(CastleDirectionWhiteLeft) {
		t.Error("white rights survived king move")
	}
	if !after.CastleRights().IsAllowed(CastleDirectionBlackRight) ||
		!after.CastleRights().IsAllowed(CastleDirectionBlackLeft) {
		t.Error("black rights revoked by white king move")
	}

	// A rook move revokes only its own wing.
	b = mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	after = b.Apply(findMove(t, b, "h1g1"))
	if after.CastleRights().IsAllowed(CastleDirectionWhiteRight) {
		t.Error("kingside right survived rook move")
	}
	if !after.CastleRights().IsAllowed(CastleDirectionWhiteLeft) {
		t.Error("queenside right revoked by kingside rook move")
	}

	// Capturing a rook on its home square revokes the defender's right,
	// and the capturing rook leaving its own home revokes the
	// attacker's too.
	b = mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	after = b.Apply(findMove(t, b, "a8a1"))
	if after.CastleRights().IsAllowed(CastleDirectionWhiteLeft) {
		t.Error("white queenside right survived rook capture on a1")
	}
	if after.CastleRights().IsAllowed(CastleDirectionBlackLeft) {
		t.Error("black queenside right survived rook leaving a8")
	}
	if !after.CastleRights().IsAllowed(CastleDirectionWhiteRight) ||
		!after.CastleRights().IsAllowed(CastleDirectionBlackRight) {
		t.Error("unrelated rights revoked")
	}
}

func TestApplyCaptureResetsClock(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "4k3/8/p7/8/8/8/8/R3K3 w - - 7 12")
	after := b.Apply(findMove(t, b, "a1a6"))
	if after.HalfMoveClock() != 0 {
		t.Errorf("halfmove clock not reset by capture: got=%d", after.HalfMoveClock())
	}
	a6, _ := position.NewSquareFromNotation("a6")
	if s, p := after.Get(a6); s != SideWhite || p != PieceRook {
		t.Errorf("unexpected piece on a6: side=%v piece=%v", s, p)
	}
}
