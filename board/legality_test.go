package board

import (
	"testing"

	"matecheck/position"
)

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := NewBoard(WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b
}

func containsUCI(mvs []Move, uci string) bool {
	for _, mv := range mvs {
		if mv.UCI() == uci {
			return true
		}
	}
	return false
}

func TestGenerateLegalMovesStartPosition(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	mvs := b.GenerateLegalMoves()
	if len(mvs) != 20 {
		t.Errorf("unexpected legal move count: got=%d want=20", len(mvs))
	}
}

func TestSlidingBlockedAndCapture(t *testing.T) {
	t.Parallel()
	// White rook a1, white pawn a3, black pawn a6.
	b := mustBoard(t, "4k3/8/p7/8/8/P7/8/R3K3 w - - 0 1")
	mvs := b.GenerateLegalMoves()

	if !containsUCI(mvs, "a1a2") {
		t.Error("expected a1a2 in legal moves")
	}
	// Blocked by own pawn on a3.
	if containsUCI(mvs, "a1a3") || containsUCI(mvs, "a1a4") {
		t.Error("rook slides through or onto own pawn")
	}

	// With the pawn out of the way the ray runs to the enemy pawn and
	// stops there.
	b = mustBoard(t, "4k3/8/p7/8/8/8/8/R3K3 w - - 0 1")
	mvs = b.GenerateLegalMoves()
	if !containsUCI(mvs, "a1a6") {
		t.Error("expected capture a1a6 in legal moves")
	}
	if containsUCI(mvs, "a1a7") || containsUCI(mvs, "a1a8") {
		t.Error("rook slides through enemy pawn")
	}
}

func TestCastlingLegality(t *testing.T) {
	t.Parallel()

	// Kings and rooks home, all rights, nothing in the way: both wings
	// castle.
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mvs := b.GenerateLegalMoves()
	if !containsUCI(mvs, "e1g1") {
		t.Error("expected kingside castle e1g1")
	}
	if !containsUCI(mvs, "e1c1") {
		t.Error("expected queenside castle e1c1")
	}

	// An attacker covering the kingside transit square removes exactly
	// that wing.
	b = mustBoard(t, "r3k2r/8/8/5r2/8/8/8/R3K2R w KQkq - 0 1")
	mvs = b.GenerateLegalMoves()
	if containsUCI(mvs, "e1g1") {
		t.Error("kingside castle through attacked f1")
	}
	if !containsUCI(mvs, "e1c1") {
		t.Error("expected queenside castle e1c1 to survive")
	}

	// A piece on the rook transit square blocks queenside castling even
	// though the king never crosses b1.
	b = mustBoard(t, "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1")
	mvs = b.GenerateLegalMoves()
	if containsUCI(mvs, "e1c1") {
		t.Error("queenside castle with b1 occupied")
	}
	if !containsUCI(mvs, "e1g1") {
		t.Error("expected kingside castle e1g1 to survive")
	}

	// Without the rights no castle is offered regardless of geometry.
	b = mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1")
	mvs = b.GenerateLegalMoves()
	if containsUCI(mvs, "e1g1") || containsUCI(mvs, "e1c1") {
		t.Error("castle offered without rights")
	}
}

func TestIsSquareAttacked(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "4k3/8/8/5r2/8/8/8/4K3 w - - 0 1")

	f1, _ := position.NewSquareFromNotation("f1")
	if !b.IsSquareAttacked(f1, SideBlack) {
		t.Error("expected f1 to be covered by the f5 rook")
	}
	a1, _ := position.NewSquareFromNotation("a1")
	if b.IsSquareAttacked(a1, SideBlack) {
		t.Error("a1 is not covered by anything")
	}
}

func TestCheckDetection(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		side Side
		want bool
	}{
		{
			name: "start position no check",
			fen:  DefaultStartingPositionFEN,
			side: SideWhite,
			want: false,
		},
		{
			name: "bishop check on diagonal",
			fen:  "4k3/8/8/8/7b/8/6P1/4K3 w - - 0 1",
			side: SideWhite,
			want: true,
		},
		{
			name: "blocked slider is no check",
			fen:  "4k3/8/8/8/7b/6P1/8/4K3 w - - 0 1",
			side: SideWhite,
			want: false,
		},
		{
			name: "pawn check",
			fen:  "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1",
			side: SideWhite,
			want: true,
		},
		{
			name: "knight check",
			fen:  "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1",
			side: SideWhite,
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			if got := b.IsKingChecked(tt.side); got != tt.want {
				t.Errorf("unexpected check verdict: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestCheckEvasionsOnly(t *testing.T) {
	t.Parallel()
	// White in check from the h4 bishop; every legal move must resolve
	// the check, and the g3 block must be among them.
	b := mustBoard(t, "4k3/8/8/8/7b/8/6P1/4K3 w - - 0 1")
	mvs := b.GenerateLegalMoves()
	if len(mvs) == 0 {
		t.Fatal("expected legal moves")
	}
	if !containsUCI(mvs, "g2g3") {
		t.Error("expected blocking move g2g3")
	}
	for _, mv := range mvs {
		if b.Apply(mv).IsKingChecked(SideWhite) {
			t.Errorf("move %s leaves own king in check", mv.UCI())
		}
	}
}

func TestGeneratePseudoLegalMoves(t *testing.T) {
	t.Parallel()
	// The e4 knight is pinned by the e8 rook: its moves are pseudo-legal
	// but filtered out of the fully legal set.
	b := mustBoard(t, "4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1")

	pseudo := b.GeneratePseudoLegalMoves()
	if !containsUCI(pseudo, "e4c5") {
		t.Error("expected pinned knight move e4c5 among pseudo-legal moves")
	}

	legal := b.GenerateLegalMoves()
	if containsUCI(legal, "e4c5") {
		t.Error("pinned knight move e4c5 in fully legal moves")
	}
	if len(legal) >= len(pseudo) {
		t.Errorf("expected self-check filter to shrink the move set: pseudo=%d legal=%d",
			len(pseudo), len(legal))
	}
	for _, mv := range legal {
		if !containsUCI(pseudo, mv.UCI()) {
			t.Errorf("legal move %s missing from pseudo-legal set", mv.UCI())
		}
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	t.Parallel()
	// The e4 knight is pinned against the white king by the e8 rook.
	b := mustBoard(t, "4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1")
	mvs := b.GenerateLegalMoves()
	for _, mv := range mvs {
		if mv.From.Notation() == "e4" {
			t.Errorf("pinned knight moved: %s", mv.UCI())
		}
	}
}
