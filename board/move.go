package board

import "matecheck/position"

// MoveKind discriminates candidate moves. The legality filter and the
// mutator switch over the kind; each kind only reads the fields it names.
type MoveKind uint8

const (
	// MoveKindPiece covers slides and steps: every square on Path must be
	// empty and To must be empty or hold an enemy piece.
	MoveKindPiece MoveKind = iota

	// MoveKindPawnPush requires To to be strictly empty.
	MoveKindPawnPush

	// MoveKindDoublePush requires the transit square and To to be empty
	// and installs an en-passant target on the transit square.
	MoveKindDoublePush

	// MoveKindPawnCapture requires To to hold an enemy piece.
	MoveKindPawnCapture

	// MoveKindEnPassant requires To to be empty and Captured to hold an
	// enemy piece; applying it clears Captured, not To.
	MoveKindEnPassant

	// MoveKindCastle relocates king and rook per the Castle direction's
	// fixed geometry; its transit squares must be empty and, when safety
	// checking is enabled, uncovered by the opponent.
	MoveKindCastle
)

func (k MoveKind) String() string {
	switch k {
	case MoveKindPiece:
		return "Piece"
	case MoveKindPawnPush:
		return "PawnPush"
	case MoveKindDoublePush:
		return "DoublePush"
	case MoveKindPawnCapture:
		return "PawnCapture"
	case MoveKindEnPassant:
		return "EnPassant"
	case MoveKindCastle:
		return "Castle"
	default:
		return ""
	}
}

// Move is a candidate move produced by the generators. It carries the
// occupancy conditions needed to approve it against a live board, not a
// board snapshot: legality is always re-evaluated at filter time.
type Move struct {
	Kind  MoveKind
	Side  Side
	Piece Piece

	From, To position.Square

	// Path lists the squares strictly between From and To that must be
	// empty (MoveKindPiece slides, MoveKindDoublePush transit).
	Path []position.Square

	// Captured is the square cleared by an en-passant capture. It differs
	// from To: the captured pawn sits one rank behind the destination.
	Captured position.Square

	// EnPassant is the target installed after a double push.
	EnPassant position.Square

	// Castle selects the fixed castling geometry in posCastling.
	Castle CastleDirection
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	if m.Kind == MoveKindCastle {
		if m.Castle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.Kind == MoveKindPawnCapture || m.Kind == MoveKindEnPassant {
		nt += m.From.NotationComponentCol() + "x"
	}
	nt += m.To.Notation()
	if m.Kind == MoveKindEnPassant {
		nt += " e.p."
	}
	return nt
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation()
}
