package board

import (
	"errors"

	"matecheck/position"
)

const (
	Width  = position.MaxComponentScalar
	Height = position.MaxComponentScalar

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// Board is one chess position: the 8x8 cell grid plus side to move,
// castling rights, en-passant target, and the move clocks. Boards are
// values threaded functionally; Apply returns a new Board and never
// mutates the one a caller holds.
type Board struct {
	cells [8][8]cell

	turn          Side
	castleRights  CastleRights
	enPassant     position.Square // position.None when unset
	halfMoveClock uint32
	fullMoveClock uint32
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	return parseFEN(cfg.fen)
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassantTarget returns the current en-passant target square, or
// position.None when no double push happened last ply.
func (b *Board) EnPassantTarget() position.Square {
	return b.enPassant
}

func (b *Board) HalfMoveClock() uint32 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint32 {
	return b.fullMoveClock
}

// Get returns the piece occupying sq, or (SideUnknown, PieceUnknown) for
// an empty square.
func (b *Board) Get(sq position.Square) (Side, Piece) {
	c := b.cells[sq.Row][sq.Col]
	return c.Side(), c.Piece()
}

func (b *Board) at(sq position.Square) cell {
	return b.cells[sq.Row][sq.Col]
}

func (b *Board) set(sq position.Square, c cell) {
	b.cells[sq.Row][sq.Col] = c
}

func (b *Board) findKing(s Side) (position.Square, bool) {
	for row := int8(0); row < Height; row++ {
		for col := int8(0); col < Width; col++ {
			c := b.cells[row][col]
			if c.Piece() == PieceKing && c.Side() == s {
				return position.Square{Row: row, Col: col}, true
			}
		}
	}
	return position.None, false
}

func (b *Board) clone() *Board {
	bb := *b
	return &bb
}

// Apply plays an already-filtered-legal move and returns the resulting
// position. The receiver is left untouched.
func (b *Board) Apply(mv Move) *Board {
	bb := b.clone()

	if mv.Kind == MoveKindCastle {
		hop := posCastling[mv.Castle]
		king := bb.at(hop.kingFrom)
		rook := bb.at(hop.rookFrom)
		bb.set(hop.kingFrom, 0)
		bb.set(hop.rookFrom, 0)
		bb.set(hop.kingTo, king)
		bb.set(hop.rookTo, rook)
	} else {
		moved := bb.at(mv.From)
		bb.set(mv.From, 0)
		bb.set(mv.To, moved)
		if mv.Kind == MoveKindEnPassant {
			// The captured pawn sits on the move's own capture square,
			// one rank behind the destination, never on To itself.
			bb.set(mv.Captured, 0)
		}
	}

	// A king move burns both of its side's rights. Any move that starts
	// or ends on a rook home square burns that square's right, covering
	// both rook departures and captures of the rook, for both sides.
	if mv.Piece == PieceKing {
		if mv.Side == SideWhite {
			bb.castleRights.Set(CastleDirectionWhiteRight, false)
			bb.castleRights.Set(CastleDirectionWhiteLeft, false)
		} else {
			bb.castleRights.Set(CastleDirectionBlackRight, false)
			bb.castleRights.Set(CastleDirectionBlackLeft, false)
		}
	}
	for _, home := range rookHomes {
		if mv.From == home.square || mv.To == home.square {
			bb.castleRights.Set(home.right, false)
		}
	}

	// En-passant availability never survives more than one ply.
	if mv.Kind == MoveKindDoublePush {
		bb.enPassant = mv.EnPassant
	} else {
		bb.enPassant = position.None
	}

	if mv.Piece == PiecePawn || mv.Kind == MoveKindEnPassant || !b.at(mv.To).IsEmpty() {
		bb.halfMoveClock = 0
	} else {
		bb.halfMoveClock++
	}
	if b.turn == SideBlack {
		bb.fullMoveClock++
	}

	bb.turn = b.turn.Opposite()
	return bb
}
