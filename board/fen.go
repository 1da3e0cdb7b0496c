package board

import (
	"fmt"
	"strconv"
	"strings"

	"matecheck/position"
)

func parseFEN(fen string) (*Board, error) {
	segments := strings.Split(fen, " ")
	if len(segments) < 4 || len(segments) > 6 {
		return nil, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	b := &Board{
		enPassant: position.None,
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return nil, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for row := int8(0); row < Height; row++ {
		col := int8(0)
		for _, sym := range rows[row] {
			if col >= Width {
				return nil, fmt.Errorf("%w: excess cells in row %d", ErrInvalidFEN, row)
			}
			var s Side
			var p Piece
			switch sym {
			case 'P':
				s, p = SideWhite, PiecePawn
			case 'B':
				s, p = SideWhite, PieceBishop
			case 'N':
				s, p = SideWhite, PieceKnight
			case 'R':
				s, p = SideWhite, PieceRook
			case 'Q':
				s, p = SideWhite, PieceQueen
			case 'K':
				s, p = SideWhite, PieceKing
			case 'p':
				s, p = SideBlack, PiecePawn
			case 'b':
				s, p = SideBlack, PieceBishop
			case 'n':
				s, p = SideBlack, PieceKnight
			case 'r':
				s, p = SideBlack, PieceRook
			case 'q':
				s, p = SideBlack, PieceQueen
			case 'k':
				s, p = SideBlack, PieceKing
			default:
				// Only the ASCII run-length digits are valid; anything
				// else, including non-ASCII digits, is rejected.
				if '1' <= sym && sym <= '8' {
					col += int8(sym - '0')
					continue
				}
				return nil, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(sym))
			}
			b.cells[row][col] = newCell(s, p)
			col++
		}
		if col != Width {
			return nil, fmt.Errorf("%w: missing cells in row %d", ErrInvalidFEN, row)
		}
	}
	for _, s := range []Side{SideWhite, SideBlack} {
		if n := b.countKings(s); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings", ErrInvalidFEN, s, n)
		}
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return nil, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return nil, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			b.castleRights.Set(CastleDirectionWhiteRight, true)
		case 'Q':
			b.castleRights.Set(CastleDirectionWhiteLeft, true)
		case 'k':
			b.castleRights.Set(CastleDirectionBlackRight, true)
		case 'q':
			b.castleRights.Set(CastleDirectionBlackLeft, true)
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return nil, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		sq, err := position.NewSquareFromNotation(segments[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid enpassant square: %v", ErrInvalidFEN, err)
		}
		b.enPassant = sq
	}

	// The clocks are optional and default to zero.
	if len(segments) >= 5 {
		halfMoveClock, err := strconv.ParseUint(segments[4], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
		}
		b.halfMoveClock = uint32(halfMoveClock)
	}
	if len(segments) == 6 {
		fullMoveClock, err := strconv.ParseUint(segments[5], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
		}
		b.fullMoveClock = uint32(fullMoveClock)
	}

	return b, nil
}

func (b *Board) countKings(s Side) int {
	n := 0
	for row := int8(0); row < Height; row++ {
		for col := int8(0); col < Width; col++ {
			c := b.cells[row][col]
			if c.Piece() == PieceKing && c.Side() == s {
				n++
			}
		}
	}
	return n
}

func (b *Board) FEN() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		skip := 0
		for col := int8(0); col < Width; col++ {
			c := b.cells[row][col]
			if c.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(c.Piece().SymbolFEN(c.Side()))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if row < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	if b.castleRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		if b.castleRights.IsAllowed(CastleDirectionWhiteRight) {
			_, _ = builder.WriteRune('K')
		}
		if b.castleRights.IsAllowed(CastleDirectionWhiteLeft) {
			_, _ = builder.WriteRune('Q')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackRight) {
			_, _ = builder.WriteRune('k')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackLeft) {
			_, _ = builder.WriteRune('q')
		}
	}
	_, _ = builder.WriteRune(' ')

	if b.enPassant == position.None {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}
