package board

import "matecheck/position"

// generateMoves is the single enumeration operation behind every layer
// of legality. Two modes control how strict it is:
//
//   - castleSafety gates the opponent-cover check on castling
//     candidates. It is the only condition whose evaluation itself
//     enumerates moves, so attack queries run with it disabled.
//   - selfCheck drops moves that leave s's own king attacked afterward,
//     turning pseudo-legal into fully legal.
//
// Attack queries always run with both modes disabled, which is what
// keeps the mutual recursion between generation and attack detection a
// single level deep.
func (b *Board) generateMoves(s Side, castleSafety, selfCheck bool) []Move {
	var mvs []Move
	for row := int8(0); row < Height; row++ {
		for col := int8(0); col < Width; col++ {
			c := b.cells[row][col]
			if c.IsEmpty() || c.Side() != s {
				continue
			}
			from := position.Square{Row: row, Col: col}
			for _, mv := range b.candidatesForPiece(s, c.Piece(), from) {
				if !b.isCandidateLegal(mv, castleSafety) {
					continue
				}
				mvs = append(mvs, mv)
			}
		}
	}

	if selfCheck {
		legal := mvs[:0]
		for _, mv := range mvs {
			if !b.Apply(mv).IsKingChecked(s) {
				legal = append(legal, mv)
			}
		}
		mvs = legal
	}
	return mvs
}

// GeneratePseudoLegalMoves enumerates the side to move's pseudo-legal
// moves: occupancy-consistent, castling-safety checked, but possibly
// leaving the mover's own king attacked.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	return b.generateMoves(b.turn, true, false)
}

// GenerateLegalMoves enumerates the side to move's fully legal moves.
func (b *Board) GenerateLegalMoves() []Move {
	return b.generateMoves(b.turn, true, true)
}

// isCandidateLegal settles a candidate's occupancy conditions against
// the live board; the rule applied is a match over the move kind.
func (b *Board) isCandidateLegal(mv Move, castleSafety bool) bool {
	switch mv.Kind {
	case MoveKindPiece:
		for _, sq := range mv.Path {
			if !b.at(sq).IsEmpty() {
				return false
			}
		}
		return b.emptyOrEnemy(mv.To, mv.Side)

	case MoveKindPawnPush:
		return b.at(mv.To).IsEmpty()

	case MoveKindDoublePush:
		for _, sq := range mv.Path {
			if !b.at(sq).IsEmpty() {
				return false
			}
		}
		return b.at(mv.To).IsEmpty()

	case MoveKindPawnCapture:
		return b.holdsEnemy(mv.To, mv.Side)

	case MoveKindEnPassant:
		return b.at(mv.To).IsEmpty() && b.holdsEnemy(mv.Captured, mv.Side)

	case MoveKindCastle:
		hop := posCastling[mv.Castle]
		for _, sq := range hop.empty {
			if !b.at(sq).IsEmpty() {
				return false
			}
		}
		if castleSafety {
			covered := b.coveredSquares(mv.Side.Opposite())
			for _, sq := range hop.safe {
				if covered[sq] {
					return false
				}
			}
		}
		return true

	default:
		return false
	}
}

func (b *Board) emptyOrEnemy(sq position.Square, s Side) bool {
	c := b.at(sq)
	return c.IsEmpty() || c.Side() != s
}

func (b *Board) holdsEnemy(sq position.Square, s Side) bool {
	c := b.at(sq)
	return !c.IsEmpty() && c.Side() != s
}

// coveredSquares collects the destination squares of s's pseudo-legal
// moves with both enumeration modes disabled.
func (b *Board) coveredSquares(s Side) map[position.Square]bool {
	covered := make(map[position.Square]bool)
	for _, mv := range b.generateMoves(s, false, false) {
		covered[mv.To] = true
	}
	return covered
}

// IsSquareAttacked reports whether sq appears among the destinations of
// by's pseudo-legal moves. Note the occupancy filter still applies: a
// pawn's diagonal only covers sq while an enemy piece occupies it.
func (b *Board) IsSquareAttacked(sq position.Square, by Side) bool {
	for _, mv := range b.generateMoves(by, false, false) {
		if mv.To == sq {
			return true
		}
	}
	return false
}

// IsKingChecked reports whether s's king square is attacked by the
// opponent. Board construction guarantees exactly one king per side.
func (b *Board) IsKingChecked(s Side) bool {
	king, ok := b.findKing(s)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(king, s.Opposite())
}
