package board

import "matecheck/position"

type step struct {
	dr, dc int8
}

var (
	rookSteps   = []step{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopSteps = []step{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightSteps = []step{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingSteps   = []step{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// candidatesForPiece produces every geometrically possible move for the
// piece on from, ignoring board occupancy. Occupancy conditions travel
// on the candidates and are settled by the legality filter.
func (b *Board) candidatesForPiece(s Side, p Piece, from position.Square) []Move {
	switch p {
	case PieceRook:
		return slideCandidates(s, p, from, rookSteps, Height-1)
	case PieceBishop:
		return slideCandidates(s, p, from, bishopSteps, Height-1)
	case PieceQueen:
		return append(
			slideCandidates(s, p, from, bishopSteps, Height-1),
			slideCandidates(s, p, from, rookSteps, Height-1)...,
		)
	case PieceKnight:
		return slideCandidates(s, p, from, knightSteps, 1)
	case PieceKing:
		return b.kingCandidates(s, from)
	case PiecePawn:
		return b.pawnCandidates(s, from)
	default:
		return nil
	}
}

// slideCandidates walks each ray outward up to maxSteps cells, clipping
// at the board edge. Every square strictly between origin and
// destination rides along as a must-be-empty condition; the destination
// itself is left to the filter's empty-or-enemy rule, which is what
// distinguishes a capture from a blocked ray.
func slideCandidates(s Side, p Piece, from position.Square, steps []step, maxSteps int8) []Move {
	var mvs []Move
	for _, st := range steps {
		for n := int8(1); n <= maxSteps; n++ {
			to := position.Square{Row: from.Row + n*st.dr, Col: from.Col + n*st.dc}
			if !to.Valid() {
				break
			}
			var path []position.Square
			for i := int8(1); i < n; i++ {
				path = append(path, position.Square{Row: from.Row + i*st.dr, Col: from.Col + i*st.dc})
			}
			mvs = append(mvs, Move{
				Kind:  MoveKindPiece,
				Side:  s,
				Piece: p,
				From:  from,
				To:    to,
				Path:  path,
			})
		}
	}
	return mvs
}

func (b *Board) kingCandidates(s Side, from position.Square) []Move {
	mvs := slideCandidates(s, PieceKing, from, kingSteps, 1)

	if !b.castleRights.IsSideAllowed(s) {
		return mvs
	}
	ds := []CastleDirection{
		CastleDirectionWhiteRight, CastleDirectionWhiteLeft,
		CastleDirectionBlackRight, CastleDirectionBlackLeft,
	}
	for _, d := range ds {
		if d.IsWhite() != (s == SideWhite) {
			continue
		}
		hop := posCastling[d]
		if b.castleRights.IsAllowed(d) && from == hop.kingFrom {
			mvs = append(mvs, Move{
				Kind:   MoveKindCastle,
				Side:   s,
				Piece:  PieceKing,
				From:   hop.kingFrom,
				To:     hop.kingTo,
				Castle: d,
			})
		}
	}
	return mvs
}

func (b *Board) pawnCandidates(s Side, from position.Square) []Move {
	var mvs []Move
	forward := s.forwardRowDelta()

	// Single push. A pawn stranded on the final rank (promotion is not
	// modeled) simply generates nothing forward.
	if to := (position.Square{Row: from.Row + forward, Col: from.Col}); to.Valid() {
		mvs = append(mvs, Move{
			Kind:  MoveKindPawnPush,
			Side:  s,
			Piece: PiecePawn,
			From:  from,
			To:    to,
		})
	}

	// Diagonal captures, clipped at both edges.
	for _, dc := range []int8{1, -1} {
		if to := (position.Square{Row: from.Row + forward, Col: from.Col + dc}); to.Valid() {
			mvs = append(mvs, Move{
				Kind:  MoveKindPawnCapture,
				Side:  s,
				Piece: PiecePawn,
				From:  from,
				To:    to,
			})
		}
	}

	// Double push from the start rank. The transit square doubles as the
	// en-passant target handed to the mutator.
	if from.Row == s.pawnStartRow() {
		transit := position.Square{Row: from.Row + forward, Col: from.Col}
		to := position.Square{Row: from.Row + 2*forward, Col: from.Col}
		mvs = append(mvs, Move{
			Kind:      MoveKindDoublePush,
			Side:      s,
			Piece:     PiecePawn,
			From:      from,
			To:        to,
			Path:      []position.Square{transit},
			EnPassant: transit,
		})
	}

	// En-passant capture when an adjacent diagonal hits the live target.
	// The captured pawn sits behind the target square, not on it.
	for _, dc := range []int8{-1, 1} {
		to := position.Square{Row: from.Row + forward, Col: from.Col + dc}
		if to.Valid() && to == b.enPassant {
			mvs = append(mvs, Move{
				Kind:     MoveKindEnPassant,
				Side:     s,
				Piece:    PiecePawn,
				From:     from,
				To:       to,
				Captured: position.Square{Row: to.Row - forward, Col: to.Col},
			})
		}
	}

	return mvs
}
