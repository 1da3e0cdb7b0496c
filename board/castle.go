package board

import "matecheck/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

type CastleRights uint8

var maskCastleRights = [5]CastleRights{
	0,
	0b1000, // CastleDirectionWhiteRight
	0b0100, // CastleDirectionWhiteLeft
	0b0010, // CastleDirectionBlackRight
	0b0001, // CastleDirectionBlackLeft
}

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteRight]|maskCastleRights[CastleDirectionWhiteLeft]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackRight]|maskCastleRights[CastleDirectionBlackLeft]) != 0
}

// castleHop describes the fixed geometry of one castling move: the king
// and rook relocations, the squares that must be empty, and the squares
// the opponent must not cover (king origin, transit, and destination;
// the rook transit square only needs to be empty).
type castleHop struct {
	kingFrom, kingTo position.Square
	rookFrom, rookTo position.Square
	empty            []position.Square
	safe             []position.Square
}

var posCastling = [5]castleHop{
	CastleDirectionWhiteRight: {
		kingFrom: position.Square{Row: 7, Col: 4},
		kingTo:   position.Square{Row: 7, Col: 6},
		rookFrom: position.Square{Row: 7, Col: 7},
		rookTo:   position.Square{Row: 7, Col: 5},
		empty:    []position.Square{{Row: 7, Col: 5}, {Row: 7, Col: 6}},
		safe:     []position.Square{{Row: 7, Col: 4}, {Row: 7, Col: 5}, {Row: 7, Col: 6}},
	},
	CastleDirectionWhiteLeft: {
		kingFrom: position.Square{Row: 7, Col: 4},
		kingTo:   position.Square{Row: 7, Col: 2},
		rookFrom: position.Square{Row: 7, Col: 0},
		rookTo:   position.Square{Row: 7, Col: 3},
		empty:    []position.Square{{Row: 7, Col: 1}, {Row: 7, Col: 2}, {Row: 7, Col: 3}},
		safe:     []position.Square{{Row: 7, Col: 2}, {Row: 7, Col: 3}, {Row: 7, Col: 4}},
	},
	CastleDirectionBlackRight: {
		kingFrom: position.Square{Row: 0, Col: 4},
		kingTo:   position.Square{Row: 0, Col: 6},
		rookFrom: position.Square{Row: 0, Col: 7},
		rookTo:   position.Square{Row: 0, Col: 5},
		empty:    []position.Square{{Row: 0, Col: 5}, {Row: 0, Col: 6}},
		safe:     []position.Square{{Row: 0, Col: 4}, {Row: 0, Col: 5}, {Row: 0, Col: 6}},
	},
	CastleDirectionBlackLeft: {
		kingFrom: position.Square{Row: 0, Col: 4},
		kingTo:   position.Square{Row: 0, Col: 2},
		rookFrom: position.Square{Row: 0, Col: 0},
		rookTo:   position.Square{Row: 0, Col: 3},
		empty:    []position.Square{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}},
		safe:     []position.Square{{Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}},
	},
}

// rookHomes maps each rook home square to the castling right it anchors.
// A move touching one of these squares, from either end, revokes the
// right for good.
var rookHomes = [...]struct {
	square position.Square
	right  CastleDirection
}{
	{position.Square{Row: 7, Col: 7}, CastleDirectionWhiteRight},
	{position.Square{Row: 7, Col: 0}, CastleDirectionWhiteLeft},
	{position.Square{Row: 0, Col: 7}, CastleDirectionBlackRight},
	{position.Square{Row: 0, Col: 0}, CastleDirectionBlackLeft},
}
