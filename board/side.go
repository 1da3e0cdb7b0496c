package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// forwardRowDelta is the row direction a side's pawns advance in.
// Row 0 is the black back rank, so White pawns move toward smaller rows.
func (s Side) forwardRowDelta() int8 {
	if s == SideWhite {
		return -1
	}
	return 1
}

// pawnStartRow is the row a side's pawns start on.
func (s Side) pawnStartRow() int8 {
	if s == SideWhite {
		return 6
	}
	return 1
}
