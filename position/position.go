package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the number of rows and columns on the board.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// None is the sentinel value for an absent square.
	None = Square{Row: -1, Col: -1}
)

// Square addresses a board cell. Row 0 is rank 8 and row 7 is rank 1;
// Col 0 is file a and Col 7 is file h.
type Square struct {
	Row, Col int8
}

func NewSquareFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return None, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return None, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return None, err
	}
	return Square{Row: row, Col: col}, nil
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if !s.Valid() {
		return ""
	}
	return string(rune('a'+s.Col)) + string(rune('8'-s.Row))
}

func (s Square) Valid() bool {
	return 0 <= s.Row && s.Row < MaxComponentScalar && 0 <= s.Col && s.Col < MaxComponentScalar
}

func (s Square) NotationComponentCol() string {
	if s.Col < 0 || MaxComponentScalar <= s.Col {
		return ""
	}
	return string(rune('a' + s.Col))
}

func (s Square) NotationComponentRow() string {
	if s.Row < 0 || MaxComponentScalar <= s.Row {
		return ""
	}
	return string(rune('8' - s.Row))
}

func notationToCol(c byte) (int8, error) {
	col := int8(c - 'a')
	if col < 0 || MaxComponentScalar <= col {
		return 0, ErrInvalidNotation
	}
	return col, nil
}

func notationToRow(r byte) (int8, error) {
	rank := int8(r - '0')
	if rank < 1 || MaxComponentScalar < rank {
		return 0, ErrInvalidNotation
	}
	return MaxComponentScalar - rank, nil
}
