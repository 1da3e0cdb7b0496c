package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"matecheck/position"
)

var (
	cellLight = color.New(color.FgBlack, color.BgHiWhite)
	cellDark  = color.New(color.FgBlack, color.BgGreen)
	edgeLabel = color.New(color.Bold)
)

// Dump renders the board as a plain ASCII grid with FEN symbols.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.Square{Row: row}.NotationComponentRow()))
		for col := int8(0); col < Width; col++ {
			c := b.cells[row][col]
			sym := c.Piece().SymbolFEN(c.Side())
			if c.IsEmpty() {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := int8(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.Square{Row: 0, Col: col}.NotationComponentCol()))
	}
	return builder.String()
}

// Draw renders the board with unicode pieces on a colored checkerboard.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		_, _ = builder.WriteString(edgeLabel.Sprintf(" %s ", position.Square{Row: row}.NotationComponentRow()))
		for col := int8(0); col < Width; col++ {
			c := b.cells[row][col]
			sym := c.Piece().SymbolUnicode(c.Side())
			if c.IsEmpty() {
				sym = " "
			}
			shade := cellDark
			if (row+col)%2 == 0 {
				shade = cellLight
			}
			_, _ = builder.WriteString(shade.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := int8(0); col < Width; col++ {
		_, _ = builder.WriteString(edgeLabel.Sprintf(" %s ", position.Square{Row: 0, Col: col}.NotationComponentCol()))
	}
	return builder.String()
}
