package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"patzer/game"
	"patzer/position"
)

var (
	lightCell    = color.New(color.FgBlack, color.BgHiWhite)
	darkCell     = color.New(color.FgBlack, color.BgHiGreen)
	selectedCell = color.New(color.FgBlack, color.BgHiYellow)
	legalCell    = color.New(color.FgBlack, color.BgHiCyan)
	boardLabel   = color.New(color.Bold)
)

// Terminal renders the snapshot as a colored checkerboard for ANSI
// terminals, rank 8 at the top. The selected square and its legal
// destinations carry their own highlight.
func Terminal(snap game.Snapshot) string {
	builder := strings.Builder{}
	for row := 0; row < position.Size; row++ {
		_, _ = builder.WriteString(boardLabel.Sprintf(" %d ", position.Size-row))
		for col := 0; col < position.Size; col++ {
			sym := " "
			if cell := snap.Grid[row][col]; cell != nil {
				sym = cell.Kind.SymbolUnicode(cell.Side)
			}
			_, _ = builder.WriteString(cellColor(snap, position.Square{Row: row, Col: col}).Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := 0; col < position.Size; col++ {
		_, _ = builder.WriteString(boardLabel.Sprintf(" %c ", 'a'+col))
	}
	return builder.String()
}

// Status is the one-line turn summary shown under the board.
func Status(snap game.Snapshot) string {
	return fmt.Sprintf("%s to move (%s)", snap.Turn, snap.Mode)
}

func cellColor(snap game.Snapshot, sq position.Square) *color.Color {
	switch {
	case snap.Selected != nil && *snap.Selected == sq:
		return selectedCell
	case containsSquare(snap.Legal, sq):
		return legalCell
	case (sq.Row+sq.Col)%2 == 0:
		return lightCell
	default:
		return darkCell
	}
}

func containsSquare(squares []position.Square, sq position.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
