package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"patzer/game"
	"patzer/position"
)

const (
	cellPx  = 60
	boardPx = cellPx * position.Size

	fillLight    = "#f0d9b5"
	fillDark     = "#b58863"
	fillSelected = "#7cfc00"
	fillLegal    = "#add8e6"
)

// SVG writes the snapshot as a self-contained SVG document, one rect per
// square with the piece glyph drawn on top.
func SVG(w io.Writer, snap game.Snapshot) {
	canvas := svg.New(w)
	canvas.Start(boardPx, boardPx)
	for row := 0; row < position.Size; row++ {
		for col := 0; col < position.Size; col++ {
			sq := position.Square{Row: row, Col: col}
			canvas.Rect(col*cellPx, row*cellPx, cellPx, cellPx, "fill:"+cellFill(snap, sq))
			if cell := snap.Grid[row][col]; cell != nil {
				canvas.Text(col*cellPx+cellPx/2, row*cellPx+cellPx*3/4,
					cell.Kind.SymbolUnicode(cell.Side),
					"font-size:44px;text-anchor:middle")
			}
		}
	}
	canvas.End()
}

func cellFill(snap game.Snapshot, sq position.Square) string {
	switch {
	case snap.Selected != nil && *snap.Selected == sq:
		return fillSelected
	case containsSquare(snap.Legal, sq):
		return fillLegal
	case (sq.Row+sq.Col)%2 == 0:
		return fillLight
	default:
		return fillDark
	}
}
