package worksheet

// DOMCell is one flattened, by-value entry of the worksheet's rendering
// projection: either a fixed decoration (an HRP letter, the '1' separator,
// a row's leading '='/'+' symbol) or a live, editable cell.
type DOMCell struct {
	Kind  string // "fixed_hrp", "separator", "symbol", or a cell role string
	ID    string // empty for decorations
	Row   int
	Col   int
	X, Y  int
	Glyph string // decoration glyph, or the cell's current character
}

func glyphOf(c Cell) string {
	if !c.Set {
		return ""
	}
	return string(c.Val.Char())
}

// DOMCells flattens the worksheet into a coordinate list suitable for an
// initial render: row 0's HRP letters and separator, then for every row a
// leading staircase symbol, then the row's own cells.
func (ws *Worksheet) DOMCells() []DOMCell {
	h := len(ws.HRP)
	var out []DOMCell

	x := 0
	for i := 0; i < h; i++ {
		out = append(out, DOMCell{Kind: "fixed_hrp", Row: 0, Col: i, X: x, Y: 0, Glyph: string(ws.HRP[i])})
		x++
	}
	out = append(out, DOMCell{Kind: "separator", Row: 0, Col: h, X: x, Y: 0, Glyph: "1"})

	for r, row := range ws.Rows {
		if r > 0 {
			glyph := "="
			if r%2 == 1 {
				glyph = "+"
			}
			out = append(out, DOMCell{Kind: "symbol", Row: r, X: h + row.Offset - 1, Y: r, Glyph: glyph})
		}
		for c, cell := range row.Cells {
			out = append(out, DOMCell{
				Kind:  cell.domRole(),
				ID:    cell.ID,
				Row:   r,
				Col:   c,
				X:     h + 1 + row.Offset + c,
				Y:     r,
				Glyph: glyphOf(cell),
			})
		}
	}
	return out
}
