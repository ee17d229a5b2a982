package engine

import (
	"unicode"

	"seedhammer.com/gf32"
	"seedhammer.com/worksheet"
)

// HandleInputChange applies a single-character edit at (row, col) of ws and
// returns the ordered action stream it implies. An empty raw string clears
// the cell and does not re-propagate. Edits that cannot be parsed as a
// single bech32-alphabet character are not errors: they produce a
// FlashError action and leave the worksheet unchanged.
func HandleInputChange(ws *worksheet.Worksheet, row, col int, raw string) ([]Action, error) {
	if row < 0 || row >= ws.NRows() {
		return nil, &worksheet.InvalidRowError{Row: row, NRows: ws.NRows()}
	}
	if col < 0 || col >= ws.NCells(row) {
		return nil, &worksheet.InvalidCellError{Row: row, Cell: col, NCells: ws.NCells(row)}
	}
	cell := ws.Cell(row, col)

	if raw == "" {
		cell.Set = false
		cell.Val = gf32.Zero()
		return nil, nil
	}
	if len(raw) != 1 {
		return []Action{{Type: FlashError, ID: cell.ID}}, nil
	}
	ch := rune(raw[0])
	if ch > unicode.MaxASCII {
		return []Action{{Type: FlashError, ID: cell.ID}}, nil
	}
	up := unicode.ToUpper(ch)
	fe, err := gf32.ParseChar(up)
	if err != nil {
		return []Action{{Type: FlashError, ID: cell.ID}}, nil
	}

	var actions []Action
	cell.Val = fe
	cell.Set = true
	if up != ch {
		actions = append(actions, Action{Type: FlashSet, ID: cell.ID, Value: byte(up), HasValue: true})
	}

	q := &dq{}
	q.pushBack(coord{row, col})
	for !q.empty() {
		cur := q.popFront()
		actions = propagateOne(ws, cur, q, actions)
	}
	return actions, nil
}

// propagateOne processes one dequeued coordinate, dispatching on
// (role, is_checksum, local column).
func propagateOne(ws *worksheet.Worksheet, cur coord, q *dq, actions []Action) []Action {
	cell := ws.Cell(cur.row, cur.col)
	if !cell.Set {
		return actions
	}

	switch {
	case cell.Role == worksheet.Sum && (cur.col == 0 || cur.col == 1):
		return lowerDiagonalTrigger(ws, cur.row, q, actions)

	case (cell.Role == worksheet.Sum || cell.Role == worksheet.ShareData) && !cell.IsChecksum:
		return forwardSum(ws, cur, q, actions)

	case (cell.Role == worksheet.Sum || cell.Role == worksheet.ShareData) && cell.IsChecksum:
		return backwardSum(ws, cur, q, actions)

	case cell.Role == worksheet.Residue && !cell.IsChecksum:
		return residueDataSide(ws, cur, q, actions)

	case cell.Role == worksheet.Residue && cell.IsChecksum:
		return residueChecksumSide(ws, cur, q, actions)

	case cell.Role == worksheet.GlobalResidue:
		panic("engine: propagation reached a GlobalResidue cell as an input")
	}
	return actions
}

func writeIfChanged(ws *worksheet.Worksheet, at coord, val gf32.Fe, actions []Action) ([]Action, bool) {
	target := ws.Cell(at.row, at.col)
	if target.Set && target.Val == val {
		return actions, false
	}
	target.Val = val
	target.Set = true
	return append(actions, Action{Type: Set, ID: target.ID, Value: val.Char(), HasValue: true}), true
}

func lowerDiagonalTrigger(ws *worksheet.Worksheet, row int, q *dq, actions []Action) []Action {
	c0, c1 := ws.Cell(row, 0), ws.Cell(row, 1)
	if !c0.Set || !c1.Set {
		return actions
	}
	l := ws.Checksum.Len()
	poly := gf32.Poly{c0.Val, c1.Val}.MulByX(l)
	residue := poly.ReduceMod(ws.Checksum.Generator())
	for n := 0; n < len(residue); n++ {
		at := coord{row + 1, n}
		var changed bool
		actions, changed = writeIfChanged(ws, at, residue[n], actions)
		if changed {
			q.pushBack(at)
		}
	}
	return actions
}

func forwardSum(ws *worksheet.Worksheet, cur coord, q *dq, actions []Action) []Action {
	br, bc, ok := ws.CellBelow(cur.row, cur.col)
	if !ok {
		return actions
	}
	below := ws.Cell(br, bc)
	if !below.Set {
		return actions
	}
	b2r, b2c, ok := ws.CellBelow(br, bc)
	if !ok {
		return actions
	}
	val := ws.Cell(cur.row, cur.col).Val.Add(below.Val)
	var changed bool
	actions, changed = writeIfChanged(ws, coord{b2r, b2c}, val, actions)
	if changed {
		q.pushFront(coord{b2r, b2c})
	}
	return actions
}

func backwardSum(ws *worksheet.Worksheet, cur coord, q *dq, actions []Action) []Action {
	ar, ac, ok := ws.CellAbove(cur.row, cur.col)
	if !ok {
		return actions
	}
	above := ws.Cell(ar, ac)
	if !above.Set {
		return actions
	}
	a2r, a2c, ok := ws.CellAbove(ar, ac)
	if !ok {
		return actions
	}
	val := ws.Cell(cur.row, cur.col).Val.Add(above.Val)
	var changed bool
	actions, changed = writeIfChanged(ws, coord{a2r, a2c}, val, actions)
	if changed {
		q.pushFront(coord{a2r, a2c})
	}
	return actions
}

func residueDataSide(ws *worksheet.Worksheet, cur coord, q *dq, actions []Action) []Action {
	ar, ac, aok := ws.CellAbove(cur.row, cur.col)
	br, bc, bok := ws.CellBelow(cur.row, cur.col)
	if !aok || !bok {
		return actions
	}
	above := ws.Cell(ar, ac)
	if !above.Set {
		return actions
	}
	val := ws.Cell(cur.row, cur.col).Val.Add(above.Val)
	var changed bool
	actions, changed = writeIfChanged(ws, coord{br, bc}, val, actions)
	if changed {
		q.pushFront(coord{br, bc})
	}
	return actions
}

func residueChecksumSide(ws *worksheet.Worksheet, cur coord, q *dq, actions []Action) []Action {
	br, bc, bok := ws.CellBelow(cur.row, cur.col)
	if !bok {
		return actions
	}
	below := ws.Cell(br, bc)
	if !below.Set {
		return actions
	}
	ar, ac, aok := ws.CellAbove(cur.row, cur.col)
	if !aok {
		return actions
	}
	val := ws.Cell(cur.row, cur.col).Val.Add(below.Val)
	var changed bool
	actions, changed = writeIfChanged(ws, coord{ar, ac}, val, actions)
	if changed {
		q.pushBack(coord{ar, ac})
	}
	return actions
}
