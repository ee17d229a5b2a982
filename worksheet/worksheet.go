// package worksheet builds and describes the staircase of cells that make
// up a bech32/codex32 checksum worksheet: the shape derived from an HRP,
// a total size and a checksum kind, laid out by the builder and walked by
// the geometry helpers.
package worksheet

import (
	"fmt"

	"seedhammer.com/gf32"
)

// Checksum selects the BCH code family a worksheet is built for.
type Checksum int

const (
	Bech32 Checksum = iota
	Codex32
)

// Len returns the residue length of the checksum family: 6 for bech32,
// 13 for codex32.
func (k Checksum) Len() int {
	switch k {
	case Codex32:
		return len(gf32.CodexGenerator)
	default:
		return len(gf32.BechGenerator)
	}
}

// Generator returns the fixed generator polynomial for the checksum family.
func (k Checksum) Generator() gf32.Poly {
	switch k {
	case Codex32:
		return gf32.CodexGenerator
	default:
		return gf32.BechGenerator
	}
}

// HRPResidue computes the residue contributed by hrp alone, before any
// data characters are mixed in.
func (k Checksum) HRPResidue(hrp string) gf32.Poly {
	switch k {
	case Codex32:
		return gf32.CodexHRPResidue(hrp)
	default:
		return gf32.BechHRPResidue(hrp)
	}
}

// fixedLiteral is the create-mode value of the final (GlobalResidue) row.
func (k Checksum) fixedLiteral() string {
	switch k {
	case Codex32:
		return "SECRETSHARE32"
	default:
		return "QQQQQP"
	}
}

func (k Checksum) String() string {
	if k == Codex32 {
		return "codex32"
	}
	return "bech32"
}

// Mode selects whether the final row is pre-filled with the fixed literal
// ("create") or starts empty and is populated through propagation
// ("verify").
type Mode int

const (
	Create Mode = iota
	Verify
)

// Role is the kind of quantity a cell holds.
type Role int

const (
	ShareData Role = iota
	Sum
	Residue
	GlobalResidue
)

// Cell is a single tagged entry in the worksheet.
type Cell struct {
	Role       Role
	IsChecksum bool
	ID         string
	Val        gf32.Fe
	Set        bool
}

func (c Cell) domRole() string {
	suffix := ""
	if c.IsChecksum {
		suffix = "_checksum"
	}
	switch c.Role {
	case ShareData:
		return "share_data" + suffix
	case Sum:
		return "sum" + suffix
	case Residue:
		return "residue"
	default:
		return "global_residue"
	}
}

// Row is a horizontal run of cells. Offset is the staircase offset used
// to compute each cell's absolute column (for is_checksum tagging and DOM
// layout); CellAbove/CellBelow do not read it and work from the row index
// and row lengths alone.
type Row struct {
	Offset int
	Cells  []Cell
}

// Worksheet is the immutable shape (hrp, size, checksum, share index) plus
// a mutable row list.
type Worksheet struct {
	HRP        string
	Size       int
	Checksum   Checksum
	Mode       Mode
	ShareIndex int
	Rows       []Row
}

func cellID(share, row, col int) string {
	return fmt.Sprintf("inp_%d_%d_%d", share, row, col)
}

// New builds a worksheet for the given hrp, total size and checksum kind.
// It fails with TooShortError when size < h+L, and OddLengthError when the
// resulting data length is odd.
func New(hrp string, size int, checksum Checksum, mode Mode, shareIndex int) (*Worksheet, error) {
	h := len(hrp)
	l := checksum.Len()
	if size < h+l {
		return nil, &TooShortError{Minimum: h + l, Actual: size}
	}
	dataLen := size - h - l - 1
	if dataLen%2 != 0 {
		return nil, &OddLengthError{DataLen: dataLen}
	}
	pairs := dataLen / 2
	if pairs < 0 {
		pairs = 0
	}

	ws := &Worksheet{HRP: hrp, Size: size, Checksum: checksum, Mode: mode, ShareIndex: shareIndex}

	row0 := Row{Offset: 0, Cells: make([]Cell, l)}
	for i := range row0.Cells {
		row0.Cells[i] = Cell{Role: ShareData}
	}
	ws.Rows = append(ws.Rows, row0)

	residue := checksum.HRPResidue(hrp)
	row1 := Row{Offset: 0, Cells: make([]Cell, l)}
	for i := range row1.Cells {
		row1.Cells[i] = Cell{Role: Residue, Val: residue.At(i), Set: true}
	}
	ws.Rows = append(ws.Rows, row1)

	for k := 1; k <= pairs; k++ {
		offset := 2 * (k - 1)
		sumRow := Row{Offset: offset, Cells: make([]Cell, l+2)}
		for i := 0; i < l; i++ {
			sumRow.Cells[i] = Cell{Role: Sum}
		}
		sumRow.Cells[l] = Cell{Role: ShareData}
		sumRow.Cells[l+1] = Cell{Role: ShareData}
		ws.Rows = append(ws.Rows, sumRow)

		resRow := Row{Offset: offset, Cells: make([]Cell, l)}
		for i := range resRow.Cells {
			resRow.Cells[i] = Cell{Role: Residue}
		}
		ws.Rows = append(ws.Rows, resRow)
	}

	finalRow := Row{Offset: 2 * pairs, Cells: make([]Cell, l)}
	if mode == Create {
		lit := checksum.fixedLiteral()
		for i := 0; i < l; i++ {
			fe, err := gf32.ParseChar(rune(lit[i]))
			if err != nil {
				return nil, fmt.Errorf("worksheet: fixed literal %q: %w", lit, err)
			}
			finalRow.Cells[i] = Cell{Role: GlobalResidue, Val: fe, Set: true}
		}
	} else {
		for i := range finalRow.Cells {
			finalRow.Cells[i] = Cell{Role: GlobalResidue}
		}
	}
	ws.Rows = append(ws.Rows, finalRow)

	for r, row := range ws.Rows {
		for c := range row.Cells {
			col := h + 1 + row.Offset + c
			ws.Rows[r].Cells[c].IsChecksum = col >= size-l
			ws.Rows[r].Cells[c].ID = cellID(shareIndex, r, c)
		}
	}
	return ws, nil
}

// NRows returns the number of rows in the sheet.
func (ws *Worksheet) NRows() int { return len(ws.Rows) }

// NCells returns the number of cells in row r.
func (ws *Worksheet) NCells(r int) int { return len(ws.Rows[r].Cells) }

// Cell returns a mutable pointer to the cell at (r, c).
func (ws *Worksheet) Cell(r, c int) *Cell { return &ws.Rows[r].Cells[c] }

// CellBelow returns the coordinates of the cell one step down the
// staircase from (r, c), or ok=false at the bottom boundary.
func (ws *Worksheet) CellBelow(r, c int) (nr, nc int, ok bool) {
	if r == len(ws.Rows)-1 {
		return 0, 0, false
	}
	adjustment := 0
	if r > 0 && r%2 == 0 {
		adjustment = 2
	}
	if c < adjustment {
		return 0, 0, false
	}
	return r + 1, c - adjustment, true
}

// CellAbove returns the coordinates of the cell one step up the
// staircase from (r, c), or ok=false at the top boundary.
func (ws *Worksheet) CellAbove(r, c int) (nr, nc int, ok bool) {
	if r == 0 {
		return 0, 0, false
	}
	adjustment := 0
	if r%2 == 1 {
		adjustment = 2
	}
	if c+adjustment >= len(ws.Rows[r-1].Cells) {
		return 0, 0, false
	}
	return r - 1, c + adjustment, true
}
