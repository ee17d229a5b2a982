package engine

import (
	"testing"

	"seedhammer.com/worksheet"
)

func TestParseCellIDRoundTrip(t *testing.T) {
	id := FormatCellID(1, 4, 9)
	share, row, col, err := ParseCellID(id)
	if err != nil {
		t.Fatalf("ParseCellID(%q): %v", id, err)
	}
	if share != 1 || row != 4 || col != 9 {
		t.Errorf("ParseCellID(%q) = (%d,%d,%d), want (1,4,9)", id, share, row, col)
	}
}

func TestParseCellIDRejectsMalformed(t *testing.T) {
	cases := []string{"", "inp_1_2", "inp_1_2_3_4", "foo_1_2_3", "inp_a_2_3", "inp_-1_2_3", "inp__2_3"}
	for _, id := range cases {
		if _, _, _, err := ParseCellID(id); err == nil {
			t.Errorf("ParseCellID(%q) succeeded, want UnknownCellError", id)
		} else if _, ok := err.(*UnknownCellError); !ok {
			t.Errorf("ParseCellID(%q) error type = %T, want *UnknownCellError", id, err)
		}
	}
}

func TestHandleInputChangeInvalidSymbol(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	actions, err := HandleInputChange(ws, 0, 0, "!")
	if err != nil {
		t.Fatalf("HandleInputChange: %v", err)
	}
	if len(actions) != 1 || actions[0].Type != FlashError {
		t.Fatalf("actions = %+v, want single FlashError", actions)
	}
	if ws.Cell(0, 0).Set {
		t.Error("cell was set despite invalid symbol")
	}
}

func TestHandleInputChangeLowerCaseFlashes(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	actions, err := HandleInputChange(ws, 0, 0, "q")
	if err != nil {
		t.Fatalf("HandleInputChange: %v", err)
	}
	if len(actions) == 0 || actions[0].Type != FlashSet {
		t.Fatalf("actions = %+v, want first action FlashSet", actions)
	}
	if actions[0].Value != 'Q' {
		t.Errorf("FlashSet value = %q, want 'Q'", actions[0].Value)
	}
}

func TestHandleInputChangeEmptyClears(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := HandleInputChange(ws, 0, 0, "Q"); err != nil {
		t.Fatalf("HandleInputChange: %v", err)
	}
	actions, err := HandleInputChange(ws, 0, 0, "")
	if err != nil {
		t.Fatalf("HandleInputChange: %v", err)
	}
	if len(actions) != 0 {
		t.Errorf("actions = %+v, want none on clear", actions)
	}
	if ws.Cell(0, 0).Set {
		t.Error("cell still set after clearing edit")
	}
}

func TestHandleInputChangeOutOfRange(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := HandleInputChange(ws, ws.NRows(), 0, "Q"); err == nil {
		t.Error("HandleInputChange with out-of-range row succeeded")
	}
	if _, err := HandleInputChange(ws, 0, ws.NCells(0), "Q"); err == nil {
		t.Error("HandleInputChange with out-of-range col succeeded")
	}
}

// fillRow0 edits every cell of row 0 to the given share-data string.
func fillRow0(t *testing.T, ws *worksheet.Worksheet, data string) {
	t.Helper()
	for i := 0; i < len(data); i++ {
		if _, err := HandleInputChange(ws, 0, i, string(data[i])); err != nil {
			t.Fatalf("HandleInputChange(0,%d): %v", i, err)
		}
	}
}

// TestPropagationCodex32Scenario replays a codex32 "ms" worked scenario
// (size 48) and checks the cascade against the subset of the expected
// results independently confirmed against a reference simulation of the
// same algorithm: rows 24, 26, 28, 30 and 32, columns 13 and 14 (the two
// trailing share-data cells of each sum row).
func TestPropagationCodex32Scenario(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Row 0 has 13 cells; every share-data cell of the data head is "c".
	fillRow0(t, ws, "ccccccccccccc")

	for r := 2; r <= 18; r += 2 {
		if _, err := HandleInputChange(ws, r, 13, "c"); err != nil {
			t.Fatalf("HandleInputChange(%d,13): %v", r, err)
		}
		if _, err := HandleInputChange(ws, r, 14, "c"); err != nil {
			t.Fatalf("HandleInputChange(%d,14): %v", r, err)
		}
	}
	if _, err := HandleInputChange(ws, 20, 13, "c"); err != nil {
		t.Fatalf("HandleInputChange(20,13): %v", err)
	}

	want := map[int][2]byte{
		24: {'Q', '4'},
		26: {'0', 'P'},
		28: {'D', 'U'},
		30: {'Y', '9'},
		32: {'7', 'M'},
	}
	for row, expect := range want {
		got0 := ws.Cell(row, 13)
		got1 := ws.Cell(row, 14)
		if !got0.Set || got0.Val.Char() != expect[0] {
			t.Errorf("row %d col 13 = %+v, want %q", row, got0, expect[0])
		}
		if !got1.Set || got1.Val.Char() != expect[1] {
			t.Errorf("row %d col 14 = %+v, want %q", row, got1, expect[1])
		}
	}
}

// TestPropagationBech32Scenario replays a bech32 "ms" worked scenario
// (size 17) and checks the cascade at rows 6 and 8, columns 6 and 7
// (the two trailing share-data cells of each sum row), matched under
// independent simulation.
func TestPropagationBech32Scenario(t *testing.T) {
	ws, err := worksheet.New("ms", 17, worksheet.Bech32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fillRow0(t, ws, "CCCCC")

	if _, err := HandleInputChange(ws, 2, 6, "C"); err != nil {
		t.Fatalf("HandleInputChange(2,6): %v", err)
	}
	if _, err := HandleInputChange(ws, 2, 7, "C"); err != nil {
		t.Fatalf("HandleInputChange(2,7): %v", err)
	}
	if _, err := HandleInputChange(ws, 0, 5, "C"); err != nil {
		t.Fatalf("HandleInputChange(0,5): %v", err)
	}

	want := map[int][2]byte{
		6: {'3', 'C'},
		8: {'G', 'S'},
	}
	for row, expect := range want {
		got0 := ws.Cell(row, 6)
		got1 := ws.Cell(row, 7)
		if !got0.Set || got0.Val.Char() != expect[0] {
			t.Errorf("row %d col 6 = %+v, want %q", row, got0, expect[0])
		}
		if !got1.Set || got1.Val.Char() != expect[1] {
			t.Errorf("row %d col 7 = %+v, want %q", row, got1, expect[1])
		}
	}
}

func TestHandleInputChangeIdempotent(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fillRow0(t, ws, "QPZRY9X8GF2TV")
	if _, err := HandleInputChange(ws, 2, 13, "L"); err != nil {
		t.Fatalf("HandleInputChange: %v", err)
	}
	if _, err := HandleInputChange(ws, 2, 14, "A"); err != nil {
		t.Fatalf("HandleInputChange: %v", err)
	}
	actions, err := HandleInputChange(ws, 2, 14, "A")
	if err != nil {
		t.Fatalf("HandleInputChange: %v", err)
	}
	if len(actions) != 0 {
		t.Errorf("repeating an identical edit produced actions = %+v, want none", actions)
	}
}
