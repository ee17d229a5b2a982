package persist

import (
	"testing"

	"seedhammer.com/worksheet"
)

func TestEncodeDecodeHeaderRoundTrip(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := Encode("ms", 2, 48, worksheet.Codex32, []*worksheet.Worksheet{ws})
	h, shares, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if h.Size != 48 || h.Checksum != worksheet.Codex32 || h.Threshold != 2 || h.HRP != "ms" {
		t.Errorf("header = %+v, want size 48, codex32, threshold 2, hrp ms", h)
	}
	if len(shares) != 1 {
		t.Fatalf("len(shares) = %d, want 1", len(shares))
	}
}

func TestEncodeDecodeShareRoundTrip(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ws.Cell(0, 0).Set = true
	ws.Cell(0, 0).Val = ws.Checksum.Generator()[0]

	sym := EncodeShare(ws)

	ws2, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := DecodeShare(ws2, sym); err != nil {
		t.Fatalf("DecodeShare: %v", err)
	}
	for r, row := range ws.Rows {
		for c, cell := range row.Cells {
			got := ws2.Cell(r, c)
			if got.Set != cell.Set || (cell.Set && got.Val != cell.Val) {
				t.Errorf("cell (%d,%d) = %+v, want %+v", r, c, got, cell)
			}
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{"", "48_1_2", "x_1_2_2_ms", "48_2_2_2_ms", "48_1_2_3_ms"}
	for _, s := range cases {
		if _, _, err := Decode(s); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", s)
		}
	}
}

func TestDecodeShareBadLength(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = DecodeShare(ws, "short")
	if _, ok := err.(*BadShareDataLenError); !ok {
		t.Errorf("DecodeShare error type = %T, want *BadShareDataLenError", err)
	}
}

func TestDecodeShareBadChar(t *testing.T) {
	ws, err := worksheet.New("ms", 48, worksheet.Codex32, worksheet.Create, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var want int
	for _, row := range ws.Rows {
		want += len(row.Cells)
	}
	bad := make([]byte, want)
	for i := range bad {
		bad[i] = '.'
	}
	bad[0] = '!'
	err = DecodeShare(ws, string(bad))
	if _, ok := err.(*BadBech32CharError); !ok {
		t.Errorf("DecodeShare error type = %T, want *BadBech32CharError", err)
	}
}
