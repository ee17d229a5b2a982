// package persist encodes and decodes the persistence string used to save
// a worksheet session into host-provided local storage:
// "<size>_<cksumFlag>_<threshold>_<hrpLen>_<hrp>[_<share0>[_<share1>...]]".
package persist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seedhammer.com/gf32"
	"seedhammer.com/worksheet"
)

var errMalformedField = errors.New("malformed field")

// Encode renders a session's fixed parameters and each share's cell
// contents into the persistence string.
func Encode(hrp string, threshold, size int, checksum worksheet.Checksum, shares []*worksheet.Worksheet) string {
	cksumFlag := 0
	if checksum == worksheet.Codex32 {
		cksumFlag = 1
	}
	parts := []string{
		strconv.Itoa(size),
		strconv.Itoa(cksumFlag),
		strconv.Itoa(threshold),
		strconv.Itoa(len(hrp)),
		hrp,
	}
	for _, ws := range shares {
		parts = append(parts, EncodeShare(ws))
	}
	return strings.Join(parts, "_")
}

// EncodeShare renders one worksheet's cells, row-major, as a compact
// symbol run: the cell's character, or '.' for an unset cell ('_' would
// collide with the persistence string's field separator).
func EncodeShare(ws *worksheet.Worksheet) string {
	var b strings.Builder
	for _, row := range ws.Rows {
		for _, c := range row.Cells {
			if c.Set {
				b.WriteByte(c.Val.Char())
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Header is the fixed, non-share-data prefix of a persistence string.
type Header struct {
	Size      int
	Checksum  worksheet.Checksum
	Threshold int
	HRP       string
}

// Decode splits a persistence string into its header and the raw
// (unvalidated against any particular worksheet shape) share symbol
// runs. It fails closed: any malformed field is rejected rather than
// guessed at.
func Decode(s string) (Header, []string, error) {
	parts := strings.Split(s, "_")
	if len(parts) < 5 {
		return Header{}, nil, fmt.Errorf("persist: %w", errMalformedField)
	}
	size, err := strconv.Atoi(parts[0])
	if err != nil || size < 0 {
		return Header{}, nil, fmt.Errorf("persist: size field: %w", errMalformedField)
	}
	cksumFlag, err := strconv.Atoi(parts[1])
	if err != nil || (cksumFlag != 0 && cksumFlag != 1) {
		return Header{}, nil, fmt.Errorf("persist: checksum field: %w", errMalformedField)
	}
	threshold, err := strconv.Atoi(parts[2])
	if err != nil || threshold < 0 {
		return Header{}, nil, fmt.Errorf("persist: threshold field: %w", errMalformedField)
	}
	hrpLen, err := strconv.Atoi(parts[3])
	if err != nil || hrpLen < 0 {
		return Header{}, nil, fmt.Errorf("persist: hrp length field: %w", errMalformedField)
	}
	hrp := parts[4]
	if len(hrp) != hrpLen {
		return Header{}, nil, fmt.Errorf("persist: hrp field: %w", errMalformedField)
	}

	checksum := worksheet.Bech32
	if cksumFlag == 1 {
		checksum = worksheet.Codex32
	}
	h := Header{Size: size, Checksum: checksum, Threshold: threshold, HRP: hrp}
	return h, parts[5:], nil
}

// DecodeShare validates a symbol run against ws's shape and loads it into
// ws's cells. It does not run propagation: a decoded share is assumed to
// already be internally consistent, since it was a previously validated
// worksheet's own encoding.
func DecodeShare(ws *worksheet.Worksheet, symbols string) error {
	var want int
	for _, row := range ws.Rows {
		want += len(row.Cells)
	}
	if len(symbols) != want {
		return &BadShareDataLenError{Len: len(symbols)}
	}
	i := 0
	for r, row := range ws.Rows {
		for c := range row.Cells {
			ch := rune(symbols[i])
			i++
			cell := ws.Cell(r, c)
			if ch == '.' {
				cell.Set = false
				cell.Val = gf32.Zero()
				continue
			}
			fe, err := gf32.ParseChar(ch)
			if err != nil {
				return &BadBech32CharError{Ch: ch}
			}
			cell.Val = fe
			cell.Set = true
		}
	}
	return nil
}
