package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownCellError is returned by ParseCellID when id does not match the
// inp_<share>_<row>_<col> grammar.
type UnknownCellError struct {
	ID     string
	Reason string
}

func (e *UnknownCellError) Error() string {
	return fmt.Sprintf("engine: unknown cell id %q: %s", e.ID, e.Reason)
}

// FormatCellID renders (share, row, col) in the fixed inp_<share>_<row>_<col>
// form.
func FormatCellID(share, row, col int) string {
	return fmt.Sprintf("inp_%d_%d_%d", share, row, col)
}

// ParseCellID parses a cell id of the form inp_<share>_<row>_<col>.
func ParseCellID(id string) (share, row, col int, err error) {
	parts := strings.Split(id, "_")
	if len(parts) != 4 {
		return 0, 0, 0, &UnknownCellError{ID: id, Reason: "expected exactly 4 underscore-separated fields"}
	}
	if parts[0] != "inp" {
		return 0, 0, 0, &UnknownCellError{ID: id, Reason: "missing inp prefix"}
	}
	nums := make([]int, 3)
	for i, s := range parts[1:] {
		if s == "" {
			return 0, 0, 0, &UnknownCellError{ID: id, Reason: "missing number"}
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, 0, 0, &UnknownCellError{ID: id, Reason: "non-numeric segment"}
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
