package worksheet

import "fmt"

// TooShortError is returned by New when size is smaller than h+L.
type TooShortError struct {
	Minimum, Actual int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("worksheet: size %d too short, need at least %d", e.Actual, e.Minimum)
}

// OddLengthError is returned by New when size-h-L-1 is odd.
type OddLengthError struct {
	DataLen int
}

func (e *OddLengthError) Error() string {
	return fmt.Sprintf("worksheet: data length %d is odd", e.DataLen)
}

// InvalidRowError is returned when an edit targets a non-existent row.
type InvalidRowError struct {
	Row, NRows int
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("worksheet: row %d out of range, have %d rows", e.Row, e.NRows)
}

// InvalidCellError is returned when an edit targets a non-existent cell.
type InvalidCellError struct {
	Row, Cell, NCells int
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("worksheet: cell %d in row %d out of range, have %d cells", e.Cell, e.Row, e.NCells)
}
