package persist

import "fmt"

// BadShareDataLenError is returned by DecodeShare when a share's symbol
// run does not have exactly as many characters as the worksheet has
// cells.
type BadShareDataLenError struct {
	Len int
}

func (e *BadShareDataLenError) Error() string {
	return fmt.Sprintf("persist: bad share data length %d", e.Len)
}

// BadBech32CharError is returned by DecodeShare when a share's symbol run
// contains a character outside the bech32 alphabet (and not the '.'
// unset marker).
type BadBech32CharError struct {
	Ch rune
}

func (e *BadBech32CharError) Error() string {
	return fmt.Sprintf("persist: bad bech32 character %q", e.Ch)
}
