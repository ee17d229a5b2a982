// package session is a keyed container of worksheets: it tracks a set of
// shares built against one hrp/size/checksum and which of them, if any,
// is currently being edited.
package session

import (
	"errors"
	"fmt"

	"seedhammer.com/engine"
	"seedhammer.com/worksheet"
)

var errNoActiveShare = errors.New("no active share")

// Session is the entire checksumming session: the fixed parameters
// common to every share, plus the list of shares themselves.
type Session struct {
	HRP         string
	Threshold   int
	Size        int
	Checksum    worksheet.Checksum
	Shares      []*worksheet.Worksheet
	activeShare int // -1 when none is active
}

// New constructs an empty session for the given hrp, threshold, size and
// checksum family. It does not build any shares.
func New(hrp string, threshold, size int, checksum worksheet.Checksum) *Session {
	return &Session{
		HRP:         hrp,
		Threshold:   threshold,
		Size:        size,
		Checksum:    checksum,
		activeShare: -1,
	}
}

// NewShare builds and appends a new share worksheet, returning its index.
func (s *Session) NewShare() (int, error) {
	ws, err := worksheet.New(s.HRP, s.Size, s.Checksum, worksheet.Create, len(s.Shares))
	if err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}
	s.Shares = append(s.Shares, ws)
	return len(s.Shares) - 1, nil
}

// SetActiveShare activates the share at idx.
func (s *Session) SetActiveShare(idx int) error {
	if idx < 0 || idx >= len(s.Shares) {
		return fmt.Errorf("session: set active share: index %d out of range [0,%d)", idx, len(s.Shares))
	}
	s.activeShare = idx
	return nil
}

// ClearActiveShare deactivates whatever share is active.
func (s *Session) ClearActiveShare() {
	s.activeShare = -1
}

// ActiveShare returns the index of the active share, or false if none is
// active.
func (s *Session) ActiveShare() (int, bool) {
	if s.activeShare < 0 {
		return 0, false
	}
	return s.activeShare, true
}

// ActiveWorksheet returns the worksheet of the active share.
func (s *Session) ActiveWorksheet() (*worksheet.Worksheet, error) {
	if s.activeShare < 0 {
		return nil, fmt.Errorf("session: active worksheet: %w", errNoActiveShare)
	}
	return s.Shares[s.activeShare], nil
}

// DOMCells returns the DOM-cell projection of the active share.
func (s *Session) DOMCells() ([]worksheet.DOMCell, error) {
	ws, err := s.ActiveWorksheet()
	if err != nil {
		return nil, err
	}
	return ws.DOMCells(), nil
}

// HandleInputChange routes an edit to the active share's worksheet.
func (s *Session) HandleInputChange(row, col int, val string) ([]engine.Action, error) {
	ws, err := s.ActiveWorksheet()
	if err != nil {
		return nil, err
	}
	return engine.HandleInputChange(ws, row, col, val)
}
