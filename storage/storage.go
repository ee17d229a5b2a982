// package storage saves and loads a session snapshot as a single CBOR
// blob, standing in for the host-provided local storage the core treats
// only as a collaborator interface.
package storage

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"seedhammer.com/persist"
	"seedhammer.com/session"
	"seedhammer.com/worksheet"
)

// snapshot is the CBOR wire shape: the session's fixed parameters plus
// each share's cell contents, encoded the same way persist.EncodeShare
// would for the persistence string.
type snapshot struct {
	HRP         string   `cbor:"hrp"`
	Threshold   int      `cbor:"threshold"`
	Size        int      `cbor:"size"`
	CksumFlag   int      `cbor:"cksum_flag"`
	Shares      []string `cbor:"shares"`
	ActiveShare int      `cbor:"active_share"` // -1 when none
}

// Save encodes sess as CBOR and writes it to w.
func Save(w io.Writer, sess *session.Session) error {
	cksumFlag := 0
	if sess.Checksum == worksheet.Codex32 {
		cksumFlag = 1
	}
	snap := snapshot{
		HRP:       sess.HRP,
		Threshold: sess.Threshold,
		Size:      sess.Size,
		CksumFlag: cksumFlag,
		Shares:    make([]string, len(sess.Shares)),
	}
	if idx, ok := sess.ActiveShare(); ok {
		snap.ActiveShare = idx
	} else {
		snap.ActiveShare = -1
	}
	for i, ws := range sess.Shares {
		snap.Shares[i] = persist.EncodeShare(ws)
	}
	enc, err := cbor.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if _, err := w.Write(enc); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

// Load reads a CBOR snapshot from r and rebuilds the session it
// describes, including every share worksheet's cell contents.
func Load(r io.Reader) (*session.Session, error) {
	enc, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	var snap snapshot
	if err := cbor.Unmarshal(enc, &snap); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	checksum := worksheet.Bech32
	if snap.CksumFlag == 1 {
		checksum = worksheet.Codex32
	}
	sess := session.New(snap.HRP, snap.Threshold, snap.Size, checksum)
	for _, sym := range snap.Shares {
		idx, err := sess.NewShare()
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		ws := sess.Shares[idx]
		if err := persist.DecodeShare(ws, sym); err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
	}
	if snap.ActiveShare >= 0 {
		if err := sess.SetActiveShare(snap.ActiveShare); err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
	}
	return sess, nil
}
