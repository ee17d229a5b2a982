// command volvelle exercises the checksum worksheet engine end to end:
// build a share worksheet, apply a sequence of edits, print the action
// stream, and optionally save/load a session snapshot or export the
// worksheet's persistence string as a QR code.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kortschak/qr"

	"seedhammer.com/engine"
	"seedhammer.com/persist"
	"seedhammer.com/qrexport"
	"seedhammer.com/session"
	"seedhammer.com/storage"
	"seedhammer.com/worksheet"
)

var (
	hrp       = flag.String("hrp", "ms", "human-readable prefix")
	size      = flag.Int("size", 48, "total worksheet size")
	threshold = flag.Int("threshold", 2, "share threshold, for the persistence string only")
	checksum  = flag.String("checksum", "codex32", "checksum family: codex32 or bech32")
	mode      = flag.String("mode", "create", "worksheet mode: create or verify")
	editFile  = flag.String("edits", "", "path to a script of row,col,value edit lines (- for stdin)")
	save      = flag.String("save", "", "path to write a CBOR session snapshot after applying edits")
	load      = flag.String("load", "", "path to a CBOR session snapshot to load instead of building a new share")
	qrOut     = flag.String("qr", "", "path to write a PNG QR code of the share's persistence string")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	var ck worksheet.Checksum
	switch *checksum {
	case "codex32":
		ck = worksheet.Codex32
	case "bech32":
		ck = worksheet.Bech32
	default:
		return fmt.Errorf("unknown checksum family %q", *checksum)
	}

	var md worksheet.Mode
	switch *mode {
	case "create":
		md = worksheet.Create
	case "verify":
		md = worksheet.Verify
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}

	var sess *session.Session
	var shareIdx int
	if *load != "" {
		f, err := os.Open(*load)
		if err != nil {
			return err
		}
		defer f.Close()
		sess, err = storage.Load(f)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		idx, ok := sess.ActiveShare()
		if !ok {
			if len(sess.Shares) == 0 {
				return errors.New("loaded snapshot has no shares")
			}
			idx = 0
		}
		shareIdx = idx
	} else {
		sess = session.New(*hrp, *threshold, *size, ck)
		ws, err := worksheet.New(*hrp, *size, ck, md, 0)
		if err != nil {
			return fmt.Errorf("building worksheet: %w", err)
		}
		sess.Shares = append(sess.Shares, ws)
		shareIdx = 0
	}
	if err := sess.SetActiveShare(shareIdx); err != nil {
		return err
	}

	if *editFile != "" {
		edits, err := readEdits(*editFile)
		if err != nil {
			return fmt.Errorf("reading edits: %w", err)
		}
		for _, e := range edits {
			actions, err := sess.HandleInputChange(e.row, e.col, e.value)
			if err != nil {
				return fmt.Errorf("edit (%d,%d)=%q: %w", e.row, e.col, e.value, err)
			}
			printActions(actions)
		}
	}

	if *save != "" {
		f, err := os.Create(*save)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := storage.Save(f, sess); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}

	if *qrOut != "" {
		ws, err := sess.ActiveWorksheet()
		if err != nil {
			return err
		}
		p := persist.Encode(sess.HRP, sess.Threshold, sess.Size, sess.Checksum, []*worksheet.Worksheet{ws})
		var buf bytes.Buffer
		if err := qrexport.Encode(&buf, p, qr.M); err != nil {
			return fmt.Errorf("exporting QR: %w", err)
		}
		if err := os.WriteFile(*qrOut, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}

	return nil
}

type edit struct {
	row, col int
	value    string
}

// readEdits parses a script of "row,col,value" lines, one edit per line,
// from path (or stdin when path is "-"). Blank lines and lines starting
// with '#' are skipped.
func readEdits(path string) ([]edit, error) {
	var r = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var edits []edit
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, ",", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed edit line %q: want row,col,value", line)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("malformed edit line %q: %w", line, err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed edit line %q: %w", line, err)
		}
		edits = append(edits, edit{row: row, col: col, value: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return edits, nil
}

func printActions(actions []engine.Action) {
	for _, a := range actions {
		if a.HasValue {
			fmt.Printf("%s %s %c\n", a.Type, a.ID, a.Value)
		} else {
			fmt.Printf("%s %s\n", a.Type, a.ID)
		}
	}
}
