package emu

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sigmadsp/emu/log"
	"sigmadsp/hw"
)

var modScript = log.NewModule("script")

// A trace script is a line-oriented record of bus activity, typically
// captured from a host driver talking to the real part:
//
//	# comment
//	select
//	xfer 50 00 10 00 00 00 2a
//	deselect
//	select
//	xfer 51 00 10 00 00 00 00
//	expect 00 00 00 00 00 00 2a
//	deselect
//	reset
//
// xfer shifts bytes through the device; expect checks the response of the
// preceding xfer, byte for byte.
type scriptOp uint8

const (
	opSelect scriptOp = iota
	opDeselect
	opReset
	opXfer
	opExpect
)

type ScriptCmd struct {
	Op    scriptOp
	Bytes []uint8
	Line  int
}

type Script struct {
	Name string
	Cmds []ScriptCmd
}

// ParseScript reads a trace script. name is used in error messages only.
func ParseScript(r io.Reader, name string) (*Script, error) {
	s := &Script{Name: name}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		cmd := ScriptCmd{Line: lineno}
		switch fields[0] {
		case "select":
			cmd.Op = opSelect
		case "deselect":
			cmd.Op = opDeselect
		case "reset":
			cmd.Op = opReset
		case "xfer", "expect":
			cmd.Op = opXfer
			if fields[0] == "expect" {
				cmd.Op = opExpect
			}
			if len(fields) == 1 {
				return nil, fmt.Errorf("%s:%d: %s without bytes", name, lineno, fields[0])
			}
			for _, f := range fields[1:] {
				b, err := strconv.ParseUint(f, 16, 8)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: bad hex byte %q", name, lineno, f)
				}
				cmd.Bytes = append(cmd.Bytes, uint8(b))
			}
		default:
			return nil, fmt.Errorf("%s:%d: unknown directive %q", name, lineno, fields[0])
		}
		s.Cmds = append(s.Cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Replay feeds the script to the device. It stops at the first expect
// mismatch, reporting the offending line.
func (s *Script) Replay(d *hw.DSP) error {
	var resp []uint8

	for _, cmd := range s.Cmds {
		switch cmd.Op {
		case opSelect:
			d.SetSelect(true)
		case opDeselect:
			d.SetSelect(false)
		case opReset:
			d.Reset()
		case opXfer:
			resp = resp[:0]
			for _, b := range cmd.Bytes {
				resp = append(resp, d.Transmit(b))
			}
			modScript.DebugZ("xfer").
				Int("line", cmd.Line).
				Blob("tx", cmd.Bytes).
				Blob("rx", resp).
				End()
		case opExpect:
			if !bytes.Equal(resp, cmd.Bytes) {
				return fmt.Errorf("%s:%d: response mismatch: got % 02x, want % 02x",
					s.Name, cmd.Line, resp, cmd.Bytes)
			}
		}
	}
	return nil
}
