package emu

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleScript = `
# write 0x2A at 0x0010, read it back
select
xfer 50 00 10 00 00 00 2a
deselect
select
xfer 51 00 10 00 00 00 00
expect 00 00 00 00 00 00 2a
deselect
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript(strings.NewReader(sampleScript), "sample")
	if err != nil {
		t.Fatal(err)
	}

	ops := make([]scriptOp, len(s.Cmds))
	for i, cmd := range s.Cmds {
		ops[i] = cmd.Op
	}
	want := []scriptOp{opSelect, opXfer, opDeselect, opSelect, opXfer, opExpect, opDeselect}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}

	wantBytes := []uint8{0x50, 0x00, 0x10, 0x00, 0x00, 0x00, 0x2A}
	if diff := cmp.Diff(wantBytes, s.Cmds[1].Bytes); diff != "" {
		t.Errorf("xfer bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{
		"xfer zz",
		"xfer",
		"transmit 50",
	} {
		if _, err := ParseScript(strings.NewReader(src), "bad"); err == nil {
			t.Errorf("no error for script %q", src)
		}
	}
}

func TestReplay(t *testing.T) {
	s, err := ParseScript(strings.NewReader(sampleScript), "sample")
	if err != nil {
		t.Fatal(err)
	}

	e := New()
	if err := e.RunScript(s); err != nil {
		t.Fatal(err)
	}
}

func TestReplayMismatch(t *testing.T) {
	const src = `
select
xfer 51 00 10 00 00 00 00
expect 00 00 00 de ad be ef
deselect
`
	s, err := ParseScript(strings.NewReader(src), "mismatch")
	if err != nil {
		t.Fatal(err)
	}

	e := New()
	err = e.RunScript(s)
	if err == nil {
		t.Fatal("expected a response mismatch error")
	}
	if !strings.Contains(err.Error(), "mismatch:4") {
		t.Errorf("error does not name the script line: %v", err)
	}
}

func TestReplayResetKeepsMemory(t *testing.T) {
	const src = `
select
xfer 50 00 10 00 00 00 2a
deselect
reset
select
xfer 51 00 10 00 00 00 00
expect 00 00 00 00 00 00 2a
deselect
`
	s, err := ParseScript(strings.NewReader(src), "reset")
	if err != nil {
		t.Fatal(err)
	}

	if err := New().RunScript(s); err != nil {
		t.Fatal(err)
	}
}
