package hw

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDumpMemory(t *testing.T) {
	d := NewDSP()

	d.Mem.Write(0x0010, 0x0000002A, ForceA)
	d.Mem.Write(0x0011, 0xA1B2C3D4, ForceA)

	var buf bytes.Buffer
	if err := d.DumpMemory(&buf, 0x0010, 2, ForceA); err != nil {
		t.Fatal(err)
	}

	want := []byte{0x00, 0x00, 0x00, 0x2A, 0xA1, 0xB2, 0xC3, 0xD4}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("dump bytes = % 02X, want % 02X", buf.Bytes(), want)
	}
}

func TestDumpMemoryWriteError(t *testing.T) {
	d := NewDSP()

	if err := d.DumpMemory(failWriter{}, 0, 4, CurPage); err == nil {
		t.Fatal("expected an error from the failing writer")
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestDumpRegisters(t *testing.T) {
	d := NewDSP()
	d.Regs.Write(0xF000, 0xBEEF)

	var buf bytes.Buffer
	if err := d.DumpRegisters(&buf); err != nil {
		t.Fatal(err)
	}

	var entries []struct {
		Addr  string `json:"addr"`
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("register dump is not valid JSON: %v", err)
	}

	if len(entries) != NumRegs {
		t.Errorf("dumped %d registers, want %d", len(entries), NumRegs)
	}

	want := struct {
		Addr  string `json:"addr"`
		Name  string `json:"name"`
		Value string `json:"value"`
	}{"0xF000", "PLL_CTRL0", "0xBEEF"}
	if diff := cmp.Diff(want, entries[0]); diff != "" {
		t.Errorf("first entry mismatch (-want +got):\n%s", diff)
	}
}
