package hw

import (
	"bytes"
	"testing"
)

func TestMemoryWriteReadTransaction(t *testing.T) {
	d := NewDSP()

	// write 0x0000002A at 0x0010, then read it back
	xfer(d, 0x50, 0x00, 0x10, 0x00, 0x00, 0x00, 0x2A)
	wantWord(t, d, 0x0010, CurPage, 0x2A)

	out := xfer(d, 0x51, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00)
	if want := []uint8{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2A}; !bytes.Equal(out, want) {
		t.Errorf("read response = % 02X, want % 02X", out, want)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	d := NewDSP()

	for _, tt := range []struct {
		addr uint16
		val  uint32
	}{
		{0x0000, 0xFFFFFFFF},
		{0x2FFF, 0x80000001},
		{0x6100, 0x12345678},
		{0xC000, 0x00C0FFEE},
	} {
		writeWord(d, tt.addr, tt.val)
		if got := readWord(d, tt.addr); got != tt.val {
			t.Errorf("word at %04X = %08X, want %08X", tt.addr, got, tt.val)
		}
	}
}

func TestRegisterTransaction(t *testing.T) {
	d := NewDSP()

	writeReg(d, 0xF000, 0x1234)
	wantReg(t, d, 0xF000, 0x1234)
	if got := readReg(d, 0xF000); got != 0x1234 {
		t.Errorf("reg read = %04X, want 1234", got)
	}

	// read-only register: write is dropped, read returns the ready flag
	writeReg(d, RegPLLLock, 0xFFFF)
	if got := readReg(d, RegPLLLock); got != 0x0001 {
		t.Errorf("PLL_LOCK = %04X, want 0001", got)
	}
}

func TestMemoryBurstWrite(t *testing.T) {
	d := NewDSP()

	// three consecutive words, address sent only once
	xfer(d, 0x50, 0x00, 0x20,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03)

	wantWord(t, d, 0x0020, CurPage, 1)
	wantWord(t, d, 0x0021, CurPage, 2)
	wantWord(t, d, 0x0022, CurPage, 3)
}

func TestRegisterBurstWrite(t *testing.T) {
	d := NewDSP()

	// CLK_GEN1_M then CLK_GEN1_N in one transaction
	xfer(d, 0x50, 0xF0, 0x10, 0x00, 0x0A, 0x00, 0x0B)
	wantReg(t, d, 0xF010, 0x000A)
	wantReg(t, d, 0xF011, 0x000B)
}

func TestRegisterBurstRead(t *testing.T) {
	d := NewDSP()

	d.Regs.Write(0xF010, 0x1122)
	d.Regs.Write(0xF011, 0x3344)

	out := xfer(d, 0x51, 0xF0, 0x10, 0, 0, 0, 0)
	if want := []uint8{0x00, 0x00, 0x00, 0x11, 0x22, 0x33, 0x44}; !bytes.Equal(out, want) {
		t.Errorf("burst read response = % 02X, want % 02X", out, want)
	}
}

func TestDeselectDiscardsTransaction(t *testing.T) {
	d := NewDSP()

	// abandon a write mid-data-phase at every possible byte offset
	seq := []uint8{0x50, 0x00, 0x10, 0xDE, 0xAD, 0xBE, 0xEF}
	for cut := 1; cut < len(seq); cut++ {
		d.SetSelect(true)
		for _, b := range seq[:cut] {
			d.Transmit(b)
		}
		d.SetSelect(false)

		wantWord(t, d, 0x0010, CurPage, 0)

		// a fresh transaction behaves as if started from idle
		writeWord(d, 0x0030, 0x77)
		wantWord(t, d, 0x0030, CurPage, 0x77)
		writeWord(d, 0x0030, 0)
	}
}

func TestUnexpectedChipAddress(t *testing.T) {
	d := NewDSP()

	// wrong identifier bits: warn only, direction bit still honored
	xfer(d, 0x00, 0x00, 0x40, 0x00, 0x00, 0x01, 0x00)
	wantWord(t, d, 0x0040, CurPage, 0x100)
}

func TestUnmappedAddressTransaction(t *testing.T) {
	d := NewDSP()

	// 0x4000 resolves to no region: write dropped, read shifts out zeros
	xfer(d, 0x50, 0x40, 0x00, 0x12, 0x34, 0x56, 0x78)
	out := xfer(d, 0x51, 0x40, 0x00, 0, 0, 0, 0)
	if want := []uint8{0, 0, 0, 0, 0, 0, 0}; !bytes.Equal(out, want) {
		t.Errorf("unmapped read response = % 02X, want all zero", out)
	}
}

func TestPageToggleBetweenWrites(t *testing.T) {
	d := NewDSP()

	writeWord(d, 0x0123, 0xAAAA)
	writeReg(d, RegPageSelect, 1)
	writeWord(d, 0x0123, 0xBBBB)

	if got := readWord(d, 0x0123); got != 0xBBBB {
		t.Errorf("page B word = %08X, want BBBB", got)
	}
	writeReg(d, RegPageSelect, 0)
	if got := readWord(d, 0x0123); got != 0xAAAA {
		t.Errorf("page A word = %08X, want AAAA", got)
	}

	// page-qualified reads are unaffected by the selector
	wantWord(t, d, 0x0123, ForceA, 0xAAAA)
	wantWord(t, d, 0x0123, ForceB, 0xBBBB)
}

func TestSafeloadOverProtocol(t *testing.T) {
	d := NewDSP()

	// stage two words, set the pointer, then hit the trigger, all through
	// ordinary write transactions on page A
	writeWord(d, SafeloadAStaging, 0x11)
	writeWord(d, SafeloadAStaging+1, 0x22)
	writeWord(d, SafeloadAPointer, 0x0050)
	writeWord(d, SafeloadATrigger, 2)

	wantWord(t, d, 0x0050, ForceA, 0x11)
	wantWord(t, d, 0x0051, ForceA, 0x22)
}
