package hw

import "testing"

/* device testing helpers */

// xfer shifts a full selected byte sequence through the device and returns
// the response bytes, then deselects it.
func xfer(d *DSP, in ...uint8) []uint8 {
	d.SetSelect(true)
	out := make([]uint8, len(in))
	for i, b := range in {
		out[i] = d.Transmit(b)
	}
	d.SetSelect(false)
	return out
}

// writeWord commits one 32-bit word at addr through a full write transaction.
func writeWord(d *DSP, addr uint16, val uint32) {
	xfer(d, 0x50,
		uint8(addr>>8), uint8(addr),
		uint8(val>>24), uint8(val>>16), uint8(val>>8), uint8(val))
}

// readWord reads one 32-bit word at addr through a full read transaction.
func readWord(d *DSP, addr uint16) uint32 {
	out := xfer(d, 0x51, uint8(addr>>8), uint8(addr), 0, 0, 0, 0)
	return uint32(out[3])<<24 | uint32(out[4])<<16 | uint32(out[5])<<8 | uint32(out[6])
}

// writeReg commits one 16-bit register write at addr.
func writeReg(d *DSP, addr uint16, val uint16) {
	xfer(d, 0x50, uint8(addr>>8), uint8(addr), uint8(val>>8), uint8(val))
}

// readReg reads one 16-bit register at addr.
func readReg(d *DSP, addr uint16) uint16 {
	out := xfer(d, 0x51, uint8(addr>>8), uint8(addr), 0, 0)
	return uint16(out[3])<<8 | uint16(out[4])
}

func wantWord(t *testing.T, d *DSP, addr uint16, sel PageSel, want uint32) {
	t.Helper()

	if got := d.Mem.Read(addr, sel); got != want {
		t.Errorf("word at %04X = %08X, want %08X", addr, got, want)
	}
}

func wantReg(t *testing.T, d *DSP, addr uint16, want uint16) {
	t.Helper()

	if got := d.Regs.Read(addr); got != want {
		t.Errorf("reg %04X = %04X, want %04X", addr, got, want)
	}
}
