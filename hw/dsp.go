package hw

import (
	"sigmadsp/emu/log"
	"sigmadsp/hw/hwio"
)

// DSP is one simulated device instance: the control register file, the banked
// word memory and the serial protocol decoder. It is fully synchronous and
// not safe for concurrent use; the owning bus feeds it one byte at a time.
type DSP struct {
	Regs *RegFile
	Mem  *Memory

	// BackupHook, when set, receives writes to the backup-domain access
	// register instead of the default debug log.
	BackupHook func(old, val uint16)

	dec *Decoder
}

func NewDSP() *DSP {
	dsp := &DSP{}
	dsp.Mem = NewMemory()
	dsp.Regs = newRegFile(dsp)
	dsp.dec = newDecoder(dsp)
	return dsp
}

// Transmit processes one byte received while the device is selected and
// returns the response byte.
func (d *DSP) Transmit(in uint8) uint8 {
	return d.dec.Transmit(in)
}

// SetSelect drives the chip-select line. Deasserting it abandons any
// in-flight transaction; asserting it is a no-op for the decoder.
func (d *DSP) SetSelect(asserted bool) {
	if !asserted {
		d.dec.reset()
	}
}

// Reset reinitializes every control register to its declared reset value and
// forces the decoder idle. Memory contents survive, as on the real part.
func (d *DSP) Reset() {
	d.Regs.Reset()
	d.Mem.SetPage(hwio.Page(hwio.GetBiti16(d.Regs.Read(RegPageSelect), 0)))
	d.dec.reset()
	log.ModEmu.InfoZ("device reset").End()
}
