package emu

import (
	"bytes"

	"sigmadsp/hw"
)

// Emu owns one simulated device and drives it from replayed bus traces or
// from the RPC control surface.
type Emu struct {
	DSP *hw.DSP
}

func New() *Emu {
	return &Emu{DSP: hw.NewDSP()}
}

func (e *Emu) Reset() {
	e.DSP.Reset()
}

func (e *Emu) SetSelect(asserted bool) {
	e.DSP.SetSelect(asserted)
}

// Transfer shifts one selected byte sequence through the device and returns
// the response bytes. Selection is asserted for the duration of the call.
func (e *Emu) Transfer(in []uint8) []uint8 {
	e.DSP.SetSelect(true)
	out := make([]uint8, len(in))
	for i, b := range in {
		out[i] = e.DSP.Transmit(b)
	}
	e.DSP.SetSelect(false)
	return out
}

// RegisterDump returns the JSON register dump.
func (e *Emu) RegisterDump() (string, error) {
	var buf bytes.Buffer
	if err := e.DSP.DumpRegisters(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RunScript replays a parsed trace script on the device.
func (e *Emu) RunScript(s *Script) error {
	return s.Replay(e.DSP)
}
