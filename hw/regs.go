package hw

import (
	"fmt"

	"sigmadsp/emu/log"
	"sigmadsp/hw/hwio"
)

// Effect identifies the side effect attached to a control register write.
// Effects are dispatched through an explicit switch after the stored value
// has changed; the register table itself stays plain data.
type Effect uint8

const (
	EffNone Effect = iota
	EffPageSelect
	EffBackupDomain
)

// RegDef is one entry of the static control register table.
type RegDef struct {
	Addr   uint16
	Name   string
	Reset  uint16
	Flags  hwio.RWFlags
	Synth  bool // read value is synthesized from Reset, not from storage
	Effect Effect
}

// RegFile is the control register space of the device, built once from the
// static regDefs table.
type RegFile struct {
	regs map[uint16]*hwio.Reg16
	dsp  *DSP
}

func newRegFile(dsp *DSP) *RegFile {
	rf := &RegFile{
		regs: make(map[uint16]*hwio.Reg16, len(regDefs)),
		dsp:  dsp,
	}
	for i := range regDefs {
		def := &regDefs[i]
		if _, ok := rf.regs[def.Addr]; ok {
			panic(fmt.Sprintf("duplicate register address %04x (%s)", def.Addr, def.Name))
		}
		reg := &hwio.Reg16{
			Name:  def.Name,
			Value: def.Reset,
			Flags: def.Flags,
		}
		if def.Synth {
			reg.ReadCb = func(uint16) uint16 { return def.Reset }
		}
		if def.Effect != EffNone {
			eff := def.Effect
			reg.WriteCb = func(old, val uint16) { rf.dispatch(eff, old, val) }
		}
		rf.regs[def.Addr] = reg
	}
	return rf
}

// Reset restores every register to its declared reset value. Side effect
// hooks are not dispatched; the caller re-derives dependent state (the memory
// page selector) from the restored values.
func (rf *RegFile) Reset() {
	for i := range regDefs {
		rf.regs[regDefs[i].Addr].Value = regDefs[i].Reset
	}
}

func (rf *RegFile) Read(addr uint16) uint16 {
	reg, ok := rf.regs[addr]
	if !ok {
		log.ModRegs.ErrorZ("read from unknown register").
			Hex16("addr", addr).
			End()
		return 0
	}
	return reg.Read16(addr)
}

func (rf *RegFile) Write(addr uint16, val uint16) {
	reg, ok := rf.regs[addr]
	if !ok {
		// silently dropped, so register sweeps don't fail mid-transaction
		log.ModRegs.DebugZ("write to unknown register").
			Hex16("addr", addr).
			Hex16("val", val).
			End()
		return
	}
	reg.Write16(addr, val)
}

// Each calls f for every declared register in table order, with its current
// read value.
func (rf *RegFile) Each(f func(def *RegDef, val uint16)) {
	for i := range regDefs {
		def := &regDefs[i]
		f(def, rf.regs[def.Addr].Read16(def.Addr))
	}
}

func (rf *RegFile) dispatch(eff Effect, old, val uint16) {
	switch eff {
	case EffPageSelect:
		page := hwio.Page(hwio.GetBiti16(val, 0))
		rf.dsp.Mem.SetPage(page)
		log.ModRegs.DebugZ("page select").
			String("page", page.String()).
			End()
	case EffBackupDomain:
		if rf.dsp.BackupHook != nil {
			rf.dsp.BackupHook(old, val)
			return
		}
		log.ModRegs.DebugZ("backup domain access").
			Hex16("old", old).
			Hex16("val", val).
			End()
	}
}
