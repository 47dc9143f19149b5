package hw

import (
	"sigmadsp/emu/log"
	"sigmadsp/hw/hwio"
)

// Memory map. Everything below RegBase is 32-bit word memory, split in three
// double-buffered regions; everything at or above RegBase is the 16-bit
// control register space. Addresses falling between two windows belong to no
// region at all.
const (
	Data0Base  uint16 = 0x0000
	Data0Words        = 0x3000

	Data1Base  uint16 = 0x6000
	Data1Words        = 0x3000

	ProgramBase  uint16 = 0xC000
	ProgramWords        = 0x3000

	// control register space boundary
	RegBase uint16 = 0xF000
)

type RegionID uint8

const (
	RegionNone RegionID = iota
	RegionData0
	RegionData1
	RegionProgram
)

func (id RegionID) String() string {
	switch id {
	case RegionData0:
		return "data0"
	case RegionData1:
		return "data1"
	case RegionProgram:
		return "program"
	}
	return "none"
}

// IsRegAddr reports whether addr belongs to the control register space.
func IsRegAddr(addr uint16) bool {
	return addr >= RegBase
}

// Resolve classifies a memory address into (region, in-region word index).
// Control register addresses and inter-window gaps resolve to RegionNone.
func Resolve(addr uint16) (RegionID, int) {
	switch {
	case addr < Data0Base+Data0Words:
		return RegionData0, int(addr - Data0Base)
	case addr >= Data1Base && addr < Data1Base+Data1Words:
		return RegionData1, int(addr - Data1Base)
	case addr >= ProgramBase && addr < ProgramBase+ProgramWords:
		return RegionProgram, int(addr - ProgramBase)
	}
	return RegionNone, 0
}

// PageSel qualifies a memory access with a page. CurPage follows the
// page-select register; ForceA/ForceB bypass it (bulk exports and safeload
// only, never the live protocol).
type PageSel uint8

const (
	CurPage PageSel = iota
	ForceA
	ForceB
)

// Memory is the set of banked word regions of the device. The current page
// applies to every CurPage-qualified access in every region at once; it is
// driven by the page-select register side effect.
type Memory struct {
	Data0   *hwio.WordMem
	Data1   *hwio.WordMem
	Program *hwio.WordMem

	page hwio.Page
}

func NewMemory() *Memory {
	return &Memory{
		Data0:   hwio.NewWordMem("data0", Data0Words),
		Data1:   hwio.NewWordMem("data1", Data1Words),
		Program: hwio.NewWordMem("program", ProgramWords),
	}
}

func (m *Memory) SetPage(p hwio.Page) {
	m.page = p
}

func (m *Memory) Page() hwio.Page {
	return m.page
}

func (m *Memory) pageFor(sel PageSel) hwio.Page {
	switch sel {
	case ForceA:
		return hwio.PageA
	case ForceB:
		return hwio.PageB
	}
	return m.page
}

func (m *Memory) region(id RegionID) *hwio.WordMem {
	switch id {
	case RegionData0:
		return m.Data0
	case RegionData1:
		return m.Data1
	case RegionProgram:
		return m.Program
	}
	return nil
}

// Read returns the word at addr, or 0 if addr resolves to no region.
func (m *Memory) Read(addr uint16, sel PageSel) uint32 {
	id, index := Resolve(addr)
	if id == RegionNone {
		log.ModMem.ErrorZ("read from unmapped memory").
			Hex16("addr", addr).
			End()
		return 0
	}
	return m.region(id).Read(m.pageFor(sel), index)
}

// Write stores a word at addr. Writes to unresolvable addresses are dropped,
// which lets address sweeps run across the gaps without failing.
func (m *Memory) Write(addr uint16, val uint32, sel PageSel) {
	id, index := Resolve(addr)
	if id == RegionNone {
		return
	}
	m.region(id).Write(m.pageFor(sel), index, val)
}
