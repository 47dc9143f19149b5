package hw

import (
	"testing"

	"sigmadsp/hw/hwio"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		addr   uint16
		region RegionID
		index  int
	}{
		{0x0000, RegionData0, 0x0000},
		{0x0010, RegionData0, 0x0010},
		{0x2FFF, RegionData0, 0x2FFF},
		{0x3000, RegionNone, 0},
		{0x5FFF, RegionNone, 0},
		{0x6000, RegionData1, 0x0000},
		{0x8FFF, RegionData1, 0x2FFF},
		{0x9000, RegionNone, 0},
		{0xC000, RegionProgram, 0x0000},
		{0xEFFF, RegionProgram, 0x2FFF},
		{0xF000, RegionNone, 0},
		{0xFFFF, RegionNone, 0},
	}
	for _, tt := range tests {
		region, index := Resolve(tt.addr)
		if region != tt.region || index != tt.index {
			t.Errorf("Resolve(%04X) = (%v, %04X), want (%v, %04X)",
				tt.addr, region, index, tt.region, tt.index)
		}
	}
}

func TestMemoryReadWrite(t *testing.T) {
	m := NewMemory()

	for _, addr := range []uint16{0x0000, 0x2FFF, 0x6000, 0x8FFF, 0xC000, 0xEFFF} {
		m.Write(addr, 0xA0B0C0D0, CurPage)
		if got := m.Read(addr, CurPage); got != 0xA0B0C0D0 {
			t.Errorf("word at %04X = %08X, want A0B0C0D0", addr, got)
		}
	}

	// gap addresses: writes dropped, reads zero
	m.Write(0x4000, 0xFFFFFFFF, CurPage)
	if got := m.Read(0x4000, CurPage); got != 0 {
		t.Errorf("gap read = %08X, want 0", got)
	}
}

func TestMemoryPaging(t *testing.T) {
	m := NewMemory()

	m.SetPage(hwio.PageA)
	m.Write(0x0123, 0x000000AA, CurPage)
	m.SetPage(hwio.PageB)
	m.Write(0x0123, 0x000000BB, CurPage)

	// unqualified accesses follow the selector
	if got := m.Read(0x0123, CurPage); got != 0xBB {
		t.Errorf("page B word = %08X, want BB", got)
	}
	m.SetPage(hwio.PageA)
	if got := m.Read(0x0123, CurPage); got != 0xAA {
		t.Errorf("page A word = %08X, want AA", got)
	}

	// qualified accesses ignore it
	if got := m.Read(0x0123, ForceB); got != 0xBB {
		t.Errorf("forced page B word = %08X, want BB", got)
	}
	if got := m.Read(0x0123, ForceA); got != 0xAA {
		t.Errorf("forced page A word = %08X, want AA", got)
	}
}
