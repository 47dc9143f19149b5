package hw

import (
	"testing"

	"sigmadsp/hw/hwio"
)

func TestRegFileReadWrite(t *testing.T) {
	d := NewDSP()

	d.Regs.Write(0xF000, 0x1234) // PLL_CTRL0
	wantReg(t, d, 0xF000, 0x1234)

	// readonly synthesized flag: write ignored, read stays at ready value
	d.Regs.Write(RegPLLLock, 0xFFFF)
	wantReg(t, d, RegPLLLock, 0x0001)
	wantReg(t, d, RegCoreStatus, 0x0001)
}

func TestRegFileUnknown(t *testing.T) {
	d := NewDSP()

	// 0xF00F sits in a hole of the register map
	if got := d.Regs.Read(0xF00F); got != 0 {
		t.Errorf("unknown reg read = %04X, want 0", got)
	}
	d.Regs.Write(0xF00F, 0xBEEF) // must not panic or store anything
	if got := d.Regs.Read(0xF00F); got != 0 {
		t.Errorf("unknown reg read after write = %04X, want 0", got)
	}
}

func TestRegFileResetDefaults(t *testing.T) {
	d := NewDSP()

	// every declared register starts at its reset value
	d.Regs.Each(func(def *RegDef, val uint16) {
		if val != def.Reset {
			t.Errorf("%s (%04X) = %04X at power up, want %04X",
				def.Name, def.Addr, val, def.Reset)
		}
	})

	d.Regs.Write(0xF000, 0xABCD)
	d.Regs.Write(0xF010, 0x0042)
	d.Reset()

	wantReg(t, d, 0xF000, 0x0060)
	wantReg(t, d, 0xF010, 0x0006)
}

func TestPageSelectEffect(t *testing.T) {
	d := NewDSP()

	if d.Mem.Page() != hwio.PageA {
		t.Fatalf("power up page = %v, want A", d.Mem.Page())
	}
	d.Regs.Write(RegPageSelect, 1)
	if d.Mem.Page() != hwio.PageB {
		t.Fatalf("page after select write = %v, want B", d.Mem.Page())
	}
	d.Regs.Write(RegPageSelect, 0)
	if d.Mem.Page() != hwio.PageA {
		t.Fatalf("page after select clear = %v, want A", d.Mem.Page())
	}
}

func TestBackupDomainHook(t *testing.T) {
	d := NewDSP()

	var gotOld, gotVal uint16
	calls := 0
	d.BackupHook = func(old, val uint16) {
		gotOld, gotVal = old, val
		calls++
	}

	d.Regs.Write(RegBackupCtrl, 0x0005)
	if calls != 1 {
		t.Fatalf("backup hook called %d times, want 1", calls)
	}
	if gotOld != 0 || gotVal != 0x0005 {
		t.Errorf("backup hook got (%04X, %04X), want (0000, 0005)", gotOld, gotVal)
	}

	// device reset restores values without dispatching hooks
	d.Reset()
	if calls != 1 {
		t.Errorf("backup hook called %d times after reset, want 1", calls)
	}
	wantReg(t, d, RegBackupCtrl, 0)
}

func TestResetKeepsMemory(t *testing.T) {
	d := NewDSP()

	d.Mem.Write(0x0100, 0x11223344, CurPage)
	d.Mem.Write(0xC100, 0x55667788, CurPage)
	d.Regs.Write(0xF000, 0xAAAA)

	d.Reset()

	wantReg(t, d, 0xF000, 0x0060)
	wantWord(t, d, 0x0100, CurPage, 0x11223344)
	wantWord(t, d, 0xC100, CurPage, 0x55667788)
}
