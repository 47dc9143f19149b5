package hw

import (
	"sigmadsp/emu/log"
)

// Safeload staging layout, inside the data-1 window. Each page has its own
// six-word staging area, destination pointer and trigger; parameters staged
// there are committed in one burst so the running program never sees a
// half-applied update.
const (
	SafeloadWords = 6

	SafeloadAStaging uint16 = 0x6000
	SafeloadAPointer uint16 = 0x6006
	SafeloadATrigger uint16 = 0x6007

	SafeloadBStaging uint16 = 0x6008
	SafeloadBPointer uint16 = 0x600E
	SafeloadBTrigger uint16 = 0x600F
)

// checkSafeload runs after every committed memory write. A write of N to one
// of the two trigger addresses copies the first N staged words to the
// destination held in that page's pointer word. Source, pointer and
// destination accesses are all forced to the trigger's page, whatever the
// page-select register currently says.
func (d *DSP) checkSafeload(addr uint16, val uint32) {
	var staging, pointer uint16
	var sel PageSel
	switch addr {
	case SafeloadATrigger:
		staging, pointer, sel = SafeloadAStaging, SafeloadAPointer, ForceA
	case SafeloadBTrigger:
		staging, pointer, sel = SafeloadBStaging, SafeloadBPointer, ForceB
	default:
		return
	}

	if val == 0 {
		return
	}
	n := int(val)
	if val > SafeloadWords {
		log.ModSafeload.WarnZ("safeload count beyond staging area").
			Hex32("count", val).
			End()
		n = SafeloadWords
	}

	dst := uint16(d.Mem.Read(pointer, sel) & 0xFFFF)
	log.ModSafeload.DebugZ("safeload commit").
		Hex16("trigger", addr).
		Hex16("dst", dst).
		Int("words", n).
		End()

	for i := 0; i < n; i++ {
		word := d.Mem.Read(staging+uint16(i), sel)
		d.Mem.Write(dst+uint16(i), word, sel)
	}
}
