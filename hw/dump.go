package hw

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-faster/jx"
)

// ReadMemBlock reads count words starting at start, page-qualified by sel.
// Out-of-range words read as zero. The device is never mutated.
func (d *DSP) ReadMemBlock(start uint16, count int, sel PageSel) []uint32 {
	words := make([]uint32, count)
	for i := range words {
		words[i] = d.Mem.Read(start+uint16(i), sel)
	}
	return words
}

// DumpMemory writes count words starting at start to w, as raw big-endian
// 32-bit words.
func (d *DSP) DumpMemory(w io.Writer, start uint16, count int, sel PageSel) error {
	for _, word := range d.ReadMemBlock(start, count, sel) {
		if err := binary.Write(w, binary.BigEndian, word); err != nil {
			return fmt.Errorf("memory dump: %w", err)
		}
	}
	return nil
}

// DumpRegisters writes every declared register with its current read value to
// w, as a JSON array of {addr, name, value} objects in table order.
func (d *DSP) DumpRegisters(w io.Writer) error {
	var e jx.Encoder
	e.ArrStart()
	d.Regs.Each(func(def *RegDef, val uint16) {
		e.ObjStart()
		e.FieldStart("addr")
		e.Str(fmt.Sprintf("0x%04X", def.Addr))
		e.FieldStart("name")
		e.Str(def.Name)
		e.FieldStart("value")
		e.Str(fmt.Sprintf("0x%04X", val))
		e.ObjEnd()
	})
	e.ArrEnd()

	if _, err := w.Write(e.Bytes()); err != nil {
		return fmt.Errorf("register dump: %w", err)
	}
	return nil
}
