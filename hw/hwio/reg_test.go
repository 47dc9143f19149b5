package hwio

import "testing"

func TestReg16(t *testing.T) {
	r := Reg16{Value: 0x1234, RoMask: 0xFF00}

	if r.Read16(0) != 0x1234 {
		t.Errorf("invalid read: %x", r.Read16(0))
	}
	if r.Read16(0xF123) != 0x1234 {
		t.Errorf("invalid read with offset: %x", r.Read16(0xF123))
	}

	r.Write16(0, 0x5678)
	if r.Value != 0x1278 {
		t.Errorf("writemask not respected: %x", r.Value)
	}
	r.Write16(0xF123, 0xABCD)
	if r.Value != 0x12CD {
		t.Errorf("writemask with offset not respected: %x", r.Value)
	}
}

func TestReg16ReadOnly(t *testing.T) {
	r := Reg16{Value: 0x0001, Flags: ReadOnlyFlag}

	r.Write16(0xF004, 0xFFFF)
	if r.Value != 0x0001 {
		t.Errorf("readonly reg modified: %x", r.Value)
	}
	if r.Read16(0xF004) != 0x0001 {
		t.Errorf("invalid read: %x", r.Read16(0xF004))
	}
}

func TestReg16Callbacks(t *testing.T) {
	var gotOld, gotVal uint16
	r := Reg16{
		Value:   0x0010,
		ReadCb:  func(val uint16) uint16 { return val + 1 },
		WriteCb: func(old, val uint16) { gotOld, gotVal = old, val },
	}

	if r.Read16(0) != 0x0011 {
		t.Errorf("read callback not used: %x", r.Read16(0))
	}

	r.Write16(0, 0x0042)
	if gotOld != 0x0010 || gotVal != 0x0042 {
		t.Errorf("write callback got (%x, %x), want (0010, 0042)", gotOld, gotVal)
	}
}
