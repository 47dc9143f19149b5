package hwio

import "testing"

func TestWordMemPages(t *testing.T) {
	m := NewWordMem("data", 0x100)

	m.Write(PageA, 0x10, 0xCAFEBABE)
	m.Write(PageB, 0x10, 0x12345678)

	if got := m.Read(PageA, 0x10); got != 0xCAFEBABE {
		t.Errorf("page A word = %08x, want CAFEBABE", got)
	}
	if got := m.Read(PageB, 0x10); got != 0x12345678 {
		t.Errorf("page B word = %08x, want 12345678", got)
	}
}

func TestWordMemOutOfRange(t *testing.T) {
	m := NewWordMem("data", 0x10)

	if got := m.Read(PageA, 0x10); got != 0 {
		t.Errorf("out of range read = %08x, want 0", got)
	}
	m.Write(PageA, -1, 0xFFFFFFFF)
	m.Write(PageA, 0x10, 0xFFFFFFFF)
	for i := range 0x10 {
		if got := m.Read(PageA, i); got != 0 {
			t.Errorf("word %d modified by out of range write: %08x", i, got)
		}
	}
}
