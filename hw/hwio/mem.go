package hwio

import (
	"sigmadsp/emu/log"
)

// Page selects one of the two buffers of a double-buffered memory area.
type Page uint8

const (
	PageA Page = iota
	PageB

	NumPages
)

func (p Page) String() string {
	if p == PageA {
		return "A"
	}
	return "B"
}

// WordMem is a double-buffered array of 32-bit words. Both pages have the same
// size and are independently addressable; nothing in WordMem itself decides
// which page a given access goes to, callers always pass the page explicitly.
type WordMem struct {
	Name  string
	pages [NumPages][]uint32
}

func NewWordMem(name string, words int) *WordMem {
	if words <= 0 {
		panic("word memory size must be positive")
	}
	m := &WordMem{Name: name}
	for p := range m.pages {
		m.pages[p] = make([]uint32, words)
	}
	return m
}

// Words returns the per-page size.
func (m *WordMem) Words() int {
	return len(m.pages[PageA])
}

func (m *WordMem) Read(page Page, index int) uint32 {
	if index < 0 || index >= len(m.pages[page]) {
		log.ModHwIo.ErrorZ("out of range word read").
			String("area", m.Name).
			String("page", page.String()).
			Int("index", index).
			End()
		return 0
	}
	return m.pages[page][index]
}

func (m *WordMem) Write(page Page, index int, val uint32) {
	if index < 0 || index >= len(m.pages[page]) {
		log.ModHwIo.ErrorZ("out of range word write").
			String("area", m.Name).
			String("page", page.String()).
			Int("index", index).
			Hex32("val", val).
			End()
		return
	}
	m.pages[page][index] = val
}
