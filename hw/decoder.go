package hw

import (
	"sigmadsp/emu/log"
)

// Serial framing: one chip-address byte, two sub-address bytes (big-endian),
// then data bytes. Control registers transfer two data bytes per word, memory
// four; in both cases the most significant byte comes first.
const (
	// 7-bit chip identifier, so 0x50 selects a write and 0x51 a read.
	chipAddrPattern = 0x28

	// byte shifted out whenever there is no read data to return
	defaultTxByte = 0x00
)

type decoderState uint8

//go:generate go tool stringer -type=decoderState -trimprefix=st

const (
	stChipAddress decoderState = iota
	stSubAddrHigh
	stSubAddrLow
	stData0
	stData1
	stData2
	stData3
)

// Decoder assembles the selected byte stream into addressed transactions and
// dispatches them to the register file and the memory banks. One decoder
// handles at most one transaction at a time; deselecting the device discards
// whatever was accumulated, without side effects.
type Decoder struct {
	dsp *DSP

	state decoderState
	addr  uint16
	read  bool
	isReg bool
	data  uint32
}

func newDecoder(dsp *DSP) *Decoder {
	return &Decoder{dsp: dsp}
}

func (dec *Decoder) reset() {
	dec.state = stChipAddress
}

// Transmit processes one received byte and returns the byte to shift back.
// The returned byte carries data only during the data phase of a read
// transaction; in any other phase it is defaultTxByte.
func (dec *Decoder) Transmit(in uint8) uint8 {
	out := uint8(defaultTxByte)

	switch dec.state {
	case stChipAddress:
		dec.read = in&1 != 0
		if in>>1 != chipAddrPattern {
			log.ModBus.WarnZ("unexpected chip address byte").
				Hex8("byte", in).
				End()
		}
		dec.state = stSubAddrHigh

	case stSubAddrHigh:
		dec.addr = uint16(in) << 8
		dec.state = stSubAddrLow

	case stSubAddrLow:
		dec.addr |= uint16(in)
		dec.isReg = IsRegAddr(dec.addr)
		dec.data = 0
		dec.state = stData0
		log.ModBus.DebugZ("transaction start").
			Hex16("addr", dec.addr).
			Bool("read", dec.read).
			Bool("reg", dec.isReg).
			End()

	case stData0:
		switch {
		case dec.isReg && dec.read:
			dec.data = uint32(dec.dsp.Regs.Read(dec.addr))
			out = uint8(dec.data >> 8)
		case dec.read:
			dec.data = dec.dsp.Mem.Read(dec.addr, CurPage)
			out = uint8(dec.data >> 24)
		default:
			dec.data = uint32(in)
		}
		dec.state = stData1

	case stData1:
		if dec.isReg {
			if dec.read {
				out = uint8(dec.data)
			} else {
				dec.data = dec.data<<8 | uint32(in)
				dec.dsp.Regs.Write(dec.addr, uint16(dec.data))
			}
			dec.nextWord()
			break
		}
		if dec.read {
			out = uint8(dec.data >> 16)
		} else {
			dec.data = dec.data<<8 | uint32(in)
		}
		dec.state = stData2

	case stData2:
		if dec.read {
			out = uint8(dec.data >> 8)
		} else {
			dec.data = dec.data<<8 | uint32(in)
		}
		dec.state = stData3

	case stData3:
		if dec.read {
			out = uint8(dec.data)
		} else {
			dec.data = dec.data<<8 | uint32(in)
			dec.dsp.Mem.Write(dec.addr, dec.data, CurPage)
			dec.dsp.checkSafeload(dec.addr, dec.data)
		}
		dec.nextWord()
	}

	return out
}

// nextWord continues the burst: the address moves to the next word and the
// data phase restarts, without a new chip-address or sub-address sequence.
func (dec *Decoder) nextWord() {
	dec.addr++
	dec.data = 0
	dec.state = stData0
}
