package gb

import "fmt"

// Flag bits of the F register. The low nibble is always 0.
const (
	flagZ byte = 1 << 7 // zero
	flagN byte = 1 << 6 // subtract
	flagH byte = 1 << 5 // half carry
	flagC byte = 1 << 4 // carry
)

// Registers is the register file of the SM83.
// Pairs are composed high byte first: AF, BC, DE, HL.
type Registers struct {
	A, F byte
	B, C byte
	D, E byte
	H, L byte
	SP   uint16
	PC   uint16
}

func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetAF sets AF, the unused bits of F are dropped.
func (r *Registers) SetAF(x uint16) {
	r.A = byte(x >> 8)
	r.F = byte(x) & 0xF0
}

func (r *Registers) SetBC(x uint16) { r.B, r.C = byte(x>>8), byte(x) }
func (r *Registers) SetDE(x uint16) { r.D, r.E = byte(x>>8), byte(x) }
func (r *Registers) SetHL(x uint16) { r.H, r.L = byte(x>>8), byte(x) }

func (r *Registers) FlagZ() bool { return r.F&flagZ != 0 }
func (r *Registers) FlagN() bool { return r.F&flagN != 0 }
func (r *Registers) FlagH() bool { return r.F&flagH != 0 }
func (r *Registers) FlagC() bool { return r.F&flagC != 0 }

func (r *Registers) SetFlagZ(v bool) { r.setFlag(flagZ, v) }
func (r *Registers) SetFlagN(v bool) { r.setFlag(flagN, v) }
func (r *Registers) SetFlagH(v bool) { r.setFlag(flagH, v) }
func (r *Registers) SetFlagC(v bool) { r.setFlag(flagC, v) }

func (r *Registers) setFlag(mask byte, v bool) {
	if v {
		r.F |= mask
	} else {
		r.F &^= mask
	}
	r.F &= 0xF0
}

// setFlags assigns all four flags at once.
func (r *Registers) setFlags(z, n, h, c bool) {
	var f byte
	if z {
		f |= flagZ
	}
	if n {
		f |= flagN
	}
	if h {
		f |= flagH
	}
	if c {
		f |= flagC
	}
	r.F = f
}

// carry returns the carry flag as 0 or 1.
func (r *Registers) carry() byte {
	if r.FlagC() {
		return 1
	}
	return 0
}

func (r *Registers) String() string {
	return fmt.Sprintf("PC=0x%04x, SP=0x%04x, AF=0x%04x, BC=0x%04x, DE=0x%04x, HL=0x%04x",
		r.PC, r.SP, r.AF(), r.BC(), r.DE(), r.HL())
}
