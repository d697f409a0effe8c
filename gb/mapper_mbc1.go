package gb

import "github.com/jyane/jgb/diag"

// mbc1 switches 16KiB ROM banks into 0x4000-0x7FFF.
// Reference: https://gbdev.io/pandocs/MBC1.html
//
// Only the 5 bit ROM bank register is wired up. The RAM enable and the
// banking mode registers are recorded but change nothing.
type mbc1 struct {
	externalRAM
	rom         []byte
	currentBank int
	ramEnabled  bool
	bankingMode byte
	diag        diag.Sink
}

func newMBC1(rom []byte, ram []byte, d diag.Sink) *mbc1 {
	m := &mbc1{rom: rom, externalRAM: externalRAM{ram, d}, diag: d}
	m.Reset()
	return m
}

func (m *mbc1) Read(address uint16) byte {
	if address < romBankSize {
		if int(address) >= len(m.rom) {
			diag.Logf(m.diag, "mbc1", "read out of range: address=0x%04x, bank=0", address)
			return 0xFF
		}
		return m.rom[address]
	}
	// 0x4000 is already one bank in, so bank 1 maps to itself.
	i := int(address) + (m.currentBank-1)*romBankSize
	if i >= len(m.rom) {
		diag.Logf(m.diag, "mbc1", "read out of range: address=0x%04x, bank=%d", address, m.currentBank)
		return 0xFF
	}
	return m.rom[i]
}

func (m *mbc1) Write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		m.ramEnabled = data&0x0F == 0x0A
		diag.Logf(m.diag, "mbc1", "RAM enable is not gating access: enabled=%t", m.ramEnabled)
	case address < 0x4000:
		bank := int(data & 0x1F)
		if bank < 1 {
			bank = 1
		}
		m.currentBank = bank
	case 0x6000 <= address && address < 0x8000:
		m.bankingMode = data & 1
		diag.Logf(m.diag, "mbc1", "banking mode is not supported: mode=%d", m.bankingMode)
	default:
		diag.Logf(m.diag, "mbc1", "attempted write: address=0x%04x, data=0x%02x", address, data)
	}
}

func (m *mbc1) Reset() {
	m.currentBank = 1
	m.ramEnabled = false
	m.bankingMode = 0
}

func (m *mbc1) Bank() int {
	return m.currentBank
}
