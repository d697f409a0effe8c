package gb

import "github.com/jyane/jgb/diag"

// romOnly is a 32KiB cartridge without a bank controller.
type romOnly struct {
	externalRAM
	rom  []byte
	diag diag.Sink
}

func (m *romOnly) Read(address uint16) byte {
	if int(address) >= len(m.rom) {
		diag.Logf(m.diag, "rom", "read out of range: address=0x%04x", address)
		return 0xFF
	}
	return m.rom[address]
}

func (m *romOnly) Write(address uint16, data byte) {
	diag.Logf(m.diag, "rom", "writing to ROM: address=0x%04x, data=0x%02x", address, data)
}

func (m *romOnly) Reset() {}

func (m *romOnly) Bank() int {
	return 1
}
