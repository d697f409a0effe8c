package gb

import (
	"fmt"

	"github.com/jyane/jgb/diag"
)

// Mapper is a memory bank controller.
// Read and Write take CPU addresses 0x0000-0x7FFF, ReadRAM and WriteRAM
// take addresses relative to 0xA000.
type Mapper interface {
	Read(address uint16) byte
	Write(address uint16, data byte)
	ReadRAM(address uint16) byte
	WriteRAM(address uint16, data byte)
	Reset()
	// Bank returns the bank currently mapped at 0x4000-0x7FFF.
	Bank() int
}

// NewMapper creates the mapper for the cartridge type. Types without a
// mapper implementation are rejected.
func NewMapper(t CartridgeType, rom []byte, ram []byte, d diag.Sink) (Mapper, error) {
	switch t {
	case ROMOnly:
		return &romOnly{rom: rom, externalRAM: externalRAM{ram, d}, diag: d}, nil
	case MBC1, MBC1RAM, MBC1RAMBattery, MBC3RAMBattery:
		// MBC3+RAM+BATTERY shares the MBC1 bank select, which covers the
		// games that do not use the RTC or more than 32 banks.
		return newMBC1(rom, ram, d), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedCartridgeType, t)
}

// externalRAM is the RAM on the cartridge, shared by every mapper.
type externalRAM struct {
	data []byte
	diag diag.Sink
}

func (r *externalRAM) ReadRAM(address uint16) byte {
	if len(r.data) == 0 {
		diag.Logf(r.diag, "cartridge", "reading RAM on a cartridge without RAM: address=0x%04x", address)
		return 0xFF
	}
	if int(address) >= len(r.data) {
		diag.Logf(r.diag, "cartridge", "RAM read out of range: address=0x%04x, size=0x%04x", address, len(r.data))
		return 0xFF
	}
	return r.data[address]
}

func (r *externalRAM) WriteRAM(address uint16, data byte) {
	if len(r.data) == 0 {
		diag.Logf(r.diag, "cartridge", "writing RAM on a cartridge without RAM: address=0x%04x, data=0x%02x", address, data)
		return
	}
	if int(address) >= len(r.data) {
		diag.Logf(r.diag, "cartridge", "RAM write out of range: address=0x%04x, data=0x%02x", address, data)
		return
	}
	r.data[address] = data
}
