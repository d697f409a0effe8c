package gb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jyane/jgb/diag"
)

// buildROM creates a ROM image with a valid header. Every byte of bank n
// outside the header is filled with n, so tests can tell banks apart.
func buildROM(t CartridgeType, ramCode byte, banks int) []byte {
	rom := make([]byte, banks*romBankSize)
	for bank := 0; bank < banks; bank++ {
		for i := 0; i < romBankSize; i++ {
			rom[bank*romBankSize+i] = byte(bank)
		}
	}
	for i := 0x0100; i < headerSizeBytes; i++ {
		rom[i] = 0
	}
	copy(rom[titleStart:], "TESTROM")
	rom[cartridgeTypeOffset] = byte(t)
	rom[romSizeOffset] = 0
	rom[ramSizeOffset] = ramCode
	var x byte
	for _, b := range rom[titleStart:headerChecksum] {
		x = x - b - 1
	}
	rom[headerChecksum] = x
	return rom
}

// buildProgramROM creates a ROM-only image that jumps from the entry point to
// program, placed right after the header.
func buildProgramROM(program ...byte) []byte {
	rom := buildROM(ROMOnly, 0, 2)
	copy(rom[0x0100:], []byte{0xC3, 0x50, 0x01}) // JP 0x0150
	copy(rom[headerSizeBytes:], program)
	return rom
}

func newTestConsole(t *testing.T, rom []byte, cfg Config) *Console {
	t.Helper()
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = diag.Discard
	}
	c, err := NewConsole(rom, cfg)
	require.NoError(t, err)
	return c
}
