package gb

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyane/jgb/diag"
)

func TestNewCartridgeRAMSizes(t *testing.T) {
	tests := []struct {
		code byte
		want int
	}{
		{0, 0},
		{1, 2 * 1024},
		{2, 8 * 1024},
		{3, 32 * 1024},
		{4, 128 * 1024},
	}
	for _, tt := range tests {
		c, err := NewCartridge(buildROM(MBC1RAM, tt.code, 2), nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, c.RAMSize(), "code=%d", tt.code)
	}
}

func TestNewCartridgeRAMFilled(t *testing.T) {
	c, err := NewCartridge(buildROM(MBC1RAMBattery, 3, 2), nil)
	require.NoError(t, err)
	require.Len(t, c.ram, 32*1024)
	for i, b := range c.ram {
		if b != 0xFF {
			t.Fatalf("ram[0x%04x]: got=0x%02x, want=0xff", i, b)
		}
	}
}

func TestNewCartridgeHeader(t *testing.T) {
	log := diag.NewLog(10)
	c, err := NewCartridge(buildROM(ROMOnly, 0, 2), log)
	require.NoError(t, err)
	assert.Equal(t, "TESTROM", c.Name())
	assert.Equal(t, ROMOnly, c.Type())
	assert.Equal(t, 32*1024, c.ROMSize())
	assert.Equal(t, 0, log.Len(), "valid checksum must not be reported")

	rom := buildROM(ROMOnly, 0, 2)
	rom[headerChecksum]++
	_, err = NewCartridge(rom, log)
	require.NoError(t, err)
	assert.Equal(t, 1, log.Len())
}

func TestNewCartridgeErrors(t *testing.T) {
	unknownType := buildROM(ROMOnly, 0, 2)
	unknownType[cartridgeTypeOffset] = 0x04
	unsupported := buildROM(MBC5, 0, 2)
	badRAM := buildROM(MBC1RAM, 0, 2)
	badRAM[ramSizeOffset] = 0x05

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", make([]byte, 0x100), ErrHeaderTooShort},
		{"unknown type", unknownType, ErrUnknownCartridgeType},
		{"unsupported type", unsupported, ErrUnsupportedCartridgeType},
		{"unknown ram size", badRAM, ErrUnknownRAMSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCartridge(tt.data, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCartridgeTypeString(t *testing.T) {
	assert.Equal(t, "MBC1+RAM+BATTERY", MBC1RAMBattery.String())
	assert.Equal(t, "unknown(0x04)", CartridgeType(0x04).String())
}

func TestBatterySave(t *testing.T) {
	c, err := NewCartridge(buildROM(MBC1RAMBattery, 2, 2), nil)
	require.NoError(t, err)
	require.True(t, c.HasBattery())
	c.writeRAM(0x0000, 0x12)
	c.writeRAM(0x1FFF, 0x34)

	path := filepath.Join(t.TempDir(), "game.sav")
	require.NoError(t, c.SaveRAMFile(path))
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, saved, 8*1024)

	restored, err := NewCartridge(buildROM(MBC1RAMBattery, 2, 2), nil)
	require.NoError(t, err)
	require.NoError(t, restored.LoadRAMFile(path))
	assert.Equal(t, byte(0x12), restored.readRAM(0x0000))
	assert.Equal(t, byte(0x34), restored.readRAM(0x1FFF))

	// a missing save is fine
	require.NoError(t, restored.LoadRAMFile(filepath.Join(t.TempDir(), "missing.sav")))
}

func TestLoadRAMShort(t *testing.T) {
	log := diag.NewLog(10)
	c, err := NewCartridge(buildROM(MBC1RAMBattery, 1, 2), log)
	require.NoError(t, err)
	require.NoError(t, c.LoadRAM(bytes.NewReader([]byte{1, 2, 3})))
	assert.Equal(t, byte(3), c.readRAM(2))
	assert.Equal(t, byte(0xFF), c.readRAM(3))
	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "battery", entries[0].Tag)
	assert.Equal(t, "save is shorter than RAM: got=3, want=2048", entries[0].Detail)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSaveRAMError(t *testing.T) {
	c, err := NewCartridge(buildROM(MBC1RAMBattery, 1, 2), nil)
	require.NoError(t, err)
	err = c.SaveRAM(failingWriter{})
	require.Error(t, err)
	assert.Equal(t, "failed to save cartridge RAM: disk full", err.Error())
}

func TestNoBatteryNoSave(t *testing.T) {
	c, err := NewCartridge(buildROM(MBC1RAM, 2, 2), nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "game.sav")
	require.NoError(t, c.SaveRAMFile(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
