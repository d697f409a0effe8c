package gb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyane/jgb/diag"
)

func TestMBC1BankSelect(t *testing.T) {
	c, err := NewCartridge(buildROM(MBC1, 0, 32), nil)
	require.NoError(t, err)
	for v := 0; v < 256; v++ {
		c.write(0x2000, byte(v))
		want := v & 0x1F
		if want < 1 {
			want = 1
		}
		if got := c.mapper.Bank(); got != want {
			t.Fatalf("bank after writing 0x%02x: got=%d, want=%d", v, got, want)
		}
		if got := c.read(0x4000); got != byte(want) {
			t.Fatalf("read 0x4000 in bank %d: got=0x%02x, want=0x%02x", want, got, want)
		}
	}
}

func TestMBC1FixedBank(t *testing.T) {
	c, err := NewCartridge(buildROM(MBC1, 0, 4), nil)
	require.NoError(t, err)
	c.write(0x3FFF, 3)
	assert.Equal(t, byte(0), c.read(0x3FFF))
	assert.Equal(t, byte(3), c.read(0x7FFF))
}

func TestMBC1OutOfRange(t *testing.T) {
	log := diag.NewLog(10)
	c, err := NewCartridge(buildROM(MBC1, 0, 4), log)
	require.NoError(t, err)
	c.write(0x2000, 0x10)
	assert.Equal(t, byte(0xFF), c.read(0x4000))
	assert.Equal(t, byte(0xFF), c.read(0x4000))
	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "mbc1", entries[0].Tag)
	assert.Equal(t, 1, entries[0].Repeated)
}

func TestMBC1ShortImage(t *testing.T) {
	log := diag.NewLog(10)
	c, err := NewCartridge(buildROM(MBC1, 0, 1)[:0x2000], log)
	require.NoError(t, err)
	assert.Equal(t, byte(0), c.read(0x1FFF))
	assert.Equal(t, byte(0xFF), c.read(0x3000))
	assert.Equal(t, byte(0xFF), c.read(0x4000))
	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "mbc1", entries[0].Tag)
	assert.Equal(t, "read out of range: address=0x3000, bank=0", entries[0].Detail)
}

func TestMBC1ControlWrites(t *testing.T) {
	log := diag.NewLog(10)
	c, err := NewCartridge(buildROM(MBC1RAM, 2, 2), log)
	require.NoError(t, err)
	m := c.mapper.(*mbc1)

	c.write(0x0000, 0x0A)
	assert.True(t, m.ramEnabled)
	c.write(0x6000, 0x01)
	assert.Equal(t, byte(1), m.bankingMode)
	c.write(0x4000, 0x03)
	assert.Equal(t, 1, m.Bank(), "0x4000-0x5FFF must not change the ROM bank")
	assert.Equal(t, 3, log.Len())

	c.reset()
	assert.Equal(t, 1, m.Bank())
	assert.False(t, m.ramEnabled)
}

func TestMBC3RoutedThroughMBC1(t *testing.T) {
	c, err := NewCartridge(buildROM(MBC3RAMBattery, 3, 8), nil)
	require.NoError(t, err)
	c.write(0x2000, 7)
	assert.Equal(t, byte(7), c.read(0x4000))
}

func TestROMOnly(t *testing.T) {
	log := diag.NewLog(10)
	c, err := NewCartridge(buildROM(ROMOnly, 0, 2), log)
	require.NoError(t, err)
	assert.Equal(t, byte(1), c.read(0x4000))
	c.write(0x2000, 0x05)
	assert.Equal(t, byte(1), c.read(0x4000), "ROM only cartridges ignore writes")
	assert.Equal(t, 1, log.Len())
	assert.Equal(t, "rom", log.Entries()[0].Tag)
}

func TestRAMlessCartridge(t *testing.T) {
	log := diag.NewLog(10)
	c, err := NewCartridge(buildROM(MBC1, 0, 2), log)
	require.NoError(t, err)
	c.writeRAM(0x0000, 0x42)
	assert.Equal(t, byte(0xFF), c.readRAM(0x0000))
	assert.Equal(t, 0, c.RAMSize())
	assert.Equal(t, 2, log.Len())
}

func TestCartridgeRAM(t *testing.T) {
	log := diag.NewLog(10)
	c, err := NewCartridge(buildROM(MBC1RAM, 1, 2), log)
	require.NoError(t, err)
	c.writeRAM(0x07FF, 0x42)
	assert.Equal(t, byte(0x42), c.readRAM(0x07FF))
	// 2KiB RAM does not cover the whole 8KiB window.
	c.writeRAM(0x0800, 0x42)
	assert.Equal(t, byte(0xFF), c.readRAM(0x0800))
	assert.Equal(t, 2, log.Len())
}
