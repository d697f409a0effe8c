package gb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jyane/jgb/diag"
)

// Cartridge header layout.
// References:
//   https://gbdev.io/pandocs/The_Cartridge_Header.html
const (
	titleStart          = 0x0134
	titleEnd            = 0x0142
	cartridgeTypeOffset = 0x0147
	romSizeOffset       = 0x0148
	ramSizeOffset       = 0x0149
	headerChecksum      = 0x014D
	headerSizeBytes     = 0x0150

	romBankSize = 0x4000
)

var (
	ErrHeaderTooShort           = errors.New("cartridge header too short")
	ErrUnknownCartridgeType     = errors.New("unknown cartridge type")
	ErrUnsupportedCartridgeType = errors.New("unsupported cartridge type")
	ErrUnknownRAMSize           = errors.New("unknown RAM size")
)

// CartridgeType is the byte at 0x0147 of the header.
type CartridgeType byte

const (
	ROMOnly             CartridgeType = 0x00
	MBC1                CartridgeType = 0x01
	MBC1RAM             CartridgeType = 0x02
	MBC1RAMBattery      CartridgeType = 0x03
	MBC2                CartridgeType = 0x05
	MBC2Battery         CartridgeType = 0x06
	ROMRAM              CartridgeType = 0x08
	ROMRAMBattery       CartridgeType = 0x09
	MMM01               CartridgeType = 0x0B
	MMM01RAM            CartridgeType = 0x0C
	MMM01RAMBattery     CartridgeType = 0x0D
	MBC3TimerBattery    CartridgeType = 0x0F
	MBC3TimerRAMBattery CartridgeType = 0x10
	MBC3                CartridgeType = 0x11
	MBC3RAM             CartridgeType = 0x12
	MBC3RAMBattery      CartridgeType = 0x13
	MBC5                CartridgeType = 0x19
	MBC5RAM             CartridgeType = 0x1A
	MBC5RAMBattery      CartridgeType = 0x1B
	MBC5Rumble          CartridgeType = 0x1C
	MBC5RumbleRAM       CartridgeType = 0x1D
	MBC5RumbleRAMBatt   CartridgeType = 0x1E
	PocketCamera        CartridgeType = 0xFC
	BandaiTAMA5         CartridgeType = 0xFD
	HudsonHuC3          CartridgeType = 0xFE
	HudsonHuC1          CartridgeType = 0xFF
)

var cartridgeTypeNames = map[CartridgeType]string{
	ROMOnly:             "ROM ONLY",
	MBC1:                "MBC1",
	MBC1RAM:             "MBC1+RAM",
	MBC1RAMBattery:      "MBC1+RAM+BATTERY",
	MBC2:                "MBC2",
	MBC2Battery:         "MBC2+BATTERY",
	ROMRAM:              "ROM+RAM",
	ROMRAMBattery:       "ROM+RAM+BATTERY",
	MMM01:               "MMM01",
	MMM01RAM:            "MMM01+RAM",
	MMM01RAMBattery:     "MMM01+RAM+BATTERY",
	MBC3TimerBattery:    "MBC3+TIMER+BATTERY",
	MBC3TimerRAMBattery: "MBC3+TIMER+RAM+BATTERY",
	MBC3:                "MBC3",
	MBC3RAM:             "MBC3+RAM",
	MBC3RAMBattery:      "MBC3+RAM+BATTERY",
	MBC5:                "MBC5",
	MBC5RAM:             "MBC5+RAM",
	MBC5RAMBattery:      "MBC5+RAM+BATTERY",
	MBC5Rumble:          "MBC5+RUMBLE",
	MBC5RumbleRAM:       "MBC5+RUMBLE+RAM",
	MBC5RumbleRAMBatt:   "MBC5+RUMBLE+RAM+BATTERY",
	PocketCamera:        "POCKET CAMERA",
	BandaiTAMA5:         "BANDAI TAMA5",
	HudsonHuC3:          "HuC3",
	HudsonHuC1:          "HuC1+RAM+BATTERY",
}

func (t CartridgeType) String() string {
	if name, ok := cartridgeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", byte(t))
}

// hasBattery reports whether the cartridge keeps its RAM when powered off.
func (t CartridgeType) hasBattery() bool {
	switch t {
	case MBC1RAMBattery, MBC2Battery, ROMRAMBattery, MMM01RAMBattery,
		MBC3TimerBattery, MBC3TimerRAMBattery, MBC3RAMBattery,
		MBC5RAMBattery, MBC5RumbleRAMBatt, HudsonHuC1:
		return true
	}
	return false
}

// parseCartridgeType validates the header byte against the known types.
func parseCartridgeType(b byte) (CartridgeType, error) {
	t := CartridgeType(b)
	if _, ok := cartridgeTypeNames[t]; !ok {
		return 0, fmt.Errorf("%w: 0x%02x", ErrUnknownCartridgeType, b)
	}
	return t, nil
}

// ramSizes maps the header byte at 0x0149 to the size of the cartridge RAM.
var ramSizes = map[byte]int{
	0: 0,
	1: 2 * 1024,
	2: 8 * 1024,
	3: 32 * 1024,
	4: 128 * 1024,
}

func ramSize(code byte) (int, error) {
	size, ok := ramSizes[code]
	if !ok {
		return 0, fmt.Errorf("%w: 0x%02x", ErrUnknownRAMSize, code)
	}
	return size, nil
}

// Cartridge is a game pak: the ROM image, the optional external RAM and the
// memory bank controller that routes CPU accesses into them.
type Cartridge struct {
	rom           []byte
	ram           []byte
	name          string
	cartridgeType CartridgeType
	romSizeCode   byte
	mapper        Mapper
	diag          diag.Sink
}

// NewCartridge creates a cartridge from a raw ROM dump.
func NewCartridge(data []byte, d diag.Sink) (*Cartridge, error) {
	if d == nil {
		d = diag.Discard
	}
	if len(data) < headerSizeBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooShort, len(data))
	}
	t, err := parseCartridgeType(data[cartridgeTypeOffset])
	if err != nil {
		return nil, err
	}
	size, err := ramSize(data[ramSizeOffset])
	if err != nil {
		return nil, err
	}
	c := &Cartridge{
		rom:           data,
		ram:           make([]byte, size),
		name:          strings.TrimRight(string(data[titleStart:titleEnd]), "\x00"),
		cartridgeType: t,
		romSizeCode:   data[romSizeOffset],
		diag:          d,
	}
	// Uninitialized RAM reads as 0xFF on hardware.
	for i := range c.ram {
		c.ram[i] = 0xFF
	}
	c.mapper, err = NewMapper(t, c.rom, c.ram, d)
	if err != nil {
		return nil, err
	}
	if got, want := c.computeHeaderChecksum(), data[headerChecksum]; got != want {
		diag.Logf(d, "cartridge", "header checksum mismatch: got=0x%02x, want=0x%02x", got, want)
	}
	return c, nil
}

func (c *Cartridge) computeHeaderChecksum() byte {
	var x byte
	for _, b := range c.rom[titleStart:headerChecksum] {
		x = x - b - 1
	}
	return x
}

// Name returns the title stored in the header.
func (c *Cartridge) Name() string {
	return c.name
}

// Type returns the cartridge type stored in the header.
func (c *Cartridge) Type() CartridgeType {
	return c.cartridgeType
}

// RAMSize returns the size of the external RAM in bytes.
func (c *Cartridge) RAMSize() int {
	return len(c.ram)
}

// ROMSize returns the ROM size declared in the header, in bytes.
func (c *Cartridge) ROMSize() int {
	if c.romSizeCode > 8 {
		return len(c.rom)
	}
	return (32 * 1024) << c.romSizeCode
}

// HasBattery reports whether the external RAM should be persisted.
func (c *Cartridge) HasBattery() bool {
	return c.cartridgeType.hasBattery() && len(c.ram) > 0
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("%q %s ROM=%dKiB RAM=%dKiB bank=%d",
		c.name, c.cartridgeType, c.ROMSize()/1024, len(c.ram)/1024, c.mapper.Bank())
}

// read reads the ROM area 0x0000-0x7FFF.
func (c *Cartridge) read(address uint16) byte {
	return c.mapper.Read(address)
}

// write writes the ROM area 0x0000-0x7FFF, which controls the mapper.
func (c *Cartridge) write(address uint16, data byte) {
	c.mapper.Write(address, data)
}

// readRAM reads the external RAM, address is relative to 0xA000.
func (c *Cartridge) readRAM(address uint16) byte {
	return c.mapper.ReadRAM(address)
}

// writeRAM writes the external RAM, address is relative to 0xA000.
func (c *Cartridge) writeRAM(address uint16, data byte) {
	c.mapper.WriteRAM(address, data)
}

func (c *Cartridge) reset() {
	c.mapper.Reset()
}
