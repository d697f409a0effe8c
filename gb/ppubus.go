package gb

const (
	vramSize = 0x2000
	oamSize  = 0xA0
)

// PPUBus is the memory owned by the PPU: video RAM and the sprite attribute
// table.
type PPUBus struct {
	vram *RAM
	oam  *RAM
}

// NewPPUBus creates a new Bus for PPU
func NewPPUBus(vram *RAM, oam *RAM) *PPUBus {
	return &PPUBus{vram, oam}
}

// read reads data.
// Address        Size    Description
// -------------------------------------
// $8000-$87FF    $0800   Tile block 0
// $8800-$8FFF    $0800   Tile block 1
// $9000-$97FF    $0800   Tile block 2
// $9800-$9BFF    $0400   Tile map 0
// $9C00-$9FFF    $0400   Tile map 1
// $FE00-$FE9F    $00A0   OAM
// Reference: https://gbdev.io/pandocs/Memory_Map.html
func (b *PPUBus) read(address uint16) byte {
	switch {
	case 0x8000 <= address && address < 0xA000:
		return b.vram.read(address - 0x8000)
	case 0xFE00 <= address && address < 0xFEA0:
		return b.oam.read(address - 0xFE00)
	}
	return 0xFF
}

// write writes data.
func (b *PPUBus) write(address uint16, data byte) {
	switch {
	case 0x8000 <= address && address < 0xA000:
		b.vram.write(address-0x8000, data)
	case 0xFE00 <= address && address < 0xFEA0:
		b.oam.write(address-0xFE00, data)
	}
}

func (b *PPUBus) clear() {
	b.vram.clear()
	b.oam.clear()
}
