package gb

import (
	"fmt"
	"image"
	"image/color"
	"sort"
)

// The DMG LCD is 160x144 pixels.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// PPU timing in T-cycles.
const (
	oamScanCycles  = 80
	transferCycles = 172
	hblankCycles   = 204
	cyclesPerLine  = oamScanCycles + transferCycles + hblankCycles // 456
	linesPerFrame  = 154
	CyclesPerFrame = cyclesPerLine * linesPerFrame // 70224
	spritesPerLine = 10
	spritesInOAM   = 40
)

// STAT modes.
const (
	modeHBlank byte = iota
	modeVBlank
	modeOAMScan
	modeTransfer
)

// LCDC bits.
const (
	lcdcBGEnable     byte = 1 << 0
	lcdcOBJEnable    byte = 1 << 1
	lcdcOBJSize      byte = 1 << 2
	lcdcBGTileMap    byte = 1 << 3
	lcdcTileData     byte = 1 << 4
	lcdcWindowEnable byte = 1 << 5
	lcdcWindowMap    byte = 1 << 6
	lcdcEnable       byte = 1 << 7
)

// STAT interrupt sources.
const (
	statLYC       byte = 1 << 2
	statHBlankIRQ byte = 1 << 3
	statVBlankIRQ byte = 1 << 4
	statOAMIRQ    byte = 1 << 5
	statLYCIRQ    byte = 1 << 6
)

// Shades of the original green LCD, from white to black.
var shades = [4]color.RGBA{
	{0xE0, 0xF8, 0xD0, 0xFF},
	{0x88, 0xC0, 0x70, 0xFF},
	{0x34, 0x68, 0x56, 0xFF},
	{0x08, 0x18, 0x20, 0xFF},
}

// PPU renders 160x144 images line by line. Each line takes 456 cycles: OAM
// scan (mode 2), pixel transfer (mode 3) and HBlank (mode 0). Lines 144-153
// are VBlank (mode 1). The line is drawn at once at the end of mode 3.
// References:
//   https://gbdev.io/pandocs/Rendering.html
//   https://gbdev.io/pandocs/STAT.html
type PPU struct {
	bus        *PPUBus
	interrupts *interrupts

	// back is drawn into, front holds the last complete frame.
	back  *image.RGBA
	front *image.RGBA
	frame uint64

	lcdc byte
	stat byte
	scy  byte
	scx  byte
	ly   byte
	lyc  byte
	bgp  byte
	obp0 byte
	obp1 byte
	wy   byte
	wx   byte

	cycle      int
	windowLine int
	// offCycles counts time with the LCD off, frames still complete so the
	// console keeps a steady pace.
	offCycles int
	// background color indexes of the current line, sprites need them for
	// priority.
	lineColors [ScreenWidth]byte
}

// NewPPU creates a PPU.
func NewPPU(bus *PPUBus, interrupts *interrupts) *PPU {
	p := &PPU{
		bus:        bus,
		interrupts: interrupts,
		back:       image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
		front:      image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}
	p.Reset()
	return p
}

// Reset sets the state before the boot ROM runs, the LCD is off.
func (p *PPU) Reset() {
	p.bus.clear()
	p.lcdc = 0
	p.stat = 0
	p.scy, p.scx = 0, 0
	p.ly, p.lyc = 0, 0
	p.bgp, p.obp0, p.obp1 = 0, 0, 0
	p.wy, p.wx = 0, 0
	p.cycle = 0
	p.windowLine = 0
	p.offCycles = 0
	p.frame = 0
	p.clear(p.back)
	p.clear(p.front)
}

// skipBoot sets the registers the boot ROM leaves behind.
func (p *PPU) skipBoot() {
	p.bgp = 0xFC
	p.obp0, p.obp1 = 0xFF, 0xFF
	p.writeRegister(0xFF40, 0x91)
}

func (p *PPU) clear(img *image.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = shades[0].R
		img.Pix[i+1] = shades[0].G
		img.Pix[i+2] = shades[0].B
		img.Pix[i+3] = shades[0].A
	}
}

// Frame returns the last complete frame and how many frames were completed.
func (p *PPU) Frame() (*image.RGBA, uint64) {
	return p.front, p.frame
}

func (p *PPU) mode() byte {
	return p.stat & 0x03
}

func (p *PPU) enabled() bool {
	return p.lcdc&lcdcEnable != 0
}

// Advance runs the PPU for cycles T-cycles.
func (p *PPU) Advance(cycles int) {
	if !p.enabled() {
		p.offCycles += cycles
		if p.offCycles >= CyclesPerFrame {
			p.offCycles -= CyclesPerFrame
			p.clear(p.back)
			p.finishFrame()
		}
		return
	}
	for i := 0; i < cycles; i++ {
		p.tick()
	}
}

func (p *PPU) tick() {
	p.cycle++
	if p.ly < ScreenHeight {
		switch p.cycle {
		case oamScanCycles:
			p.setMode(modeTransfer)
		case oamScanCycles + transferCycles:
			p.renderLine()
			p.setMode(modeHBlank)
		}
	}
	if p.cycle < cyclesPerLine {
		return
	}
	p.cycle = 0
	p.ly++
	if p.ly == linesPerFrame {
		p.ly = 0
		p.windowLine = 0
	}
	p.compareLY()
	switch {
	case p.ly == ScreenHeight:
		p.setMode(modeVBlank)
		p.interrupts.request(intVBlank)
		p.finishFrame()
	case p.ly < ScreenHeight:
		p.setMode(modeOAMScan)
	}
}

func (p *PPU) finishFrame() {
	p.front, p.back = p.back, p.front
	p.frame++
}

// setMode changes the mode and requests the STAT interrupt if the mode is
// selected as a source.
func (p *PPU) setMode(mode byte) {
	p.stat = p.stat&^0x03 | mode
	var source byte
	switch mode {
	case modeHBlank:
		source = statHBlankIRQ
	case modeVBlank:
		source = statVBlankIRQ
	case modeOAMScan:
		source = statOAMIRQ
	}
	if p.stat&source != 0 {
		p.interrupts.request(intLCDStat)
	}
}

func (p *PPU) compareLY() {
	if p.ly == p.lyc {
		p.stat |= statLYC
		if p.stat&statLYCIRQ != 0 {
			p.interrupts.request(intLCDStat)
		}
	} else {
		p.stat &^= statLYC
	}
}

func (p *PPU) readRegister(address uint16) byte {
	switch address {
	case 0xFF40:
		return p.lcdc
	case 0xFF41:
		return 0x80 | p.stat
	case 0xFF42:
		return p.scy
	case 0xFF43:
		return p.scx
	case 0xFF44:
		return p.ly
	case 0xFF45:
		return p.lyc
	case 0xFF47:
		return p.bgp
	case 0xFF48:
		return p.obp0
	case 0xFF49:
		return p.obp1
	case 0xFF4A:
		return p.wy
	case 0xFF4B:
		return p.wx
	}
	return 0xFF
}

func (p *PPU) writeRegister(address uint16, data byte) {
	switch address {
	case 0xFF40:
		p.writeLCDC(data)
	case 0xFF41:
		// The mode and the coincidence flag are read only.
		p.stat = p.stat&0x07 | data&0x78
	case 0xFF42:
		p.scy = data
	case 0xFF43:
		p.scx = data
	case 0xFF44:
		// LY is read only.
	case 0xFF45:
		p.lyc = data
		if p.enabled() {
			p.compareLY()
		}
	case 0xFF47:
		p.bgp = data
	case 0xFF48:
		p.obp0 = data
	case 0xFF49:
		p.obp1 = data
	case 0xFF4A:
		p.wy = data
	case 0xFF4B:
		p.wx = data
	}
}

func (p *PPU) writeLCDC(data byte) {
	wasEnabled := p.enabled()
	p.lcdc = data
	switch {
	case wasEnabled && !p.enabled():
		p.ly = 0
		p.cycle = 0
		p.windowLine = 0
		p.offCycles = 0
		p.stat &^= 0x03
	case !wasEnabled && p.enabled():
		p.cycle = 0
		p.stat = p.stat&^0x03 | modeOAMScan
		p.compareLY()
	}
}

// tileRow returns the two bytes of row y of a tile. Tiles are addressed from
// 0x8000 with unsigned indexes or from 0x9000 with signed ones.
func (p *PPU) tileRow(index byte, y int, unsigned bool) (byte, byte) {
	var address uint16
	if unsigned {
		address = 0x8000 + uint16(index)*16
	} else {
		address = uint16(0x9000 + int(int8(index))*16)
	}
	address += uint16(y) * 2
	return p.bus.read(address), p.bus.read(address + 1)
}

// colorIndex extracts the 2-bit color of pixel x (0 is leftmost) of a tile row.
func colorIndex(lo, hi byte, x int) byte {
	bit := 7 - uint(x)
	return (hi>>bit&1)<<1 | lo>>bit&1
}

func shade(palette, index byte) color.RGBA {
	return shades[palette>>(index*2)&0x03]
}

func (p *PPU) renderLine() {
	y := int(p.ly)
	for x := 0; x < ScreenWidth; x++ {
		p.lineColors[x] = 0
		p.back.SetRGBA(x, y, shade(p.bgp, 0))
	}
	if p.lcdc&lcdcBGEnable != 0 {
		p.renderBackground(y)
		p.renderWindow(y)
	}
	if p.lcdc&lcdcOBJEnable != 0 {
		p.renderSprites(y)
	}
}

func (p *PPU) renderBackground(y int) {
	tileMap := uint16(0x9800)
	if p.lcdc&lcdcBGTileMap != 0 {
		tileMap = 0x9C00
	}
	unsigned := p.lcdc&lcdcTileData != 0
	sy := (y + int(p.scy)) & 0xFF
	for x := 0; x < ScreenWidth; x++ {
		sx := (x + int(p.scx)) & 0xFF
		index := p.bus.read(tileMap + uint16(sy/8)*32 + uint16(sx/8))
		lo, hi := p.tileRow(index, sy%8, unsigned)
		ci := colorIndex(lo, hi, sx%8)
		p.lineColors[x] = ci
		p.back.SetRGBA(x, y, shade(p.bgp, ci))
	}
}

func (p *PPU) renderWindow(y int) {
	if p.lcdc&lcdcWindowEnable == 0 || y < int(p.wy) || p.wx > 166 {
		return
	}
	tileMap := uint16(0x9800)
	if p.lcdc&lcdcWindowMap != 0 {
		tileMap = 0x9C00
	}
	unsigned := p.lcdc&lcdcTileData != 0
	wy := p.windowLine
	left := int(p.wx) - 7
	for x := 0; x < ScreenWidth; x++ {
		if x < left {
			continue
		}
		wx := x - left
		index := p.bus.read(tileMap + uint16(wy/8)*32 + uint16(wx/8))
		lo, hi := p.tileRow(index, wy%8, unsigned)
		ci := colorIndex(lo, hi, wx%8)
		p.lineColors[x] = ci
		p.back.SetRGBA(x, y, shade(p.bgp, ci))
	}
	p.windowLine++
}

type sprite struct {
	y, x  int
	tile  byte
	flags byte
	index int
}

// Sprite attribute flags.
const (
	spriteBehindBG byte = 1 << 7
	spriteFlipY    byte = 1 << 6
	spriteFlipX    byte = 1 << 5
	spritePalette  byte = 1 << 4
)

func (p *PPU) renderSprites(y int) {
	height := 8
	if p.lcdc&lcdcOBJSize != 0 {
		height = 16
	}
	var visible []sprite
	for i := 0; i < spritesInOAM && len(visible) < spritesPerLine; i++ {
		address := 0xFE00 + uint16(i)*4
		s := sprite{
			y:     int(p.bus.read(address)) - 16,
			x:     int(p.bus.read(address+1)) - 8,
			tile:  p.bus.read(address + 2),
			flags: p.bus.read(address + 3),
			index: i,
		}
		if s.y <= y && y < s.y+height {
			visible = append(visible, s)
		}
	}
	// The smaller X wins, then the earlier entry in OAM. Draw the winners
	// last.
	sort.Slice(visible, func(i, j int) bool {
		if visible[i].x != visible[j].x {
			return visible[i].x > visible[j].x
		}
		return visible[i].index > visible[j].index
	})
	for k := range visible {
		s := visible[k]
		row := y - s.y
		if s.flags&spriteFlipY != 0 {
			row = height - 1 - row
		}
		tile := s.tile
		if height == 16 {
			tile &^= 1
		}
		lo, hi := p.tileRow(tile, row, true)
		palette := p.obp0
		if s.flags&spritePalette != 0 {
			palette = p.obp1
		}
		for px := 0; px < 8; px++ {
			x := s.x + px
			if x < 0 || x >= ScreenWidth {
				continue
			}
			col := px
			if s.flags&spriteFlipX != 0 {
				col = 7 - px
			}
			ci := colorIndex(lo, hi, col)
			if ci == 0 {
				continue
			}
			if s.flags&spriteBehindBG != 0 && p.lineColors[x] != 0 {
				continue
			}
			p.back.SetRGBA(x, y, shade(palette, ci))
		}
	}
}

func (p *PPU) String() string {
	return fmt.Sprintf("LCDC=0x%02x, STAT=0x%02x, mode=%d, LY=%d, LYC=%d, SCY=%d, SCX=%d, WY=%d, WX=%d, cycle=%d, frame=%d",
		p.lcdc, p.readRegister(0xFF41), p.mode(), p.ly, p.lyc, p.scy, p.scx, p.wy, p.wx, p.cycle, p.frame)
}
