package gb

import (
	"github.com/golang/glog"

	"github.com/jyane/jgb/diag"
)

const (
	wramSize    = 0x2000
	hramSize    = 0x7F
	bootROMSize = 0x100
)

// memory is what the CPU sees of the address space.
type memory interface {
	read(address uint16) byte
	write(address uint16, data byte)
}

// Bus is the address space of the CPU, every access is routed by address to
// the component owning it.
type Bus struct {
	bootROM     []byte
	bootEnabled bool
	cartridge   *Cartridge
	wram        *RAM
	hram        *RAM
	ppu         *PPU
	apu         *APU
	timer       *Timer
	joypad      *Joypad
	serial      *Serial
	interrupts  *interrupts
	dma         byte
	diag        diag.Sink
}

// NewBus creates a new Bus for CPU.
// CPU memory map
// 0x0000 - 0x00FF	Boot ROM (until 0xFF50 is written)
// 0x0000 - 0x3FFF	ROM bank 0
// 0x4000 - 0x7FFF	ROM bank 1-N, switched by the mapper
// 0x8000 - 0x9FFF	VRAM
// 0xA000 - 0xBFFF	External RAM
// 0xC000 - 0xDFFF	WRAM
// 0xE000 - 0xFDFF	WRAM Mirror
// 0xFE00 - 0xFE9F	OAM
// 0xFEA0 - 0xFEFF	Not usable
// 0xFF00 - 0xFF7F	I/O Registers
// 0xFF80 - 0xFFFE	HRAM
// 0xFFFF        	Interrupt Enable
func NewBus(
	bootROM []byte,
	cartridge *Cartridge,
	ppu *PPU,
	apu *APU,
	timer *Timer,
	joypad *Joypad,
	serial *Serial,
	interrupts *interrupts,
	d diag.Sink,
) *Bus {
	b := &Bus{
		bootROM:    bootROM,
		cartridge:  cartridge,
		wram:       NewRAM(wramSize),
		hram:       NewRAM(hramSize),
		ppu:        ppu,
		apu:        apu,
		timer:      timer,
		joypad:     joypad,
		serial:     serial,
		interrupts: interrupts,
		diag:       d,
	}
	b.reset()
	return b
}

func (b *Bus) reset() {
	b.bootEnabled = len(b.bootROM) >= bootROMSize
	b.wram.clear()
	b.hram.clear()
	b.dma = 0xFF
}

// read reads a byte.
func (b *Bus) read(address uint16) byte {
	switch {
	case address < bootROMSize && b.bootEnabled:
		return b.bootROM[address]
	case address < 0x8000:
		return b.cartridge.read(address)
	case address < 0xA000:
		return b.ppu.bus.read(address)
	case address < 0xC000:
		return b.cartridge.readRAM(address - 0xA000)
	case address < 0xE000:
		return b.wram.read(address - 0xC000)
	case address < 0xFE00:
		return b.wram.read(address - 0xE000)
	case address < 0xFEA0:
		return b.ppu.bus.read(address)
	case address < 0xFF00:
		return 0xFF
	case address < 0xFF80:
		return b.readIO(address)
	case address < 0xFFFF:
		return b.hram.read(address - 0xFF80)
	default:
		return b.interrupts.enable
	}
}

func (b *Bus) readIO(address uint16) byte {
	switch {
	case address == 0xFF00:
		return b.joypad.read()
	case address == 0xFF01 || address == 0xFF02:
		return b.serial.read(address)
	case 0xFF04 <= address && address <= 0xFF07:
		return b.timer.read(address)
	case address == 0xFF0F:
		return 0xE0 | b.interrupts.flag
	case 0xFF10 <= address && address < 0xFF40:
		return b.apu.read(address)
	case address == 0xFF46:
		return b.dma
	case 0xFF40 <= address && address <= 0xFF4B:
		return b.ppu.readRegister(address)
	}
	diag.Logf(b.diag, "bus", "unmapped I/O read: address=0x%04x", address)
	return 0xFF
}

// write writes a byte.
func (b *Bus) write(address uint16, data byte) {
	switch {
	case address < 0x8000:
		b.cartridge.write(address, data)
	case address < 0xA000:
		b.ppu.bus.write(address, data)
	case address < 0xC000:
		b.cartridge.writeRAM(address-0xA000, data)
	case address < 0xE000:
		b.wram.write(address-0xC000, data)
	case address < 0xFE00:
		b.wram.write(address-0xE000, data)
	case address < 0xFEA0:
		b.ppu.bus.write(address, data)
	case address < 0xFF00:
		diag.Logf(b.diag, "bus", "write to unusable area: address=0x%04x, data=0x%02x", address, data)
	case address < 0xFF80:
		b.writeIO(address, data)
	case address < 0xFFFF:
		b.hram.write(address-0xFF80, data)
	default:
		b.interrupts.enable = data
	}
}

func (b *Bus) writeIO(address uint16, data byte) {
	switch {
	case address == 0xFF00:
		b.joypad.write(data)
	case address == 0xFF01 || address == 0xFF02:
		b.serial.write(address, data)
	case 0xFF04 <= address && address <= 0xFF07:
		b.timer.write(address, data)
	case address == 0xFF0F:
		b.interrupts.flag = data & 0x1F
	case 0xFF10 <= address && address < 0xFF40:
		b.apu.write(address, data)
	case address == 0xFF46:
		b.writeOAMDMA(data)
	case 0xFF40 <= address && address <= 0xFF4B:
		b.ppu.writeRegister(address, data)
	case address == 0xFF50:
		if data != 0 && b.bootEnabled {
			b.bootEnabled = false
			glog.V(1).Infoln("boot ROM disabled")
		}
	default:
		diag.Logf(b.diag, "bus", "unmapped I/O write: address=0x%04x, data=0x%02x", address, data)
	}
}

// writeOAMDMA copies 160 bytes from data*0x100 into OAM. The transfer is done
// at once instead of over 160 machine cycles.
func (b *Bus) writeOAMDMA(data byte) {
	b.dma = data
	source := uint16(data) << 8
	for i := uint16(0); i < oamSize; i++ {
		b.ppu.bus.write(0xFE00+i, b.read(source+i))
	}
}
