package gb

import (
	"image"
	"io"

	"github.com/golang/glog"

	"github.com/jyane/jgb/diag"
)

// Config configures a Console.
type Config struct {
	// BootROM is the 256-byte DMG boot ROM. Without it the console starts in
	// the state the boot ROM leaves behind.
	BootROM []byte
	// Diagnostics receives recoverable conditions, glog when nil.
	Diagnostics diag.Sink
	// SerialOut receives the bytes sent through the link port.
	SerialOut io.Writer
}

// Advancer is a component clocked by the console with the cycles each
// instruction took.
type Advancer interface {
	Advance(cycles int)
}

// Console is a Game Boy, it runs the CPU one instruction at a time and keeps
// the other components in step with it.
type Console struct {
	CPU    *CPU
	PPU    *PPU
	APU    *APU
	Timer  *Timer
	Joypad *Joypad
	Serial *Serial

	bus        *Bus
	cartridge  *Cartridge
	interrupts *interrupts
	advancers  []Advancer
	config     Config

	cycles    uint64
	lastFrame uint64
}

// NewConsole creates a Console running the given ROM image.
func NewConsole(rom []byte, cfg Config) (*Console, error) {
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = diag.Glog
	}
	cartridge, err := NewCartridge(rom, cfg.Diagnostics)
	if err != nil {
		return nil, err
	}
	if len(cfg.BootROM) > 0 && len(cfg.BootROM) < bootROMSize {
		diag.Logf(cfg.Diagnostics, "boot", "boot ROM too short: %d bytes, skipping it", len(cfg.BootROM))
		cfg.BootROM = nil
	}
	interrupts := &interrupts{}
	ppu := NewPPU(NewPPUBus(NewRAM(vramSize), NewRAM(oamSize)), interrupts)
	apu := NewAPU()
	timer := NewTimer(interrupts)
	joypad := NewJoypad(interrupts)
	serial := NewSerial(cfg.SerialOut, interrupts, cfg.Diagnostics)
	bus := NewBus(cfg.BootROM, cartridge, ppu, apu, timer, joypad, serial, interrupts, cfg.Diagnostics)
	c := &Console{
		CPU:        NewCPU(bus),
		PPU:        ppu,
		APU:        apu,
		Timer:      timer,
		Joypad:     joypad,
		Serial:     serial,
		bus:        bus,
		cartridge:  cartridge,
		interrupts: interrupts,
		advancers:  []Advancer{timer, ppu, apu},
		config:     cfg,
	}
	c.powerOn()
	glog.Infof("Loaded cartridge: %s", cartridge)
	return c, nil
}

func (c *Console) powerOn() {
	if len(c.config.BootROM) > 0 {
		return
	}
	c.CPU.skipBoot()
	c.PPU.skipBoot()
	c.APU.skipBoot()
	c.Timer.counter = 0xABCC
	c.interrupts.flag = 1 << intVBlank
}

// Cartridge returns the inserted cartridge.
func (c *Console) Cartridge() *Cartridge {
	return c.cartridge
}

// Cycles returns the T-cycles executed since the last reset.
func (c *Console) Cycles() uint64 {
	return c.cycles
}

// Reset restores the power-on state. Cartridge RAM is kept.
func (c *Console) Reset() {
	c.cartridge.reset()
	c.bus.reset()
	*c.interrupts = interrupts{}
	c.CPU.Reset()
	c.PPU.Reset()
	c.APU.Reset()
	c.Timer.Reset()
	c.Joypad.Reset()
	c.Serial.Reset()
	c.cycles = 0
	c.lastFrame = 0
	c.powerOn()
}

// Step runs one instruction, or the dispatch of an interrupt, and advances
// the other components by the same number of cycles.
func (c *Console) Step() (int, error) {
	cycles, err := c.step()
	if err != nil {
		return cycles, err
	}
	c.cycles += uint64(cycles)
	for _, a := range c.advancers {
		a.Advance(cycles)
	}
	return cycles, nil
}

func (c *Console) step() (int, error) {
	if c.CPU.ime {
		if bit, ok := c.interrupts.highest(); ok {
			c.interrupts.acknowledge(bit)
			if glog.V(2) {
				glog.Infof("Interrupt: %s", interruptNames[bit])
			}
			return c.CPU.interrupt(interruptVector(bit)), nil
		}
	}
	return c.CPU.Step()
}

// StepFrame runs until the PPU completes a frame.
func (c *Console) StepFrame() (int, error) {
	_, start := c.PPU.Frame()
	cycles := 0
	for {
		n, err := c.Step()
		cycles += n
		if err != nil {
			return cycles, err
		}
		if _, f := c.PPU.Frame(); f != start {
			return cycles, nil
		}
	}
}

// Frame returns the last complete frame, ok is false when it was already
// returned.
func (c *Console) Frame() (*image.RGBA, bool) {
	img, n := c.PPU.Frame()
	if n == c.lastFrame {
		return img, false
	}
	c.lastFrame = n
	return img, true
}

// SetButtons sets the pressed buttons, indexed by ButtonA..ButtonDown.
func (c *Console) SetButtons(buttons [8]bool) {
	c.Joypad.Set(buttons)
}

// SetAudioOut sets the channel receiving interleaved stereo samples.
func (c *Console) SetAudioOut(out chan float32) {
	c.APU.SetAudioOut(out)
}

// SetAudioSink sets a sink receiving every stereo sample.
func (c *Console) SetAudioSink(s AudioSink) {
	c.APU.SetAudioSink(s)
}
