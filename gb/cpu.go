package gb

import (
	"errors"
	"fmt"
)

// CPU emulates the Sharp SM83, the Z80 like core of the Game Boy.
// References:
//   https://gbdev.io/pandocs/CPU_Registers_and_Flags.html
//   https://gbdev.io/gb-opcodes/optables/
//   https://rgbds.gbdev.io/docs/gbz80.7

// CPUFrequency is the clock of the DMG in T-cycles per second.
const CPUFrequency = 4194304

// Register indexes as encoded in the opcode bits.
const (
	regB = iota
	regC
	regD
	regE
	regH
	regL
	regHLIndirect // (HL)
	regA
)

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// Register pair indexes. pairSP and pairAF share the encoding, SP is used by
// the 16-bit loads and arithmetic, AF by PUSH and POP.
const (
	pairBC = iota
	pairDE
	pairHL
	pairSP
	pairAF
)

// Branch conditions.
const (
	condNZ = iota
	condZ
	condNC
	condC
)

// ErrUnimplementedInstruction is returned for opcodes without a handler.
var ErrUnimplementedInstruction = errors.New("unimplemented instruction")

type CPU struct {
	Registers
	bus            memory
	ime            bool // interrupt master enable
	eiDelay        int  // EI takes effect after the next instruction
	halted         bool
	last           execution // For debug
	instructions   [256]instruction
	cbInstructions [256]instruction
}

// execution records the last instruction, formatted only on demand.
type execution struct {
	pc       uint16
	opcode   byte
	mnemonic string
}

// instruction is an opcode handler, execute returns the consumed T-cycles.
type instruction struct {
	mnemonic string
	execute  func() int
}

// NewCPU creates a new CPU. PC starts at 0x0000 so that a boot ROM runs
// first, use skipBoot otherwise.
func NewCPU(bus memory) *CPU {
	c := &CPU{bus: bus}
	c.instructions = c.createInstructions()
	c.cbInstructions = c.createCBInstructions()
	c.Reset()
	return c
}

// Reset does Reset.
func (c *CPU) Reset() {
	c.Registers = Registers{}
	c.ime = false
	c.eiDelay = 0
	c.halted = false
	c.last = execution{}
}

// skipBoot sets the registers to the values the DMG boot ROM leaves behind.
func (c *CPU) skipBoot() {
	c.SetAF(0x01B0)
	c.SetBC(0x0013)
	c.SetDE(0x00D8)
	c.SetHL(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// Halted reports whether the CPU waits for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// IME reports the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.ime
}

// LastExecution describes the last executed instruction.
func (c *CPU) LastExecution() string {
	if c.last.mnemonic == "" {
		return "none"
	}
	return fmt.Sprintf("PC=0x%04x, opcode=0x%02x, mnemonic=%s", c.last.pc, c.last.opcode, c.last.mnemonic)
}

func (c *CPU) read(address uint16) byte {
	return c.bus.read(address)
}

func (c *CPU) write(address uint16, data byte) {
	c.bus.write(address, data)
}

func (c *CPU) read16(address uint16) uint16 {
	l := c.bus.read(address)
	h := c.bus.read(address + 1)
	return uint16(h)<<8 | uint16(l)
}

func (c *CPU) write16(address uint16, data uint16) {
	c.bus.write(address, byte(data))
	c.bus.write(address+1, byte(data>>8))
}

// fetch reads the byte at PC and advances PC.
func (c *CPU) fetch() byte {
	data := c.bus.read(c.PC)
	c.PC++
	return data
}

func (c *CPU) fetch16() uint16 {
	l := c.fetch()
	h := c.fetch()
	return uint16(h)<<8 | uint16(l)
}

// push pushes data to stack, the stack grows downwards.
func (c *CPU) push(data uint16) {
	c.SP--
	c.write(c.SP, byte(data>>8))
	c.SP--
	c.write(c.SP, byte(data))
}

// pop pops data from stack.
func (c *CPU) pop() uint16 {
	l := c.read(c.SP)
	c.SP++
	h := c.read(c.SP)
	c.SP++
	return uint16(h)<<8 | uint16(l)
}

func (c *CPU) reg8(r int) byte {
	switch r {
	case regB:
		return c.B
	case regC:
		return c.C
	case regD:
		return c.D
	case regE:
		return c.E
	case regH:
		return c.H
	case regL:
		return c.L
	case regHLIndirect:
		return c.read(c.HL())
	default:
		return c.A
	}
}

func (c *CPU) setReg8(r int, data byte) {
	switch r {
	case regB:
		c.B = data
	case regC:
		c.C = data
	case regD:
		c.D = data
	case regE:
		c.E = data
	case regH:
		c.H = data
	case regL:
		c.L = data
	case regHLIndirect:
		c.write(c.HL(), data)
	default:
		c.A = data
	}
}

func (c *CPU) reg16(p int) uint16 {
	switch p {
	case pairBC:
		return c.BC()
	case pairDE:
		return c.DE()
	case pairHL:
		return c.HL()
	case pairSP:
		return c.SP
	default:
		return c.AF()
	}
}

func (c *CPU) setReg16(p int, data uint16) {
	switch p {
	case pairBC:
		c.SetBC(data)
	case pairDE:
		c.SetDE(data)
	case pairHL:
		c.SetHL(data)
	case pairSP:
		c.SP = data
	default:
		c.SetAF(data)
	}
}

func (c *CPU) condition(cond int) bool {
	switch cond {
	case condNZ:
		return !c.FlagZ()
	case condZ:
		return c.FlagZ()
	case condNC:
		return !c.FlagC()
	default:
		return c.FlagC()
	}
}

// interrupt jumps to an interrupt handler, called by the console between
// instructions.
func (c *CPU) interrupt(vector uint16) int {
	c.halted = false
	c.ime = false
	c.eiDelay = 0
	c.last = execution{pc: c.PC, mnemonic: fmt.Sprintf("INT 0x%02x", vector)}
	c.push(c.PC)
	c.PC = vector
	return 20
}

// tickEI applies a pending EI once the instruction after it has run.
func (c *CPU) tickEI() {
	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.ime = true
		}
	}
}

// Step performs the instruction cycle - fetch, decode, execute.
func (c *CPU) Step() (int, error) {
	if c.halted {
		// HALT ends when any interrupt is requested and enabled, even with
		// IME off.
		if c.read(0xFFFF)&c.read(0xFF0F)&0x1F == 0 {
			c.tickEI()
			return 4, nil
		}
		c.halted = false
	}
	pc := c.PC
	opcode := c.fetch()
	instruction := c.instructions[opcode]
	if instruction.execute == nil {
		return 0, fmt.Errorf("%w: opcode=0x%02x, address=0x%04x", ErrUnimplementedInstruction, opcode, pc)
	}
	c.last = execution{pc, opcode, instruction.mnemonic}
	cycles := instruction.execute()
	c.tickEI()
	return cycles, nil
}
