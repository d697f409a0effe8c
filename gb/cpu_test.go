package gb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMemory is a flat 64KiB address space.
type testMemory [0x10000]byte

func (m *testMemory) read(address uint16) byte        { return m[address] }
func (m *testMemory) write(address uint16, data byte) { m[address] = data }

const programStart = 0xC000

func newTestCPU(program ...byte) (*CPU, *testMemory) {
	mem := &testMemory{}
	copy(mem[programStart:], program)
	cpu := NewCPU(mem)
	cpu.PC = programStart
	cpu.SP = 0xDFF0
	return cpu, mem
}

type flags struct{ z, n, h, c bool }

func flagsOf(c *CPU) flags {
	return flags{c.FlagZ(), c.FlagN(), c.FlagH(), c.FlagC()}
}

func TestAddAllOperands(t *testing.T) {
	cpu, _ := newTestCPU()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			cpu.A = byte(a)
			cpu.F = 0
			cpu.add(byte(b))
			want := flags{
				z: (a+b)&0xFF == 0,
				h: a&0x0F+b&0x0F > 0x0F,
				c: a+b > 0xFF,
			}
			if cpu.A != byte(a+b) || flagsOf(cpu) != want {
				t.Fatalf("ADD 0x%02x+0x%02x: got A=0x%02x %+v, want A=0x%02x %+v",
					a, b, cpu.A, flagsOf(cpu), byte(a+b), want)
			}
		}
	}
}

func TestSubAllOperands(t *testing.T) {
	cpu, _ := newTestCPU()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			cpu.A = byte(a)
			cpu.F = 0
			cpu.sub(byte(b))
			want := flags{
				z: a == b,
				n: true,
				h: b&0x0F > a&0x0F,
				c: b > a,
			}
			if cpu.A != byte(a-b) || flagsOf(cpu) != want {
				t.Fatalf("SUB 0x%02x-0x%02x: got A=0x%02x %+v, want A=0x%02x %+v",
					a, b, cpu.A, flagsOf(cpu), byte(a-b), want)
			}
		}
	}
}

func TestAddHL(t *testing.T) {
	cpu, _ := newTestCPU()
	for hl := 0; hl < 0x10000; hl += 0x0FF1 {
		for x := 0; x < 0x10000; x += 0x0EF3 {
			for _, z := range []bool{false, true} {
				cpu.SetHL(uint16(hl))
				cpu.setFlags(z, true, false, false)
				cpu.addHL(uint16(x))
				want := flags{
					z: z,
					h: hl&0x0FFF+x&0x0FFF > 0x0FFF,
					c: hl+x > 0xFFFF,
				}
				if cpu.HL() != uint16(hl+x) || flagsOf(cpu) != want {
					t.Fatalf("ADD HL 0x%04x+0x%04x: got HL=0x%04x %+v, want HL=0x%04x %+v",
						hl, x, cpu.HL(), flagsOf(cpu), uint16(hl+x), want)
				}
			}
		}
	}
}

func TestCarryArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		op    func(c *CPU, x byte)
		a, x  byte
		carry bool
		want  byte
		flags flags
	}{
		{"adc without carry", (*CPU).adc, 0x0E, 0x01, false, 0x0F, flags{}},
		{"adc half carry from carry-in", (*CPU).adc, 0x0E, 0x01, true, 0x10, flags{h: true}},
		{"adc wraps to zero", (*CPU).adc, 0xFE, 0x01, true, 0x00, flags{z: true, h: true, c: true}},
		{"sbc without carry", (*CPU).sbc, 0x10, 0x01, false, 0x0F, flags{n: true, h: true}},
		{"sbc borrow from carry-in", (*CPU).sbc, 0x01, 0x01, true, 0xFF, flags{n: true, h: true, c: true}},
		{"sbc to zero", (*CPU).sbc, 0x02, 0x01, true, 0x00, flags{z: true, n: true}},
		{"cp equal", (*CPU).cp, 0x42, 0x42, false, 0x42, flags{z: true, n: true}},
		{"cp greater", (*CPU).cp, 0x10, 0x20, false, 0x10, flags{n: true, c: true}},
		{"and", (*CPU).and, 0xF0, 0x0F, true, 0x00, flags{z: true, h: true}},
		{"xor", (*CPU).xor, 0xFF, 0x0F, true, 0xF0, flags{}},
		{"or", (*CPU).or, 0x00, 0x00, true, 0x00, flags{z: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, _ := newTestCPU()
			cpu.A = tt.a
			cpu.setFlags(false, false, false, tt.carry)
			tt.op(cpu, tt.x)
			assert.Equal(t, tt.want, cpu.A)
			assert.Equal(t, tt.flags, flagsOf(cpu))
		})
	}
}

func TestAddImmediate(t *testing.T) {
	cpu, _ := newTestCPU(0xC6, 0x01) // ADD A,0x01
	cpu.A = 0x0F
	cpu.F = 0
	cycles, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 8, cycles)
	assert.Equal(t, byte(0x10), cpu.A)
	assert.Equal(t, flags{h: true}, flagsOf(cpu))
	assert.Equal(t, uint16(programStart+2), cpu.PC)
}

func TestAdcImmediate(t *testing.T) {
	cpu, _ := newTestCPU(0xCE, 0x01) // ADC A,0x01
	cpu.A = 0xFF
	cpu.setFlags(false, false, false, true)
	cycles, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 8, cycles)
	assert.Equal(t, byte(0x01), cpu.A)
	assert.True(t, cpu.FlagC())
	assert.False(t, cpu.FlagZ())
}

func TestIncDecKeepCarry(t *testing.T) {
	cpu, _ := newTestCPU(0x3C, 0x05) // INC A, DEC B
	cpu.A = 0xFF
	cpu.B = 0x10
	cpu.setFlags(false, false, false, true)
	_, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0), cpu.A)
	assert.Equal(t, flags{z: true, h: true, c: true}, flagsOf(cpu))
	_, err = cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x0F), cpu.B)
	assert.Equal(t, flags{n: true, h: true, c: true}, flagsOf(cpu))
}

func TestDecimalAdjust(t *testing.T) {
	tests := []struct {
		program []byte
		a       byte
		want    byte
		carry   bool
	}{
		{[]byte{0xC6, 0x27, 0x27}, 0x15, 0x42, false}, // 15+27
		{[]byte{0xC6, 0x01, 0x27}, 0x99, 0x00, true},  // 99+1
		{[]byte{0xD6, 0x08, 0x27}, 0x42, 0x34, false}, // 42-8
	}
	for _, tt := range tests {
		cpu, _ := newTestCPU(tt.program...)
		cpu.A = tt.a
		for i := 0; i < 2; i++ {
			_, err := cpu.Step()
			require.NoError(t, err)
		}
		assert.Equal(t, tt.want, cpu.A, "A=0x%02x", tt.a)
		assert.Equal(t, tt.carry, cpu.FlagC(), "A=0x%02x", tt.a)
		assert.Equal(t, tt.want == 0, cpu.FlagZ())
	}
}

func TestBranchCycles(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		z       bool
		cycles  int
		pc      uint16
	}{
		{"JR NZ taken", []byte{0x20, 0x05}, false, 12, programStart + 7},
		{"JR NZ not taken", []byte{0x20, 0x05}, true, 8, programStart + 2},
		{"JR backwards", []byte{0x18, 0xFE}, false, 12, programStart},
		{"JP Z taken", []byte{0xCA, 0x00, 0xD0}, true, 16, 0xD000},
		{"JP Z not taken", []byte{0xCA, 0x00, 0xD0}, false, 12, programStart + 3},
		{"CALL NZ not taken", []byte{0xC4, 0x00, 0xD0}, true, 12, programStart + 3},
		{"RET Z not taken", []byte{0xC8}, false, 8, programStart + 1},
		{"RST 38", []byte{0xFF}, false, 16, 0x0038},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, _ := newTestCPU(tt.program...)
			cpu.SetFlagZ(tt.z)
			cycles, err := cpu.Step()
			require.NoError(t, err)
			assert.Equal(t, tt.cycles, cycles)
			assert.Equal(t, tt.pc, cpu.PC)
		})
	}
}

func TestCallRet(t *testing.T) {
	cpu, mem := newTestCPU(0xCD, 0x00, 0xD0) // CALL 0xD000
	mem[0xD000] = 0xC9                        // RET
	sp := cpu.SP
	cycles, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 24, cycles)
	assert.Equal(t, uint16(0xD000), cpu.PC)
	assert.Equal(t, sp-2, cpu.SP)
	assert.Equal(t, byte(0x03), mem[cpu.SP])
	assert.Equal(t, byte(0xC0), mem[cpu.SP+1])

	cycles, err = cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 16, cycles)
	assert.Equal(t, uint16(programStart+3), cpu.PC)
	assert.Equal(t, sp, cpu.SP)
}

func TestPopAFMasksFlags(t *testing.T) {
	cpu, mem := newTestCPU(0xF1, 0xC5) // POP AF, PUSH BC
	cpu.SP = 0xD000
	mem[0xD000] = 0xFF
	mem[0xD001] = 0x12
	cycles, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 12, cycles)
	assert.Equal(t, byte(0x12), cpu.A)
	assert.Equal(t, byte(0xF0), cpu.F)
	assert.Equal(t, uint16(0xD002), cpu.SP)

	cpu.SetBC(0xBEEF)
	cycles, err = cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 16, cycles)
	assert.Equal(t, byte(0xEF), mem[0xD000])
	assert.Equal(t, byte(0xBE), mem[0xD001])
}

func TestLoads(t *testing.T) {
	cpu, mem := newTestCPU(
		0x21, 0x00, 0xD0, // LD HL,0xD000
		0x3E, 0x42,       // LD A,0x42
		0x22,             // LD (HL+),A
		0x36, 0x99,       // LD (HL),0x99
		0x46,             // LD B,(HL)
		0xEA, 0x10, 0xD0, // LD (0xD010),A
		0xE0, 0x80,       // LDH (0x80),A
		0x08, 0x20, 0xD0, // LD (0xD020),SP
	)
	want := []int{12, 8, 8, 12, 8, 16, 12, 20}
	for i, w := range want {
		cycles, err := cpu.Step()
		require.NoError(t, err)
		assert.Equal(t, w, cycles, "instruction %d", i)
	}
	assert.Equal(t, byte(0x42), mem[0xD000])
	assert.Equal(t, uint16(0xD001), cpu.HL())
	assert.Equal(t, byte(0x99), mem[0xD001])
	assert.Equal(t, byte(0x99), cpu.B)
	assert.Equal(t, byte(0x42), mem[0xD010])
	assert.Equal(t, byte(0x42), mem[0xFF80])
	assert.Equal(t, byte(0xF0), mem[0xD020])
	assert.Equal(t, byte(0xDF), mem[0xD021])
}

func TestStackPointerOffset(t *testing.T) {
	cpu, _ := newTestCPU(0xF8, 0x02, 0xE8, 0xFF) // LD HL,SP+2; ADD SP,-1
	cpu.SP = 0xFFF8
	cycles, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 12, cycles)
	assert.Equal(t, uint16(0xFFFA), cpu.HL())
	assert.Equal(t, flags{}, flagsOf(cpu))

	cycles, err = cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 16, cycles)
	assert.Equal(t, uint16(0xFFF7), cpu.SP)
	assert.Equal(t, flags{h: true, c: true}, flagsOf(cpu))
}

func TestAccumulatorRotatesClearZero(t *testing.T) {
	for _, opcode := range []byte{0x07, 0x0F, 0x17, 0x1F} {
		cpu, _ := newTestCPU(opcode)
		cpu.A = 0
		cpu.setFlags(true, false, false, false)
		cycles, err := cpu.Step()
		require.NoError(t, err)
		assert.Equal(t, 4, cycles)
		assert.False(t, cpu.FlagZ(), "opcode 0x%02x", opcode)
	}
}

func TestCBInstructions(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
		setup  func(c *CPU)
		cycles int
		check  func(t *testing.T, c *CPU, m *testMemory)
	}{
		{"SWAP A", 0x37, func(c *CPU) { c.A = 0xF1 }, 8, func(t *testing.T, c *CPU, m *testMemory) {
			assert.Equal(t, byte(0x1F), c.A)
		}},
		{"BIT 7,H", 0x7C, func(c *CPU) { c.H = 0x80 }, 8, func(t *testing.T, c *CPU, m *testMemory) {
			assert.False(t, c.FlagZ())
			assert.True(t, c.FlagH())
		}},
		{"BIT 0,(HL)", 0x46, func(c *CPU) { c.SetHL(0xD000) }, 12, func(t *testing.T, c *CPU, m *testMemory) {
			assert.True(t, c.FlagZ())
		}},
		{"SET 0,(HL)", 0xC6, func(c *CPU) { c.SetHL(0xD000) }, 16, func(t *testing.T, c *CPU, m *testMemory) {
			assert.Equal(t, byte(0x01), m[0xD000])
		}},
		{"RES 7,A", 0xBF, func(c *CPU) { c.A = 0xFF }, 8, func(t *testing.T, c *CPU, m *testMemory) {
			assert.Equal(t, byte(0x7F), c.A)
		}},
		{"SRL B", 0x38, func(c *CPU) { c.B = 0x01 }, 8, func(t *testing.T, c *CPU, m *testMemory) {
			assert.Equal(t, byte(0), c.B)
			assert.Equal(t, flags{z: true, c: true}, flagsOf(c))
		}},
		{"SRA C", 0x29, func(c *CPU) { c.C = 0x81 }, 8, func(t *testing.T, c *CPU, m *testMemory) {
			assert.Equal(t, byte(0xC0), c.C)
			assert.True(t, c.FlagC())
		}},
		{"RL D", 0x12, func(c *CPU) { c.D = 0x80; c.SetFlagC(true) }, 8, func(t *testing.T, c *CPU, m *testMemory) {
			assert.Equal(t, byte(0x01), c.D)
			assert.True(t, c.FlagC())
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, mem := newTestCPU(0xCB, tt.opcode)
			tt.setup(cpu)
			cycles, err := cpu.Step()
			require.NoError(t, err)
			assert.Equal(t, tt.cycles, cycles)
			assert.Equal(t, uint16(programStart+2), cpu.PC)
			tt.check(t, cpu, mem)
		})
	}
}

func TestUnimplementedInstruction(t *testing.T) {
	for _, opcode := range []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		cpu, _ := newTestCPU(opcode)
		_, err := cpu.Step()
		assert.ErrorIs(t, err, ErrUnimplementedInstruction, "opcode 0x%02x", opcode)
		assert.Contains(t, err.Error(), "address=0xc000")
	}
}

func TestEveryOtherOpcodeIsImplemented(t *testing.T) {
	cpu, _ := newTestCPU()
	illegal := map[int]bool{0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true, 0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true}
	for opcode := 0; opcode < 256; opcode++ {
		if illegal[opcode] {
			continue
		}
		assert.NotNil(t, cpu.instructions[opcode].execute, "opcode 0x%02x", opcode)
		assert.NotNil(t, cpu.cbInstructions[opcode].execute, "CB opcode 0x%02x", opcode)
	}
}

func TestEnableInterruptsDelay(t *testing.T) {
	cpu, _ := newTestCPU(0xFB, 0x00, 0xF3) // EI, NOP, DI
	_, err := cpu.Step()
	require.NoError(t, err)
	assert.False(t, cpu.IME())
	_, err = cpu.Step()
	require.NoError(t, err)
	assert.True(t, cpu.IME())
	_, err = cpu.Step()
	require.NoError(t, err)
	assert.False(t, cpu.IME())
}

func TestEnableInterruptsCanceledByDI(t *testing.T) {
	cpu, _ := newTestCPU(0xFB, 0xF3, 0x00) // EI, DI, NOP
	for i := 0; i < 3; i++ {
		_, err := cpu.Step()
		require.NoError(t, err)
	}
	assert.False(t, cpu.IME())
}

func TestHalt(t *testing.T) {
	cpu, mem := newTestCPU(0x76, 0x00) // HALT, NOP
	_, err := cpu.Step()
	require.NoError(t, err)
	assert.True(t, cpu.Halted())

	cycles, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 4, cycles)
	assert.True(t, cpu.Halted())
	assert.Equal(t, uint16(programStart+1), cpu.PC)

	// A pending interrupt wakes the CPU even with IME off.
	mem[0xFFFF] = 1 << intTimer
	mem[0xFF0F] = 1 << intTimer
	_, err = cpu.Step()
	require.NoError(t, err)
	assert.False(t, cpu.Halted())
	assert.Equal(t, uint16(programStart+2), cpu.PC)
}

func TestInterruptDispatch(t *testing.T) {
	cpu, mem := newTestCPU()
	cpu.ime = true
	cpu.halted = true
	cycles := cpu.interrupt(interruptVector(intTimer))
	assert.Equal(t, 20, cycles)
	assert.Equal(t, uint16(0x0050), cpu.PC)
	assert.False(t, cpu.IME())
	assert.False(t, cpu.Halted())
	assert.Equal(t, byte(0x00), mem[cpu.SP])
	assert.Equal(t, byte(0xC0), mem[cpu.SP+1])
	assert.Contains(t, cpu.LastExecution(), "INT 0x50")
}

func TestReti(t *testing.T) {
	cpu, mem := newTestCPU(0xD9) // RETI
	cpu.SP = 0xD000
	mem[0xD000] = 0x34
	mem[0xD001] = 0x12
	cycles, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, 16, cycles)
	assert.Equal(t, uint16(0x1234), cpu.PC)
	assert.True(t, cpu.IME())
}

func TestLastExecution(t *testing.T) {
	cpu, _ := newTestCPU(0xCB, 0x37)
	assert.Equal(t, "none", cpu.LastExecution())
	_, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, "PC=0xc000, opcode=0xcb, mnemonic=SWAP A", cpu.LastExecution())
}
