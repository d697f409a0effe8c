package gb

import "fmt"

// createCBInstructions builds the table behind the 0xCB prefix. The opcode is
// laid out as oo bbb rrr: an operation, a bit number or shift kind, and a
// register index.
func (c *CPU) createCBInstructions() [256]instruction {
	shifts := [8]struct {
		mnemonic string
		op       func(byte) byte
	}{
		{"RLC", c.rlc},
		{"RRC", c.rrc},
		{"RL", c.rl},
		{"RR", c.rr},
		{"SLA", c.sla},
		{"SRA", c.sra},
		{"SWAP", c.swap},
		{"SRL", c.srl},
	}
	var table [256]instruction
	for opcode := 0; opcode < 256; opcode++ {
		r := opcode & 0x07
		y := uint(opcode>>3) & 0x07
		switch opcode >> 6 {
		case 0:
			table[opcode] = instruction{
				fmt.Sprintf("%s %s", shifts[y].mnemonic, regNames[r]),
				c.cbModify(r, shifts[y].op),
			}
		case 1:
			table[opcode] = instruction{fmt.Sprintf("BIT %d,%s", y, regNames[r]), c.cbBit(y, r)}
		case 2:
			table[opcode] = instruction{fmt.Sprintf("RES %d,%s", y, regNames[r]), c.cbModify(r, func(x byte) byte {
				return x &^ (1 << y)
			})}
		case 3:
			table[opcode] = instruction{fmt.Sprintf("SET %d,%s", y, regNames[r]), c.cbModify(r, func(x byte) byte {
				return x | 1<<y
			})}
		}
	}
	return table
}

// cbModify reads a register, applies op and writes it back. The cycles
// include the prefix byte.
func (c *CPU) cbModify(r int, op func(byte) byte) func() int {
	cycles := 8
	if r == regHLIndirect {
		cycles = 16
	}
	return func() int {
		c.setReg8(r, op(c.reg8(r)))
		return cycles
	}
}

// BIT b,r - Test bit.
func (c *CPU) cbBit(b uint, r int) func() int {
	cycles := 8
	if r == regHLIndirect {
		cycles = 12
	}
	return func() int {
		c.bit(b, c.reg8(r))
		return cycles
	}
}
