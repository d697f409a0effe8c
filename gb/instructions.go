package gb

// createInstructions builds the base opcode table. Empty entries are the
// opcodes the SM83 does not define.
func (c *CPU) createInstructions() [256]instruction {
	return [256]instruction{
		{"NOP", c.nop},                              // 0x00
		{"LD BC,n16", c.ld16(pairBC)},               // 0x01
		{"LD (BC),A", c.ldIndirectA(pairBC)},        // 0x02
		{"INC BC", c.inc16(pairBC)},                 // 0x03
		{"INC B", c.inc(regB)},                      // 0x04
		{"DEC B", c.dec(regB)},                      // 0x05
		{"LD B,n8", c.ldN(regB)},                    // 0x06
		{"RLCA", c.rlca},                            // 0x07
		{"LD (a16),SP", c.ldNNSP},                   // 0x08
		{"ADD HL,BC", c.addHLrr(pairBC)},            // 0x09
		{"LD A,(BC)", c.ldAIndirect(pairBC)},        // 0x0A
		{"DEC BC", c.dec16(pairBC)},                 // 0x0B
		{"INC C", c.inc(regC)},                      // 0x0C
		{"DEC C", c.dec(regC)},                      // 0x0D
		{"LD C,n8", c.ldN(regC)},                    // 0x0E
		{"RRCA", c.rrca},                            // 0x0F
		{"STOP", c.stop},                            // 0x10
		{"LD DE,n16", c.ld16(pairDE)},               // 0x11
		{"LD (DE),A", c.ldIndirectA(pairDE)},        // 0x12
		{"INC DE", c.inc16(pairDE)},                 // 0x13
		{"INC D", c.inc(regD)},                      // 0x14
		{"DEC D", c.dec(regD)},                      // 0x15
		{"LD D,n8", c.ldN(regD)},                    // 0x16
		{"RLA", c.rla},                              // 0x17
		{"JR e8", c.jr},                             // 0x18
		{"ADD HL,DE", c.addHLrr(pairDE)},            // 0x19
		{"LD A,(DE)", c.ldAIndirect(pairDE)},        // 0x1A
		{"DEC DE", c.dec16(pairDE)},                 // 0x1B
		{"INC E", c.inc(regE)},                      // 0x1C
		{"DEC E", c.dec(regE)},                      // 0x1D
		{"LD E,n8", c.ldN(regE)},                    // 0x1E
		{"RRA", c.rra},                              // 0x1F
		{"JR NZ,e8", c.jrCond(condNZ)},              // 0x20
		{"LD HL,n16", c.ld16(pairHL)},               // 0x21
		{"LD (HL+),A", c.ldHLIncA},                  // 0x22
		{"INC HL", c.inc16(pairHL)},                 // 0x23
		{"INC H", c.inc(regH)},                      // 0x24
		{"DEC H", c.dec(regH)},                      // 0x25
		{"LD H,n8", c.ldN(regH)},                    // 0x26
		{"DAA", c.daa},                              // 0x27
		{"JR Z,e8", c.jrCond(condZ)},                // 0x28
		{"ADD HL,HL", c.addHLrr(pairHL)},            // 0x29
		{"LD A,(HL+)", c.ldAHLInc},                  // 0x2A
		{"DEC HL", c.dec16(pairHL)},                 // 0x2B
		{"INC L", c.inc(regL)},                      // 0x2C
		{"DEC L", c.dec(regL)},                      // 0x2D
		{"LD L,n8", c.ldN(regL)},                    // 0x2E
		{"CPL", c.cpl},                              // 0x2F
		{"JR NC,e8", c.jrCond(condNC)},              // 0x30
		{"LD SP,n16", c.ld16(pairSP)},               // 0x31
		{"LD (HL-),A", c.ldHLDecA},                  // 0x32
		{"INC SP", c.inc16(pairSP)},                 // 0x33
		{"INC (HL)", c.inc(regHLIndirect)},          // 0x34
		{"DEC (HL)", c.dec(regHLIndirect)},          // 0x35
		{"LD (HL),n8", c.ldN(regHLIndirect)},        // 0x36
		{"SCF", c.scf},                              // 0x37
		{"JR C,e8", c.jrCond(condC)},                // 0x38
		{"ADD HL,SP", c.addHLrr(pairSP)},            // 0x39
		{"LD A,(HL-)", c.ldAHLDec},                  // 0x3A
		{"DEC SP", c.dec16(pairSP)},                 // 0x3B
		{"INC A", c.inc(regA)},                      // 0x3C
		{"DEC A", c.dec(regA)},                      // 0x3D
		{"LD A,n8", c.ldN(regA)},                    // 0x3E
		{"CCF", c.ccf},                              // 0x3F
		{"LD B,B", c.ld(regB, regB)},                // 0x40
		{"LD B,C", c.ld(regB, regC)},                // 0x41
		{"LD B,D", c.ld(regB, regD)},                // 0x42
		{"LD B,E", c.ld(regB, regE)},                // 0x43
		{"LD B,H", c.ld(regB, regH)},                // 0x44
		{"LD B,L", c.ld(regB, regL)},                // 0x45
		{"LD B,(HL)", c.ld(regB, regHLIndirect)},    // 0x46
		{"LD B,A", c.ld(regB, regA)},                // 0x47
		{"LD C,B", c.ld(regC, regB)},                // 0x48
		{"LD C,C", c.ld(regC, regC)},                // 0x49
		{"LD C,D", c.ld(regC, regD)},                // 0x4A
		{"LD C,E", c.ld(regC, regE)},                // 0x4B
		{"LD C,H", c.ld(regC, regH)},                // 0x4C
		{"LD C,L", c.ld(regC, regL)},                // 0x4D
		{"LD C,(HL)", c.ld(regC, regHLIndirect)},    // 0x4E
		{"LD C,A", c.ld(regC, regA)},                // 0x4F
		{"LD D,B", c.ld(regD, regB)},                // 0x50
		{"LD D,C", c.ld(regD, regC)},                // 0x51
		{"LD D,D", c.ld(regD, regD)},                // 0x52
		{"LD D,E", c.ld(regD, regE)},                // 0x53
		{"LD D,H", c.ld(regD, regH)},                // 0x54
		{"LD D,L", c.ld(regD, regL)},                // 0x55
		{"LD D,(HL)", c.ld(regD, regHLIndirect)},    // 0x56
		{"LD D,A", c.ld(regD, regA)},                // 0x57
		{"LD E,B", c.ld(regE, regB)},                // 0x58
		{"LD E,C", c.ld(regE, regC)},                // 0x59
		{"LD E,D", c.ld(regE, regD)},                // 0x5A
		{"LD E,E", c.ld(regE, regE)},                // 0x5B
		{"LD E,H", c.ld(regE, regH)},                // 0x5C
		{"LD E,L", c.ld(regE, regL)},                // 0x5D
		{"LD E,(HL)", c.ld(regE, regHLIndirect)},    // 0x5E
		{"LD E,A", c.ld(regE, regA)},                // 0x5F
		{"LD H,B", c.ld(regH, regB)},                // 0x60
		{"LD H,C", c.ld(regH, regC)},                // 0x61
		{"LD H,D", c.ld(regH, regD)},                // 0x62
		{"LD H,E", c.ld(regH, regE)},                // 0x63
		{"LD H,H", c.ld(regH, regH)},                // 0x64
		{"LD H,L", c.ld(regH, regL)},                // 0x65
		{"LD H,(HL)", c.ld(regH, regHLIndirect)},    // 0x66
		{"LD H,A", c.ld(regH, regA)},                // 0x67
		{"LD L,B", c.ld(regL, regB)},                // 0x68
		{"LD L,C", c.ld(regL, regC)},                // 0x69
		{"LD L,D", c.ld(regL, regD)},                // 0x6A
		{"LD L,E", c.ld(regL, regE)},                // 0x6B
		{"LD L,H", c.ld(regL, regH)},                // 0x6C
		{"LD L,L", c.ld(regL, regL)},                // 0x6D
		{"LD L,(HL)", c.ld(regL, regHLIndirect)},    // 0x6E
		{"LD L,A", c.ld(regL, regA)},                // 0x6F
		{"LD (HL),B", c.ld(regHLIndirect, regB)},    // 0x70
		{"LD (HL),C", c.ld(regHLIndirect, regC)},    // 0x71
		{"LD (HL),D", c.ld(regHLIndirect, regD)},    // 0x72
		{"LD (HL),E", c.ld(regHLIndirect, regE)},    // 0x73
		{"LD (HL),H", c.ld(regHLIndirect, regH)},    // 0x74
		{"LD (HL),L", c.ld(regHLIndirect, regL)},    // 0x75
		{"HALT", c.halt},                            // 0x76
		{"LD (HL),A", c.ld(regHLIndirect, regA)},    // 0x77
		{"LD A,B", c.ld(regA, regB)},                // 0x78
		{"LD A,C", c.ld(regA, regC)},                // 0x79
		{"LD A,D", c.ld(regA, regD)},                // 0x7A
		{"LD A,E", c.ld(regA, regE)},                // 0x7B
		{"LD A,H", c.ld(regA, regH)},                // 0x7C
		{"LD A,L", c.ld(regA, regL)},                // 0x7D
		{"LD A,(HL)", c.ld(regA, regHLIndirect)},    // 0x7E
		{"LD A,A", c.ld(regA, regA)},                // 0x7F
		{"ADD A,B", c.alu(c.add, regB)},             // 0x80
		{"ADD A,C", c.alu(c.add, regC)},             // 0x81
		{"ADD A,D", c.alu(c.add, regD)},             // 0x82
		{"ADD A,E", c.alu(c.add, regE)},             // 0x83
		{"ADD A,H", c.alu(c.add, regH)},             // 0x84
		{"ADD A,L", c.alu(c.add, regL)},             // 0x85
		{"ADD A,(HL)", c.alu(c.add, regHLIndirect)}, // 0x86
		{"ADD A,A", c.alu(c.add, regA)},             // 0x87
		{"ADC A,B", c.alu(c.adc, regB)},             // 0x88
		{"ADC A,C", c.alu(c.adc, regC)},             // 0x89
		{"ADC A,D", c.alu(c.adc, regD)},             // 0x8A
		{"ADC A,E", c.alu(c.adc, regE)},             // 0x8B
		{"ADC A,H", c.alu(c.adc, regH)},             // 0x8C
		{"ADC A,L", c.alu(c.adc, regL)},             // 0x8D
		{"ADC A,(HL)", c.alu(c.adc, regHLIndirect)}, // 0x8E
		{"ADC A,A", c.alu(c.adc, regA)},             // 0x8F
		{"SUB B", c.alu(c.sub, regB)},               // 0x90
		{"SUB C", c.alu(c.sub, regC)},               // 0x91
		{"SUB D", c.alu(c.sub, regD)},               // 0x92
		{"SUB E", c.alu(c.sub, regE)},               // 0x93
		{"SUB H", c.alu(c.sub, regH)},               // 0x94
		{"SUB L", c.alu(c.sub, regL)},               // 0x95
		{"SUB (HL)", c.alu(c.sub, regHLIndirect)},   // 0x96
		{"SUB A", c.alu(c.sub, regA)},               // 0x97
		{"SBC A,B", c.alu(c.sbc, regB)},             // 0x98
		{"SBC A,C", c.alu(c.sbc, regC)},             // 0x99
		{"SBC A,D", c.alu(c.sbc, regD)},             // 0x9A
		{"SBC A,E", c.alu(c.sbc, regE)},             // 0x9B
		{"SBC A,H", c.alu(c.sbc, regH)},             // 0x9C
		{"SBC A,L", c.alu(c.sbc, regL)},             // 0x9D
		{"SBC A,(HL)", c.alu(c.sbc, regHLIndirect)}, // 0x9E
		{"SBC A,A", c.alu(c.sbc, regA)},             // 0x9F
		{"AND B", c.alu(c.and, regB)},               // 0xA0
		{"AND C", c.alu(c.and, regC)},               // 0xA1
		{"AND D", c.alu(c.and, regD)},               // 0xA2
		{"AND E", c.alu(c.and, regE)},               // 0xA3
		{"AND H", c.alu(c.and, regH)},               // 0xA4
		{"AND L", c.alu(c.and, regL)},               // 0xA5
		{"AND (HL)", c.alu(c.and, regHLIndirect)},   // 0xA6
		{"AND A", c.alu(c.and, regA)},               // 0xA7
		{"XOR B", c.alu(c.xor, regB)},               // 0xA8
		{"XOR C", c.alu(c.xor, regC)},               // 0xA9
		{"XOR D", c.alu(c.xor, regD)},               // 0xAA
		{"XOR E", c.alu(c.xor, regE)},               // 0xAB
		{"XOR H", c.alu(c.xor, regH)},               // 0xAC
		{"XOR L", c.alu(c.xor, regL)},               // 0xAD
		{"XOR (HL)", c.alu(c.xor, regHLIndirect)},   // 0xAE
		{"XOR A", c.alu(c.xor, regA)},               // 0xAF
		{"OR B", c.alu(c.or, regB)},                 // 0xB0
		{"OR C", c.alu(c.or, regC)},                 // 0xB1
		{"OR D", c.alu(c.or, regD)},                 // 0xB2
		{"OR E", c.alu(c.or, regE)},                 // 0xB3
		{"OR H", c.alu(c.or, regH)},                 // 0xB4
		{"OR L", c.alu(c.or, regL)},                 // 0xB5
		{"OR (HL)", c.alu(c.or, regHLIndirect)},     // 0xB6
		{"OR A", c.alu(c.or, regA)},                 // 0xB7
		{"CP B", c.alu(c.cp, regB)},                 // 0xB8
		{"CP C", c.alu(c.cp, regC)},                 // 0xB9
		{"CP D", c.alu(c.cp, regD)},                 // 0xBA
		{"CP E", c.alu(c.cp, regE)},                 // 0xBB
		{"CP H", c.alu(c.cp, regH)},                 // 0xBC
		{"CP L", c.alu(c.cp, regL)},                 // 0xBD
		{"CP (HL)", c.alu(c.cp, regHLIndirect)},     // 0xBE
		{"CP A", c.alu(c.cp, regA)},                 // 0xBF
		{"RET NZ", c.retCond(condNZ)},               // 0xC0
		{"POP BC", c.popRR(pairBC)},                 // 0xC1
		{"JP NZ,a16", c.jpCond(condNZ)},             // 0xC2
		{"JP a16", c.jp},                            // 0xC3
		{"CALL NZ,a16", c.callCond(condNZ)},         // 0xC4
		{"PUSH BC", c.pushRR(pairBC)},               // 0xC5
		{"ADD A,n8", c.aluN(c.add)},                 // 0xC6
		{"RST $00", c.rst(0x00)},                    // 0xC7
		{"RET Z", c.retCond(condZ)},                 // 0xC8
		{"RET", c.ret},                              // 0xC9
		{"JP Z,a16", c.jpCond(condZ)},               // 0xCA
		{"PREFIX CB", c.prefixCB},                   // 0xCB
		{"CALL Z,a16", c.callCond(condZ)},           // 0xCC
		{"CALL a16", c.call},                        // 0xCD
		{"ADC A,n8", c.aluN(c.adc)},                 // 0xCE
		{"RST $08", c.rst(0x08)},                    // 0xCF
		{"RET NC", c.retCond(condNC)},               // 0xD0
		{"POP DE", c.popRR(pairDE)},                 // 0xD1
		{"JP NC,a16", c.jpCond(condNC)},             // 0xD2
		{},                                          // 0xD3
		{"CALL NC,a16", c.callCond(condNC)},         // 0xD4
		{"PUSH DE", c.pushRR(pairDE)},               // 0xD5
		{"SUB n8", c.aluN(c.sub)},                   // 0xD6
		{"RST $10", c.rst(0x10)},                    // 0xD7
		{"RET C", c.retCond(condC)},                 // 0xD8
		{"RETI", c.reti},                            // 0xD9
		{"JP C,a16", c.jpCond(condC)},               // 0xDA
		{},                                          // 0xDB
		{"CALL C,a16", c.callCond(condC)},           // 0xDC
		{},                                          // 0xDD
		{"SBC A,n8", c.aluN(c.sbc)},                 // 0xDE
		{"RST $18", c.rst(0x18)},                    // 0xDF
		{"LDH (a8),A", c.ldhNA},                     // 0xE0
		{"POP HL", c.popRR(pairHL)},                 // 0xE1
		{"LD (C),A", c.ldCA},                        // 0xE2
		{},                                          // 0xE3
		{},                                          // 0xE4
		{"PUSH HL", c.pushRR(pairHL)},               // 0xE5
		{"AND n8", c.aluN(c.and)},                   // 0xE6
		{"RST $20", c.rst(0x20)},                    // 0xE7
		{"ADD SP,e8", c.addSPe},                     // 0xE8
		{"JP HL", c.jpHL},                           // 0xE9
		{"LD (a16),A", c.ldNNA},                     // 0xEA
		{},                                          // 0xEB
		{},                                          // 0xEC
		{},                                          // 0xED
		{"XOR n8", c.aluN(c.xor)},                   // 0xEE
		{"RST $28", c.rst(0x28)},                    // 0xEF
		{"LDH A,(a8)", c.ldhANN},                    // 0xF0
		{"POP AF", c.popRR(pairAF)},                 // 0xF1
		{"LD A,(C)", c.ldAC},                        // 0xF2
		{"DI", c.di},                                // 0xF3
		{},                                          // 0xF4
		{"PUSH AF", c.pushRR(pairAF)},               // 0xF5
		{"OR n8", c.aluN(c.or)},                     // 0xF6
		{"RST $30", c.rst(0x30)},                    // 0xF7
		{"LD HL,SP+e8", c.ldHLSPe},                  // 0xF8
		{"LD SP,HL", c.ldSPHL},                      // 0xF9
		{"LD A,(a16)", c.ldANN},                     // 0xFA
		{"EI", c.ei},                                // 0xFB
		{},                                          // 0xFC
		{},                                          // 0xFD
		{"CP n8", c.aluN(c.cp)},                     // 0xFE
		{"RST $38", c.rst(0x38)},                    // 0xFF
	}
}

// NOP - No Operation.
func (c *CPU) nop() int {
	return 4
}

// STOP - Stop. The second byte is skipped and the CPU keeps running, there is
// no low power mode.
func (c *CPU) stop() int {
	c.fetch()
	return 4
}

// HALT - Halt until an interrupt is pending.
func (c *CPU) halt() int {
	c.halted = true
	return 4
}

// DI - Disable Interrupts.
func (c *CPU) di() int {
	c.ime = false
	c.eiDelay = 0
	return 4
}

// EI - Enable Interrupts, after the next instruction.
func (c *CPU) ei() int {
	if !c.ime {
		c.eiDelay = 2
	}
	return 4
}

// prefixCB dispatches the two byte opcodes.
func (c *CPU) prefixCB() int {
	opcode := c.fetch()
	instruction := c.cbInstructions[opcode]
	c.last.mnemonic = instruction.mnemonic
	return instruction.execute()
}

// LD r,r' - Load register.
func (c *CPU) ld(dst, src int) func() int {
	cycles := 4
	if dst == regHLIndirect || src == regHLIndirect {
		cycles = 8
	}
	return func() int {
		c.setReg8(dst, c.reg8(src))
		return cycles
	}
}

// LD r,n8 - Load immediate.
func (c *CPU) ldN(dst int) func() int {
	cycles := 8
	if dst == regHLIndirect {
		cycles = 12
	}
	return func() int {
		c.setReg8(dst, c.fetch())
		return cycles
	}
}

// alu applies an 8-bit operation to A and a register.
func (c *CPU) alu(op func(byte), src int) func() int {
	cycles := 4
	if src == regHLIndirect {
		cycles = 8
	}
	return func() int {
		op(c.reg8(src))
		return cycles
	}
}

// aluN applies an 8-bit operation to A and an immediate.
func (c *CPU) aluN(op func(byte)) func() int {
	return func() int {
		op(c.fetch())
		return 8
	}
}

// INC r - Increment.
func (c *CPU) inc(r int) func() int {
	cycles := 4
	if r == regHLIndirect {
		cycles = 12
	}
	return func() int {
		c.setReg8(r, c.inc8(c.reg8(r)))
		return cycles
	}
}

// DEC r - Decrement.
func (c *CPU) dec(r int) func() int {
	cycles := 4
	if r == regHLIndirect {
		cycles = 12
	}
	return func() int {
		c.setReg8(r, c.dec8(c.reg8(r)))
		return cycles
	}
}

// LD rr,n16 - Load 16-bit immediate.
func (c *CPU) ld16(p int) func() int {
	return func() int {
		c.setReg16(p, c.fetch16())
		return 12
	}
}

// INC rr - Increment 16-bit, no flags.
func (c *CPU) inc16(p int) func() int {
	return func() int {
		c.setReg16(p, c.reg16(p)+1)
		return 8
	}
}

// DEC rr - Decrement 16-bit, no flags.
func (c *CPU) dec16(p int) func() int {
	return func() int {
		c.setReg16(p, c.reg16(p)-1)
		return 8
	}
}

// ADD HL,rr - Add 16-bit.
func (c *CPU) addHLrr(p int) func() int {
	return func() int {
		c.addHL(c.reg16(p))
		return 8
	}
}

// PUSH rr
func (c *CPU) pushRR(p int) func() int {
	return func() int {
		c.push(c.reg16(p))
		return 16
	}
}

// POP rr, POP AF drops the low nibble of F.
func (c *CPU) popRR(p int) func() int {
	return func() int {
		c.setReg16(p, c.pop())
		return 12
	}
}

// JR e8 - Relative jump.
func (c *CPU) jr() int {
	e := int8(c.fetch())
	c.PC += uint16(e)
	return 12
}

// JR cc,e8
func (c *CPU) jrCond(cond int) func() int {
	return func() int {
		e := int8(c.fetch())
		if !c.condition(cond) {
			return 8
		}
		c.PC += uint16(e)
		return 12
	}
}

// JP a16 - Jump.
func (c *CPU) jp() int {
	c.PC = c.fetch16()
	return 16
}

// JP cc,a16
func (c *CPU) jpCond(cond int) func() int {
	return func() int {
		address := c.fetch16()
		if !c.condition(cond) {
			return 12
		}
		c.PC = address
		return 16
	}
}

// JP HL
func (c *CPU) jpHL() int {
	c.PC = c.HL()
	return 4
}

// CALL a16 - Call subroutine.
func (c *CPU) call() int {
	address := c.fetch16()
	c.push(c.PC)
	c.PC = address
	return 24
}

// CALL cc,a16
func (c *CPU) callCond(cond int) func() int {
	return func() int {
		address := c.fetch16()
		if !c.condition(cond) {
			return 12
		}
		c.push(c.PC)
		c.PC = address
		return 24
	}
}

// RET - Return from subroutine.
func (c *CPU) ret() int {
	c.PC = c.pop()
	return 16
}

// RET cc
func (c *CPU) retCond(cond int) func() int {
	return func() int {
		if !c.condition(cond) {
			return 8
		}
		c.PC = c.pop()
		return 20
	}
}

// RETI - Return and enable interrupts immediately.
func (c *CPU) reti() int {
	c.PC = c.pop()
	c.ime = true
	c.eiDelay = 0
	return 16
}

// RST - Call a fixed vector.
func (c *CPU) rst(vector uint16) func() int {
	return func() int {
		c.push(c.PC)
		c.PC = vector
		return 16
	}
}

// LD (rr),A
func (c *CPU) ldIndirectA(p int) func() int {
	return func() int {
		c.write(c.reg16(p), c.A)
		return 8
	}
}

// LD A,(rr)
func (c *CPU) ldAIndirect(p int) func() int {
	return func() int {
		c.A = c.read(c.reg16(p))
		return 8
	}
}

// LD (HL+),A
func (c *CPU) ldHLIncA() int {
	hl := c.HL()
	c.write(hl, c.A)
	c.SetHL(hl + 1)
	return 8
}

// LD (HL-),A
func (c *CPU) ldHLDecA() int {
	hl := c.HL()
	c.write(hl, c.A)
	c.SetHL(hl - 1)
	return 8
}

// LD A,(HL+)
func (c *CPU) ldAHLInc() int {
	hl := c.HL()
	c.A = c.read(hl)
	c.SetHL(hl + 1)
	return 8
}

// LD A,(HL-)
func (c *CPU) ldAHLDec() int {
	hl := c.HL()
	c.A = c.read(hl)
	c.SetHL(hl - 1)
	return 8
}

// LD (a16),SP
func (c *CPU) ldNNSP() int {
	c.write16(c.fetch16(), c.SP)
	return 20
}

// LD SP,HL
func (c *CPU) ldSPHL() int {
	c.SP = c.HL()
	return 8
}

// LD HL,SP+e8
func (c *CPU) ldHLSPe() int {
	c.SetHL(c.addSP(c.fetch()))
	return 12
}

// ADD SP,e8
func (c *CPU) addSPe() int {
	c.SP = c.addSP(c.fetch())
	return 16
}

// LDH (a8),A - Store to 0xFF00+a8.
func (c *CPU) ldhNA() int {
	c.write(0xFF00|uint16(c.fetch()), c.A)
	return 12
}

// LDH A,(a8) - Load from 0xFF00+a8.
func (c *CPU) ldhANN() int {
	c.A = c.read(0xFF00 | uint16(c.fetch()))
	return 12
}

// LD (C),A - Store to 0xFF00+C.
func (c *CPU) ldCA() int {
	c.write(0xFF00|uint16(c.C), c.A)
	return 8
}

// LD A,(C) - Load from 0xFF00+C.
func (c *CPU) ldAC() int {
	c.A = c.read(0xFF00 | uint16(c.C))
	return 8
}

// LD (a16),A
func (c *CPU) ldNNA() int {
	c.write(c.fetch16(), c.A)
	return 16
}

// LD A,(a16)
func (c *CPU) ldANN() int {
	c.A = c.read(c.fetch16())
	return 16
}

// RLCA, RRCA, RLA and RRA always clear Z, unlike their CB versions.

func (c *CPU) rlca() int {
	c.A = c.rlc(c.A)
	c.SetFlagZ(false)
	return 4
}

func (c *CPU) rrca() int {
	c.A = c.rrc(c.A)
	c.SetFlagZ(false)
	return 4
}

func (c *CPU) rla() int {
	c.A = c.rl(c.A)
	c.SetFlagZ(false)
	return 4
}

func (c *CPU) rra() int {
	c.A = c.rr(c.A)
	c.SetFlagZ(false)
	return 4
}

// DAA - Decimal Adjust Accumulator.
func (c *CPU) daa() int {
	c.decimalAdjust()
	return 4
}

// CPL - Complement Accumulator.
func (c *CPU) cpl() int {
	c.A = ^c.A
	c.SetFlagN(true)
	c.SetFlagH(true)
	return 4
}

// SCF - Set Carry Flag.
func (c *CPU) scf() int {
	c.SetFlagN(false)
	c.SetFlagH(false)
	c.SetFlagC(true)
	return 4
}

// CCF - Complement Carry Flag.
func (c *CPU) ccf() int {
	c.SetFlagN(false)
	c.SetFlagH(false)
	c.SetFlagC(!c.FlagC())
	return 4
}
