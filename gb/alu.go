package gb

// 8-bit arithmetic on A. Half carry is the carry out of bit 3 and carry the
// carry out of bit 7, both computed on the operands before wrapping.

// ADD A,n
func (c *CPU) add(x byte) {
	a := c.A
	res := uint16(a) + uint16(x)
	c.A = byte(res)
	c.setFlags(c.A == 0, false, (a&0x0F)+(x&0x0F) > 0x0F, res > 0xFF)
}

// ADC A,n - the carry is added before the flags are computed.
func (c *CPU) adc(x byte) {
	a := c.A
	carry := c.carry()
	res := uint16(a) + uint16(x) + uint16(carry)
	c.A = byte(res)
	c.setFlags(c.A == 0, false, (a&0x0F)+(x&0x0F)+carry > 0x0F, res > 0xFF)
}

// SUB A,n
func (c *CPU) sub(x byte) {
	a := c.A
	c.A = a - x
	c.setFlags(c.A == 0, true, x&0x0F > a&0x0F, x > a)
}

// SBC A,n
func (c *CPU) sbc(x byte) {
	a := c.A
	carry := c.carry()
	c.A = a - x - carry
	c.setFlags(c.A == 0, true, a&0x0F < x&0x0F+carry, uint16(a) < uint16(x)+uint16(carry))
}

// CP A,n is SUB without storing the result.
func (c *CPU) cp(x byte) {
	a := c.A
	c.setFlags(a == x, true, x&0x0F > a&0x0F, x > a)
}

func (c *CPU) and(x byte) {
	c.A &= x
	c.setFlags(c.A == 0, false, true, false)
}

func (c *CPU) xor(x byte) {
	c.A ^= x
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) or(x byte) {
	c.A |= x
	c.setFlags(c.A == 0, false, false, false)
}

// inc8 leaves the carry flag untouched.
func (c *CPU) inc8(x byte) byte {
	res := x + 1
	c.SetFlagZ(res == 0)
	c.SetFlagN(false)
	c.SetFlagH(x&0x0F == 0x0F)
	return res
}

// dec8 leaves the carry flag untouched.
func (c *CPU) dec8(x byte) byte {
	res := x - 1
	c.SetFlagZ(res == 0)
	c.SetFlagN(true)
	c.SetFlagH(x&0x0F == 0)
	return res
}

// addHL is ADD HL,rr: carries come out of bit 11 and bit 15, Z is kept.
func (c *CPU) addHL(x uint16) {
	hl := c.HL()
	res := uint32(hl) + uint32(x)
	c.SetHL(uint16(res))
	c.SetFlagN(false)
	c.SetFlagH((hl&0x0FFF)+(x&0x0FFF) > 0x0FFF)
	c.SetFlagC(res > 0xFFFF)
}

// addSP returns SP plus a signed offset. Flags come from the unsigned
// addition of the low byte, used by ADD SP,e8 and LD HL,SP+e8.
func (c *CPU) addSP(e byte) uint16 {
	sp := c.SP
	res := sp + uint16(int8(e))
	c.setFlags(false, false, (sp&0x0F)+uint16(e&0x0F) > 0x0F, (sp&0xFF)+uint16(e) > 0xFF)
	return res
}

// decimalAdjust adjusts A to binary coded decimal after an addition or
// subtraction.
func (c *CPU) decimalAdjust() {
	a := c.A
	carry := c.FlagC()
	if !c.FlagN() {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.FlagH() || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.FlagH() {
			a -= 0x06
		}
	}
	c.A = a
	c.setFlags(a == 0, c.FlagN(), false, carry)
}

// Rotates and shifts, shared by the accumulator forms and the CB table.

func (c *CPU) rlc(x byte) byte {
	res := x<<1 | x>>7
	c.setFlags(res == 0, false, false, x&0x80 != 0)
	return res
}

func (c *CPU) rrc(x byte) byte {
	res := x>>1 | x<<7
	c.setFlags(res == 0, false, false, x&0x01 != 0)
	return res
}

func (c *CPU) rl(x byte) byte {
	res := x<<1 | c.carry()
	c.setFlags(res == 0, false, false, x&0x80 != 0)
	return res
}

func (c *CPU) rr(x byte) byte {
	res := x>>1 | c.carry()<<7
	c.setFlags(res == 0, false, false, x&0x01 != 0)
	return res
}

func (c *CPU) sla(x byte) byte {
	res := x << 1
	c.setFlags(res == 0, false, false, x&0x80 != 0)
	return res
}

// sra keeps bit 7.
func (c *CPU) sra(x byte) byte {
	res := x>>1 | x&0x80
	c.setFlags(res == 0, false, false, x&0x01 != 0)
	return res
}

func (c *CPU) swap(x byte) byte {
	res := x<<4 | x>>4
	c.setFlags(res == 0, false, false, false)
	return res
}

func (c *CPU) srl(x byte) byte {
	res := x >> 1
	c.setFlags(res == 0, false, false, x&0x01 != 0)
	return res
}

// bit tests bit b of x, C is kept.
func (c *CPU) bit(b uint, x byte) {
	c.SetFlagZ(x&(1<<b) == 0)
	c.SetFlagN(false)
	c.SetFlagH(true)
}
