package cpu

// Operation routines. Each returns 1 if it may contribute a page-cross extra
// cycle (combined with the addressing mode's own opinion in Clock); only a
// handful of read instructions ever return 1 here. Branches return 0 and add
// their taken/page-cross cycles to remainingCycles directly.

func (c *CPU) writeback(v uint8) {
	if c.impliedMode {
		c.A = v
	} else {
		c.write(c.absAddr, v)
	}
}

// --- Load / store ---

func lda(c *CPU) uint8 { c.A = c.fetch(); c.setZN(c.A); return 1 }
func ldx(c *CPU) uint8 { c.X = c.fetch(); c.setZN(c.X); return 1 }
func ldy(c *CPU) uint8 { c.Y = c.fetch(); c.setZN(c.Y); return 1 }
func sta(c *CPU) uint8 { c.write(c.absAddr, c.A); return 0 }
func stx(c *CPU) uint8 { c.write(c.absAddr, c.X); return 0 }
func sty(c *CPU) uint8 { c.write(c.absAddr, c.Y); return 0 }

// --- Transfers ---

func tax(c *CPU) uint8 { c.X = c.A; c.setZN(c.X); return 0 }
func tay(c *CPU) uint8 { c.Y = c.A; c.setZN(c.Y); return 0 }
func txa(c *CPU) uint8 { c.A = c.X; c.setZN(c.A); return 0 }
func tya(c *CPU) uint8 { c.A = c.Y; c.setZN(c.A); return 0 }
func tsx(c *CPU) uint8 { c.X = c.S; c.setZN(c.X); return 0 }
func txs(c *CPU) uint8 { c.S = c.X; return 0 }

// --- Arithmetic ---

func (c *CPU) addWithCarry(value uint8) {
	carry := uint16(0)
	if c.getFlag(flagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	result := uint8(sum)

	c.setFlag(flagC, sum > 0xFF)
	c.setFlag(flagV, (^(c.A^value))&(c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func adc(c *CPU) uint8 {
	c.addWithCarry(c.fetch())
	return 1
}

func sbc(c *CPU) uint8 {
	c.addWithCarry(c.fetch() ^ 0xFF)
	return 1
}

// --- Logic ---

func and(c *CPU) uint8 { c.A &= c.fetch(); c.setZN(c.A); return 1 }
func ora(c *CPU) uint8 { c.A |= c.fetch(); c.setZN(c.A); return 1 }
func eor(c *CPU) uint8 { c.A ^= c.fetch(); c.setZN(c.A); return 1 }

func bit(c *CPU) uint8 {
	v := c.fetch()
	c.setFlag(flagZ, c.A&v == 0)
	c.setFlag(flagN, v&0x80 != 0)
	c.setFlag(flagV, v&0x40 != 0)
	return 0
}

// --- Shifts / rotates (accumulator or memory, per c.impliedMode) ---

func asl(c *CPU) uint8 {
	v := c.fetch()
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	c.writeback(v)
	return 0
}

func lsr(c *CPU) uint8 {
	v := c.fetch()
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	c.writeback(v)
	return 0
}

func rol(c *CPU) uint8 {
	v := c.fetch()
	oldCarry := c.getFlag(flagC)
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.setZN(v)
	c.writeback(v)
	return 0
}

func ror(c *CPU) uint8 {
	v := c.fetch()
	oldCarry := c.getFlag(flagC)
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.setZN(v)
	c.writeback(v)
	return 0
}

// --- Increments / decrements ---

func inc(c *CPU) uint8 {
	v := c.fetch() + 1
	c.write(c.absAddr, v)
	c.setZN(v)
	return 0
}

func dec(c *CPU) uint8 {
	v := c.fetch() - 1
	c.write(c.absAddr, v)
	c.setZN(v)
	return 0
}

func inx(c *CPU) uint8 { c.X++; c.setZN(c.X); return 0 }
func dex(c *CPU) uint8 { c.X--; c.setZN(c.X); return 0 }
func iny(c *CPU) uint8 { c.Y++; c.setZN(c.Y); return 0 }
func dey(c *CPU) uint8 { c.Y--; c.setZN(c.Y); return 0 }

// --- Comparisons ---

func compare(c *CPU, reg uint8) {
	v := c.fetch()
	result := reg - v
	c.setFlag(flagC, reg >= v)
	c.setZN(result)
}

func cmp(c *CPU) uint8 { compare(c, c.A); return 1 }
func cpx(c *CPU) uint8 { compare(c, c.X); return 0 }
func cpy(c *CPU) uint8 { compare(c, c.Y); return 0 }

// --- Flags ---

func clc(c *CPU) uint8 { c.setFlag(flagC, false); return 0 }
func sec(c *CPU) uint8 { c.setFlag(flagC, true); return 0 }
func cli(c *CPU) uint8 { c.setFlag(flagI, false); return 0 }
func sei(c *CPU) uint8 { c.setFlag(flagI, true); return 0 }
func clv(c *CPU) uint8 { c.setFlag(flagV, false); return 0 }
func cld(c *CPU) uint8 { c.setFlag(flagD, false); return 0 }
func sed(c *CPU) uint8 { c.setFlag(flagD, true); return 0 }

// --- Stack ---

func pha(c *CPU) uint8 { c.push(c.A); return 0 }
func pla(c *CPU) uint8 { c.A = c.pop(); c.setZN(c.A); return 0 }

func php(c *CPU) uint8 {
	c.push(c.P | flagB | flagU)
	return 0
}

func plp(c *CPU) uint8 {
	c.P = c.pop()
	c.setFlag(flagB, false)
	c.setFlag(flagU, true)
	return 0
}

// --- Control flow ---

func jmp(c *CPU) uint8 { c.PC = c.absAddr; return 0 }

func jsr(c *CPU) uint8 {
	c.pushWord(c.PC - 1)
	c.PC = c.absAddr
	return 0
}

func rts(c *CPU) uint8 {
	c.PC = c.popWord() + 1
	return 0
}

func rti(c *CPU) uint8 {
	c.P = c.pop()
	c.setFlag(flagB, false)
	c.setFlag(flagU, true)
	c.PC = c.popWord()
	return 0
}

// branch implements the shared taken/not-taken/page-cross cycle accounting
// for every conditional branch: +1 cycle when taken, +1 more if the branch
// crosses a page.
func (c *CPU) branch(taken bool) uint8 {
	if !taken {
		return 0
	}
	c.remainingCycles++
	target := c.PC + c.relAddr
	if target&0xFF00 != c.PC&0xFF00 {
		c.remainingCycles++
	}
	c.PC = target
	return 0
}

func bcc(c *CPU) uint8 { return c.branch(!c.getFlag(flagC)) }
func bcs(c *CPU) uint8 { return c.branch(c.getFlag(flagC)) }
func bne(c *CPU) uint8 { return c.branch(!c.getFlag(flagZ)) }
func beq(c *CPU) uint8 { return c.branch(c.getFlag(flagZ)) }
func bpl(c *CPU) uint8 { return c.branch(!c.getFlag(flagN)) }
func bmi(c *CPU) uint8 { return c.branch(c.getFlag(flagN)) }
func bvc(c *CPU) uint8 { return c.branch(!c.getFlag(flagV)) }
func bvs(c *CPU) uint8 { return c.branch(c.getFlag(flagV)) }

// --- Interrupts / misc ---

func brk(c *CPU) uint8 {
	c.PC++
	c.pushWord(c.PC)
	c.push(c.P | flagB | flagU)
	c.setFlag(flagI, true)
	lo := uint16(c.read(irqVector))
	hi := uint16(c.read(irqVector + 1))
	c.PC = hi<<8 | lo
	return 0
}

func nop(c *CPU) uint8 { return 0 }

// nopRead is used by unofficial NOPs that still perform the addressing
// mode's read (and so are eligible for the page-cross penalty).
func nopRead(c *CPU) uint8 { c.fetch(); return 1 }

// --- Unofficial/illegal opcodes ---

func lax(c *CPU) uint8 {
	c.A = c.fetch()
	c.X = c.A
	c.setZN(c.A)
	return 1
}

func sax(c *CPU) uint8 {
	c.write(c.absAddr, c.A&c.X)
	return 0
}

func dcp(c *CPU) uint8 {
	v := c.fetch() - 1
	c.write(c.absAddr, v)
	result := c.A - v
	c.setFlag(flagC, c.A >= v)
	c.setZN(result)
	return 0
}

func isb(c *CPU) uint8 {
	v := c.fetch() + 1
	c.write(c.absAddr, v)
	c.addWithCarry(v ^ 0xFF)
	return 0
}

func slo(c *CPU) uint8 {
	v := c.fetch()
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	c.write(c.absAddr, v)
	c.A |= v
	c.setZN(c.A)
	return 0
}

func rla(c *CPU) uint8 {
	v := c.fetch()
	oldCarry := c.getFlag(flagC)
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.write(c.absAddr, v)
	c.A &= v
	c.setZN(c.A)
	return 0
}

func sre(c *CPU) uint8 {
	v := c.fetch()
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	c.write(c.absAddr, v)
	c.A ^= v
	c.setZN(c.A)
	return 0
}

func rra(c *CPU) uint8 {
	v := c.fetch()
	oldCarry := c.getFlag(flagC)
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.write(c.absAddr, v)
	c.addWithCarry(v)
	return 0
}
