package cpu

// i is a small constructor for readability in buildTable below.
func i(name string, mode addrModeFunc, op operFunc, cycles uint8) instruction {
	return instruction{name: name, mode: mode, op: op, cycles: cycles}
}

// buildTable fills the 256-entry opcode table: every documented 6502
// instruction, plus the unofficial opcodes the NES's 2A03 still executes as
// if they were NOPs or the known illegal combos (LAX/SAX/DCP/ISB/SLO/RLA/
// SRE/RRA). Unmapped slots default to a 2-cycle implied NOP.
func (c *CPU) buildTable() {
	for idx := range c.table {
		c.table[idx] = i("NOP", imp, nop, 2)
	}

	t := &c.table

	// Load/store
	t[0xA9] = i("LDA", imm, lda, 2)
	t[0xA5] = i("LDA", zp0, lda, 3)
	t[0xB5] = i("LDA", zpx, lda, 4)
	t[0xAD] = i("LDA", abs, lda, 4)
	t[0xBD] = i("LDA", abx, lda, 4)
	t[0xB9] = i("LDA", aby, lda, 4)
	t[0xA1] = i("LDA", izx, lda, 6)
	t[0xB1] = i("LDA", izy, lda, 5)

	t[0xA2] = i("LDX", imm, ldx, 2)
	t[0xA6] = i("LDX", zp0, ldx, 3)
	t[0xB6] = i("LDX", zpy, ldx, 4)
	t[0xAE] = i("LDX", abs, ldx, 4)
	t[0xBE] = i("LDX", aby, ldx, 4)

	t[0xA0] = i("LDY", imm, ldy, 2)
	t[0xA4] = i("LDY", zp0, ldy, 3)
	t[0xB4] = i("LDY", zpx, ldy, 4)
	t[0xAC] = i("LDY", abs, ldy, 4)
	t[0xBC] = i("LDY", abx, ldy, 4)

	t[0x85] = i("STA", zp0, sta, 3)
	t[0x95] = i("STA", zpx, sta, 4)
	t[0x8D] = i("STA", abs, sta, 4)
	t[0x9D] = i("STA", abx, sta, 5)
	t[0x99] = i("STA", aby, sta, 5)
	t[0x81] = i("STA", izx, sta, 6)
	t[0x91] = i("STA", izy, sta, 6)

	t[0x86] = i("STX", zp0, stx, 3)
	t[0x96] = i("STX", zpy, stx, 4)
	t[0x8E] = i("STX", abs, stx, 4)

	t[0x84] = i("STY", zp0, sty, 3)
	t[0x94] = i("STY", zpx, sty, 4)
	t[0x8C] = i("STY", abs, sty, 4)

	// Arithmetic
	t[0x69] = i("ADC", imm, adc, 2)
	t[0x65] = i("ADC", zp0, adc, 3)
	t[0x75] = i("ADC", zpx, adc, 4)
	t[0x6D] = i("ADC", abs, adc, 4)
	t[0x7D] = i("ADC", abx, adc, 4)
	t[0x79] = i("ADC", aby, adc, 4)
	t[0x61] = i("ADC", izx, adc, 6)
	t[0x71] = i("ADC", izy, adc, 5)

	t[0xE9] = i("SBC", imm, sbc, 2)
	t[0xE5] = i("SBC", zp0, sbc, 3)
	t[0xF5] = i("SBC", zpx, sbc, 4)
	t[0xED] = i("SBC", abs, sbc, 4)
	t[0xFD] = i("SBC", abx, sbc, 4)
	t[0xF9] = i("SBC", aby, sbc, 4)
	t[0xE1] = i("SBC", izx, sbc, 6)
	t[0xF1] = i("SBC", izy, sbc, 5)
	t[0xEB] = i("SBC", imm, sbc, 2) // unofficial alias

	// Logic
	t[0x29] = i("AND", imm, and, 2)
	t[0x25] = i("AND", zp0, and, 3)
	t[0x35] = i("AND", zpx, and, 4)
	t[0x2D] = i("AND", abs, and, 4)
	t[0x3D] = i("AND", abx, and, 4)
	t[0x39] = i("AND", aby, and, 4)
	t[0x21] = i("AND", izx, and, 6)
	t[0x31] = i("AND", izy, and, 5)

	t[0x09] = i("ORA", imm, ora, 2)
	t[0x05] = i("ORA", zp0, ora, 3)
	t[0x15] = i("ORA", zpx, ora, 4)
	t[0x0D] = i("ORA", abs, ora, 4)
	t[0x1D] = i("ORA", abx, ora, 4)
	t[0x19] = i("ORA", aby, ora, 4)
	t[0x01] = i("ORA", izx, ora, 6)
	t[0x11] = i("ORA", izy, ora, 5)

	t[0x49] = i("EOR", imm, eor, 2)
	t[0x45] = i("EOR", zp0, eor, 3)
	t[0x55] = i("EOR", zpx, eor, 4)
	t[0x4D] = i("EOR", abs, eor, 4)
	t[0x5D] = i("EOR", abx, eor, 4)
	t[0x59] = i("EOR", aby, eor, 4)
	t[0x41] = i("EOR", izx, eor, 6)
	t[0x51] = i("EOR", izy, eor, 5)

	t[0x24] = i("BIT", zp0, bit, 3)
	t[0x2C] = i("BIT", abs, bit, 4)

	// Shifts/rotates
	t[0x0A] = i("ASL", imp, asl, 2)
	t[0x06] = i("ASL", zp0, asl, 5)
	t[0x16] = i("ASL", zpx, asl, 6)
	t[0x0E] = i("ASL", abs, asl, 6)
	t[0x1E] = i("ASL", abx, asl, 7)

	t[0x4A] = i("LSR", imp, lsr, 2)
	t[0x46] = i("LSR", zp0, lsr, 5)
	t[0x56] = i("LSR", zpx, lsr, 6)
	t[0x4E] = i("LSR", abs, lsr, 6)
	t[0x5E] = i("LSR", abx, lsr, 7)

	t[0x2A] = i("ROL", imp, rol, 2)
	t[0x26] = i("ROL", zp0, rol, 5)
	t[0x36] = i("ROL", zpx, rol, 6)
	t[0x2E] = i("ROL", abs, rol, 6)
	t[0x3E] = i("ROL", abx, rol, 7)

	t[0x6A] = i("ROR", imp, ror, 2)
	t[0x66] = i("ROR", zp0, ror, 5)
	t[0x76] = i("ROR", zpx, ror, 6)
	t[0x6E] = i("ROR", abs, ror, 6)
	t[0x7E] = i("ROR", abx, ror, 7)

	// Compare
	t[0xC9] = i("CMP", imm, cmp, 2)
	t[0xC5] = i("CMP", zp0, cmp, 3)
	t[0xD5] = i("CMP", zpx, cmp, 4)
	t[0xCD] = i("CMP", abs, cmp, 4)
	t[0xDD] = i("CMP", abx, cmp, 4)
	t[0xD9] = i("CMP", aby, cmp, 4)
	t[0xC1] = i("CMP", izx, cmp, 6)
	t[0xD1] = i("CMP", izy, cmp, 5)

	t[0xE0] = i("CPX", imm, cpx, 2)
	t[0xE4] = i("CPX", zp0, cpx, 3)
	t[0xEC] = i("CPX", abs, cpx, 4)

	t[0xC0] = i("CPY", imm, cpy, 2)
	t[0xC4] = i("CPY", zp0, cpy, 3)
	t[0xCC] = i("CPY", abs, cpy, 4)

	// Inc/dec
	t[0xE6] = i("INC", zp0, inc, 5)
	t[0xF6] = i("INC", zpx, inc, 6)
	t[0xEE] = i("INC", abs, inc, 6)
	t[0xFE] = i("INC", abx, inc, 7)

	t[0xC6] = i("DEC", zp0, dec, 5)
	t[0xD6] = i("DEC", zpx, dec, 6)
	t[0xCE] = i("DEC", abs, dec, 6)
	t[0xDE] = i("DEC", abx, dec, 7)

	t[0xE8] = i("INX", imp, inx, 2)
	t[0xCA] = i("DEX", imp, dex, 2)
	t[0xC8] = i("INY", imp, iny, 2)
	t[0x88] = i("DEY", imp, dey, 2)

	// Transfers
	t[0xAA] = i("TAX", imp, tax, 2)
	t[0x8A] = i("TXA", imp, txa, 2)
	t[0xA8] = i("TAY", imp, tay, 2)
	t[0x98] = i("TYA", imp, tya, 2)
	t[0xBA] = i("TSX", imp, tsx, 2)
	t[0x9A] = i("TXS", imp, txs, 2)

	// Stack
	t[0x48] = i("PHA", imp, pha, 3)
	t[0x68] = i("PLA", imp, pla, 4)
	t[0x08] = i("PHP", imp, php, 3)
	t[0x28] = i("PLP", imp, plp, 4)

	// Flags
	t[0x18] = i("CLC", imp, clc, 2)
	t[0x38] = i("SEC", imp, sec, 2)
	t[0x58] = i("CLI", imp, cli, 2)
	t[0x78] = i("SEI", imp, sei, 2)
	t[0xB8] = i("CLV", imp, clv, 2)
	t[0xD8] = i("CLD", imp, cld, 2)
	t[0xF8] = i("SED", imp, sed, 2)

	// Control flow
	t[0x4C] = i("JMP", abs, jmp, 3)
	t[0x6C] = i("JMP", ind, jmp, 5)
	t[0x20] = i("JSR", abs, jsr, 6)
	t[0x60] = i("RTS", imp, rts, 6)
	t[0x40] = i("RTI", imp, rti, 6)

	// Branches
	t[0x90] = i("BCC", rel, bcc, 2)
	t[0xB0] = i("BCS", rel, bcs, 2)
	t[0xD0] = i("BNE", rel, bne, 2)
	t[0xF0] = i("BEQ", rel, beq, 2)
	t[0x10] = i("BPL", rel, bpl, 2)
	t[0x30] = i("BMI", rel, bmi, 2)
	t[0x50] = i("BVC", rel, bvc, 2)
	t[0x70] = i("BVS", rel, bvs, 2)

	// Misc
	t[0xEA] = i("NOP", imp, nop, 2)
	t[0x00] = i("BRK", imp, brk, 7)

	// Unofficial NOPs
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		t[op] = i("NOP", imp, nop, 2)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		t[op] = i("NOP", imm, nopRead, 2)
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		t[op] = i("NOP", zp0, nopRead, 3)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		t[op] = i("NOP", zpx, nopRead, 4)
	}
	t[0x0C] = i("NOP", abs, nopRead, 4)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		t[op] = i("NOP", abx, nopRead, 4)
	}

	// Unofficial opcodes
	t[0xA7] = i("LAX", zp0, lax, 3)
	t[0xB7] = i("LAX", zpy, lax, 4)
	t[0xAF] = i("LAX", abs, lax, 4)
	t[0xBF] = i("LAX", aby, lax, 4)
	t[0xA3] = i("LAX", izx, lax, 6)
	t[0xB3] = i("LAX", izy, lax, 5)

	t[0x87] = i("SAX", zp0, sax, 3)
	t[0x97] = i("SAX", zpy, sax, 4)
	t[0x8F] = i("SAX", abs, sax, 4)
	t[0x83] = i("SAX", izx, sax, 6)

	t[0xC7] = i("DCP", zp0, dcp, 5)
	t[0xD7] = i("DCP", zpx, dcp, 6)
	t[0xCF] = i("DCP", abs, dcp, 6)
	t[0xDF] = i("DCP", abx, dcp, 7)
	t[0xDB] = i("DCP", aby, dcp, 7)
	t[0xC3] = i("DCP", izx, dcp, 8)
	t[0xD3] = i("DCP", izy, dcp, 8)

	t[0xE7] = i("ISB", zp0, isb, 5)
	t[0xF7] = i("ISB", zpx, isb, 6)
	t[0xEF] = i("ISB", abs, isb, 6)
	t[0xFF] = i("ISB", abx, isb, 7)
	t[0xFB] = i("ISB", aby, isb, 7)
	t[0xE3] = i("ISB", izx, isb, 8)
	t[0xF3] = i("ISB", izy, isb, 8)

	t[0x07] = i("SLO", zp0, slo, 5)
	t[0x17] = i("SLO", zpx, slo, 6)
	t[0x0F] = i("SLO", abs, slo, 6)
	t[0x1F] = i("SLO", abx, slo, 7)
	t[0x1B] = i("SLO", aby, slo, 7)
	t[0x03] = i("SLO", izx, slo, 8)
	t[0x13] = i("SLO", izy, slo, 8)

	t[0x27] = i("RLA", zp0, rla, 5)
	t[0x37] = i("RLA", zpx, rla, 6)
	t[0x2F] = i("RLA", abs, rla, 6)
	t[0x3F] = i("RLA", abx, rla, 7)
	t[0x3B] = i("RLA", aby, rla, 7)
	t[0x23] = i("RLA", izx, rla, 8)
	t[0x33] = i("RLA", izy, rla, 8)

	t[0x47] = i("SRE", zp0, sre, 5)
	t[0x57] = i("SRE", zpx, sre, 6)
	t[0x4F] = i("SRE", abs, sre, 6)
	t[0x5F] = i("SRE", abx, sre, 7)
	t[0x5B] = i("SRE", aby, sre, 7)
	t[0x43] = i("SRE", izx, sre, 8)
	t[0x53] = i("SRE", izy, sre, 8)

	t[0x67] = i("RRA", zp0, rra, 5)
	t[0x77] = i("RRA", zpx, rra, 6)
	t[0x6F] = i("RRA", abs, rra, 6)
	t[0x7F] = i("RRA", abx, rra, 7)
	t[0x7B] = i("RRA", aby, rra, 7)
	t[0x63] = i("RRA", izx, rra, 8)
	t[0x73] = i("RRA", izy, rra, 8)
}

// Mnemonic returns the decoded name of the instruction at opcode (for trace
// formatting).
func (c *CPU) Mnemonic(opcode uint8) string { return c.table[opcode].name }

// PeekOpcode reads the byte at PC without advancing it, for trace lines
// captured before Clock() consumes the next instruction.
func (c *CPU) PeekOpcode() uint8 { return c.read(c.PC) }
