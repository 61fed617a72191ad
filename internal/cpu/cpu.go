// Package cpu implements the MOS 6502 core used by the NES's 2A03 (no decimal
// mode, no APU instructions here — that lives in internal/apu).
package cpu

// Status register bit masks, LSB to MSB: C Z I D B U V N.
const (
	flagC uint8 = 1 << 0
	flagZ uint8 = 1 << 1
	flagI uint8 = 1 << 2
	flagD uint8 = 1 << 3
	flagB uint8 = 1 << 4
	flagU uint8 = 1 << 5
	flagV uint8 = 1 << 6
	flagN uint8 = 1 << 7
)

const (
	stackBase   uint16 = 0x0100
	nmiVector   uint16 = 0xFFFA
	resetVector uint16 = 0xFFFC
	irqVector   uint16 = 0xFFFE
)

// Bus is the memory interface the CPU executes against. Every access is
// total: reads from unmapped regions return 0, writes to unmapped regions
// are dropped (enforced by the implementation, not by the CPU).
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

type addrModeFunc func(c *CPU) uint8
type operFunc func(c *CPU) uint8

type instruction struct {
	name   string
	mode   addrModeFunc
	op     operFunc
	cycles uint8
}

// CPU is the 2A03 core: eight-bit registers, a 16-bit program counter, and a
// table-driven decoder. Clock() advances exactly one master CPU cycle.
type CPU struct {
	A, X, Y uint8
	S       uint8
	P       uint8
	PC      uint16

	bus Bus

	remainingCycles uint8

	opcode      uint8
	fetched     uint8
	absAddr     uint16
	relAddr     uint16
	impliedMode bool

	table [256]instruction

	nmiLine bool
	irqLine bool
}

// New creates a CPU wired to bus. Call Reset before clocking.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.buildTable()
	return c
}

func (c *CPU) read(addr uint16) uint8     { return c.bus.Read(addr) }
func (c *CPU) write(addr uint16, v uint8) { c.bus.Write(addr, v) }
func (c *CPU) getFlag(mask uint8) bool    { return c.P&mask != 0 }
func (c *CPU) setFlag(mask uint8, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, v&0x80 != 0)
}

func (c *CPU) push(v uint8) {
	c.write(stackBase+uint16(c.S), v)
	c.S--
}

func (c *CPU) pop() uint8 {
	c.S++
	return c.read(stackBase + uint16(c.S))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v & 0xFF))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// Reset loads PC from the reset vector and puts the CPU in its documented
// post-reset state: A=X=Y=0, S=0xFD, I set, U set, 8 pending cycles.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = flagU | flagI

	lo := uint16(c.read(resetVector))
	hi := uint16(c.read(resetVector + 1))
	c.PC = hi<<8 | lo

	c.absAddr, c.relAddr, c.fetched = 0, 0, 0
	c.remainingCycles = 8
}

// IRQ requests a maskable interrupt; ignored while the I flag is set.
func (c *CPU) IRQ() {
	if c.getFlag(flagI) {
		return
	}
	c.irqLine = true
}

// NMI requests a non-maskable interrupt; always serviced.
func (c *CPU) NMI() {
	c.nmiLine = true
}

func (c *CPU) serviceIRQ() {
	c.pushWord(c.PC)
	c.setFlag(flagB, false)
	c.setFlag(flagU, true)
	c.push(c.P)
	c.setFlag(flagI, true)

	lo := uint16(c.read(irqVector))
	hi := uint16(c.read(irqVector + 1))
	c.PC = hi<<8 | lo
	c.remainingCycles = 7
}

func (c *CPU) serviceNMI() {
	c.pushWord(c.PC)
	c.setFlag(flagB, false)
	c.setFlag(flagU, true)
	c.push(c.P)
	c.setFlag(flagI, true)

	lo := uint16(c.read(nmiVector))
	hi := uint16(c.read(nmiVector + 1))
	c.PC = hi<<8 | lo
	c.remainingCycles = 8
}

// Clock advances the CPU by exactly one master cycle. When remainingCycles
// reaches zero it decodes and fully executes the next instruction, loading
// remainingCycles with that instruction's total cost (base + page-cross
// extra cycle, when both the addressing mode and the operation opt in).
func (c *CPU) Clock() {
	if c.remainingCycles == 0 {
		if c.nmiLine {
			c.nmiLine = false
			c.serviceNMI()
		} else if c.irqLine && !c.getFlag(flagI) {
			c.irqLine = false
			c.serviceIRQ()
		}
		if c.remainingCycles == 0 {
			c.opcode = c.read(c.PC)
			c.setFlag(flagU, true)
			c.PC++

			entry := c.table[c.opcode]
			c.remainingCycles = entry.cycles

			c.impliedMode = false
			addrExtra := entry.mode(c)
			opExtra := entry.op(c)
			c.remainingCycles += addrExtra & opExtra

			c.setFlag(flagU, true)
		}
	}
	c.remainingCycles--
}

// RemainingCycles reports the pending-cycle countdown (invariant: always >= 0
// by construction of uint8; exposed for the system package's timing checks).
func (c *CPU) RemainingCycles() uint8 { return c.remainingCycles }

// StatusByte returns P as the packed NVUBDIZC byte (U always reads as 1).
func (c *CPU) StatusByte() uint8 { return c.P | flagU }

// SetStatusByte restores P from a packed byte. PLP and RTI assign P
// directly and do not go through it.
func (c *CPU) SetStatusByte(v uint8) { c.P = v }
