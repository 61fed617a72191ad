// Package system owns the CPU, PPU, bus, and controllers, and implements
// the master clock: the PPU ticks every master cycle, the CPU ticks every
// third, and OAM-DMA can stall the CPU slot for 513 or 514 cycles.
package system

import (
	"nesgo/internal/bus"
	"nesgo/internal/cartridge"
	"nesgo/internal/cpu"
	"nesgo/internal/input"
	"nesgo/internal/ppu"
	"nesgo/internal/trace"
	"nesgo/internal/tracelog"
)

// System composes one CPU, one PPU, one bus, and the controller ports, and
// drives them with a single tick.
type System struct {
	CPU   *cpu.CPU
	PPU   *ppu.PPU
	Bus   *bus.Bus
	Input *input.Controllers
	Cart  *cartridge.Cartridge

	masterCycle uint64
	cpuCycle    uint64
	dmaReadNext bool
	dmaData     uint8
}

// New builds a system around cart (which may be nil, e.g. before a ROM
// loads) and resets the CPU.
func New(cart *cartridge.Cartridge) *System {
	in := &input.Controllers{}

	mirroring := cartridge.MirrorHorizontal
	var chr ppu.CHR
	if cart != nil {
		mirroring = cart.Mirroring()
		chr = cart
	} else {
		chr = noCHR{}
	}
	p := ppu.New(chr, mirroring)
	b := bus.New(p, cart, in)

	s := &System{
		PPU:   p,
		Bus:   b,
		Input: in,
		Cart:  cart,
	}
	s.CPU = cpu.New(b)
	s.CPU.Reset()
	return s
}

type noCHR struct{}

func (noCHR) ReadCHR(uint16) uint8   { return 0 }
func (noCHR) WriteCHR(uint16, uint8) {}

// SetControllerState writes port's 8-bit button byte (bit order per
// internal/input).
func (s *System) SetControllerState(port int, bits uint8) {
	s.Input.SetControllerState(port, bits)
}

// MasterCycle returns the number of master clock cycles elapsed since
// construction, for trace logging.
func (s *System) MasterCycle() uint64 { return s.masterCycle }

// Tick advances the master clock by exactly one cycle: the PPU always
// clocks; every third master cycle either services OAM-DMA or clocks the
// CPU.
func (s *System) Tick() {
	s.PPU.Step()
	if s.PPU.NMIRequested() {
		tracelog.V(2).Infof("nmi at scanline=%d cycle=%d", s.PPU.Scanline(), s.PPU.Cycle())
		s.CPU.NMI()
	}

	s.masterCycle++
	if s.masterCycle%3 != 0 {
		return
	}
	s.cpuCycle++

	if s.Bus.DMAPending() {
		s.tickDMA()
	} else {
		s.CPU.Clock()
	}
}

func (s *System) tickDMA() {
	if s.Bus.DMADummy() {
		if s.cpuCycle%2 == 1 {
			s.Bus.ClearDMADummy()
			s.dmaReadNext = true
		}
		return
	}

	if s.dmaReadNext {
		s.dmaData = s.Bus.Read(s.Bus.DMASourceAddr())
		s.dmaReadNext = false
		return
	}

	s.PPU.WriteRegister(4, s.dmaData) // OAMDATA: writes OAM[OAMADDR], auto-increments
	s.Bus.DMAAdvance()
	s.dmaReadNext = true
}

// RunFrame ticks until the PPU reports a completed frame.
func (s *System) RunFrame() {
	for !s.PPU.TakeFrameComplete() {
		s.Tick()
	}
}

// atInstructionBoundary reports whether the next Tick will be the CPU clock
// that fetches a fresh instruction, rather than one mid-instruction or
// mid-DMA cycle.
func (s *System) atInstructionBoundary() bool {
	return !s.Bus.DMAPending() && s.CPU.RemainingCycles() == 0 && s.masterCycle%3 == 2
}

// StepInstruction ticks until just before the CPU fetches its next
// instruction, captures that pre-fetch state, then ticks once more to
// execute it. Used by the trace command; the emulation core itself never
// calls this.
func (s *System) StepInstruction() trace.CPUState {
	for !s.atInstructionBoundary() {
		s.Tick()
	}
	opcode := s.CPU.PeekOpcode()
	state := trace.CPUState{
		PC:          s.CPU.PC,
		A:           s.CPU.A,
		X:           s.CPU.X,
		Y:           s.CPU.Y,
		S:           s.CPU.S,
		P:           s.CPU.StatusByte(),
		Opcode:      opcode,
		Mnemonic:    s.CPU.Mnemonic(opcode),
		Scanline:    s.PPU.Scanline(),
		PPUCycle:    s.PPU.Cycle(),
		MasterCycle: s.masterCycle,
	}
	s.Tick()
	return state
}
