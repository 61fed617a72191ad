// Package bus implements CPU-side address decode and the OAM-DMA register,
// coordinating the CPU and PPU clocks that internal/system interleaves.
package bus

import (
	"nesgo/internal/apu"
	"nesgo/internal/cartridge"
	"nesgo/internal/input"
	"nesgo/internal/ppu"
	"nesgo/internal/tracelog"
)

// PRG is the cartridge collaborator the bus dispatches 0x4020-0xFFFF
// through.
type PRG interface {
	ReadPRG(addr uint16) uint8
	WritePRG(addr uint16, value uint8)
}

// PPURegisters is the PPU collaborator the bus dispatches 0x2000-0x3FFF
// through.
type PPURegisters interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, value uint8)
}

// Bus is the CPU's view of the system: 2 KiB work RAM, the PPU register
// window, the two controller ports, and the OAM-DMA trigger register.
type Bus struct {
	ram [0x0800]uint8

	PPU   PPURegisters
	APU   *apu.APU
	Cart  PRG
	Input *input.Controllers

	dmaPage     uint8
	dmaAddr     uint8
	dmaTransfer bool
	dmaDummy    bool
}

// New wires a bus to its collaborators. cart may be nil (no ROM loaded
// yet); the cartridge window then reads 0 and drops writes.
func New(p *ppu.PPU, cart *cartridge.Cartridge, in *input.Controllers) *Bus {
	b := &Bus{Input: in, APU: apu.New()}
	if p != nil {
		b.PPU = p
	}
	if cart != nil {
		b.Cart = cart
	} else {
		b.Cart = noCart{}
	}
	return b
}

// noCart is the cartridge-window fallback before a ROM is loaded.
type noCart struct{}

func (noCart) ReadPRG(uint16) uint8   { return 0 }
func (noCart) WritePRG(uint16, uint8) {}

// Read implements cpu.Bus: total, address-decoded reads.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		return b.PPU.ReadRegister(addr)
	case addr == 0x4015:
		return b.APU.ReadStatus()
	case addr == 0x4016:
		return b.Input.Read(0)
	case addr == 0x4017:
		return b.Input.Read(1)
	case addr >= 0x4020:
		return b.Cart.ReadPRG(addr)
	default:
		return 0
	}
}

// Write implements cpu.Bus: total, address-decoded writes.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = value
	case addr < 0x4000:
		b.PPU.WriteRegister(addr, value)
	case addr == 0x4014:
		tracelog.V(1).Infof("oam-dma start page=%02X", value)
		b.dmaPage = value
		b.dmaAddr = 0
		b.dmaTransfer = true
		b.dmaDummy = true
	case addr == 0x4016:
		b.Input.Write(value)
	case addr == 0x4017:
		b.Input.Write(value)
		b.APU.WriteRegister(addr, value)
	case addr <= 0x4013 || addr == 0x4015:
		b.APU.WriteRegister(addr, value)
	case addr >= 0x4020:
		b.Cart.WritePRG(addr, value)
	}
}

// DMAPending reports whether an OAM-DMA transfer is armed or in progress.
func (b *Bus) DMAPending() bool { return b.dmaTransfer }

// DMADummy reports whether the engine is still waiting to align to a read
// slot.
func (b *Bus) DMADummy() bool { return b.dmaDummy }

// ClearDMADummy marks alignment complete.
func (b *Bus) ClearDMADummy() { b.dmaDummy = false }

// DMASourceAddr returns the CPU-bus address the DMA engine should read next.
func (b *Bus) DMASourceAddr() uint16 { return uint16(b.dmaPage)<<8 | uint16(b.dmaAddr) }

// DMAAdvance increments the DMA engine's page offset (mod 256); it reports
// whether the transfer has completed (all 256 bytes copied), clearing
// dmaTransfer when so.
func (b *Bus) DMAAdvance() (done bool) {
	b.dmaAddr++
	if b.dmaAddr == 0 {
		b.dmaTransfer = false
		return true
	}
	return false
}

// RAM exposes the work-RAM array for tests.
func (b *Bus) RAM() *[0x0800]uint8 { return &b.ram }
