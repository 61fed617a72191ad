// Package ppu implements the RP2C02 Picture Processing Unit: the
// memory-mapped register file, the loopy-v/t background shift-register
// pipeline, sprite evaluation, sprite-zero-hit, and NMI signaling.
package ppu

// Mirroring selects how the PPU's two physical 1 KiB nametables are mapped
// across the four logical nametable slots.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

// CHR is the PPU's read/write window onto cartridge pattern memory
// (0x0000-0x1FFF), implemented by the cartridge's mapper.
type CHR interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, value uint8)
}

// CTRL ($2000) bit helpers.
const (
	ctrlNtX        = 0x01
	ctrlNtY        = 0x02
	ctrlIncrement  = 0x04
	ctrlPatternSpr = 0x08
	ctrlPatternBg  = 0x10
	ctrlSpriteSize = 0x20
	ctrlMasterSlv  = 0x40
	ctrlEnableNMI  = 0x80
)

// MASK ($2001) bit helpers.
const (
	maskGreyscale    = 0x01
	maskBgLeft       = 0x02
	maskSpriteLeft   = 0x04
	maskRenderBg     = 0x08
	maskRenderSprite = 0x10
	maskEmphasizeR   = 0x20
	maskEmphasizeG   = 0x40
	maskEmphasizeB   = 0x80
)

// STATUS ($2002) bit helpers.
const (
	statusSpriteOverflow = 0x20
	statusSpriteZeroHit  = 0x40
	statusVBlank         = 0x80
)

type oamEntry struct {
	y, tile, attrib, x uint8
}

// PPU is the RP2C02 pixel pipeline. Public state is the CPU-visible
// register file; everything else is internal timing/pipeline state.
type PPU struct {
	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [64]oamEntry

	v, t  uint16
	fineX uint8
	w     bool

	dataBuffer uint8

	chr        CHR
	mirroring  Mirroring
	nametable  [2][1024]uint8
	paletteRAM [32]uint8

	bgNextTileID     uint8
	bgNextTileAttrib uint8
	bgNextTileLSB    uint8
	bgNextTileMSB    uint8

	bgShiftPatternLo uint16
	bgShiftPatternHi uint16
	bgShiftAttribLo  uint16
	bgShiftAttribHi  uint16

	scanlineSprites         []spriteUnit
	spriteZeroHitPossible   bool
	spriteZeroBeingRendered bool

	scanline int
	cycle    int

	frameComplete bool
	oddFrame      bool
	nmiRequest    bool

	frameBuffer [256 * 240][3]uint8
}

type spriteUnit struct {
	oamIndex int
	x        uint8
	attrib   uint8
	shiftLo  uint8
	shiftHi  uint8
}

// New creates a PPU wired to the cartridge's CHR window with the given
// nametable mirroring.
func New(chr CHR, mirroring Mirroring) *PPU {
	p := &PPU{chr: chr, mirroring: mirroring}
	p.Reset()
	return p
}

// SetMirroring updates nametable mirroring (used when a ROM reload changes
// cartridges).
func (p *PPU) SetMirroring(m Mirroring) { p.mirroring = m }

// Reset returns the PPU to its post-power state.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t, p.fineX, p.w = 0, 0, 0, false
	p.dataBuffer = 0
	p.scanline, p.cycle = -1, 0
	p.frameComplete = false
	p.oddFrame = false
	p.nmiRequest = false
	p.bgShiftPatternLo, p.bgShiftPatternHi = 0, 0
	p.bgShiftAttribLo, p.bgShiftAttribHi = 0, 0
	p.scanlineSprites = nil
	for i := range p.frameBuffer {
		p.frameBuffer[i] = [3]uint8{}
	}
}

// FrameBuffer exposes the completed 256x240 RGB pixel buffer, row-major.
func (p *PPU) FrameBuffer() *[256 * 240][3]uint8 { return &p.frameBuffer }

// FrameComplete reports (and does not clear) whether the current frame has
// finished; callers use TakeFrameComplete to consume it.
func (p *PPU) FrameComplete() bool { return p.frameComplete }

// TakeFrameComplete returns the frame_complete flag and clears it.
func (p *PPU) TakeFrameComplete() bool {
	v := p.frameComplete
	p.frameComplete = false
	return v
}

// NMIRequested returns (and clears) the pending NMI line.
func (p *PPU) NMIRequested() bool {
	v := p.nmiRequest
	p.nmiRequest = false
	return v
}

// Scanline and Cycle expose PPU timing coordinates for tests and tracing.
func (p *PPU) Scanline() int { return p.scanline }
func (p *PPU) Cycle() int    { return p.cycle }

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskRenderBg|maskRenderSprite) != 0
}

// --- CPU-visible register file: 0x2000-0x3FFF mirrored every 8 bytes ---

// ReadRegister handles a CPU read at 0x2000-0x3FFF (addr mod 8 selects the
// port).
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr & 7 {
	case 2: // PPUSTATUS
		result := (p.status & 0xE0) | (p.dataBuffer & 0x1F)
		p.status &^= statusVBlank
		p.w = false
		return result
	case 4: // OAMDATA
		return p.readOAM(p.oamAddr)
	case 7: // PPUDATA
		return p.readData()
	default:
		return 0
	}
}

// WriteRegister handles a CPU write at 0x2000-0x3FFF.
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	switch addr & 7 {
	case 0: // PPUCTRL
		p.ctrl = value
		p.t = setLoopyNtX(p.t, uint16(value)&0x01)
		p.t = setLoopyNtY(p.t, uint16(value>>1)&0x01)
	case 1: // PPUMASK
		p.mask = value
	case 3: // OAMADDR
		p.oamAddr = value
	case 4: // OAMDATA
		p.writeOAM(p.oamAddr, value)
		p.oamAddr++
	case 5: // PPUSCROLL
		if !p.w {
			p.fineX = value & 0x07
			p.t = setLoopyCoarseX(p.t, uint16(value>>3))
		} else {
			p.t = setLoopyFineY(p.t, uint16(value)&0x07)
			p.t = setLoopyCoarseY(p.t, uint16(value>>3))
		}
		p.w = !p.w
	case 6: // PPUADDR
		if !p.w {
			p.t = (p.t & 0x00FF) | ((uint16(value) & 0x3F) << 8)
		} else {
			p.t = (p.t & 0xFF00) | uint16(value)
			p.v = p.t
		}
		p.w = !p.w
	case 7: // PPUDATA
		p.writeData(value)
	}
}

func (p *PPU) readOAM(addr uint8) uint8 {
	e := p.oam[addr/4]
	switch addr % 4 {
	case 0:
		return e.y
	case 1:
		return e.tile
	case 2:
		return e.attrib
	default:
		return e.x
	}
}

func (p *PPU) writeOAM(addr uint8, v uint8) {
	e := &p.oam[addr/4]
	switch addr % 4 {
	case 0:
		e.y = v
	case 1:
		e.tile = v
	case 2:
		e.attrib = v
	default:
		e.x = v
	}
}

func (p *PPU) incrementAddr() {
	if p.ctrl&ctrlIncrement != 0 {
		p.v = (p.v + 32) & 0x7FFF
	} else {
		p.v = (p.v + 1) & 0x7FFF
	}
}

func (p *PPU) readData() uint8 {
	addr := p.v & 0x3FFF
	var result uint8
	if addr >= 0x3F00 {
		result = p.readInternal(addr)
		p.dataBuffer = p.readInternal(addr - 0x1000)
	} else {
		result = p.dataBuffer
		p.dataBuffer = p.readInternal(addr)
	}
	p.incrementAddr()
	return result
}

func (p *PPU) writeData(value uint8) {
	p.writeInternal(p.v&0x3FFF, value)
	p.incrementAddr()
}

// --- PPU-internal address space: 0x0000-0x3FFF ---

func (p *PPU) readInternal(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.chr.ReadCHR(addr)
	case addr < 0x3F00:
		return p.nametable[p.nametableIndex(addr)][addr&0x03FF]
	default:
		return p.paletteRAM[paletteIndex(addr)]
	}
}

func (p *PPU) writeInternal(addr uint16, value uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.chr.WriteCHR(addr, value)
	case addr < 0x3F00:
		p.nametable[p.nametableIndex(addr)][addr&0x03FF] = value
	default:
		p.paletteRAM[paletteIndex(addr)] = value
	}
}

func (p *PPU) nametableIndex(addr uint16) int {
	table := (addr >> 10) & 0x03
	switch p.mirroring {
	case MirrorVertical:
		return int(table & 1)
	default: // Horizontal
		return int(table >> 1)
	}
}

func paletteIndex(addr uint16) uint16 {
	idx := (addr - 0x3F00) & 0x1F
	switch idx {
	case 0x10, 0x14, 0x18, 0x1C:
		idx &= 0x0F
	}
	return idx
}
