package ppu

// Step advances the PPU by exactly one pixel clock (one PPU cycle),
// running the background shift pipeline, sprite evaluation/fetch, and
// pixel composition described for scanlines [-1,260] and cycles [0,340].
func (p *PPU) Step() {
	if p.scanline >= -1 && p.scanline <= 239 {
		p.doVisibleOrPrerenderScanline()
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.status |= statusVBlank
		if p.ctrl&ctrlEnableNMI != 0 {
			p.nmiRequest = true
		}
	}

	p.advance()
}

func (p *PPU) advance() {
	p.cycle++
	if p.cycle > 340 {
		p.cycle = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.frameComplete = true
			p.oddFrame = !p.oddFrame
		}
	}
}

func (p *PPU) doVisibleOrPrerenderScanline() {
	if p.scanline == -1 && p.cycle == 1 {
		p.status &^= statusVBlank | statusSpriteZeroHit | statusSpriteOverflow
		p.scanlineSprites = nil
	}

	inFetchWindow := (p.cycle >= 2 && p.cycle <= 257) || (p.cycle >= 321 && p.cycle <= 337)
	inShiftWindow := (p.cycle >= 2 && p.cycle <= 257) || (p.cycle >= 322 && p.cycle <= 337)

	if p.renderingEnabled() && inShiftWindow {
		p.shiftBackground()
	}

	if inFetchWindow {
		p.runBackgroundFetch()
	}

	if p.cycle == 256 && p.renderingEnabled() {
		p.v = incrementY(p.v)
	}
	if p.cycle == 257 {
		if p.renderingEnabled() {
			p.loadShiftersFromLatches()
			p.v = transferX(p.v, p.t)
		}
		p.evaluateSprites()
	}
	if p.scanline == -1 && p.cycle >= 280 && p.cycle <= 304 && p.renderingEnabled() {
		p.v = transferY(p.v, p.t)
	}
	if p.cycle == 338 || p.cycle == 340 {
		p.bgNextTileID = p.readInternal(0x2000 | (p.v & 0x0FFF))
	}
	if p.cycle == 340 {
		p.fetchSpritePatterns()
	}

	if p.scanline >= 0 && p.cycle >= 1 && p.cycle <= 256 {
		p.composePixel()
	}

	if p.cycle >= 1 && p.cycle <= 256 {
		p.shiftSpritesX()
	}
}

func (p *PPU) runBackgroundFetch() {
	switch p.cycle % 8 {
	case 1:
		p.loadShiftersFromLatches()
		p.bgNextTileID = p.readInternal(0x2000 | (p.v & 0x0FFF))
	case 3:
		addr := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
		attrib := p.readInternal(addr)
		if loopyCoarseY(p.v)&0x02 != 0 {
			attrib >>= 4
		}
		if loopyCoarseX(p.v)&0x02 != 0 {
			attrib >>= 2
		}
		p.bgNextTileAttrib = attrib & 0x03
	case 5:
		base := uint16(0)
		if p.ctrl&ctrlPatternBg != 0 {
			base = 0x1000
		}
		addr := base + uint16(p.bgNextTileID)*16 + loopyFineY(p.v)
		p.bgNextTileLSB = p.readInternal(addr)
	case 7:
		base := uint16(0)
		if p.ctrl&ctrlPatternBg != 0 {
			base = 0x1000
		}
		addr := base + uint16(p.bgNextTileID)*16 + loopyFineY(p.v) + 8
		p.bgNextTileMSB = p.readInternal(addr)
	case 0:
		if p.renderingEnabled() {
			p.v = incrementX(p.v)
		}
	}
}

func (p *PPU) loadShiftersFromLatches() {
	p.bgShiftPatternLo = (p.bgShiftPatternLo & 0xFF00) | uint16(p.bgNextTileLSB)
	p.bgShiftPatternHi = (p.bgShiftPatternHi & 0xFF00) | uint16(p.bgNextTileMSB)

	var lo, hi uint16
	if p.bgNextTileAttrib&0x01 != 0 {
		lo = 0x00FF
	}
	if p.bgNextTileAttrib&0x02 != 0 {
		hi = 0x00FF
	}
	p.bgShiftAttribLo = (p.bgShiftAttribLo & 0xFF00) | lo
	p.bgShiftAttribHi = (p.bgShiftAttribHi & 0xFF00) | hi
}

func (p *PPU) shiftBackground() {
	p.bgShiftPatternLo <<= 1
	p.bgShiftPatternHi <<= 1
	p.bgShiftAttribLo <<= 1
	p.bgShiftAttribHi <<= 1
}

func (p *PPU) shiftSpritesX() {
	for i := range p.scanlineSprites {
		s := &p.scanlineSprites[i]
		if s.x > 0 {
			s.x--
		} else {
			s.shiftLo <<= 1
			s.shiftHi <<= 1
		}
	}
}

// --- sprite evaluation ---

func (p *PPU) spriteHeight() int {
	if p.ctrl&ctrlSpriteSize != 0 {
		return 16
	}
	return 8
}

func (p *PPU) evaluateSprites() {
	p.scanlineSprites = p.scanlineSprites[:0]
	p.spriteZeroHitPossible = false
	height := p.spriteHeight()

	for idx := 0; idx < 64; idx++ {
		e := p.oam[idx]
		diff := p.scanline - int(e.y)
		if diff < 0 || diff >= height {
			continue
		}
		if len(p.scanlineSprites) == 8 {
			p.status |= statusSpriteOverflow
			break
		}
		if idx == 0 {
			p.spriteZeroHitPossible = true
		}
		p.scanlineSprites = append(p.scanlineSprites, spriteUnit{oamIndex: idx, x: e.x, attrib: e.attrib})
	}
}

func flipByte(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

func (p *PPU) fetchSpritePatterns() {
	height := p.spriteHeight()
	for i := range p.scanlineSprites {
		s := &p.scanlineSprites[i]
		e := p.oam[s.oamIndex]
		row := p.scanline - int(e.y)
		flipV := e.attrib&0x80 != 0
		flipH := e.attrib&0x40 != 0
		if flipV {
			row = height - 1 - row
		}

		var addr uint16
		if height == 16 {
			tile := uint16(e.tile &^ 1)
			bank := uint16(e.tile&0x01) * 0x1000
			half := uint16(0)
			if row >= 8 {
				half = 1
				row -= 8
			}
			addr = bank + (tile+half)*16 + uint16(row)
		} else {
			base := uint16(0)
			if p.ctrl&ctrlPatternSpr != 0 {
				base = 0x1000
			}
			addr = base + uint16(e.tile)*16 + uint16(row)
		}

		lo := p.readInternal(addr)
		hi := p.readInternal(addr + 8)
		if flipH {
			lo = flipByte(lo)
			hi = flipByte(hi)
		}
		s.shiftLo = lo
		s.shiftHi = hi
	}
}

// --- pixel composition ---

func (p *PPU) composePixel() {
	x := p.cycle - 1
	y := p.scanline

	bgPixel, bgPalette := p.backgroundPixel(x)
	fgPixel, fgPalette, fgPriority, spriteZero := p.spritePixel(x)

	var pixel, palette uint8
	switch {
	case bgPixel == 0 && fgPixel == 0:
		pixel, palette = 0, 0
	case bgPixel == 0 && fgPixel != 0:
		pixel, palette = fgPixel, fgPalette
	case bgPixel != 0 && fgPixel == 0:
		pixel, palette = bgPixel, bgPalette
	default:
		if fgPriority == 0 {
			pixel, palette = fgPixel, fgPalette
		} else {
			pixel, palette = bgPixel, bgPalette
		}
		if p.spriteZeroHitPossible && spriteZero && p.renderingEnabled() {
			leftClip := p.mask&maskBgLeft == 0 || p.mask&maskSpriteLeft == 0
			lo, hi := 1, 257
			if leftClip {
				lo = 9
			}
			if p.cycle >= lo && p.cycle <= hi && p.cycle != 256 {
				p.status |= statusSpriteZeroHit
			}
		}
	}

	colorIdx := p.readInternal(0x3F00+uint16(palette)<<2+uint16(pixel)) & 0x3F
	r, g, b := colorFor(colorIdx)
	if y >= 0 && y < 240 && x >= 0 && x < 256 {
		p.frameBuffer[y*256+x] = [3]uint8{r, g, b}
	}
}

func (p *PPU) backgroundPixel(x int) (pixel, palette uint8) {
	if p.mask&maskRenderBg == 0 || (p.mask&maskBgLeft == 0 && x < 8) {
		return 0, 0
	}
	mux := uint16(0x8000) >> p.fineX
	p0 := uint8(0)
	if p.bgShiftPatternLo&mux != 0 {
		p0 = 1
	}
	p1 := uint8(0)
	if p.bgShiftPatternHi&mux != 0 {
		p1 = 1
	}
	pixel = (p1 << 1) | p0

	a0 := uint8(0)
	if p.bgShiftAttribLo&mux != 0 {
		a0 = 1
	}
	a1 := uint8(0)
	if p.bgShiftAttribHi&mux != 0 {
		a1 = 1
	}
	palette = (a1 << 1) | a0
	return
}

func (p *PPU) spritePixel(x int) (pixel, palette, priority uint8, spriteZero bool) {
	if p.mask&maskRenderSprite == 0 || (p.mask&maskSpriteLeft == 0 && x < 8) {
		return 0, 0, 0, false
	}
	for i := range p.scanlineSprites {
		s := &p.scanlineSprites[i]
		if s.x != 0 {
			continue
		}
		p0 := uint8(0)
		if s.shiftLo&0x80 != 0 {
			p0 = 1
		}
		p1 := uint8(0)
		if s.shiftHi&0x80 != 0 {
			p1 = 1
		}
		fg := (p1 << 1) | p0
		if fg == 0 {
			continue
		}
		return fg, (s.attrib & 0x03) + 4, (s.attrib >> 5) & 0x01, s.oamIndex == 0
	}
	return 0, 0, 0, false
}
