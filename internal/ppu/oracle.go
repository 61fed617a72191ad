package ppu

// DecodeTile renders an 8x8 CHR tile at the given pattern-table address
// against the given palette number, returning row-major RGB pixels. This is
// a test oracle: it reads the pipeline's own CHR/palette lookups so that
// whole-frame rendering can be checked tile-by-tile without running the
// full background pipeline.
func (p *PPU) DecodeTile(patternAddr uint16, palette uint8) [8][8][3]uint8 {
	var out [8][8][3]uint8
	for row := 0; row < 8; row++ {
		lo := p.readInternal(patternAddr + uint16(row))
		hi := p.readInternal(patternAddr + uint16(row) + 8)
		for col := 0; col < 8; col++ {
			bit := uint(7 - col)
			p0 := (lo >> bit) & 1
			p1 := (hi >> bit) & 1
			pixel := (p1 << 1) | p0
			colorIdx := p.readInternal(0x3F00+uint16(palette)<<2+uint16(pixel)) & 0x3F
			r, g, b := colorFor(colorIdx)
			out[row][col] = [3]uint8{r, g, b}
		}
	}
	return out
}
