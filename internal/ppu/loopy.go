package ppu

// loopy is the 15-bit scroll-address register layout shared by v and t:
// bits 0-4 coarse_x, 5-9 coarse_y, 10 nt_x, 11 nt_y, 12-14 fine_y, bit 15
// unused and always zero. Modeled as plain getter/setter helpers over a
// uint16 rather than a native bit-field struct, whose layout Go does not
// guarantee.

func loopyCoarseX(l uint16) uint16 { return l & 0x001F }
func loopyCoarseY(l uint16) uint16 { return (l >> 5) & 0x001F }
func loopyNtX(l uint16) uint16     { return (l >> 10) & 0x0001 }
func loopyNtY(l uint16) uint16     { return (l >> 11) & 0x0001 }
func loopyFineY(l uint16) uint16   { return (l >> 12) & 0x0007 }

func setLoopyCoarseX(l uint16, v uint16) uint16 {
	return (l &^ 0x001F) | (v & 0x001F)
}

func setLoopyCoarseY(l uint16, v uint16) uint16 {
	return (l &^ (0x001F << 5)) | ((v & 0x001F) << 5)
}

func setLoopyNtX(l uint16, v uint16) uint16 {
	return (l &^ (0x0001 << 10)) | ((v & 0x0001) << 10)
}

func setLoopyNtY(l uint16, v uint16) uint16 {
	return (l &^ (0x0001 << 11)) | ((v & 0x0001) << 11)
}

func setLoopyFineY(l uint16, v uint16) uint16 {
	return (l &^ (0x0007 << 12)) | ((v & 0x0007) << 12)
}

// incrementX wraps coarse_x and flips nt_x on overflow.
func incrementX(l uint16) uint16 {
	if loopyCoarseX(l) == 31 {
		l = setLoopyCoarseX(l, 0)
		l = setLoopyNtX(l, loopyNtX(l)^1)
	} else {
		l = setLoopyCoarseX(l, loopyCoarseX(l)+1)
	}
	return l & 0x7FFF
}

// incrementY advances fine_y, then coarse_y (with the 29/30-31 wrap rules),
// flipping nt_y only on the documented 29->0 wrap.
func incrementY(l uint16) uint16 {
	if loopyFineY(l) < 7 {
		l = setLoopyFineY(l, loopyFineY(l)+1)
		return l & 0x7FFF
	}
	l = setLoopyFineY(l, 0)
	cy := loopyCoarseY(l)
	switch cy {
	case 29:
		cy = 0
		l = setLoopyNtY(l, loopyNtY(l)^1)
	case 31:
		cy = 0
	default:
		cy++
	}
	l = setLoopyCoarseY(l, cy)
	return l & 0x7FFF
}

// transferX copies the horizontal bits (coarse_x, nt_x) of src into dst.
func transferX(dst, src uint16) uint16 {
	dst = setLoopyCoarseX(dst, loopyCoarseX(src))
	dst = setLoopyNtX(dst, loopyNtX(src))
	return dst & 0x7FFF
}

// transferY copies the vertical bits (coarse_y, nt_y, fine_y) of src into dst.
func transferY(dst, src uint16) uint16 {
	dst = setLoopyCoarseY(dst, loopyCoarseY(src))
	dst = setLoopyNtY(dst, loopyNtY(src))
	dst = setLoopyFineY(dst, loopyFineY(src))
	return dst & 0x7FFF
}
