package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineFormatsNestestStyle(t *testing.T) {
	line := Line(CPUState{
		PC:          0xC000,
		A:           0x00,
		X:           0x00,
		Y:           0x00,
		S:           0xFD,
		P:           0x24,
		Opcode:      0x4C,
		Mnemonic:    "JMP",
		Scanline:    0,
		PPUCycle:    21,
		MasterCycle: 7,
	})

	assert.Equal(t, "C000  4C JMP A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7", line)
}
