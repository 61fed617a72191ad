package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteStatusIsMaskedToFiveBits(t *testing.T) {
	a := New()
	a.WriteRegister(0x4015, 0xFF)
	assert.Equal(t, uint8(0x1F), a.ReadStatus())
}

func TestSoundRegisterWritesDoNotAffectStatus(t *testing.T) {
	a := New()
	a.WriteRegister(0x4000, 0xFF)
	a.WriteRegister(0x4017, 0xFF)
	assert.Equal(t, uint8(0), a.ReadStatus())
}
