package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonBitOrderIsMSBFirst(t *testing.T) {
	var c Controllers
	c.SetControllerState(0, ButtonA|ButtonRight)
	c.Port[0].Strobe(true)

	assert.Equal(t, uint8(1), c.Read(0), "A is the MSB, read first")
}

func TestStrobeHighKeepsReturningA(t *testing.T) {
	var c Controllers
	c.SetControllerState(0, ButtonA)
	c.Write(0x01) // strobe high on both ports

	assert.Equal(t, uint8(1), c.Read(0))
	assert.Equal(t, uint8(1), c.Read(0), "strobe high reloads before every read")
}

func TestStrobeLowShiftsThroughAllEightBits(t *testing.T) {
	var c Controllers
	c.SetControllerState(0, ButtonA|ButtonStart) // 1001 0000
	c.Write(0x01)
	c.Write(0x00) // latch frozen, begin shifting

	bits := make([]uint8, 8)
	for i := range bits {
		bits[i] = c.Read(0)
	}
	assert.Equal(t, []uint8{1, 0, 0, 1, 0, 0, 0, 0}, bits)
}

func TestWriteToEitherPortStrobesBoth(t *testing.T) {
	var c Controllers
	c.SetControllerState(1, ButtonB)
	c.Write(0x01)
	c.Write(0x00) // freeze both shift registers

	assert.Equal(t, uint8(0), c.Read(0), "port 0 has no buttons set")
	_ = c.Read(1) // A bit (unset)
	assert.Equal(t, uint8(1), c.Read(1), "second bit is B, which was set on port 1")
}
