package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nesgo/internal/apu"
	"nesgo/internal/input"
)

type fakePPURegs struct {
	reads  []uint16
	writes map[uint16]uint8
}

func newFakePPURegs() *fakePPURegs { return &fakePPURegs{writes: map[uint16]uint8{}} }

func (f *fakePPURegs) ReadRegister(addr uint16) uint8 {
	f.reads = append(f.reads, addr)
	return 0x42
}
func (f *fakePPURegs) WriteRegister(addr uint16, v uint8) { f.writes[addr] = v }

type fakePRG struct {
	reads  []uint16
	writes map[uint16]uint8
}

func newFakePRG() *fakePRG { return &fakePRG{writes: map[uint16]uint8{}} }

func (f *fakePRG) ReadPRG(addr uint16) uint8     { f.reads = append(f.reads, addr); return 0x7E }
func (f *fakePRG) WritePRG(addr uint16, v uint8) { f.writes[addr] = v }

func newTestBus() (*Bus, *fakePPURegs, *fakePRG) {
	ppuRegs := newFakePPURegs()
	prg := newFakePRG()
	b := &Bus{PPU: ppuRegs, Cart: prg, Input: &input.Controllers{}, APU: apu.New()}
	return b, ppuRegs, prg
}

func TestRAMMirrorsEvery0x800(t *testing.T) {
	b, _, _ := newTestBus()
	b.Write(0x0000, 0x99)
	assert.Equal(t, uint8(0x99), b.Read(0x0800))
	assert.Equal(t, uint8(0x99), b.Read(0x1800))
}

func TestPPURegisterWindowMod8(t *testing.T) {
	b, regs, _ := newTestBus()
	b.Write(0x2008, 0x11) // mirrors 0x2000
	assert.Equal(t, uint8(0x11), regs.writes[0x2008])
	b.Read(0x3FFF)
	assert.Contains(t, regs.reads, uint16(0x3FFF))
}

func TestCartridgeWindowAbove0x4020(t *testing.T) {
	b, _, prg := newTestBus()
	b.Read(0x8000)
	assert.Contains(t, prg.reads, uint16(0x8000))
}

func TestDMATriggerArmsState(t *testing.T) {
	b, _, _ := newTestBus()
	b.Write(0x4014, 0x02)
	assert.True(t, b.DMAPending())
	assert.True(t, b.DMADummy())
	assert.Equal(t, uint16(0x0200), b.DMASourceAddr())
}

func TestDMAAdvanceCompletesAfter256Bytes(t *testing.T) {
	b, _, _ := newTestBus()
	b.Write(0x4014, 0x02)
	b.ClearDMADummy()
	for n := 0; n < 255; n++ {
		done := b.DMAAdvance()
		assert.False(t, done)
	}
	assert.True(t, b.DMAAdvance())
	assert.False(t, b.DMAPending())
}

func TestAPUStatusRoundTripsThroughBus(t *testing.T) {
	b := New(nil, nil, &input.Controllers{})
	b.Write(0x4015, 0x0F)
	assert.Equal(t, uint8(0x0F), b.Read(0x4015))
}

func TestAPURegisterWritesDoNotReachCart(t *testing.T) {
	b, _, prg := newTestBus()
	b.Write(0x4000, 0x80)
	b.Write(0x4017, 0x40)
	assert.Empty(t, prg.writes)
}

func TestNewWithNilCartridgeReadsZeroAndDropsWrites(t *testing.T) {
	b := New(nil, nil, &input.Controllers{})
	assert.Equal(t, uint8(0), b.Read(0xFFFC))
	b.Write(0x8000, 0x42) // must not panic
}

func TestControllerReadWriteRouting(t *testing.T) {
	b, _, _ := newTestBus()
	b.Input.SetControllerState(0, 0x80)
	b.Write(0x4016, 0x01)
	b.Write(0x4016, 0x00)
	assert.Equal(t, uint8(1), b.Read(0x4016))
}
