package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(prgBanks, chrBanks, flags6, flags7 uint8) []byte {
	h := make([]byte, 16)
	copy(h[:4], "NES\x1A")
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestLoadReaderParsesHeaderFields(t *testing.T) {
	buf := header(2, 1, 0x00, 0x00)
	buf = append(buf, make([]byte, 2*16384+8192)...)

	cart, err := LoadReader(bytes.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, 2, cart.PRGBankCount())
	assert.Equal(t, 1, cart.CHRBankCount())
	assert.Equal(t, uint8(0), cart.MapperID())
	assert.Equal(t, MirrorHorizontal, cart.Mirroring())
}

func TestLoadReaderRejectsBadMagic(t *testing.T) {
	buf := header(1, 1, 0, 0)
	buf[0] = 'X'
	_, err := LoadReader(bytes.NewReader(buf))
	require.Error(t, err)
	var romErr *RomError
	require.ErrorAs(t, err, &romErr)
	assert.Equal(t, InvalidMagic, romErr.Kind)
}

func TestLoadReaderRejectsUnsupportedMapper(t *testing.T) {
	buf := header(1, 1, 0x10, 0x00) // mapper id = 1
	buf = append(buf, make([]byte, 16384+8192)...)

	_, err := LoadReader(bytes.NewReader(buf))
	require.Error(t, err)
	var romErr *RomError
	require.ErrorAs(t, err, &romErr)
	assert.Equal(t, UnsupportedMapper, romErr.Kind)
	assert.Equal(t, uint8(1), romErr.MapperID)
}

func TestLoadReaderReportsShortRead(t *testing.T) {
	buf := header(2, 1, 0, 0)
	buf = append(buf, make([]byte, 100)...) // far short of 2*16KiB+8KiB

	_, err := LoadReader(bytes.NewReader(buf))
	require.Error(t, err)
	var romErr *RomError
	require.ErrorAs(t, err, &romErr)
	assert.Equal(t, ShortRead, romErr.Kind)
}

func TestMapper000MirrorsSingleBank(t *testing.T) {
	buf := header(1, 1, 0, 0)
	prg := make([]byte, 16384)
	prg[0] = 0xAA
	buf = append(buf, prg...)
	buf = append(buf, make([]byte, 8192)...)

	cart, err := LoadReader(bytes.NewReader(buf))
	require.NoError(t, err)

	assert.Equal(t, uint8(0xAA), cart.ReadPRG(0x8000))
	assert.Equal(t, uint8(0xAA), cart.ReadPRG(0xC000), "16KiB ROM mirrors into the upper half")
}

func TestMapper000CHRRAMIsWritable(t *testing.T) {
	buf := header(1, 0, 0, 0) // chr_banks == 0 -> CHR RAM
	buf = append(buf, make([]byte, 16384)...)

	cart, err := LoadReader(bytes.NewReader(buf))
	require.NoError(t, err)

	cart.WriteCHR(0x0010, 0x7E)
	assert.Equal(t, uint8(0x7E), cart.ReadCHR(0x0010))
}

func TestMapper000CHRROMWritesAreDropped(t *testing.T) {
	buf := header(1, 1, 0, 0)
	buf = append(buf, make([]byte, 16384)...)
	chr := make([]byte, 8192)
	chr[0] = 0x11
	buf = append(buf, chr...)

	cart, err := LoadReader(bytes.NewReader(buf))
	require.NoError(t, err)

	cart.WriteCHR(0x0000, 0x99)
	assert.Equal(t, uint8(0x11), cart.ReadCHR(0x0000), "CHR ROM writes are silently dropped")
}
