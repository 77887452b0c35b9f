package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

const validINESMagic = "NES\x1A"

func buildHeader(prgBanks, chrBanks, flags6, flags7 uint8) []byte {
	h := make([]byte, headerSize)
	copy(h[0:4], validINESMagic)
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func buildROM(prgBanks, chrBanks uint8, mirror, hasBattery bool) []byte {
	flags6 := uint8(0)
	if mirror {
		flags6 |= 0x01
	}
	if hasBattery {
		flags6 |= 0x04
	}
	rom := buildHeader(prgBanks, chrBanks, flags6, 0)

	prg := make([]byte, int(prgBanks)*prgBankSize)
	for i := range prg {
		prg[i] = uint8(i % 256)
	}
	rom = append(rom, prg...)

	if chrBanks > 0 {
		chr := make([]byte, int(chrBanks)*chrBankSize)
		for i := range chr {
			chr[i] = uint8((i + 1) % 256)
		}
		rom = append(rom, chr...)
	}
	return rom
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	_, err := ParseHeader([]byte("not an ines header!!"))
	require.Error(t, err)
}

func TestParseHeaderRejectsTrainer(t *testing.T) {
	h := buildHeader(1, 1, 0x08, 0)
	_, err := ParseHeader(h)
	require.Error(t, err)
}

func TestParseHeaderRejectsUnsupportedMapper(t *testing.T) {
	h := buildHeader(1, 1, 0x10, 0) // mapper 1 in the low nibble
	_, err := ParseHeader(h)
	require.Error(t, err)
}

func TestLoad32KPRGRoundTrip(t *testing.T) {
	rom := buildROM(2, 1, false, false)
	m, err := Load(bytes.NewReader(rom))
	require.NoError(t, err)

	for k := 0; k < 0x8000; k++ {
		require.Equal(t, uint8(k%256), m.ReadCPU(uint16(0x8000+k)), "offset %d", k)
	}
}

func TestLoad16KPRGMirrors(t *testing.T) {
	rom := buildROM(1, 1, false, false)
	m, err := Load(bytes.NewReader(rom))
	require.NoError(t, err)

	for addr := 0x8000; addr < 0xC000; addr++ {
		require.Equal(t, m.ReadCPU(uint16(addr)), m.ReadCPU(uint16(addr+0x4000)))
	}
}

func TestPRGRAMRequiresHeaderFlag(t *testing.T) {
	rom := buildROM(1, 1, false, false)
	m, err := Load(bytes.NewReader(rom))
	require.NoError(t, err)

	require.Panics(t, func() { m.WriteCPU(0x6000, 0x42) })
}

func TestPRGRAMReadWrite(t *testing.T) {
	rom := buildROM(1, 1, false, true)
	m, err := Load(bytes.NewReader(rom))
	require.NoError(t, err)

	m.WriteCPU(0x6000, 0x42)
	require.Equal(t, uint8(0x42), m.ReadCPU(0x6000))
	m.WriteCPU(0x7FFF, 0x99)
	require.Equal(t, uint8(0x99), m.ReadCPU(0x7FFF))
}

func TestUnmappedCPUAccessPanics(t *testing.T) {
	rom := buildROM(1, 1, false, false)
	m, err := Load(bytes.NewReader(rom))
	require.NoError(t, err)

	require.Panics(t, func() { m.ReadCPU(0x1000) })
	require.Panics(t, func() { m.ReadCPU(0x5000) })
}

func TestNametableShadowMirrorsBase(t *testing.T) {
	rom := buildROM(1, 1, false, false)
	m, err := Load(bytes.NewReader(rom))
	require.NoError(t, err)

	for k := uint16(0); k < 0x0F00; k++ {
		m.WritePPU(0x2000+k, uint8(k))
		require.Equal(t, m.ReadPPU(0x2000+k), m.ReadPPU(0x3000+k), "k=0x%04X", k)
	}
}

func TestHorizontalMirroringPairsSlots(t *testing.T) {
	m := NewNROM(make([]uint8, prgBankSize), make([]uint8, chrBankSize), MirrorHorizontal, false, true)

	m.WritePPU(0x2000, 0xAA)
	require.Equal(t, uint8(0xAA), m.ReadPPU(0x2400), "slots 0 and 1 pair under horizontal mirroring")

	m.WritePPU(0x2800, 0xBB)
	require.Equal(t, uint8(0xBB), m.ReadPPU(0x2C00), "slots 2 and 3 pair under horizontal mirroring")

	require.NotEqual(t, m.ReadPPU(0x2000), m.ReadPPU(0x2800))
}

func TestVerticalMirroringPairsSlots(t *testing.T) {
	m := NewNROM(make([]uint8, prgBankSize), make([]uint8, chrBankSize), MirrorVertical, false, true)

	m.WritePPU(0x2000, 0xCC)
	require.Equal(t, uint8(0xCC), m.ReadPPU(0x2800), "slots 0 and 2 pair under vertical mirroring")

	m.WritePPU(0x2400, 0xDD)
	require.Equal(t, uint8(0xDD), m.ReadPPU(0x2C00), "slots 1 and 3 pair under vertical mirroring")
}

func TestCHRRAMWritableOnlyWhenPresent(t *testing.T) {
	romRAM := buildROM(1, 0, false, false) // CHR bank count 0 => CHR RAM
	mRAM, err := Load(bytes.NewReader(romRAM))
	require.NoError(t, err)
	mRAM.WritePPU(0x0010, 0x55)
	require.Equal(t, uint8(0x55), mRAM.ReadPPU(0x0010))

	romROM := buildROM(1, 1, false, false)
	mROM, err := Load(bytes.NewReader(romROM))
	require.NoError(t, err)
	before := mROM.ReadPPU(0x0010)
	mROM.WritePPU(0x0010, before+1)
	require.Equal(t, before, mROM.ReadPPU(0x0010), "CHR-ROM write must be ignored")
}
