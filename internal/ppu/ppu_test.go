package ppu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOAMWriteReadRoundTrip(t *testing.T) {
	p := New()
	for i := uint8(0); i < 255; i++ {
		p.WriteOAM(i, i+1)
	}
	oam := p.OAM()
	require.EqualValues(t, 1, oam[0])
	require.EqualValues(t, 255, oam[254])
}

func TestOAMDATAWriteAutoIncrementsAddress(t *testing.T) {
	p := New()
	p.WriteRegister(0x2003, 0x10)
	p.WriteRegister(0x2004, 0x42)
	p.WriteRegister(0x2004, 0x43)

	oam := p.OAM()
	require.EqualValues(t, 0x42, oam[0x10])
	require.EqualValues(t, 0x43, oam[0x11])
}

func TestStatusReadClearsVBlankAndLatch(t *testing.T) {
	p := New()
	p.SetVBlank(true)

	v := p.ReadRegister(0x2002)
	require.NotZero(t, v&0x80)

	v = p.ReadRegister(0x2002)
	require.Zero(t, v&0x80)
}
