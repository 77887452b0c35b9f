package memory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeMapper struct {
	prg [0xC000]uint8
}

func (f *fakeMapper) ReadCPU(addr uint16) uint8     { return f.prg[addr-0x4020] }
func (f *fakeMapper) WriteCPU(addr uint16, v uint8) { f.prg[addr-0x4020] = v }
func (f *fakeMapper) ReadPPU(addr uint16) uint8     { return 0 }
func (f *fakeMapper) WritePPU(addr uint16, v uint8) {}

type fakePPU struct {
	registers [8]uint8
	oam       [256]uint8
}

func (f *fakePPU) ReadRegister(addr uint16) uint8     { return f.registers[addr&7] }
func (f *fakePPU) WriteRegister(addr uint16, v uint8) { f.registers[addr&7] = v }
func (f *fakePPU) WriteOAM(index uint8, v uint8)      { f.oam[index] = v }

type fakeAPU struct {
	lastWriteAddr uint16
	lastWriteVal  uint8
}

func (f *fakeAPU) Read(addr uint16) uint8 { return 0x55 }
func (f *fakeAPU) Write(addr uint16, v uint8) {
	f.lastWriteAddr = addr
	f.lastWriteVal = v
}

type fakeInput struct {
	strobeWrites []uint8
}

func (f *fakeInput) ReadController1() uint8 { return 0x01 }
func (f *fakeInput) ReadController2() uint8 { return 0x02 }
func (f *fakeInput) WriteStrobe(v uint8)    { f.strobeWrites = append(f.strobeWrites, v) }

func newTestMemory() (*Memory, *fakeMapper, *fakePPU, *fakeAPU, *fakeInput) {
	mapper := &fakeMapper{}
	ppu := &fakePPU{}
	apu := &fakeAPU{}
	input := &fakeInput{}
	return New(mapper, ppu, apu, input), mapper, ppu, apu, input
}

func TestInternalRAMIsMirroredFourTimes(t *testing.T) {
	m, _, _, _, _ := newTestMemory()
	m.Write(0x0001, 0x42)

	require.EqualValues(t, 0x42, m.Read(0x0801))
	require.EqualValues(t, 0x42, m.Read(0x1001))
	require.EqualValues(t, 0x42, m.Read(0x1801))
}

func TestPPURegistersMirroredEveryEightBytes(t *testing.T) {
	m, _, ppu, _, _ := newTestMemory()
	m.Write(0x2000, 0x80)
	require.EqualValues(t, 0x80, ppu.registers[0])

	m.Write(0x2008, 0x01) // mirrors 0x2000
	require.EqualValues(t, 0x01, ppu.registers[0])

	require.EqualValues(t, ppu.registers[2], m.Read(0x3FFA)) // mirrors 0x2002
}

func TestControllerReadWriteRouting(t *testing.T) {
	m, _, _, _, input := newTestMemory()
	require.EqualValues(t, 0x01, m.Read(0x4016))
	require.EqualValues(t, 0x02, m.Read(0x4017))

	m.Write(0x4016, 1)
	require.Equal(t, []uint8{1}, input.strobeWrites)
}

func TestFrameCounterWriteGoesToAPUNotController(t *testing.T) {
	m, _, _, apu, _ := newTestMemory()
	m.Write(0x4017, 0xC0)

	require.EqualValues(t, 0x4017, apu.lastWriteAddr)
	require.EqualValues(t, 0xC0, apu.lastWriteVal)
}

func TestAPURegisterRange(t *testing.T) {
	m, _, _, apu, _ := newTestMemory()
	m.Write(0x4000, 0x3F)
	require.EqualValues(t, 0x4000, apu.lastWriteAddr)
	require.EqualValues(t, 0x3F, apu.lastWriteVal)

	require.EqualValues(t, 0x55, m.Read(0x4015))
}

func TestTestModeRegistersAreIgnored(t *testing.T) {
	m, _, _, _, _ := newTestMemory()
	require.NotPanics(t, func() { m.Write(0x4018, 0xFF) })
	require.EqualValues(t, 0, m.Read(0x4018))
}

func TestMapperServesCartridgeSpace(t *testing.T) {
	m, mapper, _, _, _ := newTestMemory()
	m.Write(0x8000, 0x99)
	require.EqualValues(t, 0x99, mapper.prg[0x8000-0x4020])
	require.EqualValues(t, 0x99, m.Read(0x8000))
}

func TestOAMDMACopiesFullPageAndStalls(t *testing.T) {
	m, _, ppu, _, _ := newTestMemory()
	for i := 0; i < 256; i++ {
		m.Write(uint16(0x0200+i%0x0800), uint8(i))
	}

	stalled := false
	m.DMAStall = func() { stalled = true }
	m.Write(0x4014, 0x02) // page 0x0200

	require.True(t, stalled)
	for i := 0; i < 256; i++ {
		require.EqualValues(t, m.Read(uint16(0x0200+i)), ppu.oam[i])
	}
}

func TestGetPageReturnsRequestedPage(t *testing.T) {
	m, _, _, _, _ := newTestMemory()
	m.Write(0x0000, 0x11)
	page := m.GetPage(0x00)
	require.EqualValues(t, 0x11, page[0])
}
