// Package memory implements the CPU's view of the NES address space:
// a demultiplexer over internal RAM, the PPU's register file, the APU and
// controller ports, and the cartridge mapper.
package memory

import "nescore/internal/cartridge"

const internalRAMSize = 0x0800

// PPURegisters is the subset of the PPU's surface the bus needs: register
// read/write for $2000-$2007 (already normalized) and the OAM DMA
// destination.
type PPURegisters interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, v uint8)
	WriteOAM(index uint8, v uint8)
}

// APURegisters is the subset of the APU's surface the bus needs: ordinary
// register read/write for $4000-$4013, $4015 and $4017.
type APURegisters interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
}

// ControllerPort is the subset of the input port's surface the bus needs.
// $4016 and $4017 are split across read and write because real hardware
// routes them to different devices depending on direction: both read ports
// belong to the controllers, but the $4017 write belongs to the APU's frame
// counter instead.
type ControllerPort interface {
	ReadController1() uint8
	ReadController2() uint8
	WriteStrobe(v uint8)
}

// Memory is the CPU-side address space demultiplexer: RAM
// at $0000-$1FFF (mirrored every 2KiB), PPU registers at $2000-$3FFF
// (mirrored every 8 bytes), APU and I/O at $4000-$4017, ignored test-mode
// registers at $4018-$401F, and the cartridge mapper for everything from
// $4020 up.
type Memory struct {
	ram    [internalRAMSize]uint8
	mapper cartridge.Mapper
	ppu    PPURegisters
	apu    APURegisters
	input  ControllerPort

	// DMAStall is invoked after every OAM DMA copy so the owning driver can
	// apply the 513/514-cycle CPU stall; nil is a valid no-op for
	// tests that only care about the byte transfer.
	DMAStall func()
}

// New constructs a Memory bus around an already-loaded mapper and the
// minimal PPU/controller stand-ins.
func New(mapper cartridge.Mapper, ppu PPURegisters, apu APURegisters, input ControllerPort) *Memory {
	return &Memory{mapper: mapper, ppu: ppu, apu: apu, input: input}
}

// Read implements cpu.Bus.
func (m *Memory) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return m.ram[addr&0x07FF]
	case addr < 0x4000:
		return m.ppu.ReadRegister(0x2000 + (addr & 0x0007))
	case addr == 0x4016:
		return m.input.ReadController1()
	case addr == 0x4017:
		return m.input.ReadController2()
	case addr < 0x4018:
		return m.apu.Read(addr)
	case addr < 0x4020:
		return 0
	default:
		return m.mapper.ReadCPU(addr)
	}
}

// Write implements cpu.Bus.
func (m *Memory) Write(addr uint16, v uint8) {
	switch {
	case addr < 0x2000:
		m.ram[addr&0x07FF] = v
	case addr < 0x4000:
		m.ppu.WriteRegister(0x2000+(addr&0x0007), v)
	case addr == 0x4014:
		m.triggerOAMDMA(v)
	case addr == 0x4016:
		m.input.WriteStrobe(v)
	case addr < 0x4018:
		m.apu.Write(addr, v)
	case addr < 0x4020:
		// test-mode registers, ignored
	default:
		m.mapper.WriteCPU(addr, v)
	}
}

// GetPage returns the 256 bytes of CPU address space starting at
// pageHigh<<8, used as OAM DMA's source read.
func (m *Memory) GetPage(pageHigh uint8) [256]uint8 {
	var page [256]uint8
	base := uint16(pageHigh) << 8
	for i := range page {
		page[i] = m.Read(base + uint16(i))
	}
	return page
}

// triggerOAMDMA implements the $4014 side channel: copy a full
// 256-byte CPU page into OAM starting at index 0, then let the driver apply
// the CPU stall.
func (m *Memory) triggerOAMDMA(page uint8) {
	data := m.GetPage(page)
	for i, b := range data {
		m.ppu.WriteOAM(uint8(i), b)
	}
	if m.DMAStall != nil {
		m.DMAStall()
	}
}
