package cartridge

import "fmt"

// NROM is mapper 0: fixed 16 or 32 KiB PRG-ROM, fixed 8 KiB CHR-ROM (or CHR
// RAM when the header carries no CHR banks), optional 8 KiB PRG-RAM, no
// bank switching. It is the sole owner of PRG-ROM, PRG-RAM, CHR-ROM and
// internal VRAM.
type NROM struct {
	prgROM []uint8
	prgRAM []uint8 // nil when the header's PRG-RAM flag is clear
	chrROM []uint8 // may be CHR RAM (writable) when hasCHRRAM is set
	vram   [vramSize]uint8

	mirror    Mirror
	hasCHRRAM bool
}

// NewNROM builds an NROM mapper over already-loaded PRG/CHR banks.
func NewNROM(prgROM, chrROM []uint8, mirror Mirror, hasPRGRAM, hasCHRRAM bool) *NROM {
	m := &NROM{
		prgROM:    prgROM,
		chrROM:    chrROM,
		mirror:    mirror,
		hasCHRRAM: hasCHRRAM,
	}
	if hasPRGRAM {
		m.prgRAM = make([]uint8, prgRAMSize)
	}
	return m
}

// ReadCPU implements the CPU-space bank mapping.
func (m *NROM) ReadCPU(addr uint16) uint8 {
	switch {
	case addr < 0x4020:
		panic(fmt.Sprintf("cartridge: address 0x%04X is not routed to the mapper", addr))
	case addr < 0x6000:
		// Unused on NROM; real hardware has nothing here either.
		panic(fmt.Sprintf("cartridge: read from unmapped address 0x%04X", addr))
	case addr < 0x8000:
		if m.prgRAM == nil {
			panic(fmt.Sprintf("cartridge: read from PRG-RAM at 0x%04X but cartridge has none", addr))
		}
		return m.prgRAM[addr-0x6000]
	case addr < 0xC000:
		return m.prgROM[addr-0x8000]
	default:
		if len(m.prgROM) > prgBankSize {
			return m.prgROM[addr-0x8000]
		}
		// 16 KiB cartridge: 0xC000-0xFFFF mirrors the first (only) bank.
		return m.prgROM[addr-0xC000]
	}
}

// WriteCPU implements the CPU-space write rules: only PRG-RAM is
// writable, everything else in the mapper's range is read-only ROM.
func (m *NROM) WriteCPU(addr uint16, value uint8) {
	switch {
	case addr < 0x4020:
		panic(fmt.Sprintf("cartridge: address 0x%04X is not routed to the mapper", addr))
	case addr < 0x6000:
		panic(fmt.Sprintf("cartridge: write to unmapped address 0x%04X", addr))
	case addr < 0x8000:
		if m.prgRAM == nil {
			panic(fmt.Sprintf("cartridge: write to PRG-RAM at 0x%04X but cartridge has none", addr))
		}
		m.prgRAM[addr-0x6000] = value
	default:
		panic(fmt.Sprintf("cartridge: write to PRG-ROM at 0x%04X", addr))
	}
}

// ReadPPU implements the PPU-space mapping. The 0x3000-0x3EFF shadow
// range is folded onto 0x2000-0x2EFF before mirroring, so reads there
// always agree with the nametables they shadow.
func (m *NROM) ReadPPU(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return m.chrROM[addr]
	case addr < 0x3F00:
		return m.vram[mirrorNametable(addr, m.mirror)]
	default:
		panic(fmt.Sprintf("cartridge: PPU read from unmapped address 0x%04X", addr))
	}
}

// WritePPU implements the PPU-space write rules: CHR-ROM is writable only
// when the cartridge actually carries CHR RAM.
func (m *NROM) WritePPU(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		if m.hasCHRRAM {
			m.chrROM[addr] = value
		}
	case addr < 0x3F00:
		m.vram[mirrorNametable(addr, m.mirror)] = value
	default:
		panic(fmt.Sprintf("cartridge: PPU write to unmapped address 0x%04X", addr))
	}
}

// mirrorNametable collapses the four logical 1 KiB nametable slots onto the
// two physical 1 KiB regions internal VRAM holds, using the hardware's
// own bit formulas. Addresses in the 0x3000-0x3EFF shadow range
// are normalized to 0x2000-0x2EFF first.
func mirrorNametable(addr uint16, mode Mirror) uint16 {
	if addr >= 0x3000 {
		addr -= 0x1000
	}
	if mode == MirrorHorizontal {
		return (addr & 0x03FF) | ((addr & 0x0800) >> 1)
	}
	return addr & 0x07FF
}
