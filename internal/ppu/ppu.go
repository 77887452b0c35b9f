// Package ppu provides the minimal register and OAM surface the memory bus
// needs to demultiplex CPU addresses 0x2000-0x3FFF and service OAM DMA. Real
// scanline rendering and VRAM/CHR access are out of scope (see DESIGN.md);
// this is a structural stand-in, not a picture-processing unit.
package ppu

// PPU holds just enough register state to round-trip through the bus: the
// eight CPU-visible registers, the OAM buffer DMA writes into, and the
// vblank flag the status register exposes.
type PPU struct {
	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [256]uint8

	addrLatch bool
	vblank    bool
}

// New constructs a PPU in its post-reset state.
func New() *PPU {
	return &PPU{}
}

// Reset clears every register and the OAM buffer.
func (p *PPU) Reset() {
	*p = PPU{}
}

// ReadRegister serves a CPU read of one of the eight registers mirrored
// across 0x2000-0x3FFF; addr must already be normalized to 0x2000-0x2007.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case 0x2002:
		v := p.status
		if p.vblank {
			v |= 0x80
		}
		p.vblank = false
		p.addrLatch = false
		return v
	case 0x2004:
		return p.oam[p.oamAddr]
	default:
		return 0
	}
}

// WriteRegister serves a CPU write to one of the eight registers mirrored
// across 0x2000-0x3FFF; addr must already be normalized to 0x2000-0x2007.
func (p *PPU) WriteRegister(addr uint16, v uint8) {
	switch addr {
	case 0x2000:
		p.ctrl = v
	case 0x2001:
		p.mask = v
	case 0x2003:
		p.oamAddr = v
	case 0x2004:
		p.oam[p.oamAddr] = v
		p.oamAddr++
	}
}

// WriteOAM is the destination side of OAM DMA: the memory bus
// copies a full 256-byte CPU page into OAM starting at index 0, independent
// of the current OAMADDR latch.
func (p *PPU) WriteOAM(index uint8, v uint8) {
	p.oam[index] = v
}

// OAM returns a copy of the current OAM contents, for tests.
func (p *PPU) OAM() [256]uint8 {
	return p.oam
}

// SetVBlank is a test/driver hook standing in for the real PPU's scanline
// timer asserting vblank at the start of post-render; nothing in this core
// sets it on a schedule.
func (p *PPU) SetVBlank(v bool) {
	p.vblank = v
}
