package cpu

// AddressMode enumerates the thirteen 6502 addressing modes.
type AddressMode uint8

const (
	Implicit AddressMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// operand carries the resolved effective address for an instruction.
// Implicit and Accumulator instructions ignore Addr entirely.
type operand struct {
	Addr uint16
}

// resolveOperand decodes the bytes following the opcode according to mode,
// advancing PC past them, and reports whether a page boundary was crossed
// (for the cycle penalty on qualifying modes).
func (c *CPU) resolveOperand(mode AddressMode) (operand, bool) {
	switch mode {
	case Implicit, Accumulator:
		return operand{}, false

	case Immediate:
		addr := c.PC
		c.PC++
		return operand{Addr: addr}, false

	case ZeroPage:
		return operand{Addr: uint16(c.fetch())}, false

	case ZeroPageX:
		base := c.fetch()
		return operand{Addr: uint16(base + c.X)}, false

	case ZeroPageY:
		base := c.fetch()
		return operand{Addr: uint16(base + c.Y)}, false

	case Relative:
		offset := int8(c.fetch())
		target := uint16(int32(c.PC) + int32(offset))
		crossed := (target & 0xFF00) != (c.PC & 0xFF00)
		return operand{Addr: target}, crossed

	case Absolute:
		return operand{Addr: c.fetchWord()}, false

	case AbsoluteX:
		base := c.fetchWord()
		addr := base + uint16(c.X)
		return operand{Addr: addr}, pageCrossed(base, addr)

	case AbsoluteY:
		base := c.fetchWord()
		addr := base + uint16(c.Y)
		return operand{Addr: addr}, pageCrossed(base, addr)

	case Indirect:
		ptr := c.fetchWord()
		return operand{Addr: c.readIndirectPointer(ptr)}, false

	case IndirectX:
		base := c.fetch() + c.X
		lo := uint16(c.bus.Read(uint16(base)))
		hi := uint16(c.bus.Read(uint16(base + 1)))
		return operand{Addr: lo | hi<<8}, false

	case IndirectY:
		zp := c.fetch()
		lo := uint16(c.bus.Read(uint16(zp)))
		hi := uint16(c.bus.Read(uint16(zp + 1)))
		base := lo | hi<<8
		addr := base + uint16(c.Y)
		return operand{Addr: addr}, pageCrossed(base, addr)

	default:
		panic("cpu: unreachable addressing mode")
	}
}

// readIndirectPointer implements JMP (ind)'s hardware page-wrap bug: if the
// pointer's low byte is 0xFF, the high byte is fetched from ptr & 0xFF00
// instead of ptr+1, because the 6502 never carries into the high byte of
// the pointer itself.
func (c *CPU) readIndirectPointer(ptr uint16) uint16 {
	lo := uint16(c.bus.Read(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.bus.Read(hiAddr))
	return lo | hi<<8
}

func pageCrossed(base, effective uint16) bool {
	return base&0xFF00 != effective&0xFF00
}
