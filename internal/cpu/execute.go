package cpu

import "fmt"

// execute performs one decoded instruction's side effects and returns any
// extra cycles beyond the table's base cost (branches taken, and the
// page-cross bonus branches apply on top of that per this implementation's
// convention).
func (c *CPU) execute(op Operation, mode AddressMode, o operand, pageCrossed bool) uint8 {
	switch op {
	// --- Load/Store ---
	case OpLDA:
		c.A = c.load(o)
		c.setZN(c.A)
	case OpLDX:
		c.X = c.load(o)
		c.setZN(c.X)
	case OpLDY:
		c.Y = c.load(o)
		c.setZN(c.Y)
	case OpSTA:
		c.bus.Write(o.Addr, c.A)
	case OpSTX:
		c.bus.Write(o.Addr, c.X)
	case OpSTY:
		c.bus.Write(o.Addr, c.Y)

	// --- Arithmetic ---
	case OpADC:
		c.adc(c.load(o))
	case OpSBC:
		c.adc(^c.load(o))

	// --- Logical ---
	case OpAND:
		c.A &= c.load(o)
		c.setZN(c.A)
	case OpORA:
		c.A |= c.load(o)
		c.setZN(c.A)
	case OpEOR:
		c.A ^= c.load(o)
		c.setZN(c.A)
	case OpBIT:
		v := c.load(o)
		c.setFlag(FlagZero, c.A&v == 0)
		c.setFlag(FlagNegative, v&0x80 != 0)
		c.setFlag(FlagOverflow, v&0x40 != 0)

	// --- Shifts/Rotates ---
	case OpASL:
		c.storeShifted(mode, o, c.asl(c.loadShiftable(mode, o)))
	case OpLSR:
		c.storeShifted(mode, o, c.lsr(c.loadShiftable(mode, o)))
	case OpROL:
		c.storeShifted(mode, o, c.rol(c.loadShiftable(mode, o)))
	case OpROR:
		c.storeShifted(mode, o, c.ror(c.loadShiftable(mode, o)))

	// --- Compare ---
	case OpCMP:
		c.compare(c.A, c.load(o))
	case OpCPX:
		c.compare(c.X, c.load(o))
	case OpCPY:
		c.compare(c.Y, c.load(o))

	// --- Inc/Dec ---
	case OpINC:
		v := c.bus.Read(o.Addr) + 1
		c.bus.Write(o.Addr, v)
		c.setZN(v)
	case OpDEC:
		v := c.bus.Read(o.Addr) - 1
		c.bus.Write(o.Addr, v)
		c.setZN(v)
	case OpINX:
		c.X++
		c.setZN(c.X)
	case OpDEX:
		c.X--
		c.setZN(c.X)
	case OpINY:
		c.Y++
		c.setZN(c.Y)
	case OpDEY:
		c.Y--
		c.setZN(c.Y)

	// --- Transfers ---
	case OpTAX:
		c.X = c.A
		c.setZN(c.X)
	case OpTAY:
		c.Y = c.A
		c.setZN(c.Y)
	case OpTXA:
		c.A = c.X
		c.setZN(c.A)
	case OpTYA:
		c.A = c.Y
		c.setZN(c.A)
	case OpTSX:
		c.X = c.S
		c.setZN(c.X)
	case OpTXS:
		c.S = c.X // no flag effect: the stack pointer is not a value register

	// --- Stack ---
	case OpPHA:
		c.push(c.A)
	case OpPLA:
		c.A = c.pop()
		c.setZN(c.A)
	case OpPHP:
		c.push(c.P | FlagBreak | FlagUnused)
	case OpPLP:
		c.P = (c.pop() &^ FlagBreak) | FlagUnused

	// --- Flags ---
	case OpCLC:
		c.setFlag(FlagCarry, false)
	case OpSEC:
		c.setFlag(FlagCarry, true)
	case OpCLI:
		c.setFlag(FlagInterruptDisable, false)
	case OpSEI:
		c.setFlag(FlagInterruptDisable, true)
	case OpCLV:
		c.setFlag(FlagOverflow, false)
	case OpCLD:
		c.setFlag(FlagDecimal, false)
	case OpSED:
		c.setFlag(FlagDecimal, true)

	// --- Control flow ---
	case OpJMP:
		c.PC = o.Addr
	case OpJSR:
		c.pushWord(c.PC - 1)
		c.PC = o.Addr
	case OpRTS:
		c.PC = c.popWord() + 1
	case OpRTI:
		c.P = (c.pop() &^ FlagBreak) | FlagUnused
		c.PC = c.popWord()
	case OpBRK:
		return c.brk()

	case OpBCC:
		return c.branch(c.P&FlagCarry == 0, o, pageCrossed)
	case OpBCS:
		return c.branch(c.P&FlagCarry != 0, o, pageCrossed)
	case OpBEQ:
		return c.branch(c.P&FlagZero != 0, o, pageCrossed)
	case OpBNE:
		return c.branch(c.P&FlagZero == 0, o, pageCrossed)
	case OpBMI:
		return c.branch(c.P&FlagNegative != 0, o, pageCrossed)
	case OpBPL:
		return c.branch(c.P&FlagNegative == 0, o, pageCrossed)
	case OpBVC:
		return c.branch(c.P&FlagOverflow == 0, o, pageCrossed)
	case OpBVS:
		return c.branch(c.P&FlagOverflow != 0, o, pageCrossed)

	case OpNOP:
		// Several opcodes (unofficial duplicates) still read their operand
		// for correct bus/open-bus side effects, but the value is unused.
		if mode != Implicit {
			c.load(o)
		}

	case OpKIL:
		panic("cpu: executed a KIL/JAM opcode, hardware would halt here")

	// --- Unofficial read-modify-write combos ---
	case OpSLO:
		v := c.asl(c.bus.Read(o.Addr))
		c.bus.Write(o.Addr, v)
		c.A |= v
		c.setZN(c.A)
	case OpRLA:
		v := c.rol(c.bus.Read(o.Addr))
		c.bus.Write(o.Addr, v)
		c.A &= v
		c.setZN(c.A)
	case OpSRE:
		v := c.lsr(c.bus.Read(o.Addr))
		c.bus.Write(o.Addr, v)
		c.A ^= v
		c.setZN(c.A)
	case OpRRA:
		v := c.ror(c.bus.Read(o.Addr))
		c.bus.Write(o.Addr, v)
		c.adc(v)
	case OpDCP:
		v := c.bus.Read(o.Addr) - 1
		c.bus.Write(o.Addr, v)
		c.compare(c.A, v)
	case OpISC:
		v := c.bus.Read(o.Addr) + 1
		c.bus.Write(o.Addr, v)
		c.adc(^v)

	// --- Unofficial load/store combos ---
	case OpLAX:
		c.A = c.load(o)
		c.X = c.A
		c.setZN(c.A)
	case OpSAX:
		c.bus.Write(o.Addr, c.A&c.X)

	// --- Unofficial immediate combos ---
	case OpANC:
		c.A &= c.load(o)
		c.setZN(c.A)
		c.setFlag(FlagCarry, c.A&0x80 != 0)
	case OpALR:
		c.A &= c.load(o)
		c.A = c.lsr(c.A)
		c.setZN(c.A)
	case OpARR:
		c.A &= c.load(o)
		c.A = c.ror(c.A)
		c.setZN(c.A)
		c.setFlag(FlagCarry, c.A&0x40 != 0)
		c.setFlag(FlagOverflow, (c.A>>6)&1^(c.A>>5)&1 != 0)
	case OpAXS:
		v := c.load(o)
		r := (c.A & c.X) - v
		c.setFlag(FlagCarry, (c.A&c.X) >= v)
		c.X = r
		c.setZN(c.X)
	case OpXAA:
		// Highly unstable on real silicon; modeled with the commonly
		// documented "magic constant" of 0xFF so it is at least
		// deterministic rather than undefined.
		c.A = (c.A | 0xFF) & c.X & c.load(o)
		c.setZN(c.A)
	case OpLAS:
		v := c.load(o) & c.S
		c.A, c.X, c.S = v, v, v
		c.setZN(v)

	// --- Unofficial store combos that fold the high address byte ---
	case OpAHX:
		c.bus.Write(o.Addr, c.A&c.X&highByteFoldValue(o.Addr))
	case OpSHX:
		c.bus.Write(o.Addr, c.X&highByteFoldValue(o.Addr))
	case OpSHY:
		c.bus.Write(o.Addr, c.Y&highByteFoldValue(o.Addr))
	case OpTAS:
		c.S = c.A & c.X
		c.bus.Write(o.Addr, c.S&highByteFoldValue(o.Addr))

	default:
		panic(fmt.Sprintf("cpu: unimplemented operation %s", op))
	}
	return 0
}

// highByteFoldValue returns high-byte-of-address+1, the operand the
// AHX/SHX/SHY/TAS family ANDs against on real hardware (itself a side
// effect of how the 6502's internal address-high latch behaves during
// these instructions' extra bus cycle).
func highByteFoldValue(addr uint16) uint8 {
	return uint8(addr>>8) + 1
}

// load reads the operand's value from the bus at its effective address.
// It never reads A; Accumulator-mode ops route through loadShiftable
// instead.
func (c *CPU) load(o operand) uint8 {
	return c.bus.Read(o.Addr)
}

func (c *CPU) loadShiftable(mode AddressMode, o operand) uint8 {
	if mode == Accumulator {
		return c.A
	}
	return c.bus.Read(o.Addr)
}

func (c *CPU) storeShifted(mode AddressMode, o operand, v uint8) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.bus.Write(o.Addr, v)
}

func (c *CPU) asl(v uint8) uint8 {
	c.setFlag(FlagCarry, v&0x80 != 0)
	r := v << 1
	c.setZN(r)
	return r
}

func (c *CPU) lsr(v uint8) uint8 {
	c.setFlag(FlagCarry, v&0x01 != 0)
	r := v >> 1
	c.setZN(r)
	return r
}

func (c *CPU) rol(v uint8) uint8 {
	carryIn := uint8(0)
	if c.P&FlagCarry != 0 {
		carryIn = 1
	}
	c.setFlag(FlagCarry, v&0x80 != 0)
	r := (v << 1) | carryIn
	c.setZN(r)
	return r
}

func (c *CPU) ror(v uint8) uint8 {
	carryIn := uint8(0)
	if c.P&FlagCarry != 0 {
		carryIn = 0x80
	}
	c.setFlag(FlagCarry, v&0x01 != 0)
	r := (v >> 1) | carryIn
	c.setZN(r)
	return r
}

// adc implements both ADC and SBC: SBC is ADC with the operand's bits
// inverted, which produces the correct two's-complement subtraction and
// borrow-as-inverted-carry semantics in one code path.
func (c *CPU) adc(v uint8) {
	carryIn := uint16(0)
	if c.P&FlagCarry != 0 {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(v) + carryIn
	result := uint8(sum)

	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (c.A^result)&(v^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, v uint8) {
	r := reg - v
	c.setFlag(FlagCarry, reg >= v)
	c.setZN(r)
}

// branch evaluates a conditional branch. Per this implementation's
// convention: a taken branch adds 1 cycle, or 3 instead of 1 when
// the target is on a different page than the instruction following the
// branch (rather than the more commonly documented +1/+2).
func (c *CPU) branch(taken bool, o operand, pageCrossed bool) uint8 {
	if !taken {
		return 0
	}
	c.PC = o.Addr
	if pageCrossed {
		return 3
	}
	return 1
}

// brk implements BRK: increment PC (already past the opcode,
// BRK's operand byte is a padding byte the CPU still skips over), push
// return address and status with the Break bit set, and load PC from the
// IRQ/BRK vector. This implementation variant treats BRK as a no-op when
// InterruptDisable is already set instead of always executing it, an
// intentional deviation from canonical 6502 documentation (see DESIGN.md).
func (c *CPU) brk() uint8 {
	if c.P&FlagInterruptDisable != 0 {
		return 0
	}
	c.PC++ // skip BRK's padding byte
	c.serviceInterrupt(vectorIRQ, true)
	return 0
}
