// Package cpu implements a cycle-counted interpreter for the 6502-derived
// CPU at the heart of the console, including the commonly emulated
// unofficial opcodes.
package cpu

import "fmt"

// Flag bits within the status register P.
const (
	FlagCarry            uint8 = 1 << 0
	FlagZero             uint8 = 1 << 1
	FlagInterruptDisable uint8 = 1 << 2
	FlagDecimal          uint8 = 1 << 3 // unused on this variant; ADC/SBC never consult it
	FlagBreak            uint8 = 1 << 4
	FlagUnused           uint8 = 1 << 5
	FlagOverflow         uint8 = 1 << 6
	FlagNegative         uint8 = 1 << 7
)

const (
	vectorNMI   = 0xFFFA
	vectorRESET = 0xFFFC
	vectorIRQ   = 0xFFFE

	stackBase = 0x0100

	testModeEntryPC = 0x8000
)

// Bus is the memory surface the CPU drives. Everything above the internal
// RAM mirror (PPU/APU registers, the mapper) is reached through it.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// CPU holds the full architectural state of the processor: the
// six registers, the three interrupt latches, the pause counter that
// amortizes an instruction's cycle cost across subsequent ticks, and a
// monotonic instruction counter for tracing.
type CPU struct {
	A, X, Y uint8
	PC      uint16
	S       uint8
	P       uint8

	nmi   bool
	irq   bool
	reset bool

	remainingPause uint

	instructionCount uint64

	bus Bus

	// TestMode makes Reset() load PC = 0x8000 instead of the RESET vector,
	// matching the unit-test entry point used by nestest-style ROMs.
	TestMode bool

	// Trace, when non-nil, is called once per instruction dispatch (not
	// per tick) with a short human-readable line; wired to -debug in
	// cmd/nescore.
	Trace func(line string)
}

// New constructs a CPU driving bus. Reset must be called before the first
// tick to establish power-up state.
func New(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset establishes power-up register state and loads PC from the RESET
// vector (or the fixed test-mode entry point) immediately, so the machine
// is ready to fetch before the first tick. Resets requested at runtime go
// through FlagReset and are serviced by Tick instead.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = FlagBreak | FlagUnused | FlagInterruptDisable
	c.remainingPause = 0
	c.nmi, c.irq, c.reset = false, false, false
	if c.TestMode {
		c.PC = testModeEntryPC
	} else {
		c.PC = c.readWord(vectorRESET)
	}
}

// FlagNMI latches a non-maskable interrupt; serviced unconditionally on the
// next tick that is not already absorbed by remainingPause.
func (c *CPU) FlagNMI() { c.nmi = true }

// FlagIRQ latches a maskable interrupt; serviced only while
// InterruptDisable is clear.
func (c *CPU) FlagIRQ() { c.irq = true }

// FlagReset latches a reset request.
func (c *CPU) FlagReset() { c.reset = true }

// InstructionCount reports the monotonic count of dispatched instructions,
// for tracing and tests.
func (c *CPU) InstructionCount() uint64 { return c.instructionCount }

// Tick advances the CPU by one master clock edge:
//
//  1. If remainingPause > 0, decrement it and return; this tick is
//     absorbed by a previous instruction's latency.
//  2. Else if NMI is latched, service it unconditionally.
//  3. Else if IRQ is latched and InterruptDisable is clear, service it.
//  4. Else if RESET is latched, service it.
//  5. Otherwise fetch, decode, execute one instruction and set
//     remainingPause to its documented cycle cost minus one (this tick
//     consumed the first cycle).
func (c *CPU) Tick() {
	if c.remainingPause > 0 {
		c.remainingPause--
		return
	}

	if c.nmi {
		c.nmi = false
		c.serviceInterrupt(vectorNMI, false)
		return
	}
	if c.irq && c.P&FlagInterruptDisable == 0 {
		c.irq = false
		c.serviceInterrupt(vectorIRQ, false)
		return
	}
	if c.reset {
		c.reset = false
		c.serviceReset()
		return
	}

	c.step()
}

// serviceReset loads PC from the RESET vector (or the fixed test-mode entry
// point) without touching the stack; real hardware does push-then-suppress
// the writes, but the effect on RAM is unobservable from the core's
// interfaces, so only the visible PC load is modeled.
func (c *CPU) serviceReset() {
	if c.TestMode {
		c.PC = testModeEntryPC
	} else {
		c.PC = c.readWord(vectorRESET)
	}
	c.remainingPause = 6
}

// serviceInterrupt pushes PC and status, then loads PC from vector. brk
// distinguishes BRK's own status push (B flag set) from a hardware
// interrupt's (B flag clear); both force the unused bit on.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) {
	c.pushWord(c.PC)
	status := c.P | FlagUnused
	if brk {
		status |= FlagBreak
	} else {
		status &^= FlagBreak
	}
	c.push(status)
	c.P |= FlagInterruptDisable
	c.PC = c.readWord(vector)
	c.remainingPause = 6
}

// step fetches, decodes and executes a single instruction and arms
// remainingPause with its cycle cost.
func (c *CPU) step() {
	pc := c.PC
	opcode := c.fetch()
	entry := &opcodeTable[opcode]

	operand, pageCrossed := c.resolveOperand(entry.Mode)

	cycles := entry.Cycles
	extra := c.execute(entry.Op, entry.Mode, operand, pageCrossed)
	if entry.PageCrossAddsOne && pageCrossed {
		cycles++
	}
	cycles += extra

	c.instructionCount++
	if c.Trace != nil {
		c.Trace(fmt.Sprintf("#%d PC=%04X op=%02X %s A=%02X X=%02X Y=%02X S=%02X P=%02X",
			c.instructionCount, pc, opcode, entry.Op, c.A, c.X, c.Y, c.S, c.P))
	}

	if cycles == 0 {
		panic(fmt.Sprintf("cpu: opcode 0x%02X has zero cycle cost, decoder table is wrong", opcode))
	}
	// Added, not assigned: a write to $4014 during execute() has already
	// deposited the OAM DMA stall into remainingPause, and it must survive
	// the instruction's own cost landing on top.
	c.remainingPause += uint(cycles) - 1
}

func (c *CPU) fetch() uint8 {
	b := c.bus.Read(c.PC)
	c.PC++
	return b
}

func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetch())
	hi := uint16(c.fetch())
	return lo | hi<<8
}

func (c *CPU) readWord(addr uint16) uint16 {
	lo := uint16(c.bus.Read(addr))
	hi := uint16(c.bus.Read(addr + 1))
	return lo | hi<<8
}

func (c *CPU) push(v uint8) {
	c.bus.Write(stackBase+uint16(c.S), v)
	c.S--
}

func (c *CPU) pop() uint8 {
	c.S++
	return c.bus.Read(stackBase + uint16(c.S))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return lo | hi<<8
}

func (c *CPU) setZN(v uint8) {
	if v == 0 {
		c.P |= FlagZero
	} else {
		c.P &^= FlagZero
	}
	if v&0x80 != 0 {
		c.P |= FlagNegative
	} else {
		c.P &^= FlagNegative
	}
}

func (c *CPU) setFlag(mask uint8, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// DMAStall adds extra ticks of pause directly, for the bus's OAM-DMA
// handler, which has no opcode of its own to carry the cost.
func (c *CPU) DMAStall(cycles uint) { c.remainingPause += cycles }
