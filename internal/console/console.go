// Package console wires the CPU, APU, memory bus, cartridge mapper and the
// minimal PPU/input stand-ins into a single master-clock driver, fixing
// two cross-cutting decisions: CPU-before-APU tick ordering, and routing the
// frame sequencer's IRQ and OAM DMA's stall directly into the CPU rather
// than stubbing them out.
package console

import (
	"fmt"

	"nescore/internal/apu"
	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/input"
	"nescore/internal/memory"
	"nescore/internal/ppu"
)

// Console owns every component of the emulated machine and advances them
// together, one master clock edge at a time.
type Console struct {
	CPU    *cpu.CPU
	APU    *apu.APU
	PPU    *ppu.PPU
	Input  *input.Port
	Memory *memory.Memory

	mapper      cartridge.Mapper
	totalCycles uint64
}

// New constructs a Console around an already-loaded mapper, wires the
// cross-component callbacks, and resets the CPU.
func New(mapper cartridge.Mapper) *Console {
	c := &Console{mapper: mapper}

	c.PPU = ppu.New()
	c.APU = apu.New()
	c.Input = input.New()
	c.Memory = memory.New(mapper, c.PPU, c.APU, c.Input)
	c.CPU = cpu.New(c.Memory)

	c.Memory.DMAStall = c.stallForOAMDMA
	c.APU.FrameIRQ = c.CPU.FlagIRQ

	c.CPU.Reset()
	return c
}

// LoadFile loads an iNES ROM from disk and constructs a Console around it.
func LoadFile(path string) (*Console, error) {
	mapper, err := cartridge.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("console: loading %s: %w", path, err)
	}
	return New(mapper), nil
}

// Tick advances the CPU then the APU by one master clock edge: the CPU
// runs first so that any IRQ or DMA stall it triggers this edge is already
// reflected before the APU samples the frame it just clocked.
func (c *Console) Tick() {
	c.CPU.Tick()
	c.APU.Tick()
	c.totalCycles++
}

// RunCycles advances the console by exactly n master ticks.
func (c *Console) RunCycles(n uint64) {
	for i := uint64(0); i < n; i++ {
		c.Tick()
	}
}

// Frame advances the console by one video frame: 2*apu.ClocksPerFrame
// master ticks, i.e. apu.ClocksPerFrame even APU cycles, over which the APU
// emits about apu.SamplesPerFrame samples.
func (c *Console) Frame() {
	c.RunCycles(2 * apu.ClocksPerFrame)
}

// Reset re-initializes the CPU, APU and PPU without reloading the
// cartridge.
func (c *Console) Reset() {
	c.PPU.Reset()
	c.APU.Reset()
	c.Input.Reset()
	c.CPU.Reset()
	c.totalCycles = 0
}

// stallForOAMDMA applies the OAM DMA cost of 513 cycles, or 514 when the
// write to $4014 lands on an odd total-cycle count (see DESIGN.md).
func (c *Console) stallForOAMDMA() {
	cycles := uint(513)
	if c.totalCycles%2 == 1 {
		cycles = 514
	}
	c.CPU.DMAStall(cycles)
}

// Samples drains the APU's current sample accumulator.
func (c *Console) Samples() []float32 {
	return c.APU.Samples()
}

// SetButtons sets controller 1 or 2's live button mask; any other
// controller index is ignored.
func (c *Console) SetButtons(controller int, mask uint8) {
	switch controller {
	case 1:
		c.Input.SetButtons1(mask)
	case 2:
		c.Input.SetButtons2(mask)
	}
}
