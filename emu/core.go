package emu

import (
	"fmt"

	"github.com/n64sim/n64sim/insts"
	"github.com/n64sim/n64sim/mem"
)

// traceInterval is how often Step emits a trace line through the logger.
const traceInterval = 500

// Logger is an optional sink for human-readable trace lines. A nil Logger
// is tolerated everywhere and simply drops the output.
type Logger func(string)

// CoreOption is a functional option for configuring the Core.
type CoreOption func(*Core)

// WithLogger sets the trace line sink.
func WithLogger(logger Logger) CoreOption {
	return func(c *Core) {
		c.logger = logger
	}
}

// WithPipelineDepth sets the pipeline stage count. 1 gives an unpipelined
// stepper; the default is 5.
func WithPipelineDepth(depth int) CoreOption {
	return func(c *Core) {
		c.depth = depth
	}
}

// Core is the R4300i CPU core. Each Step performs one
// fetch-decode-pipeline-advance cycle against the injected memory port.
//
// The core boots lazily: it comes up unbooted with the PC at the reset
// vector, and the first Step forces the PC to the boot vector — a one-way
// transition until Reset. While unbooted, fetches are synthesized no-ops
// rather than bus reads.
//
// The port decides the fetch strategy: wire a *mem.Bus for full address
// routing, or a bare *mem.RDRAM for direct memory access.
type Core struct {
	regs     *RegFile
	pipeline *Pipeline
	decoder  *insts.Decoder
	port     mem.Device
	logger   Logger
	depth    int

	cycles       uint64
	instructions uint64
	booted       bool

	// exceptionPending is a reserved extension point: nothing sets or
	// consults it yet.
	exceptionPending bool
}

// NewCore creates a core wired to the given memory port.
func NewCore(port mem.Device, opts ...CoreOption) *Core {
	c := &Core{
		port:    port,
		decoder: insts.NewDecoder(),
		depth:   DefaultPipelineDepth,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.regs = NewRegFile()
	c.pipeline = NewPipeline(c.depth)

	return c
}

// Registers returns the core's register file.
func (c *Core) Registers() *RegFile {
	return c.regs
}

// Pipeline returns the core's pipeline.
func (c *Core) Pipeline() *Pipeline {
	return c.pipeline
}

// Cycles returns the number of cycles stepped since reset.
func (c *Core) Cycles() uint64 {
	return c.cycles
}

// Instructions returns the number of instructions issued since reset.
func (c *Core) Instructions() uint64 {
	return c.instructions
}

// Booted reports whether the one-time boot transition has happened.
func (c *Core) Booted() bool {
	return c.booted
}

// ExceptionPending reports the reserved exception flag, for display.
func (c *Core) ExceptionPending() bool {
	return c.exceptionPending
}

// Reset reinitializes registers, pipeline, counters, and the boot flag to
// their construction-time defaults.
func (c *Core) Reset() {
	c.regs = NewRegFile()
	c.pipeline = NewPipeline(c.depth)
	c.cycles = 0
	c.instructions = 0
	c.booted = false
	c.log("[R4300i] CPU Core Reset to PIF Boot")
}

// Step executes one cycle: fetch one word through the port at PC-4 (the PC
// is pre-incremented by the pipeline, so the fetch compensates), decode it,
// and advance the pipeline. Every 500 cycles a trace line goes to the
// logger. It returns the updated PC, or the current PC if the cycle was
// consumed by a stall.
func (c *Core) Step() uint32 {
	c.cycles++
	c.instructions++

	var inst insts.Instruction
	if !c.booted {
		if c.cycles == 1 {
			c.regs.PC = BootVector
			c.booted = true
			c.log(fmt.Sprintf("[R4300i] Booted to 0x%08X", uint32(BootVector)))
		}
		// inst stays the synthesized all-zero no-op.
	} else {
		word := c.port.Read32((c.regs.PC - 4) & mem.AddressMask)
		inst = c.decoder.Decode(word)
	}

	newPC, advanced := c.pipeline.Advance(inst, c.regs, c.port)

	if c.cycles%traceInterval == 0 {
		c.log(fmt.Sprintf("[R4300i] Cycle %08d | PC=0x%08X", c.cycles, c.regs.PC))
	}

	if !advanced {
		return c.regs.PC
	}
	return newPC
}

func (c *Core) log(msg string) {
	if c.logger != nil {
		c.logger(msg)
	}
}
