package emu

import (
	"github.com/n64sim/n64sim/insts"
	"github.com/n64sim/n64sim/mem"
)

// Pipeline depths. Depth 1 degenerates to an unpipelined stepper; depth 5
// is the classic fetch/decode/execute/memory/writeback arrangement.
const (
	DefaultPipelineDepth = 5
	UnpipelinedDepth     = 1
)

// Stage is one slot of the pipeline shift register: an in-flight
// instruction, if any, plus the scalar result it will write back on
// retirement. Stages move through the pipeline by value.
type Stage struct {
	Inst  *insts.Instruction
	Value uint32
}

// Pipeline is a fixed-depth shift register of in-flight instructions.
// Index 0 is the newest (just-fetched) stage; the last index is the oldest,
// about to retire into the register file.
//
// Only the ADDIU opcode family has execute semantics; every other
// instruction rides through as a no-op with value 0, which retirement still
// writes back to a non-zero destination register. There is no forwarding or
// hazard detection between stages: back-to-back dependent instructions read
// stale register values. The only hazard primitive is the invoker-controlled
// one-shot stall.
type Pipeline struct {
	stages []Stage
	stall  bool
}

// NewPipeline creates a pipeline with the given stage count. Depths below 1
// fall back to the default.
func NewPipeline(depth int) *Pipeline {
	if depth < 1 {
		depth = DefaultPipelineDepth
	}
	return &Pipeline{
		stages: make([]Stage, depth),
	}
}

// Depth returns the stage count.
func (p *Pipeline) Depth() int {
	return len(p.stages)
}

// Stage returns a copy of the stage at index i (0 = newest).
func (p *Pipeline) Stage(i int) Stage {
	return p.stages[i]
}

// Stall freezes the next Advance call: it will consume the flag and perform
// no retirement, shift, or PC update.
func (p *Pipeline) Stall() {
	p.stall = true
}

// Stalled reports whether a stall is pending for the next Advance call.
func (p *Pipeline) Stalled() bool {
	return p.stall
}

// Advance runs one pipeline cycle: retire the oldest stage into the register
// file, shift every stage one slot toward retirement, fetch newInst into the
// newest slot, advance the PC by 4, and execute the decode-stage instruction
// if it is in the ADDIU family. It returns the updated PC and true, or 0 and
// false when a pending stall consumed the cycle.
//
// regs is borrowed for the duration of the call only and never retained.
// port is the memory path the memory stage would issue loads and stores
// through; no implemented opcode uses it yet.
func (p *Pipeline) Advance(newInst insts.Instruction, regs *RegFile, port mem.Device) (uint32, bool) {
	if p.stall {
		p.stall = false
		return 0, false
	}

	last := len(p.stages) - 1

	// Writeback: retire the oldest stage. Destination register 0 is
	// skipped, everything else receives the stage's value.
	if wb := p.stages[last]; wb.Inst != nil && wb.Inst.Rd != 0 {
		regs.GPR[wb.Inst.Rd] = wb.Value
	}

	// Shift toward retirement, then fetch into the newest slot.
	for i := last; i > 0; i-- {
		p.stages[i] = p.stages[i-1]
	}
	p.stages[0] = Stage{Inst: &newInst}

	regs.PC += 4

	// Decode + execute on the second-newest stage.
	if last >= 1 {
		if inst := p.stages[1].Inst; inst != nil && inst.Op == insts.OpADDIU {
			p.stages[1].Value = regs.GPR[inst.Rs] + uint32(inst.Imm)
		}
	}

	return regs.PC, true
}
