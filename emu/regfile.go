// Package emu provides the R4300i CPU core model: the register file, the
// fixed-depth instruction pipeline, and the core state machine that steps
// them against a memory port.
package emu

// Reset-time register values.
const (
	// ResetVector is the PC value out of reset, pointing at the PIF boot ROM.
	ResetVector = 0xBFC00000

	// BootVector is the entry point the core jumps to on its first step,
	// representing the PIF firmware hand-off.
	BootVector = 0x80000400

	// ResetStatus is the CP0 status register value out of reset.
	ResetStatus = 0x34000000
)

// CP0 is the system control coprocessor register block.
type CP0 struct {
	Status   uint32
	Cause    uint32
	EPC      uint32
	BadVAddr uint32
}

// RegFile is the R4300i register file: 32 general-purpose registers, 32
// floating-point registers, the program counter, the HI/LO multiply
// accumulators, and the CP0 control block. All integer values wrap at 32
// bits (they are uint32 throughout).
//
// GPR[0] is not pinned to zero here: the pipeline's writeback step skips
// destination register 0, but nothing prevents direct mutation. Real
// hardware hard-wires it; the modeled core does not (see DESIGN.md).
type RegFile struct {
	GPR [32]uint32
	FPR [32]float64

	PC uint32
	HI uint32
	LO uint32

	CP0 CP0
}

// NewRegFile creates a register file with the reset-time defaults.
func NewRegFile() *RegFile {
	return &RegFile{
		PC:  ResetVector,
		CP0: CP0{Status: ResetStatus},
	}
}
