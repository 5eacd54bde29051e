// Package insts provides MIPS R4300i instruction definitions and decoding.
//
// This package implements decoding of MIPS machine code into structured
// instruction representations. Field extraction is complete for I-type and
// J-type encodings; the execute logic elsewhere in the simulator implements
// a single opcode family (ADDIU), so most decoded instructions flow through
// the pipeline as no-ops.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x20420008) // ADDIU-family, rs=2, rt=2, imm=8
//	fmt.Printf("Op: %v, Rs: %d, Rt: %d, Imm: %d\n", inst.Op, inst.Rs, inst.Rt, inst.Imm)
package insts

// Op represents a MIPS opcode classification.
type Op uint8

// MIPS opcodes. Only ADDIU has execute semantics in the pipeline; the rest
// are recognized for inspection and otherwise pass through as no-ops.
const (
	OpUnknown Op = iota
	OpSpecial
	OpJ
	OpJAL
	OpBEQ
	OpBNE
	OpADDIU
	OpANDI
	OpORI
	OpLUI
	OpLW
	OpSW
)

// Primary opcode field values (bits [31:26] of the instruction word).
const (
	OpcodeSpecial = 0x00
	OpcodeJ       = 0x02
	OpcodeJAL     = 0x03
	OpcodeBEQ     = 0x04
	OpcodeBNE     = 0x05
	OpcodeADDIU   = 0x08
	OpcodeANDI    = 0x0C
	OpcodeORI     = 0x0D
	OpcodeLUI     = 0x0F
	OpcodeLW      = 0x23
	OpcodeSW      = 0x2B
)

// Instruction represents a decoded MIPS instruction word. It is an immutable
// snapshot of the encoded fields: constructed once per fetch, carried through
// the pipeline stages by value, and discarded after writeback.
type Instruction struct {
	// Op is the opcode classification.
	Op Op

	// Opcode is the raw 6-bit primary opcode field.
	Opcode uint8

	// Rs is the source register index (bits [25:21]).
	Rs uint8

	// Rt is the target register index (bits [20:16]).
	Rt uint8

	// Rd is the destination register index (bits [15:11]).
	Rd uint8

	// Imm is the 16-bit immediate field. It is carried zero-extended,
	// matching the observed execute behavior (real ADDIU sign-extends;
	// see DESIGN.md).
	Imm uint16

	// Target is the 26-bit jump target field for J-type encodings.
	Target uint32
}

// IsNop reports whether the instruction is the all-zero encoding, which the
// core synthesizes on every cycle before boot.
func (i Instruction) IsNop() bool {
	return i.Opcode == 0 && i.Rs == 0 && i.Rt == 0 && i.Rd == 0 &&
		i.Imm == 0 && i.Target == 0
}
