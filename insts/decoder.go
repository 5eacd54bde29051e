package insts

// Decoder decodes 32-bit MIPS instruction words.
type Decoder struct{}

// NewDecoder creates a new instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode extracts the instruction fields from a 32-bit word. Decoding never
// fails: unrecognized encodings are returned with Op set to OpUnknown and
// pass through the pipeline without effect.
func (d *Decoder) Decode(word uint32) Instruction {
	inst := Instruction{
		Opcode: uint8((word >> 26) & 0x3F),
		Rs:     uint8((word >> 21) & 0x1F),
		Rt:     uint8((word >> 16) & 0x1F),
		Rd:     uint8((word >> 11) & 0x1F),
		Imm:    uint16(word & 0xFFFF),
		Target: word & 0x3FFFFFF,
	}
	inst.Op = classify(inst.Opcode)
	return inst
}

// classify maps a primary opcode field to its Op classification.
func classify(opcode uint8) Op {
	switch opcode {
	case OpcodeSpecial:
		return OpSpecial
	case OpcodeJ:
		return OpJ
	case OpcodeJAL:
		return OpJAL
	case OpcodeBEQ:
		return OpBEQ
	case OpcodeBNE:
		return OpBNE
	case OpcodeADDIU:
		return OpADDIU
	case OpcodeANDI:
		return OpANDI
	case OpcodeORI:
		return OpORI
	case OpcodeLUI:
		return OpLUI
	case OpcodeLW:
		return OpLW
	case OpcodeSW:
		return OpSW
	default:
		return OpUnknown
	}
}
