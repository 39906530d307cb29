package chip8

// op identifies one decoded instruction form.
type op int

const (
	opNop      op = iota // 0000
	opCls                // 00E0
	opRet                // 00EE
	opJp                 // 1NNN
	opCall               // 2NNN
	opSeNN               // 3XNN
	opSneNN              // 4XNN
	opSeXY               // 5XY0
	opLdNN               // 6XNN
	opAddNN              // 7XNN
	opLdXY               // 8XY0
	opOr                 // 8XY1
	opAnd                // 8XY2
	opXor                // 8XY3
	opAddXY              // 8XY4
	opSubXY              // 8XY5
	opShr                // 8XY6
	opSubYX              // 8XY7
	opShl                // 8XYE
	opSneXY              // 9XY0
	opLdI                // ANNN
	opJpV0               // BNNN
	opRnd                // CXNN
	opDrw                // DXYN
	opSkp                // EX9E
	opSknp               // EXA1
	opLdXDT              // FX07
	opLdXK               // FX0A
	opLdDTX              // FX15
	opLdSTX              // FX18
	opAddIX              // FX1E
	opLdF                // FX29
	opLdB                // FX33
	opSaveRegs           // FX55
	opLoadRegs           // FX65
)

// instruction is a decoded opcode: the form tag plus every operand field
// already extracted. Executing and disassembling both start from here, so
// "is this a legal encoding" is decided in exactly one place.
type instruction struct {
	op op

	x, y byte   // register selectors
	n    byte   // low nibble
	nn   byte   // immediate byte
	nnn  uint16 // 12-bit address
}

// decode splits a big-endian instruction word into its four nibble fields
// and selects the opcode form. Words with no defined semantics fail with
// an OpcodeError; the caller knows the fetch address and fills it in.
func decode(word uint16) (instruction, error) {
	in := instruction{
		x:   byte(word >> 8 & 0xF),
		y:   byte(word >> 4 & 0xF),
		n:   byte(word & 0xF),
		nn:  byte(word & 0xFF),
		nnn: word & 0xFFF,
	}

	unknown := func() (instruction, error) {
		return instruction{}, &OpcodeError{Opcode: word}
	}

	switch word >> 12 {
	case 0x0:
		// no RCA 1802 system calls, only the fixed 0-page forms
		switch word {
		case 0x0000:
			in.op = opNop
		case 0x00E0:
			in.op = opCls
		case 0x00EE:
			in.op = opRet
		default:
			return unknown()
		}
	case 0x1:
		in.op = opJp
	case 0x2:
		in.op = opCall
	case 0x3:
		in.op = opSeNN
	case 0x4:
		in.op = opSneNN
	case 0x5:
		if in.n != 0 {
			return unknown()
		}
		in.op = opSeXY
	case 0x6:
		in.op = opLdNN
	case 0x7:
		in.op = opAddNN
	case 0x8:
		switch in.n {
		case 0x0:
			in.op = opLdXY
		case 0x1:
			in.op = opOr
		case 0x2:
			in.op = opAnd
		case 0x3:
			in.op = opXor
		case 0x4:
			in.op = opAddXY
		case 0x5:
			in.op = opSubXY
		case 0x6:
			in.op = opShr
		case 0x7:
			in.op = opSubYX
		case 0xE:
			in.op = opShl
		default:
			return unknown()
		}
	case 0x9:
		if in.n != 0 {
			return unknown()
		}
		in.op = opSneXY
	case 0xA:
		in.op = opLdI
	case 0xB:
		in.op = opJpV0
	case 0xC:
		in.op = opRnd
	case 0xD:
		in.op = opDrw
	case 0xE:
		switch in.nn {
		case 0x9E:
			in.op = opSkp
		case 0xA1:
			in.op = opSknp
		default:
			return unknown()
		}
	case 0xF:
		switch in.nn {
		case 0x07:
			in.op = opLdXDT
		case 0x0A:
			in.op = opLdXK
		case 0x15:
			in.op = opLdDTX
		case 0x18:
			in.op = opLdSTX
		case 0x1E:
			in.op = opAddIX
		case 0x29:
			in.op = opLdF
		case 0x33:
			in.op = opLdB
		case 0x55:
			in.op = opSaveRegs
		case 0x65:
			in.op = opLoadRegs
		default:
			return unknown()
		}
	}

	return in, nil
}
