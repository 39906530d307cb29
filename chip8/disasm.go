package chip8

import "fmt"

// Disassemble renders the instruction at addr using classic CHIP-8
// mnemonics, for trace logs and fault diagnostics. Words that fail to
// decode render as raw data; addresses at the very edge of memory render
// as an empty word.
func (p *Processor) Disassemble(addr uint16) string {
	hi, err := p.mem.read(addr)
	if err != nil {
		return fmt.Sprintf("%04X -", addr)
	}

	lo, err := p.mem.read(addr + 1)
	if err != nil {
		return fmt.Sprintf("%04X -", addr)
	}

	return disassemble(addr, uint16(hi)<<8|uint16(lo))
}

// disassemble renders one instruction word at addr.
func disassemble(addr, word uint16) string {
	in, err := decode(word)
	if err != nil {
		// not a legal encoding, show it as a data word
		return fmt.Sprintf("%04X - WORD   #%04X", addr, word)
	}

	switch in.op {
	case opNop:
		return fmt.Sprintf("%04X -", addr)
	case opCls:
		return fmt.Sprintf("%04X - CLS", addr)
	case opRet:
		return fmt.Sprintf("%04X - RET", addr)
	case opJp:
		return fmt.Sprintf("%04X - JP     #%03X", addr, in.nnn)
	case opCall:
		return fmt.Sprintf("%04X - CALL   #%03X", addr, in.nnn)
	case opSeNN:
		return fmt.Sprintf("%04X - SE     V%X, #%02X", addr, in.x, in.nn)
	case opSneNN:
		return fmt.Sprintf("%04X - SNE    V%X, #%02X", addr, in.x, in.nn)
	case opSeXY:
		return fmt.Sprintf("%04X - SE     V%X, V%X", addr, in.x, in.y)
	case opLdNN:
		return fmt.Sprintf("%04X - LD     V%X, #%02X", addr, in.x, in.nn)
	case opAddNN:
		return fmt.Sprintf("%04X - ADD    V%X, #%02X", addr, in.x, in.nn)
	case opLdXY:
		return fmt.Sprintf("%04X - LD     V%X, V%X", addr, in.x, in.y)
	case opOr:
		return fmt.Sprintf("%04X - OR     V%X, V%X", addr, in.x, in.y)
	case opAnd:
		return fmt.Sprintf("%04X - AND    V%X, V%X", addr, in.x, in.y)
	case opXor:
		return fmt.Sprintf("%04X - XOR    V%X, V%X", addr, in.x, in.y)
	case opAddXY:
		return fmt.Sprintf("%04X - ADD    V%X, V%X", addr, in.x, in.y)
	case opSubXY:
		return fmt.Sprintf("%04X - SUB    V%X, V%X", addr, in.x, in.y)
	case opShr:
		return fmt.Sprintf("%04X - SHR    V%X", addr, in.x)
	case opSubYX:
		return fmt.Sprintf("%04X - SUBN   V%X, V%X", addr, in.x, in.y)
	case opShl:
		return fmt.Sprintf("%04X - SHL    V%X", addr, in.x)
	case opSneXY:
		return fmt.Sprintf("%04X - SNE    V%X, V%X", addr, in.x, in.y)
	case opLdI:
		return fmt.Sprintf("%04X - LD     I, #%03X", addr, in.nnn)
	case opJpV0:
		return fmt.Sprintf("%04X - JP     V0, #%03X", addr, in.nnn)
	case opRnd:
		return fmt.Sprintf("%04X - RND    V%X, #%02X", addr, in.x, in.nn)
	case opDrw:
		return fmt.Sprintf("%04X - DRW    V%X, V%X, %d", addr, in.x, in.y, in.n)
	case opSkp:
		return fmt.Sprintf("%04X - SKP    V%X", addr, in.x)
	case opSknp:
		return fmt.Sprintf("%04X - SKNP   V%X", addr, in.x)
	case opLdXDT:
		return fmt.Sprintf("%04X - LD     V%X, DT", addr, in.x)
	case opLdXK:
		return fmt.Sprintf("%04X - LD     V%X, K", addr, in.x)
	case opLdDTX:
		return fmt.Sprintf("%04X - LD     DT, V%X", addr, in.x)
	case opLdSTX:
		return fmt.Sprintf("%04X - LD     ST, V%X", addr, in.x)
	case opAddIX:
		return fmt.Sprintf("%04X - ADD    I, V%X", addr, in.x)
	case opLdF:
		return fmt.Sprintf("%04X - LD     F, V%X", addr, in.x)
	case opLdB:
		return fmt.Sprintf("%04X - LD     B, V%X", addr, in.x)
	case opSaveRegs:
		return fmt.Sprintf("%04X - LD     [I], V%X", addr, in.x)
	case opLoadRegs:
		return fmt.Sprintf("%04X - LD     V%X, [I]", addr, in.x)
	}

	return fmt.Sprintf("%04X - WORD   #%04X", addr, word)
}
