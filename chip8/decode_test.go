package chip8

import (
	"errors"
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeAllForms(t *testing.T) {
	tests := []struct {
		word uint16
		want instruction
	}{
		{0x0000, instruction{op: opNop}},
		{0x00E0, instruction{op: opCls, y: 0xE, nn: 0xE0, nnn: 0x0E0}},
		{0x00EE, instruction{op: opRet, y: 0xE, n: 0xE, nn: 0xEE, nnn: 0x0EE}},
		{0x1ABC, instruction{op: opJp, x: 0xA, y: 0xB, n: 0xC, nn: 0xBC, nnn: 0xABC}},
		{0x2ABC, instruction{op: opCall, x: 0xA, y: 0xB, n: 0xC, nn: 0xBC, nnn: 0xABC}},
		{0x3A12, instruction{op: opSeNN, x: 0xA, y: 0x1, n: 0x2, nn: 0x12, nnn: 0xA12}},
		{0x4A12, instruction{op: opSneNN, x: 0xA, y: 0x1, n: 0x2, nn: 0x12, nnn: 0xA12}},
		{0x5AB0, instruction{op: opSeXY, x: 0xA, y: 0xB, nn: 0xB0, nnn: 0xAB0}},
		{0x6A12, instruction{op: opLdNN, x: 0xA, y: 0x1, n: 0x2, nn: 0x12, nnn: 0xA12}},
		{0x7A12, instruction{op: opAddNN, x: 0xA, y: 0x1, n: 0x2, nn: 0x12, nnn: 0xA12}},
		{0x8AB0, instruction{op: opLdXY, x: 0xA, y: 0xB, nn: 0xB0, nnn: 0xAB0}},
		{0x8AB1, instruction{op: opOr, x: 0xA, y: 0xB, n: 0x1, nn: 0xB1, nnn: 0xAB1}},
		{0x8AB2, instruction{op: opAnd, x: 0xA, y: 0xB, n: 0x2, nn: 0xB2, nnn: 0xAB2}},
		{0x8AB3, instruction{op: opXor, x: 0xA, y: 0xB, n: 0x3, nn: 0xB3, nnn: 0xAB3}},
		{0x8AB4, instruction{op: opAddXY, x: 0xA, y: 0xB, n: 0x4, nn: 0xB4, nnn: 0xAB4}},
		{0x8AB5, instruction{op: opSubXY, x: 0xA, y: 0xB, n: 0x5, nn: 0xB5, nnn: 0xAB5}},
		{0x8AB6, instruction{op: opShr, x: 0xA, y: 0xB, n: 0x6, nn: 0xB6, nnn: 0xAB6}},
		{0x8AB7, instruction{op: opSubYX, x: 0xA, y: 0xB, n: 0x7, nn: 0xB7, nnn: 0xAB7}},
		{0x8ABE, instruction{op: opShl, x: 0xA, y: 0xB, n: 0xE, nn: 0xBE, nnn: 0xABE}},
		{0x9AB0, instruction{op: opSneXY, x: 0xA, y: 0xB, nn: 0xB0, nnn: 0xAB0}},
		{0xAABC, instruction{op: opLdI, x: 0xA, y: 0xB, n: 0xC, nn: 0xBC, nnn: 0xABC}},
		{0xBABC, instruction{op: opJpV0, x: 0xA, y: 0xB, n: 0xC, nn: 0xBC, nnn: 0xABC}},
		{0xCA12, instruction{op: opRnd, x: 0xA, y: 0x1, n: 0x2, nn: 0x12, nnn: 0xA12}},
		{0xDAB5, instruction{op: opDrw, x: 0xA, y: 0xB, n: 0x5, nn: 0xB5, nnn: 0xAB5}},
		{0xEA9E, instruction{op: opSkp, x: 0xA, y: 0x9, n: 0xE, nn: 0x9E, nnn: 0xA9E}},
		{0xEAA1, instruction{op: opSknp, x: 0xA, y: 0xA, n: 0x1, nn: 0xA1, nnn: 0xAA1}},
		{0xFA07, instruction{op: opLdXDT, x: 0xA, n: 0x7, nn: 0x07, nnn: 0xA07}},
		{0xFA0A, instruction{op: opLdXK, x: 0xA, n: 0xA, nn: 0x0A, nnn: 0xA0A}},
		{0xFA15, instruction{op: opLdDTX, x: 0xA, y: 0x1, n: 0x5, nn: 0x15, nnn: 0xA15}},
		{0xFA18, instruction{op: opLdSTX, x: 0xA, y: 0x1, n: 0x8, nn: 0x18, nnn: 0xA18}},
		{0xFA1E, instruction{op: opAddIX, x: 0xA, y: 0x1, n: 0xE, nn: 0x1E, nnn: 0xA1E}},
		{0xFA29, instruction{op: opLdF, x: 0xA, y: 0x2, n: 0x9, nn: 0x29, nnn: 0xA29}},
		{0xFA33, instruction{op: opLdB, x: 0xA, y: 0x3, n: 0x3, nn: 0x33, nnn: 0xA33}},
		{0xFA55, instruction{op: opSaveRegs, x: 0xA, y: 0x5, n: 0x5, nn: 0x55, nnn: 0xA55}},
		{0xFA65, instruction{op: opLoadRegs, x: 0xA, y: 0x6, n: 0x5, nn: 0x65, nnn: 0xA65}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.word), func(t *testing.T) {
			in, err := decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, in)
		})
	}
}

func TestDecodeUnknownWords(t *testing.T) {
	words := []uint16{
		0x00E1, // not CLS or RET
		0x0123, // SYS calls are not implemented
		0x00FA,
		0x5AB1, // 5XY0 with nonzero low nibble
		0x8AB8, // no such ALU form
		0x8ABF,
		0x9AB3,
		0xEA00,
		0xEAFF,
		0xFA00,
		0xFA66,
		0xFAFF,
	}

	for _, word := range words {
		t.Run(fmt.Sprintf("%04X", word), func(t *testing.T) {
			_, err := decode(word)
			assert.True(t, errors.Is(err, ErrUnknownOpcode))

			var oe *OpcodeError
			assert.True(t, errors.As(err, &oe))
			assert.Equal(t, word, oe.Opcode)
		})
	}
}
