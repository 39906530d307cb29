package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassembleWords(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x0000, "0200 -"},
		{0x00E0, "0200 - CLS"},
		{0x00EE, "0200 - RET"},
		{0x1234, "0200 - JP     #234"},
		{0x2456, "0200 - CALL   #456"},
		{0x3A12, "0200 - SE     VA, #12"},
		{0x6B7F, "0200 - LD     VB, #7F"},
		{0x8AB4, "0200 - ADD    VA, VB"},
		{0x8AB6, "0200 - SHR    VA"},
		{0x8AB7, "0200 - SUBN   VA, VB"},
		{0xA123, "0200 - LD     I, #123"},
		{0xB123, "0200 - JP     V0, #123"},
		{0xC07F, "0200 - RND    V0, #7F"},
		{0xD125, "0200 - DRW    V1, V2, 5"},
		{0xE19E, "0200 - SKP    V1"},
		{0xF10A, "0200 - LD     V1, K"},
		{0xF133, "0200 - LD     B, V1"},
		{0xF155, "0200 - LD     [I], V1"},
		{0xF165, "0200 - LD     V1, [I]"},
		{0xFFFF, "0200 - WORD   #FFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, disassemble(0x200, tt.word))
		})
	}
}

func TestDisassembleFromMemory(t *testing.T) {
	p := New()
	loadWords(t, p, 0x00E0, 0x1234)

	assert.Equal(t, "0200 - CLS", p.Disassemble(0x200))
	assert.Equal(t, "0202 - JP     #234", p.Disassemble(0x202))

	// the trailing byte of memory cannot hold a full word
	assert.Equal(t, "0FFF -", p.Disassemble(0xFFF))
}
