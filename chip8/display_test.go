package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawAndClear(t *testing.T) {
	p := New()

	// one 8x1 row of solid pixels at the origin
	assert.NoError(t, p.mem.write(0x300, 0xFF))
	p.regs.i = 0x300

	assert.NoError(t, exec(t, p, 0xD001))
	for x := 0; x < 8; x++ {
		assert.True(t, p.Pixel(x, 0))
	}
	assert.Equal(t, byte(0), p.regs.v[flagRegister])

	assert.NoError(t, exec(t, p, 0x00E0))
	for _, lit := range p.Pixels() {
		assert.False(t, lit)
	}
}

func TestDrawSelfCollision(t *testing.T) {
	p := New()

	assert.NoError(t, p.mem.write(0x300, 0xFF))
	p.regs.i = 0x300

	assert.NoError(t, exec(t, p, 0xD001))
	assert.Equal(t, byte(0), p.regs.v[flagRegister])

	// identical sprite at the same spot XORs everything back off
	assert.NoError(t, exec(t, p, 0xD001))
	assert.Equal(t, byte(1), p.regs.v[flagRegister])
	for x := 0; x < 8; x++ {
		assert.False(t, p.Pixel(x, 0))
	}
}

func TestDrawWrapsAroundEdges(t *testing.T) {
	p := New()

	// two rows of solid pixels anchored at the bottom-right corner
	assert.NoError(t, p.mem.write(0x300, 0xFF))
	assert.NoError(t, p.mem.write(0x301, 0xFF))
	p.regs.i = 0x300
	p.regs.v[0] = 62
	p.regs.v[1] = 31

	assert.NoError(t, exec(t, p, 0xD012))

	// x wraps 62,63,0..5; y wraps 31,0
	for _, y := range []int{31, 0} {
		for _, x := range []int{62, 63, 0, 1, 2, 3, 4, 5} {
			assert.True(t, p.Pixel(x, y))
		}
	}

	// nothing lit next to the wrapped pixels
	assert.False(t, p.Pixel(6, 0))
	assert.False(t, p.Pixel(61, 31))
	assert.False(t, p.Pixel(0, 1))
}

func TestDrawCollisionAcrossRows(t *testing.T) {
	p := New()

	// light a single pixel that only the sprite's second row touches
	assert.NoError(t, p.mem.write(0x300, 0x80))
	p.regs.i = 0x300
	p.regs.v[1] = 1
	assert.NoError(t, exec(t, p, 0xD011)) // pixel at (0,1)

	// 2-row sprite at (0,0): first row draws clean, second collides
	assert.NoError(t, p.mem.write(0x301, 0x80))
	p.regs.v[1] = 0
	assert.NoError(t, exec(t, p, 0xD012))
	assert.Equal(t, byte(1), p.regs.v[flagRegister])
}

func TestPixelsReturnsDetachedSnapshot(t *testing.T) {
	p := New()

	// writes to the snapshot never reach the framebuffer
	pixels := p.Pixels()
	pixels[0] = true
	assert.False(t, p.Pixel(0, 0))

	// and later draws never reach an earlier snapshot
	before := p.Pixels()
	assert.NoError(t, p.mem.write(0x300, 0x80))
	p.regs.i = 0x300
	assert.NoError(t, exec(t, p, 0xD001))

	assert.True(t, p.Pixel(0, 0))
	assert.False(t, before[0])
}

func TestDrawZeroHeightSprite(t *testing.T) {
	p := New()
	p.regs.v[flagRegister] = 1

	// N=0 draws nothing and reports no collision
	assert.NoError(t, exec(t, p, 0xD000))
	assert.Equal(t, byte(0), p.regs.v[flagRegister])
	for _, lit := range p.Pixels() {
		assert.False(t, lit)
	}
}
