package chip8

const (
	// DisplayWidth is the framebuffer width in pixels.
	DisplayWidth = 64

	// DisplayHeight is the framebuffer height in pixels.
	DisplayHeight = 32
)

// display is the monochrome framebuffer, one boolean per pixel in
// row-major order. It is mutated only by CLS and DRW.
type display struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

func (d *display) clear() {
	d.pixels = [DisplayWidth * DisplayHeight]bool{}
}

// draw XOR-composites a sprite anchored at (x, y). Each byte of the
// sprite is one row, most-significant bit leftmost. Set bits toggle the
// destination pixel; coordinates wrap around each axis independently.
// Reports whether any lit pixel was toggled off anywhere in the sprite.
func (d *display) draw(x, y byte, sprite []byte) bool {
	collision := false

	for dy, row := range sprite {
		for dx := 0; dx < 8; dx++ {
			if row&(0x80>>dx) == 0 {
				continue
			}

			px := (int(x) + dx) % DisplayWidth
			py := (int(y) + dy) % DisplayHeight

			i := py*DisplayWidth + px

			if d.pixels[i] {
				collision = true
			}

			d.pixels[i] = !d.pixels[i]
		}
	}

	return collision
}

func (d *display) pixel(x, y int) bool {
	return d.pixels[y*DisplayWidth+x]
}
