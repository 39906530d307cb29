package main

import (
	"github.com/c8vm/c8vm/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	// background and foreground colors of the display
	backColor = sdl.Color{R: 17, G: 29, B: 43, A: 255}
	pixColor  = sdl.Color{R: 143, G: 145, B: 133, A: 255}
)

// RefreshScreen redraws the framebuffer, one filled rect per lit pixel
// scaled up to the window size, and presents the frame.
func RefreshScreen(scale int) {
	Renderer.SetDrawColor(backColor.R, backColor.G, backColor.B, backColor.A)
	Renderer.Clear()

	Renderer.SetDrawColor(pixColor.R, pixColor.G, pixColor.B, pixColor.A)

	pixels := VM.Pixels()

	for i, lit := range pixels {
		if !lit {
			continue
		}

		x := i % chip8.DisplayWidth
		y := i / chip8.DisplayWidth

		Renderer.FillRect(&sdl.Rect{
			X: int32(x * scale),
			Y: int32(y * scale),
			W: int32(scale),
			H: int32(scale),
		})
	}

	Renderer.Present()
}
