package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

// KeyMap is the mapping of a modern keyboard to the 16-key CHIP-8 pad:
// 1234/QWER/ASDF/ZXCV mirror the original 4x4 layout.
var KeyMap = map[sdl.Scancode]byte{
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_Z: 0xA,
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_C: 0xB,
	sdl.SCANCODE_V: 0xF,
}

// ProcessEvents drains the SDL event queue, forwarding pad keys to the
// VM and handling host hotkeys. Returns false when the user quits.
func ProcessEvents(opts options) bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN {
				if !keyDown(ev, opts) {
					return false
				}
			} else if ev.Type == sdl.KEYUP {
				if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
					VM.SetKey(key, false)
				}
			}
		}
	}

	return true
}

func keyDown(ev *sdl.KeyboardEvent, opts options) bool {
	if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
		VM.SetKey(key, true)
		return true
	}

	switch ev.Keysym.Scancode {
	case sdl.SCANCODE_ESCAPE:
		return false

	case sdl.SCANCODE_SPACE, sdl.SCANCODE_F5:
		Paused = !Paused
		if Paused {
			Logger.Info("Emulation paused")
		} else {
			Logger.Info("Emulation resumed")
		}

	case sdl.SCANCODE_F6:
		// single-step while paused
		if Paused {
			stepOne(opts)
		}

	case sdl.SCANCODE_BACKSPACE:
		VM.Reset()
		if File != "" {
			if err := LoadROM(File); err != nil {
				Logger.Error("Reload failed", err)
			}
		}

	case sdl.SCANCODE_F3:
		if err := LoadDialog(); err != nil {
			Logger.Error("Load failed", err)
		}
	}

	return true
}
