package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
)

// File is the path of the currently loaded ROM, re-read on reset.
var File string

// LoadROM resets the VM and loads a raw ROM image into it. The image is
// a headerless byte sequence placed verbatim at the program start.
func LoadROM(path string) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading ROM '%s': %w", path, err)
	}

	VM.Reset()

	if err := VM.Load(rom); err != nil {
		return fmt.Errorf("loading ROM '%s': %w", path, err)
	}

	File = path
	Paused = false

	Logger.Info("Loaded ROM",
		log.String("file", filepath.Base(path)),
		log.Int("size", len(rom)))

	return nil
}

// LoadDialog asks the user for a ROM file. Cancelling is not an error;
// the VM keeps running whatever it had.
func LoadDialog() error {
	path, err := dialog.File().
		Title("Load CHIP-8 ROM").
		Filter("CHIP-8 ROM", "ch8", "c8", "rom").
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return nil
		}
		return err
	}

	return LoadROM(path)
}
