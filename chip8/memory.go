package chip8

import "fmt"

const (
	// MemorySize is the full byte-addressable space of the machine.
	MemorySize = 0x1000

	// ProgramStart is where loaded programs begin. The first 512 bytes
	// are reserved for the interpreter and the font sprites.
	ProgramStart = 0x200
)

// memory is the 4096-byte address space. The font sprites occupy
// 0x000-0x04F and are reinstalled on every reset; programs are copied
// in at ProgramStart and can never clobber the font table.
type memory struct {
	cells [MemorySize]byte
}

func (m *memory) reset() {
	m.cells = [MemorySize]byte{}

	// install the hexadecimal digit sprites
	copy(m.cells[:], font[:])
}

// loadProgram copies a ROM image to ProgramStart. The image is rejected
// before any copy if it cannot fit in the remaining space.
func (m *memory) loadProgram(rom []byte) error {
	if len(rom) > MemorySize-ProgramStart {
		return fmt.Errorf("%d byte ROM: %w", len(rom), ErrProgramTooLarge)
	}

	copy(m.cells[ProgramStart:], rom)

	return nil
}

func (m *memory) read(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, &AddressError{Addr: int(addr)}
	}

	return m.cells[addr], nil
}

func (m *memory) write(addr uint16, b byte) error {
	if int(addr) >= MemorySize {
		return &AddressError{Addr: int(addr)}
	}

	m.cells[addr] = b

	return nil
}

// slice returns a read-only view of n bytes starting at addr, or an
// address fault if any byte of the range falls outside memory.
func (m *memory) slice(addr uint16, n int) ([]byte, error) {
	if int(addr)+n > MemorySize {
		return nil, &AddressError{Addr: int(addr) + n - 1}
	}

	return m.cells[addr : int(addr)+n], nil
}

// copyIn writes src into memory at addr, all or nothing.
func (m *memory) copyIn(addr uint16, src []byte) error {
	if int(addr)+len(src) > MemorySize {
		return &AddressError{Addr: int(addr) + len(src) - 1}
	}

	copy(m.cells[addr:], src)

	return nil
}

// copyOut reads len(dst) bytes from memory at addr into dst, all or nothing.
func (m *memory) copyOut(addr uint16, dst []byte) error {
	src, err := m.slice(addr, len(dst))
	if err != nil {
		return err
	}

	copy(dst, src)

	return nil
}
