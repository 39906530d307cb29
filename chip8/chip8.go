// Package chip8 implements the CHIP-8 virtual processor: a 4096-byte
// memory with built-in font sprites, 16 virtual registers, a 16-entry
// call stack, two countdown timers, a 64x32 monochrome framebuffer and a
// 16-key input latch, driven one instruction at a time by the host.
//
// The processor has no clock of its own. A host runs some number of
// Step calls per rendered frame, one TickTimers call per frame, then
// samples the framebuffer and sound flag and forwards key transitions.
// All calls must come from a single goroutine.
package chip8

import (
	"errors"
	"math/rand"
	"time"
)

// Processor is the CHIP-8 virtual machine core.
type Processor struct {
	mem    memory
	regs   registers
	stack  stack
	timers timers
	screen display
	keys   keypad

	// pc is the program counter. All programs begin at ProgramStart.
	pc uint16

	// rnd feeds the RND instruction. Injectable so runs can be replayed.
	rnd *rand.Rand
}

// Option configures a Processor at construction time.
type Option func(*Processor)

// WithRandom sets the random source used by the RND instruction. Tests
// and replays pass a seeded source for determinism.
func WithRandom(r *rand.Rand) Option {
	return func(p *Processor) {
		p.rnd = r
	}
}

// New returns a processor in power-on state: PC at ProgramStart, font
// sprites installed, everything else zeroed.
func New(opts ...Option) *Processor {
	p := &Processor{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.Reset()

	return p
}

// Reset restores the power-on state. Equivalent to construction: any
// loaded program is erased and the font table reinstalled.
func (p *Processor) Reset() {
	p.mem.reset()
	p.regs.reset()
	p.stack.reset()
	p.timers.reset()
	p.screen.clear()
	p.keys.reset()

	p.pc = ProgramStart
}

// Load copies a raw, headerless ROM image into memory at ProgramStart.
// An image too large for the remaining space is rejected before any byte
// is copied.
func (p *Processor) Load(rom []byte) error {
	return p.mem.loadProgram(rom)
}

// Step fetches, decodes and executes exactly one instruction. A fault
// (unknown opcode, stack overflow/underflow, out-of-range access) is
// returned to the host with the instruction's effects unapplied; an
// undecodable word additionally leaves PC pointing at itself. The host
// decides whether to halt, diagnose, or keep stepping.
func (p *Processor) Step() error {
	at := p.pc

	word, err := p.fetch()
	if err != nil {
		return err
	}

	in, err := decode(word)
	if err != nil {
		var oe *OpcodeError
		if errors.As(err, &oe) {
			oe.Addr = at
		}

		// keep the undecodable word current so a host that ignores the
		// fault does not silently skip it
		p.pc = at

		return err
	}

	return p.execute(in)
}

// fetch reads the two instruction bytes at PC, combines them big-endian
// and advances PC past them. Advancing happens before execution, so an
// instruction that repeats itself backs PC up by 2 afterwards.
func (p *Processor) fetch() (uint16, error) {
	hi, err := p.mem.read(p.pc)
	if err != nil {
		return 0, err
	}

	lo, err := p.mem.read(p.pc + 1)
	if err != nil {
		return 0, err
	}

	p.pc += 2

	return uint16(hi)<<8 | uint16(lo), nil
}

// TickTimers advances both countdown timers by one tick and recomputes
// the transient sound flag. Hosts call it once per frame, conventionally
// at 60 Hz; the core imposes no rate.
func (p *Processor) TickTimers() {
	p.timers.tick()
}

// Sound reports whether the sound timer crossed to zero on the most
// recent TickTimers call. It is a beep edge, not a level: sample it
// immediately after ticking.
func (p *Processor) Sound() bool {
	return p.timers.sound
}

// Pixels returns a row-major snapshot of the framebuffer,
// DisplayWidth*DisplayHeight cells. The copy is detached from processor
// state, so writing or retaining it cannot disturb later draws.
func (p *Processor) Pixels() []bool {
	pixels := make([]bool, len(p.screen.pixels))
	copy(pixels, p.screen.pixels[:])

	return pixels
}

// Pixel reports whether the cell at (x, y) is lit.
func (p *Processor) Pixel(x, y int) bool {
	return p.screen.pixel(x, y)
}

// SetKey latches a key transition from the host. Key indexes past 0xF
// are ignored.
func (p *Processor) SetKey(key byte, pressed bool) {
	p.keys.set(key, pressed)
}

// PC returns the current program counter, for tracing and diagnostics.
func (p *Processor) PC() uint16 {
	return p.pc
}

// randomByte draws one uniformly random byte for the RND instruction.
func (p *Processor) randomByte() byte {
	return byte(p.rnd.Intn(256))
}
