package chip8

// timers is the timer unit: two independent 8-bit countdown registers
// decremented once per external tick, floored at zero. The sound flag is
// transient and recomputed on every tick; it is true only on the tick
// where st crossed from 1 to 0, which is the beep edge a host should
// sample immediately after ticking.
type timers struct {
	dt byte
	st byte

	sound bool
}

func (t *timers) reset() {
	*t = timers{}
}

func (t *timers) tick() {
	if t.dt > 0 {
		t.dt--
	}

	t.sound = t.st == 1

	if t.st > 0 {
		t.st--
	}
}
