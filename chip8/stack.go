package chip8

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// stack is the call stack: a fixed array of return addresses and a
// pointer that always satisfies 0 <= sp <= StackDepth. Overflow and
// underflow are rejected without touching the stored frames.
type stack struct {
	frames [StackDepth]uint16
	sp     int
}

func (s *stack) reset() {
	*s = stack{}
}

func (s *stack) push(addr uint16) error {
	if s.sp == StackDepth {
		return ErrStackOverflow
	}

	s.frames[s.sp] = addr
	s.sp++

	return nil
}

func (s *stack) pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}

	s.sp--

	return s.frames[s.sp], nil
}
