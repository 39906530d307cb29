package chip8

import (
	"errors"
	"fmt"
)

// Fault sentinels. Every error returned by the core wraps one of these so
// hosts can classify a fault with errors.Is and decide whether to halt,
// diagnose, or ignore it. The core itself never panics on ROM behavior.
var (
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrProgramTooLarge = errors.New("program too large")
	ErrAddressRange    = errors.New("address out of range")
)

// OpcodeError reports an instruction word with no defined decoding,
// carrying the raw word and the address it was fetched from.
type OpcodeError struct {
	Opcode uint16
	Addr   uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X at %04X", e.Opcode, e.Addr)
}

func (e *OpcodeError) Unwrap() error { return ErrUnknownOpcode }

// AddressError reports a memory access outside the 4096-byte space.
type AddressError struct {
	Addr int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address %04X out of range", e.Addr)
}

func (e *AddressError) Unwrap() error { return ErrAddressRange }
