package chip8

// NumRegisters is the size of the general-purpose register file.
const NumRegisters = 16

// flagRegister is VF, doubling as the carry/borrow/collision flag.
const flagRegister = 0xF

// registers is the register file: 16 general-purpose 8-bit registers
// V0..VF plus the 16-bit address register I.
type registers struct {
	v [NumRegisters]byte
	i uint16
}

func (r *registers) reset() {
	*r = registers{}
}

// setFlag stores a carry/borrow/collision result in VF.
func (r *registers) setFlag(set bool) {
	if set {
		r.v[flagRegister] = 1
	} else {
		r.v[flagRegister] = 0
	}
}
