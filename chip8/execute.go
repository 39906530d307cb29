package chip8

// execute applies one decoded instruction to the machine state. PC has
// already advanced past the instruction, so skips add 2 and the key
// busy-wait subtracts 2 to re-fetch itself.
func (p *Processor) execute(in instruction) error {
	switch in.op {
	case opNop:

	case opCls:
		p.screen.clear()

	case opRet:
		addr, err := p.stack.pop()
		if err != nil {
			return err
		}
		p.pc = addr

	case opJp:
		p.pc = in.nnn

	case opCall:
		if err := p.stack.push(p.pc); err != nil {
			return err
		}
		p.pc = in.nnn

	case opSeNN:
		if p.regs.v[in.x] == in.nn {
			p.pc += 2
		}

	case opSneNN:
		if p.regs.v[in.x] != in.nn {
			p.pc += 2
		}

	case opSeXY:
		if p.regs.v[in.x] == p.regs.v[in.y] {
			p.pc += 2
		}

	case opLdNN:
		p.regs.v[in.x] = in.nn

	case opAddNN:
		// wrapping add, no flag effect
		p.regs.v[in.x] += in.nn

	case opLdXY:
		p.regs.v[in.x] = p.regs.v[in.y]

	case opOr:
		p.regs.v[in.x] |= p.regs.v[in.y]

	case opAnd:
		p.regs.v[in.x] &= p.regs.v[in.y]

	case opXor:
		p.regs.v[in.x] ^= p.regs.v[in.y]

	case opAddXY:
		sum := uint16(p.regs.v[in.x]) + uint16(p.regs.v[in.y])
		p.regs.v[in.x] = byte(sum)
		p.regs.setFlag(sum > 0xFF)

	case opSubXY:
		vx, vy := p.regs.v[in.x], p.regs.v[in.y]
		p.regs.v[in.x] = vx - vy
		p.regs.setFlag(vx >= vy)

	case opShr:
		// operates on VX only; some interpreters shift VY into VX
		dropped := p.regs.v[in.x] & 1
		p.regs.v[in.x] >>= 1
		p.regs.v[flagRegister] = dropped

	case opSubYX:
		vx, vy := p.regs.v[in.x], p.regs.v[in.y]
		p.regs.v[in.x] = vy - vx
		p.regs.setFlag(vy >= vx)

	case opShl:
		// VX only, same quirk as SHR
		dropped := p.regs.v[in.x] >> 7
		p.regs.v[in.x] <<= 1
		p.regs.v[flagRegister] = dropped

	case opSneXY:
		if p.regs.v[in.x] != p.regs.v[in.y] {
			p.pc += 2
		}

	case opLdI:
		p.regs.i = in.nnn

	case opJpV0:
		p.pc = uint16(p.regs.v[0]) + in.nnn

	case opRnd:
		p.regs.v[in.x] = p.randomByte() & in.nn

	case opDrw:
		sprite, err := p.mem.slice(p.regs.i, int(in.n))
		if err != nil {
			return err
		}
		collision := p.screen.draw(p.regs.v[in.x], p.regs.v[in.y], sprite)
		p.regs.setFlag(collision)

	case opSkp:
		if p.keys.pressed(p.regs.v[in.x]) {
			p.pc += 2
		}

	case opSknp:
		if !p.keys.pressed(p.regs.v[in.x]) {
			p.pc += 2
		}

	case opLdXDT:
		p.regs.v[in.x] = p.timers.dt

	case opLdXK:
		// busy-wait: no key held means re-fetching this instruction on
		// the next Step, so one call makes no forward progress
		if key, ok := p.keys.firstPressed(); ok {
			p.regs.v[in.x] = key
		} else {
			p.pc -= 2
		}

	case opLdDTX:
		p.timers.dt = p.regs.v[in.x]

	case opLdSTX:
		p.timers.st = p.regs.v[in.x]

	case opAddIX:
		// wraps at 16 bits
		p.regs.i += uint16(p.regs.v[in.x])

	case opLdF:
		p.regs.i = uint16(p.regs.v[in.x]) * glyphSize

	case opLdB:
		vx := p.regs.v[in.x]
		bcd := []byte{vx / 100, vx / 10 % 10, vx % 10}
		return p.mem.copyIn(p.regs.i, bcd)

	case opSaveRegs:
		return p.mem.copyIn(p.regs.i, p.regs.v[:in.x+1])

	case opLoadRegs:
		return p.mem.copyOut(p.regs.i, p.regs.v[:in.x+1])
	}

	return nil
}
