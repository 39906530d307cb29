package chip8

// NumKeys is the size of the 16-key pad.
const NumKeys = 16

// keypad is the input latch: the current held/released state of the
// 16 keys, mutated only by host key events.
type keypad struct {
	keys [NumKeys]bool
}

func (k *keypad) reset() {
	*k = keypad{}
}

// set latches a key transition. Indexes past the pad are ignored.
func (k *keypad) set(key byte, pressed bool) {
	if key < NumKeys {
		k.keys[key] = pressed
	}
}

// pressed reports whether a key is held. Indexes past the pad read as
// released, so SKP/SKNP stay total over any VX value.
func (k *keypad) pressed(key byte) bool {
	return key < NumKeys && k.keys[key]
}

// firstPressed scans the pad in index order and returns the lowest held
// key, if any. This is the poll behind the LD VX, K busy-wait.
func (k *keypad) firstPressed() (byte, bool) {
	for i, held := range k.keys {
		if held {
			return byte(i), true
		}
	}

	return 0, false
}
