package memory

import "github.com/valerio/go-jeebie/jeebie/bit"

// Button identifies one of the eight physical buttons on the console.
type Button uint8

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// Joypad models the P1 register's 2x4 button matrix. Button state is kept in
// the hardware's active-low polarity (bit set == released, bit clear ==
// pressed), so a register read combines it with the select bits directly.
//
// Reference: https://gbdev.io/pandocs/Joypad_Input.html
type Joypad struct {
	dpad    uint8 // bit i == 1 means button i released, matches hw polarity
	buttons uint8

	selectDpad    bool
	selectButtons bool

	// InterruptHandler is invoked on any 1->0 transition of a button line,
	// the joypad interrupt's falling-edge trigger condition.
	InterruptHandler func()
}

func NewJoypad() *Joypad {
	return &Joypad{
		dpad:    0x0F,
		buttons: 0x0F,
	}
}

// WriteSelect updates the P1 selection bits (4-5); only those are writable.
func (j *Joypad) WriteSelect(value uint8) {
	j.selectDpad = !bit.IsSet(4, value)
	j.selectButtons = !bit.IsSet(5, value)
}

// Read reconstructs the P1 register: bits 6-7 always read high, bits 4-5
// echo the current selection, bits 0-3 are the AND of whichever button
// group(s) are selected (both groups if both selection bits are active).
func (j *Joypad) Read() uint8 {
	result := uint8(0xC0)
	if !j.selectDpad {
		result |= 1 << 4
	}
	if !j.selectButtons {
		result |= 1 << 5
	}

	switch {
	case j.selectButtons && j.selectDpad:
		result |= j.buttons & j.dpad & 0x0F
	case j.selectButtons:
		result |= j.buttons & 0x0F
	case j.selectDpad:
		result |= j.dpad & 0x0F
	default:
		result |= 0x0F
	}

	return result
}

func (j *Joypad) Press(b Button) {
	before := j.dpad&j.buttons
	j.set(b, false)
	after := j.dpad&j.buttons
	if before&^after != 0 && j.InterruptHandler != nil {
		j.InterruptHandler()
	}
}

func (j *Joypad) Release(b Button) {
	j.set(b, true)
}

func (j *Joypad) set(b Button, released bool) {
	var group *uint8
	var index uint8

	switch b {
	case ButtonRight:
		group, index = &j.dpad, 0
	case ButtonLeft:
		group, index = &j.dpad, 1
	case ButtonUp:
		group, index = &j.dpad, 2
	case ButtonDown:
		group, index = &j.dpad, 3
	case ButtonA:
		group, index = &j.buttons, 0
	case ButtonB:
		group, index = &j.buttons, 1
	case ButtonSelect:
		group, index = &j.buttons, 2
	case ButtonStart:
		group, index = &j.buttons, 3
	default:
		return
	}

	if released {
		*group = bit.Set(index, *group)
	} else {
		*group = bit.Reset(index, *group)
	}
}
