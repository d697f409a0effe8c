package gb

// Reference:
//   https://gbdev.io/pandocs/Joypad_Input.html

type button int

// Joypad buttons. The first four are read through the action select line and
// the last four through the direction select line, in bit order.
const (
	ButtonA button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
)

const (
	selectDirection byte = 1 << 4
	selectAction    byte = 1 << 5
)

type Joypad struct {
	buttons    [8]bool
	selection  byte // bits 4-5 of P1, 0 means selected
	interrupts *interrupts
}

func NewJoypad(interrupts *interrupts) *Joypad {
	j := &Joypad{interrupts: interrupts}
	j.Reset()
	return j
}

func (j *Joypad) Reset() {
	j.buttons = [8]bool{}
	j.selection = selectAction | selectDirection
}

// Set sets the pressed buttons, pressing any button requests the joypad
// interrupt.
func (j *Joypad) Set(buttons [8]bool) {
	for i := range buttons {
		if buttons[i] && !j.buttons[i] {
			j.interrupts.request(intJoypad)
			break
		}
	}
	j.buttons = buttons
}

// read reads P1 (0xFF00), pressed buttons read as 0.
func (j *Joypad) read() byte {
	state := byte(0x0F)
	if j.selection&selectAction == 0 {
		state &^= j.nibble(ButtonA)
	}
	if j.selection&selectDirection == 0 {
		state &^= j.nibble(ButtonRight)
	}
	return 0xC0 | j.selection | state
}

// nibble returns the four buttons starting at first, 1 means pressed.
func (j *Joypad) nibble(first button) byte {
	var x byte
	for i := 0; i < 4; i++ {
		if j.buttons[int(first)+i] {
			x |= 1 << i
		}
	}
	return x
}

// write writes the select lines.
func (j *Joypad) write(data byte) {
	j.selection = data & (selectAction | selectDirection)
}
