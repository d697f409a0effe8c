package gb

import "fmt"

// Timer implements DIV, TIMA, TMA and TAC.
// DIV is the upper byte of a 16-bit counter running at the CPU clock. TIMA
// counts the falling edges of one bit of that counter, selected by TAC.
// Reference: https://gbdev.io/pandocs/Timer_and_Divider_Registers.html
type Timer struct {
	counter    uint16
	tima       byte
	tma        byte
	tac        byte
	interrupts *interrupts
}

// Counter bit watched for each TAC clock select, giving periods of 1024, 16,
// 64 and 256 cycles.
var timerBits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

func NewTimer(interrupts *interrupts) *Timer {
	return &Timer{interrupts: interrupts}
}

func (t *Timer) Reset() {
	t.counter = 0
	t.tima = 0
	t.tma = 0
	t.tac = 0
}

// Advance runs the timer for cycles T-cycles.
func (t *Timer) Advance(cycles int) {
	for i := 0; i < cycles; i++ {
		prev := t.counter
		t.counter++
		if t.tac&0x04 == 0 {
			continue
		}
		bit := timerBits[t.tac&0x03]
		if prev&bit != 0 && t.counter&bit == 0 {
			t.incrementTIMA()
		}
	}
}

func (t *Timer) incrementTIMA() {
	if t.tima == 0xFF {
		t.tima = t.tma
		t.interrupts.request(intTimer)
		return
	}
	t.tima++
}

func (t *Timer) read(address uint16) byte {
	switch address {
	case 0xFF04:
		return byte(t.counter >> 8)
	case 0xFF05:
		return t.tima
	case 0xFF06:
		return t.tma
	default:
		return 0xF8 | t.tac
	}
}

func (t *Timer) write(address uint16, data byte) {
	switch address {
	case 0xFF04:
		// Any write resets the whole counter.
		t.counter = 0
	case 0xFF05:
		t.tima = data
	case 0xFF06:
		t.tma = data
	default:
		t.tac = data & 0x07
	}
}

func (t *Timer) String() string {
	return fmt.Sprintf("DIV=0x%02x, TIMA=0x%02x, TMA=0x%02x, TAC=0x%02x", byte(t.counter>>8), t.tima, t.tma, t.tac)
}
