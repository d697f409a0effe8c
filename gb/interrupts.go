package gb

// Interrupt sources, the bit number in IE and IF is also the priority.
// Reference: https://gbdev.io/pandocs/Interrupts.html
const (
	intVBlank = iota
	intLCDStat
	intTimer
	intSerial
	intJoypad
)

var interruptNames = [5]string{"VBlank", "STAT", "Timer", "Serial", "Joypad"}

// interrupts holds IE (0xFFFF) and IF (0xFF0F).
type interrupts struct {
	enable byte
	flag   byte
}

func (i *interrupts) request(bit int) {
	i.flag |= 1 << bit
}

func (i *interrupts) acknowledge(bit int) {
	i.flag &^= 1 << bit
}

// pending returns the requested and enabled interrupts.
func (i *interrupts) pending() byte {
	return i.enable & i.flag & 0x1F
}

// highest returns the pending interrupt with the highest priority.
func (i *interrupts) highest() (int, bool) {
	p := i.pending()
	for bit := intVBlank; bit <= intJoypad; bit++ {
		if p&(1<<bit) != 0 {
			return bit, true
		}
	}
	return 0, false
}

func interruptVector(bit int) uint16 {
	return 0x0040 + uint16(bit)*8
}
