package gb

// RAM is a plain block of memory, used for work RAM, high RAM, video RAM and
// OAM.
type RAM struct {
	data []byte
}

// NewRAM creates a RAM of size bytes.
func NewRAM(size int) *RAM {
	return &RAM{data: make([]byte, size)}
}

// read reads data
func (r *RAM) read(address uint16) byte {
	return r.data[address]
}

// write writes data
func (r *RAM) write(address uint16, x byte) {
	r.data[address] = x
}

func (r *RAM) clear() {
	for i := range r.data {
		r.data[i] = 0
	}
}
