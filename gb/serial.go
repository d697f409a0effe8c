package gb

import (
	"io"

	"github.com/jyane/jgb/diag"
)

// Serial is the link port. Nothing is ever plugged in: a transfer started
// with the internal clock completes at once, shifts in 0xFF and the sent
// byte goes to out. Test ROMs report their results this way.
// Reference: https://gbdev.io/pandocs/Serial_Data_Transfer_(Link_Cable).html
type Serial struct {
	sb         byte
	sc         byte
	out        io.Writer
	interrupts *interrupts
	diag       diag.Sink
}

func NewSerial(out io.Writer, interrupts *interrupts, d diag.Sink) *Serial {
	return &Serial{out: out, interrupts: interrupts, diag: d}
}

func (s *Serial) Reset() {
	s.sb = 0
	s.sc = 0
}

func (s *Serial) read(address uint16) byte {
	if address == 0xFF01 {
		return s.sb
	}
	return 0x7E | s.sc
}

func (s *Serial) write(address uint16, data byte) {
	if address == 0xFF01 {
		s.sb = data
		return
	}
	s.sc = data & 0x81
	if s.sc == 0x81 {
		s.transfer()
	}
}

func (s *Serial) transfer() {
	if s.out != nil {
		if _, err := s.out.Write([]byte{s.sb}); err != nil {
			diag.Logf(s.diag, "serial", "failed to write: %v", err)
		}
	}
	s.sb = 0xFF
	s.sc &^= 0x80
	s.interrupts.request(intSerial)
}
