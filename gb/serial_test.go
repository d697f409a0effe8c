package gb

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyane/jgb/diag"
)

func TestSerialTransfer(t *testing.T) {
	var out bytes.Buffer
	irq := &interrupts{}
	s := NewSerial(&out, irq, diag.Discard)
	for _, b := range []byte("OK") {
		s.write(0xFF01, b)
		s.write(0xFF02, 0x81)
		assert.Equal(t, byte(0xFF), s.read(0xFF01))
		assert.Equal(t, byte(0x7F), s.read(0xFF02))
	}
	assert.Equal(t, "OK", out.String())
	assert.Equal(t, byte(1<<intSerial), irq.flag)
}

func TestSerialExternalClock(t *testing.T) {
	var out bytes.Buffer
	irq := &interrupts{}
	s := NewSerial(&out, irq, diag.Discard)
	s.write(0xFF01, 'X')
	s.write(0xFF02, 0x80)
	assert.Equal(t, byte(0xFE), s.read(0xFF02))
	assert.Equal(t, byte('X'), s.read(0xFF01))
	assert.Zero(t, out.Len())
	assert.Equal(t, byte(0), irq.flag)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken")
}

func TestSerialWriteFailure(t *testing.T) {
	log := diag.NewLog(10)
	s := NewSerial(brokenWriter{}, &interrupts{}, log)
	s.write(0xFF02, 0x81)
	require.Equal(t, 1, log.Len())
	assert.Equal(t, "serial", log.Entries()[0].Tag)
}

func TestSerialWithoutOutput(t *testing.T) {
	irq := &interrupts{}
	s := NewSerial(nil, irq, nil)
	s.write(0xFF01, 'A')
	s.write(0xFF02, 0x81)
	assert.Equal(t, byte(1<<intSerial), irq.flag)
}
