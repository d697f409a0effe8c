package wavwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w := New(path, 44100)
	w.AddSample(0.5, -0.5)
	w.AddSample(2, -2)
	w.AddSample(0, 0)
	assert.Equal(t, 3, w.Len())
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, uint16(2), dec.NumChans)
	assert.Equal(t, uint32(44100), dec.SampleRate)
	assert.Equal(t, uint16(16), dec.BitDepth)
	assert.Equal(t, []int{16383, -16383, 32767, -32767, 0, 0}, buf.Data)
}

func TestWavWriterBadPath(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "out.wav"), 44100)
	assert.Error(t, w.Close())
}
