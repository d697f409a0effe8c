package gb

import (
	"fmt"
	"io"
	"os"

	"github.com/jyane/jgb/diag"
)

// LoadRAM fills the external RAM from r. A short save is accepted, the rest
// of the RAM keeps its contents.
func (c *Cartridge) LoadRAM(r io.Reader) error {
	n, err := io.ReadFull(r, c.ram)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("failed to load cartridge RAM: %w", err)
	}
	if n < len(c.ram) {
		diag.Logf(c.diag, "battery", "save is shorter than RAM: got=%d, want=%d", n, len(c.ram))
	}
	return nil
}

// SaveRAM writes the external RAM to w.
func (c *Cartridge) SaveRAM(w io.Writer) error {
	if _, err := w.Write(c.ram); err != nil {
		return fmt.Errorf("failed to save cartridge RAM: %w", err)
	}
	return nil
}

// LoadRAMFile loads a battery save. A missing file is not an error, the
// game simply starts without one.
func (c *Cartridge) LoadRAMFile(path string) error {
	if !c.HasBattery() {
		return nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	return c.LoadRAM(f)
}

// SaveRAMFile writes a battery save, cartridges without a battery are
// skipped.
func (c *Cartridge) SaveRAMFile(path string) error {
	if !c.HasBattery() {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.SaveRAM(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
