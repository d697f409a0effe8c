package gb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jyane/jgb/diag"
)

// DebugConsole a Game Boy console for debugging, you can execute some
// commands through a reader and a writer.
// commands:
//   s [N|Ns|Nd]:
//     execute step(s), Ns runs N emulated seconds, Nd prints after each step.
//   p [cpu|ppu|apu|cart|timer|stack]:
//     print.
//   br 0xADDR:
//     set a break point.
//   log [N]:
//     print the last diagnostics.
//   viz FILE:
//     write a graphviz dot of the registers.
//   r:
//     reset.
//   q:
//     quit.
type DebugConsole struct {
	*Console
	log         *diag.Log
	breakpoints []uint16
	out         io.Writer
}

var stepArg = regexp.MustCompile("^([0-9]+)([sd]?)$")

// NewDebugConsole wraps a console, log receives the console diagnostics and
// may be nil.
func NewDebugConsole(c *Console, log *diag.Log) *DebugConsole {
	return &DebugConsole{Console: c, log: log, out: io.Discard}
}

// Run reads commands from in until q or the end of the input. Emulation
// errors are returned.
func (c *DebugConsole) Run(in io.Reader, out io.Writer) error {
	c.out = out
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Debugger mode, 'q' to quit \n>> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		quit, err := c.execute(args)
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(out, "Quitting.")
			return nil
		}
	}
}

func (c *DebugConsole) execute(args []string) (bool, error) {
	switch args[0] {
	case "p", "print":
		c.printCommand(args)
	case "s", "step":
		cycles, err := c.stepCommand(args)
		c.basePrint() // Print data before it die.
		if err != nil {
			return false, err
		}
		fmt.Fprintf(c.out, "Executed %d cycles.\n", cycles)
	case "br", "breakpoint":
		c.breakPointCommand(args)
	case "log":
		c.logCommand(args)
	case "viz":
		c.vizCommand(args)
	case "r", "reset":
		c.Reset()
	case "q", "quit":
		return true, nil
	default:
		fmt.Fprintf(c.out, "Unknown command %s\n", strings.Join(args, " "))
	}
	return false, nil
}

func (c *DebugConsole) basePrint() {
	_, frame := c.PPU.Frame()
	fmt.Fprintln(c.out, "--------------------------------------------------")
	fmt.Fprintf(c.out, "Executed cycles: %d\n", c.cycles)
	fmt.Fprintf(c.out, "Rendered frame: %d\n", frame)
	fmt.Fprintln(c.out, "Last: "+c.CPU.LastExecution())
	fmt.Fprintf(c.out, "CPU: %s, IME=%t, HALT=%t\n", c.CPU.Registers.String(), c.CPU.ime, c.CPU.halted)
	fmt.Fprintf(c.out, "PPU: %s\n", c.PPU)
}

func (c *DebugConsole) printCommand(args []string) {
	if len(args) < 2 {
		c.basePrint()
		return
	}
	switch args[1] {
	case "c", "cpu":
		fmt.Fprintf(c.out, "%s, IME=%t, HALT=%t, IE=0x%02x, IF=0x%02x\n",
			c.CPU.Registers.String(), c.CPU.ime, c.CPU.halted, c.interrupts.enable, c.interrupts.flag)
	case "p", "ppu":
		fmt.Fprintln(c.out, c.PPU)
	case "a", "apu":
		fmt.Fprintln(c.out, c.APU)
	case "ca", "cart", "cartridge":
		fmt.Fprintln(c.out, c.cartridge)
	case "t", "timer":
		fmt.Fprintln(c.out, c.Timer)
	case "st", "stack":
		c.printStack()
	default:
		fmt.Fprintf(c.out, "Unknown target %s\n", args[1])
	}
}

// printStack prints 32 bytes from SP.
func (c *DebugConsole) printStack() {
	for i := 0; i < 32; i++ {
		address := c.CPU.SP + uint16(i)
		if address < c.CPU.SP {
			break
		}
		fmt.Fprintf(c.out, "0x%04x: 0x%02x, ", address, c.bus.read(address))
		if i%8 == 7 {
			fmt.Fprintln(c.out)
		}
	}
	fmt.Fprintln(c.out)
}

func (c *DebugConsole) checkBreak() bool {
	for _, b := range c.breakpoints {
		if b == c.CPU.PC {
			fmt.Fprintf(c.out, "Break at: 0x%04x\n", b)
			return true
		}
	}
	return false
}

func (c *DebugConsole) stepCommand(args []string) (int, error) {
	if len(args) < 2 {
		return c.Step()
	}
	m := stepArg.FindStringSubmatch(args[1])
	if m == nil {
		fmt.Fprintf(c.out, "Invalid step count %s\n", args[1])
		return 0, nil
	}
	num, _ := strconv.Atoi(m[1])
	cycles := 0
	switch m[2] {
	case "s":
		// s means emulated seconds, about 60 frames each.
		steps := CPUFrequency * num
		for cycles < steps {
			v, err := c.Step()
			cycles += v
			if err != nil {
				return cycles, err
			}
			if c.checkBreak() {
				return cycles, nil
			}
		}
	case "d":
		// debug -> steps with debug messages.
		for i := 0; i < num; i++ {
			v, err := c.Step()
			c.basePrint()
			cycles += v
			if err != nil {
				return cycles, err
			}
			if c.checkBreak() {
				return cycles, nil
			}
		}
	default:
		for i := 0; i < num; i++ {
			v, err := c.Step()
			cycles += v
			if err != nil {
				return cycles, err
			}
			if c.checkBreak() {
				return cycles, nil
			}
		}
	}
	return cycles, nil
}

func (c *DebugConsole) breakPointCommand(args []string) {
	if len(args) < 2 {
		for _, b := range c.breakpoints {
			fmt.Fprintf(c.out, "0x%04x\n", b)
		}
		return
	}
	var address uint16
	if _, err := fmt.Sscanf(args[1], "0x%x", &address); err != nil {
		fmt.Fprintf(c.out, "Invalid address %s\n", args[1])
		return
	}
	c.breakpoints = append(c.breakpoints, address)
}

func (c *DebugConsole) logCommand(args []string) {
	if c.log == nil {
		fmt.Fprintln(c.out, "No diagnostics log.")
		return
	}
	n := 20
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil {
			n = v
		}
	}
	c.log.Tail(c.out, n)
}

func (c *DebugConsole) vizCommand(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "Usage: viz FILE")
		return
	}
	f, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintf(c.out, "Failed to create %s: %v\n", args[1], err)
		return
	}
	defer f.Close()
	memviz.Map(f, &c.CPU.Registers, c.Timer, c.Joypad)
	fmt.Fprintf(c.out, "Wrote %s\n", args[1])
}
