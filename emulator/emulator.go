// Package emulator binds a machine, an assembler, and a console into a
// runnable armlet system.
package emulator

import (
	"errors"
	"io"
	"iter"

	"github.com/halfmoor/armlet/console"
	"github.com/halfmoor/armlet/cpu"
	"github.com/halfmoor/armlet/internal"
)

// Emulator state. Machine + assembler + console.
type Emulator struct {
	Verbose      bool         // If set, enables verbose logging.
	*cpu.Machine              // Reference to the machine simulation.
	Program      *cpu.Program // Reference to the currently loaded program listing.

	Console console.Console // Console for the IN and OUT instructions.

	asm cpu.Assembler
}

// NewEmulator creates a new emulator around a console. A nil console
// is allowed; IN and OUT then fail at run time.
func NewEmulator(con console.Console) (emu *Emulator) {
	emu = &Emulator{
		Machine: cpu.NewMachine(),
		Program: &cpu.Program{},
		Console: con,
	}

	emu.Machine.SetConsole(con)

	// Seed the assembler with the machine and console defines.
	for equ, value := range emu.Defines() {
		emu.asm.Predefine(equ, value)
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	seqs := []iter.Seq2[string, string]{emu.Machine.Defines()}
	if emu.Console != nil {
		seqs = append(seqs, emu.Console.Defines())
	}

	return internal.IterSeq2Concat(seqs...)
}

// Close releases the emulator's console.
func (emu *Emulator) Close() (err error) {
	closer, ok := emu.Console.(io.Closer)
	if ok {
		err = closer.Close()
	}

	return
}

// Load assembles a program from the input stream and loads it into the
// machine. Any previously loaded program is discarded, even when
// assembly fails.
func (emu *Emulator) Load(input io.Reader) (err error) {
	emu.asm.Verbose = emu.Verbose

	emu.Program = &cpu.Program{}
	emu.Machine.Load(nil)

	prog, err := emu.asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Machine.Load(prog)

	return
}

// LineNo returns the source line number of the instruction the machine
// will execute next.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Machine.Pc)
}

// Tick executes a single instruction of the loaded program.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Machine.Step()
	if errors.Is(err, cpu.ErrProgramEnd) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Machine.Done()

	return
}

// Run executes the loaded program from the beginning until it
// terminates or an instruction fails.
func (emu *Emulator) Run() (err error) {
	emu.Machine.Reset()

	for {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}
