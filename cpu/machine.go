package cpu

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/halfmoor/armlet/console"
)

// Console is the line I/O collaborator used by the IN and OUT
// instructions.
type Console console.Console

// Compare records the two values of the most recent CMP.
type Compare struct {
	Enabled bool // True once any CMP has executed in this run.
	A       int  // First compared value.
	B       int  // Second compared value.
}

// Machine is the simulation context for the armlet processor.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTER_COUNT]int // Register bank, R0 through R12.
	Memory   Memory              // Machine memory. Survives program loads.
	Compare  Compare             // Record of the most recent CMP.
	Pc       int                 // Current program counter.

	program *Program
	console Console
}

// NewMachine creates a new machine with zeroed memory and no program.
func NewMachine() (m *Machine) {
	m = &Machine{}

	return
}

// SetConsole attaches the console used by IN and OUT.
func (m *Machine) SetConsole(con Console) {
	m.console = con
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	for n, value := range m.Register {
		text += fmt.Sprintf("%4s: %v\n", fmt.Sprintf("R%d", n), value)
	}

	text += fmt.Sprintf("  pc: %v\n", m.Pc)

	if m.Compare.Enabled {
		text += fmt.Sprintf(" cmp: %v ? %v\n", m.Compare.A, m.Compare.B)
	} else {
		text += " cmp: none\n"
	}

	return
}

// Load installs a program, clearing the register bank, the comparison
// record, and the program counter. Memory is untouched: it belongs to
// the machine, not to the program. A nil program unloads the machine.
func (m *Machine) Load(prog *Program) {
	if m.Verbose {
		log.Printf("machine: load")
	}

	clear(m.Register[:])
	m.Compare = Compare{}
	m.Pc = 0
	m.program = prog
}

// Done reports whether the loaded program has terminated.
func (m *Machine) Done() bool {
	return m.program == nil || m.Pc >= len(m.program.Instructions)
}

// Reset rewinds the program counter and clears the comparison record.
// Registers and memory are left alone.
func (m *Machine) Reset() {
	m.Pc = 0
	m.Compare = Compare{}
}

// Run resets the program counter and the comparison record, then
// executes instructions until the program terminates or one fails.
// Machine state as of a failing instruction is left intact.
func (m *Machine) Run() (err error) {
	if m.program == nil {
		err = ErrProgramMissing
		return
	}

	m.Reset()

	for m.Pc < len(m.program.Instructions) {
		err = m.Step()
		if err != nil {
			return
		}
	}

	return
}

// Step executes the single instruction under the program counter.
// Once the program counter reaches the end of the instruction
// sequence, Step returns ErrProgramEnd.
func (m *Machine) Step() (err error) {
	if m.program == nil {
		err = ErrProgramMissing
		return
	}

	if m.Pc >= len(m.program.Instructions) {
		err = ErrProgramEnd
		return
	}

	inst := m.program.Instructions[m.Pc]

	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(inst), err)
		}
	}()

	op, argv := inst.Decode()

	if m.Verbose {
		log.Printf("%3d: %v", m.Pc, inst.Text)
	}

	if len(argv) != op.Arity() {
		err = ErrArity{Mnemonic: op, Want: op.Arity(), Got: len(argv)}
		return
	}

	next := m.Pc + 1

	switch op {
	case OP_LDR:
		var addr int
		var value int
		addr, err = m.address(argv[1])
		if err != nil {
			return
		}
		value, err = m.Memory.Load(addr)
		if err != nil {
			return
		}
		err = m.setRegister(argv[0], value)
		if err != nil {
			return
		}
	case OP_STR:
		var addr int
		var value int
		value, err = m.registerValue(argv[0])
		if err != nil {
			return
		}
		addr, err = m.address(argv[1])
		if err != nil {
			return
		}
		err = m.Memory.Store(addr, value)
		if err != nil {
			return
		}
	case OP_ADD, OP_SUB, OP_AND, OP_ORR, OP_EOR, OP_LSL, OP_LSR:
		err = m.alu(op, argv)
		if err != nil {
			return
		}
	case OP_MOV:
		var value int
		value, err = m.value(argv[1])
		if err != nil {
			return
		}
		err = m.setRegister(argv[0], value)
		if err != nil {
			return
		}
	case OP_MVN:
		var value int
		value, err = m.value(argv[1])
		if err != nil {
			return
		}
		err = m.setRegister(argv[0], ^value)
		if err != nil {
			return
		}
	case OP_CMP:
		var a int
		var b int
		a, err = m.registerValue(argv[0])
		if err != nil {
			return
		}
		b, err = m.value(argv[1])
		if err != nil {
			return
		}
		m.Compare = Compare{Enabled: true, A: a, B: b}
	case OP_B, OP_BEQ, OP_BNE, OP_BGT, OP_BLT:
		next, err = m.branch(op, argv[0], next)
		if err != nil {
			return
		}
	case OP_IN:
		err = m.input(argv[0])
		if err != nil {
			return
		}
	case OP_OUT:
		err = m.output(argv[0])
		if err != nil {
			return
		}
	case OP_HALT:
		// Terminate by walking off the end of the program.
		next = len(m.program.Instructions)
	}

	m.Pc = next

	return
}

// branch resolves a branch target and decides whether to take it.
// A conditional branch consults the comparison record, which must
// hold a CMP from the current run.
func (m *Machine) branch(op Mnemonic, label string, next int) (target int, err error) {
	target = next

	index, err := m.program.Target(label)
	if err != nil {
		return
	}

	if op == OP_B {
		target = index
		return
	}

	if !m.Compare.Enabled {
		err = ErrCompareMissing
		return
	}

	var taken bool
	switch op {
	case OP_BEQ:
		taken = m.Compare.A == m.Compare.B
	case OP_BNE:
		taken = m.Compare.A != m.Compare.B
	case OP_BGT:
		taken = m.Compare.A > m.Compare.B
	case OP_BLT:
		taken = m.Compare.A < m.Compare.B
	}

	if taken {
		target = index
	}

	return
}

// alu executes a three-argument arithmetic or logic instruction.
func (m *Machine) alu(op Mnemonic, argv []string) (err error) {
	input, err := m.registerValue(argv[1])
	if err != nil {
		return
	}

	value, err := m.value(argv[2])
	if err != nil {
		return
	}

	output, err := doAlu(op, input, value)
	if err != nil {
		return
	}

	err = m.setRegister(argv[0], output)

	return
}

// doAlu performs the requested ALU action, and returns the output value.
func doAlu(op Mnemonic, input int, value int) (output int, err error) {
	switch op {
	case OP_ADD:
		output = input + value
	case OP_SUB:
		output = input - value
	case OP_AND:
		output = input & value
	case OP_ORR:
		output = input | value
	case OP_EOR:
		output = input ^ value
	case OP_LSL, OP_LSR:
		if value < 0 {
			err = ErrShiftNegative
			return
		}
		if op == OP_LSL {
			output = input << value
		} else {
			output = input >> value
		}
	}

	return
}

// input reads a console line and parses it into a register.
func (m *Machine) input(token string) (err error) {
	if m.console == nil {
		err = ErrConsoleMissing
		return
	}

	line, err := m.console.ReadLine()
	if err != nil {
		return
	}

	text := strings.TrimSpace(line)
	value, nerr := strconv.Atoi(text)
	if nerr != nil {
		err = ErrParseNumber(text)
		return
	}

	err = m.setRegister(token, value)

	return
}

// output writes a register's value to the console.
func (m *Machine) output(token string) (err error) {
	if m.console == nil {
		err = ErrConsoleMissing
		return
	}

	value, err := m.registerValue(token)
	if err != nil {
		return
	}

	err = m.console.WriteLine(fmt.Sprintf("%v", value))

	return
}
