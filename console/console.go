// Package console provides line oriented console implementations for
// the armlet machine. It includes a stream backed console (Tape) for
// redirected and scripted I/O, and an interactive raw mode terminal
// console (Term) with prompting and line editing.
package console

import (
	"iter"
)

// Console defines the interface for all machine consoles. Consoles
// operate at the line level: one ReadLine per IN instruction, one
// WriteLine per OUT instruction.
type Console interface {
	// ReadLine reads a single line of input, without its line ending.
	ReadLine() (line string, err error)
	// WriteLine writes a single line of output, adding a line ending.
	WriteLine(line string) error
	// Defines returns an iter of defines for the console.
	Defines() iter.Seq2[string, string]
}
