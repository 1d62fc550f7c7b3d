package console

import (
	"iter"
	"maps"
	"os"

	"golang.org/x/term"
)

var _term_defines = map[string]string{
	"INTERACTIVE": "1",
}

// stdio pairs standard input and standard output into the single
// read/writer the terminal driver wants.
type stdio struct{}

func (stdio) Read(p []byte) (n int, err error) {
	return os.Stdin.Read(p)
}

func (stdio) Write(p []byte) (n int, err error) {
	return os.Stdout.Write(p)
}

// Term provides line oriented I/O on an interactive terminal. The
// terminal is held in raw mode with echo and line editing handled by
// the driver, and every read is prompted. Close restores the terminal.
type Term struct {
	Prompt string

	fd       int
	oldState *term.State
	terminal *term.Terminal
}

// NewTerm places the controlling terminal into raw mode. It fails with
// ErrNotTerminal when standard input is not a terminal.
func NewTerm(prompt string) (tc *Term, err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		err = ErrNotTerminal
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return
	}

	tc = &Term{
		Prompt:   prompt,
		fd:       fd,
		oldState: oldState,
		terminal: term.NewTerminal(stdio{}, prompt),
	}

	return
}

// Close restores the terminal to its original state. Safe to call
// more than once.
func (tc *Term) Close() (err error) {
	if tc.oldState == nil {
		return
	}

	err = term.Restore(tc.fd, tc.oldState)
	tc.oldState = nil

	return
}

// Defines returns an iter of defines for the console.
func (tc *Term) Defines() iter.Seq2[string, string] {
	return maps.All(_term_defines)
}

// ReadLine prompts for and reads a single line.
func (tc *Term) ReadLine() (line string, err error) {
	line, err = tc.terminal.ReadLine()
	return
}

// WriteLine writes a single line to the terminal. Raw mode needs the
// explicit carriage return.
func (tc *Term) WriteLine(line string) (err error) {
	_, err = tc.terminal.Write([]byte(line + "\r\n"))
	return
}

var _ Console = (*Term)(nil)
