package console

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
)

var _tape_defines = map[string]string{
	"INTERACTIVE": "0",
}

// Tape provides line oriented I/O over plain byte streams. It wraps an
// io.Reader for input and an io.Writer for output, so programs can run
// against files, pipes, or in-memory buffers.
type Tape struct {
	Input  io.Reader // Input stream. A nil Input reads as empty.
	Output io.Writer // Output stream. A nil Output discards writes.

	scanner *bufio.Scanner
}

// Defines returns an iter of defines for the console.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(_tape_defines)
}

// ReadLine reads the next line from the input stream. An exhausted
// input reports io.EOF.
func (tc *Tape) ReadLine() (line string, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		return
	}

	line = tc.scanner.Text()

	return
}

// WriteLine writes a single line to the output stream.
func (tc *Tape) WriteLine(line string) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintln(tc.Output, line)

	return
}

var _ Console = (*Tape)(nil)
