package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halfmoor/armlet/console"
)

func FuzzMachine(f *testing.F) {
	f.Add("MOV R0, #3\nOUT R0\nHALT", "")
	f.Add("loop:\nADD R0, R0, #1\nCMP R0, #3\nBLT loop", "")
	f.Add("IN R0\nIN R1\nADD R2, R0, R1\nOUT R2", "2\n3\n")
	f.Add(".equ TOP, 255\nSTR R0, TOP\nLDR R1, TOP", "")
	f.Add("MOV R0, #$(2 ** 8)\nB fin\nfin:", "")
	f.Add("DUP:\nDUP:", "")
	f.Add("\x00\xff", "")

	f.Fuzz(func(t *testing.T, program string, input string) {
		assert := assert.New(t)

		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(program))
		if err != nil {
			assert.Nil(prog)
			return
		}

		m := NewMachine()
		m.SetConsole(&console.Tape{Input: strings.NewReader(input)})
		m.Load(prog)

		// Fuzzed programs may loop forever; bound the run.
		for range 1000 {
			err = m.Step()
			if err != nil {
				break
			}

			assert.GreaterOrEqual(m.Pc, 0)
			assert.LessOrEqual(m.Pc, len(prog.Instructions))

			if m.Done() {
				break
			}
		}

		assert.GreaterOrEqual(m.Pc, 0)
		assert.LessOrEqual(m.Pc, len(prog.Instructions))
	})
}
