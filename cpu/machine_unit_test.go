package cpu

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoor/armlet/console"
)

var _ = Describe("Machine", func() {
	var m *Machine

	load := func(lines ...string) {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
		Expect(err).ToNot(HaveOccurred())
		m.Load(prog)
	}

	step := func(count int) {
		for range count {
			Expect(m.Step()).To(Succeed())
		}
	}

	BeforeEach(func() {
		m = NewMachine()
	})

	Context("Data movement", func() {
		Describe("MOV", func() {
			It("moves an immediate into a register", func() {
				load("MOV R4, #12")
				step(1)
				Expect(m.Register[4]).To(Equal(12))
			})

			It("moves a register into a register", func() {
				load("MOV R1, R0")
				m.Register[0] = -3
				step(1)
				Expect(m.Register[1]).To(Equal(-3))
			})

			It("accepts a negative immediate", func() {
				load("MOV R0, #-12")
				step(1)
				Expect(m.Register[0]).To(Equal(-12))
			})
		})

		Describe("LDR/STR", func() {
			It("stores to and loads from a direct address", func() {
				load(
					"STR R0, 100",
					"LDR R1, 100",
				)
				m.Register[0] = 77
				step(2)
				Expect(m.Register[1]).To(Equal(77))
			})

			It("stores to and loads from a register address", func() {
				load(
					"STR R1, R0",
					"LDR R2, R0",
				)
				m.Register[0] = 100
				m.Register[1] = 55
				step(2)
				Expect(m.Register[2]).To(Equal(55))
			})

			It("addresses the last memory cell", func() {
				load(
					"STR R0, 255",
					"LDR R1, 255",
				)
				m.Register[0] = 1
				step(2)
				Expect(m.Register[1]).To(Equal(1))
			})
		})
	})

	Context("Arithmetic", func() {
		Describe("ADD", func() {
			It("adds a register and an immediate", func() {
				load("ADD R0, R1, #3")
				m.Register[1] = 5
				step(1)
				Expect(m.Register[0]).To(Equal(8))
			})

			It("adds two registers", func() {
				load("ADD R2, R0, R1")
				m.Register[0] = 20
				m.Register[1] = 22
				step(1)
				Expect(m.Register[2]).To(Equal(42))
			})

			It("may reuse the destination as a source", func() {
				load("ADD R0, R0, R0")
				m.Register[0] = 21
				step(1)
				Expect(m.Register[0]).To(Equal(42))
			})
		})

		Describe("SUB", func() {
			It("subtracts below zero", func() {
				load("SUB R0, R1, #10")
				m.Register[1] = 3
				step(1)
				Expect(m.Register[0]).To(Equal(-7))
			})
		})
	})

	Context("Comparison and branches", func() {
		It("branches unconditionally without a comparison", func() {
			load(
				"B over",
				"MOV R0, #9",
				"over:",
			)
			Expect(m.Run()).To(Succeed())
			Expect(m.Register[0]).To(Equal(0))
		})

		It("takes BEQ when the comparison was equal", func() {
			load(
				"CMP R0, #0",
				"BEQ done",
				"MOV R1, #1",
				"done:",
			)
			Expect(m.Run()).To(Succeed())
			Expect(m.Register[1]).To(Equal(0))
		})

		It("falls through BEQ when the comparison was unequal", func() {
			load(
				"CMP R0, #1",
				"BEQ done",
				"MOV R1, #1",
				"done:",
			)
			Expect(m.Run()).To(Succeed())
			Expect(m.Register[1]).To(Equal(1))
		})

		It("takes BNE when the comparison was unequal", func() {
			load(
				"CMP R0, #1",
				"BNE done",
				"MOV R1, #1",
				"done:",
			)
			Expect(m.Run()).To(Succeed())
			Expect(m.Register[1]).To(Equal(0))
		})

		It("takes BGT when the left side was greater", func() {
			load(
				"CMP R0, #1",
				"BGT big",
				"MOV R1, #1",
				"big:",
			)
			m.Register[0] = 5
			Expect(m.Run()).To(Succeed())
			Expect(m.Register[1]).To(Equal(0))
		})

		It("takes BLT when the left side was smaller", func() {
			load(
				"CMP R0, #1",
				"BLT small",
				"MOV R1, #1",
				"small:",
			)
			m.Register[0] = -5
			Expect(m.Run()).To(Succeed())
			Expect(m.Register[1]).To(Equal(0))
		})

		It("loops on a backward branch", func() {
			load(
				"MOV R0, #0",
				"loop:",
				"ADD R0, R0, #1",
				"CMP R0, #3",
				"BLT loop",
			)
			Expect(m.Run()).To(Succeed())
			Expect(m.Register[0]).To(Equal(3))
		})

		It("terminates on a branch to the end of the program", func() {
			load(
				"B end",
				"MOV R0, #1",
				"end:",
			)
			Expect(m.Run()).To(Succeed())
			Expect(m.Done()).To(BeTrue())
			Expect(m.Register[0]).To(Equal(0))
		})

		It("rejects a conditional branch before any CMP", func() {
			load(
				"BEQ done",
				"done:",
			)
			Expect(m.Run()).To(MatchError(ErrCompareMissing))
		})
	})

	Context("Bitwise", func() {
		It("AND masks bits", func() {
			load("AND R0, R1, #3")
			m.Register[1] = 6
			step(1)
			Expect(m.Register[0]).To(Equal(2))
		})

		It("ORR merges bits", func() {
			load("ORR R0, R1, #3")
			m.Register[1] = 6
			step(1)
			Expect(m.Register[0]).To(Equal(7))
		})

		It("EOR toggles bits", func() {
			load("EOR R0, R1, #3")
			m.Register[1] = 6
			step(1)
			Expect(m.Register[0]).To(Equal(5))
		})

		It("MVN writes the bitwise complement", func() {
			load("MVN R0, #5")
			step(1)
			Expect(m.Register[0]).To(Equal(-6))
		})

		It("MVN complements a register value", func() {
			load("MVN R0, R1")
			m.Register[1] = -1
			step(1)
			Expect(m.Register[0]).To(Equal(0))
		})

		It("LSL shifts left", func() {
			load("LSL R0, R1, #2")
			m.Register[1] = 3
			step(1)
			Expect(m.Register[0]).To(Equal(12))
		})

		It("LSR shifts right", func() {
			load("LSR R0, R1, #2")
			m.Register[1] = 12
			step(1)
			Expect(m.Register[0]).To(Equal(3))
		})

		It("LSR keeps the sign of negative values", func() {
			load("LSR R0, R1, #1")
			m.Register[1] = -8
			step(1)
			Expect(m.Register[0]).To(Equal(-4))
		})

		It("shifts by a register count", func() {
			load("LSL R0, R1, R2")
			m.Register[1] = 1
			m.Register[2] = 4
			step(1)
			Expect(m.Register[0]).To(Equal(16))
		})
	})

	Context("Console", func() {
		It("IN reads one integer per line", func() {
			m.SetConsole(&console.Tape{Input: strings.NewReader("7\n9\n")})
			load(
				"IN R0",
				"IN R1",
			)
			step(2)
			Expect(m.Register[0]).To(Equal(7))
			Expect(m.Register[1]).To(Equal(9))
		})

		It("OUT writes the value as a decimal line", func() {
			output := &bytes.Buffer{}
			m.SetConsole(&console.Tape{Output: output})
			load("OUT R0")
			m.Register[0] = -5
			step(1)
			Expect(output.String()).To(Equal("-5\n"))
		})
	})

	Context("HALT", func() {
		It("terminates in the middle of a program", func() {
			load(
				"MOV R0, #1",
				"HALT",
				"MOV R1, #2",
			)
			Expect(m.Run()).To(Succeed())
			Expect(m.Done()).To(BeTrue())
			Expect(m.Pc).To(Equal(3))
			Expect(m.Register[1]).To(Equal(0))
		})
	})
})
