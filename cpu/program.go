package cpu

import (
	"iter"
	"slices"
	"strings"
)

// Instruction is one loaded instruction line. Its arguments stay
// embedded in Text and are parsed again on every execution.
type Instruction struct {
	LineNo   int      // 1-based source line the instruction came from.
	Text     string   // Trimmed instruction text.
	Mnemonic Mnemonic // Leading mnemonic, validated at load.
}

// Decode returns the instruction's mnemonic and its comma-separated
// argument tokens, with all internal whitespace removed.
func (inst *Instruction) Decode() (op Mnemonic, argv []string) {
	op = inst.Mnemonic

	fields := strings.Fields(inst.Text)
	if len(fields) == 0 {
		return
	}

	rest := strings.Join(fields[1:], "")
	if len(rest) != 0 {
		argv = strings.Split(rest, ",")
	}

	return
}

// Program is a loaded, label-resolved instruction sequence. An
// instruction's position in the sequence is its address: branch
// targets and the program counter both hold such positions.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}

// Target resolves a branch label to its instruction index.
func (prog *Program) Target(label string) (index int, err error) {
	index, ok := prog.Labels[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	return
}

// LineNo returns the 1-based source line of the instruction at index,
// or 0 when index is out of range.
func (prog *Program) LineNo(index int) int {
	if index < 0 || index >= len(prog.Instructions) {
		return 0
	}

	return prog.Instructions[index].LineNo
}

// labelsAt returns the labels declared at an instruction index, sorted.
func (prog *Program) labelsAt(index int) (labels []string) {
	for label, at := range prog.Labels {
		if at == index {
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)

	return
}

// Listing returns the program as assembly text, labels restored to
// their declaration points. Labels recorded past the last instruction
// appear at the end.
func (prog *Program) Listing() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for index := 0; index <= len(prog.Instructions); index++ {
			for _, label := range prog.labelsAt(index) {
				if !yield(label + ":") {
					return
				}
			}

			if index == len(prog.Instructions) {
				return
			}

			if !yield("\t" + prog.Instructions[index].Text) {
				return
			}
		}
	}
}
