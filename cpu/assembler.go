package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	COMMENT_MARK = "//"   // Leading marker of a comment line.
	EQUATE_MARK  = ".equ" // Leading token of an equate directive.
	LABEL_MARK   = ":"    // Trailing marker of a label declaration.
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass loader for the armlet assembly dialect.
// Mnemonic lines are stored with their arguments still embedded; only
// labels, equates, and compile-time expressions are resolved here.
type Assembler struct {
	Verbose     bool              // If set, verbosely logs the assembler actions.
	Instruction []Instruction     // List of loaded instructions.
	Label       map[string]int    // Map of branch labels to instruction indexes.
	Equate      map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a name visible to equate substitution and
// compile-time expressions before parsing begins.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, verr := strconv.ParseInt(str, 0, 64)
		if verr != nil {
			// Ignore non-integer equates. They may be mnemonics,
			// registers, or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// expand does $() evaluations on a line.
func (asm *Assembler) expand(line string, lineno int) (out string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	out = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})

	return
}

// substitute applies equates, token by token. Operand tokens attach to
// commas, so each comma-separated piece substitutes on its own.
func (asm *Assembler) substitute(fields []string) string {
	for n, field := range fields {
		parts := strings.Split(field, ",")
		for i, part := range parts {
			equate, ok := asm.Equate[part]
			if ok {
				parts[i] = equate
			}
		}
		fields[n] = strings.Join(parts, ",")
	}

	return strings.Join(fields, " ")
}

// equ records a ".equ NAME, TEXT" equate directive.
func (asm *Assembler) equ(args []string) (err error) {
	parts := strings.Split(strings.Join(args, ""), ",")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		err = ErrEquateSyntax
		return
	}

	_, ok := asm.Equate[parts[0]]
	if ok {
		err = ErrEquateDuplicate
		return
	}

	asm.Equate[parts[0]] = parts[1]

	return
}

// Parse loads an input stream into a Program, or fails with the first
// load-time error. Any state from a prior parse is discarded.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)
	asm.Instruction = asm.Instruction[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		trimmed := strings.TrimSpace(line)

		// Blank and comment lines still count toward line numbers.
		if trimmed == "" || strings.HasPrefix(trimmed, COMMENT_MARK) {
			continue
		}

		trimmed, err = asm.expand(trimmed, lineno)
		if err != nil {
			return
		}

		fields := strings.Fields(trimmed)
		if len(fields) == 0 {
			continue
		}

		// .equ NAME, TEXT
		if fields[0] == EQUATE_MARK {
			err = asm.equ(fields[1:])
			if err != nil {
				return
			}
			continue
		}

		text := asm.substitute(fields)

		word, _, _ := strings.Cut(text, " ")
		op, ok := MnemonicOf(word)
		if ok {
			asm.Instruction = append(asm.Instruction, Instruction{
				LineNo:   lineno,
				Text:     text,
				Mnemonic: op,
			})
			continue
		}

		if rest, isLabel := strings.CutSuffix(text, LABEL_MARK); isLabel {
			label := strings.TrimSpace(rest)
			_, ok := asm.Label[label]
			if ok {
				err = ErrLabelDuplicate(label)
				return
			}
			asm.Label[label] = len(asm.Instruction)
			continue
		}

		err = ErrInstructionInvalid
		return
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instruction),
		Labels:       maps.Clone(asm.Label),
	}

	return
}
