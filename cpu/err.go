package cpu

import (
	"errors"

	"github.com/halfmoor/armlet/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrProgramMissing = errors.New(f("program missing"))
	ErrProgramEnd     = errors.New(f("program end"))
	ErrConsoleMissing = errors.New(f("console missing"))
	ErrCompareMissing = errors.New(f("conditional branch before CMP"))
	ErrShiftNegative  = errors.New(f("negative shift count"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrInstructionInvalid = errors.New(f("not an instruction or label"))
)

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrRegisterInvalid string

func (err ErrRegisterInvalid) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrAddressRange int

func (err ErrAddressRange) Error() string {
	return f("address %v out of range", int(err))
}

// ErrArity reports an instruction given the wrong number of arguments.
type ErrArity struct {
	Mnemonic Mnemonic
	Want     int
	Got      int
}

func (err ErrArity) Error() string {
	return f("%v takes %v arguments, got %v", err.Mnemonic, err.Want, err.Got)
}

// ErrInstruction marks the instruction an execution error occurred in.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction '%v'", ei.Text)
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
