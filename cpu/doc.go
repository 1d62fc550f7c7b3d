// Package cpu implements the machine and assembler for the armlet system.
//
// The machine consists of thirteen signed general-purpose registers
// (R0-R12), a flat 256-cell memory, a record of the most recent CMP,
// and a program counter. Memory belongs to the machine and survives
// program loads; registers and the comparison record belong to the
// program and are cleared on every load.
//
// The assembler parses a small register-assembly dialect, one
// instruction or label per line, supporting comments, labels, equates,
// and compile-time expression evaluation. Instruction arguments stay
// as text until the machine executes them, so every label is defined
// before any instruction body is interpreted.
package cpu
