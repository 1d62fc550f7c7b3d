package cpu

// Mnemonic is the instruction-name token that starts an instruction line.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_LDR  = Mnemonic(0)  // LDR
	OP_STR  = Mnemonic(1)  // STR
	OP_ADD  = Mnemonic(2)  // ADD
	OP_SUB  = Mnemonic(3)  // SUB
	OP_MOV  = Mnemonic(4)  // MOV
	OP_CMP  = Mnemonic(5)  // CMP
	OP_B    = Mnemonic(6)  // B
	OP_BEQ  = Mnemonic(7)  // BEQ
	OP_BNE  = Mnemonic(8)  // BNE
	OP_BGT  = Mnemonic(9)  // BGT
	OP_BLT  = Mnemonic(10) // BLT
	OP_AND  = Mnemonic(11) // AND
	OP_ORR  = Mnemonic(12) // ORR
	OP_EOR  = Mnemonic(13) // EOR
	OP_MVN  = Mnemonic(14) // MVN
	OP_LSL  = Mnemonic(15) // LSL
	OP_LSR  = Mnemonic(16) // LSR
	OP_IN   = Mnemonic(17) // IN
	OP_OUT  = Mnemonic(18) // OUT
	OP_HALT = Mnemonic(19) // HALT
)

// arityMap maps each mnemonic to its exact argument count.
var arityMap = map[Mnemonic]int{
	OP_LDR:  2,
	OP_STR:  2,
	OP_ADD:  3,
	OP_SUB:  3,
	OP_MOV:  2,
	OP_CMP:  2,
	OP_B:    1,
	OP_BEQ:  1,
	OP_BNE:  1,
	OP_BGT:  1,
	OP_BLT:  1,
	OP_AND:  3,
	OP_ORR:  3,
	OP_EOR:  3,
	OP_MVN:  2,
	OP_LSL:  3,
	OP_LSR:  3,
	OP_IN:   1,
	OP_OUT:  1,
	OP_HALT: 0,
}

// mnemonicMap maps instruction-name tokens to mnemonics.
var mnemonicMap = map[string]Mnemonic{}

func init() {
	for op := range arityMap {
		mnemonicMap[op.String()] = op
	}
}

// Arity returns the exact number of arguments the mnemonic takes.
func (op Mnemonic) Arity() int {
	return arityMap[op]
}

// MnemonicOf returns the mnemonic named by an instruction token.
func MnemonicOf(token string) (op Mnemonic, ok bool) {
	op, ok = mnemonicMap[token]
	return
}
