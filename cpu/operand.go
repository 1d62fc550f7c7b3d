package cpu

import (
	"strconv"
	"strings"
)

const (
	REGISTER_MARK  = "R" // Prefix of a register reference.
	IMMEDIATE_MARK = "#" // Prefix of an immediate literal.
)

// register resolves a register token to its index in the register bank.
func (m *Machine) register(token string) (index int, err error) {
	digits, ok := strings.CutPrefix(token, REGISTER_MARK)
	if !ok {
		err = ErrRegisterInvalid(token)
		return
	}

	index, nerr := strconv.Atoi(digits)
	if nerr != nil || index < 0 || index >= REGISTER_COUNT {
		err = ErrRegisterInvalid(token)
		return
	}

	return
}

// registerValue resolves a register token to the register's current value.
func (m *Machine) registerValue(token string) (value int, err error) {
	index, err := m.register(token)
	if err != nil {
		return
	}

	value = m.Register[index]

	return
}

// setRegister resolves a register token and stores value into it.
func (m *Machine) setRegister(token string, value int) (err error) {
	index, err := m.register(token)
	if err != nil {
		return
	}

	m.Register[index] = value

	return
}

// value resolves a second operand: an immediate literal such as #4, or
// a register reference whose current value is substituted.
func (m *Machine) value(token string) (value int, err error) {
	imm, ok := strings.CutPrefix(token, IMMEDIATE_MARK)
	if ok {
		var nerr error
		value, nerr = strconv.Atoi(imm)
		if nerr != nil {
			err = ErrParseValue(token)
		}
		return
	}

	if strings.HasPrefix(token, REGISTER_MARK) {
		value, err = m.registerValue(token)
		return
	}

	err = ErrParseValue(token)

	return
}

// address resolves a memory address operand: a bare integer is a
// direct address, a register reference holds the address. Bounds are
// checked by Memory on access.
func (m *Machine) address(token string) (addr int, err error) {
	addr, nerr := strconv.Atoi(token)
	if nerr == nil {
		return
	}

	if strings.HasPrefix(token, REGISTER_MARK) {
		addr, err = m.registerValue(token)
		return
	}

	err = ErrParseValue(token)

	return
}
