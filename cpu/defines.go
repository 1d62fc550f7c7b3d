package cpu

import (
	"fmt"
	"iter"
	"maps"
)

const (
	MEMORY_SIZE    = 256 // Cells of machine memory.
	REGISTER_COUNT = 13  // General registers, R0 through R12.
)

var _machine_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%v", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
}

// Defines for the machine
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}
