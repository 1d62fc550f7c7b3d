package cpu

import (
	"iter"
)

// Memory is the machine's flat data store. It is zeroed once, when the
// machine is created, and is not touched by a program load: memory
// belongs to the machine, not to the program.
type Memory struct {
	cells [MEMORY_SIZE]int
}

// Load returns the value stored at addr.
func (mem *Memory) Load(addr int) (value int, err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrAddressRange(addr)
		return
	}

	value = mem.cells[addr]

	return
}

// Store places value at addr.
func (mem *Memory) Store(addr int, value int) (err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrAddressRange(addr)
		return
	}

	mem.cells[addr] = value

	return
}

// Cells returns an iterator over all (address, value) pairs.
func (mem *Memory) Cells() iter.Seq2[int, int] {
	return func(yield func(addr int, value int) bool) {
		for addr, value := range mem.cells {
			if !yield(addr, value) {
				return
			}
		}
	}
}
