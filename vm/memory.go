package vm

import (
	"math"
)

const (
	// MemorySize is the fixed memory capacity, in cells.
	MemorySize = 512
)

// Memory is a flat bounds-checked array of numeric cells.
type Memory struct {
	Cell [MemorySize]float64
}

// Reset zero-fills the memory.
func (m *Memory) Reset() {
	clear(m.Cell[:])
}

// index validates an address: it must be an integral value in
// [0, MemorySize).
func (m *Memory) index(addr float64) (n int, err error) {
	if addr != math.Trunc(addr) || addr < 0 || addr >= MemorySize {
		err = ErrMemoryBounds
		return
	}

	n = int(addr)
	return
}

// Read returns the cell at an address.
func (m *Memory) Read(addr float64) (value float64, err error) {
	n, err := m.index(addr)
	if err != nil {
		return
	}

	value = m.Cell[n]
	return
}

// Write stores a value into the cell at an address.
func (m *Memory) Write(addr float64, value float64) (err error) {
	n, err := m.index(addr)
	if err != nil {
		return
	}

	m.Cell[n] = value
	return
}
