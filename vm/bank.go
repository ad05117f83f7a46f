package vm

import (
	"fmt"
	"strings"
)

const (
	// RegisterCount is the number of general-purpose registers.
	RegisterCount = 16
)

// registerIndex maps general register names to slot indexes.
var registerIndex = func() map[string]int {
	m := make(map[string]int, RegisterCount)
	for n := 0; n < RegisterCount; n++ {
		m[fmt.Sprintf("r%d", n)] = n
	}
	return m
}()

// flagNames are the status flags addressable as pseudo-registers.
// Only eq/lt/gt are ever written by an instruction; carry, overflow and
// negative are addressable but dead state, kept for compatibility.
var flagNames = map[string]bool{
	"eq":       true,
	"lt":       true,
	"gt":       true,
	"carry":    true,
	"overflow": true,
	"negative": true,
}

// IsRegisterName reports whether a case-folded name addresses the bank:
// a general register, a status flag, or the always-zero pseudo-register.
func IsRegisterName(name string) bool {
	if _, ok := registerIndex[name]; ok {
		return true
	}
	if flagNames[name] {
		return true
	}
	return name == "zero"
}

// Bank is the general register bank plus the status flags, merged into a
// single case-insensitive name lookup.
type Bank struct {
	Register [RegisterCount]float64

	Eq bool // last compare: equal
	Lt bool // last compare: less-than
	Gt bool // last compare: greater-than

	Carry    bool
	Overflow bool
	Negative bool
}

// Reset clears all registers and flags.
func (b *Bank) Reset() {
	clear(b.Register[:])
	b.Eq = false
	b.Lt = false
	b.Gt = false
	b.Carry = false
	b.Overflow = false
	b.Negative = false
}

// flag returns the address of a named flag bit.
func (b *Bank) flag(name string) (bit *bool) {
	switch name {
	case "eq":
		bit = &b.Eq
	case "lt":
		bit = &b.Lt
	case "gt":
		bit = &b.Gt
	case "carry":
		bit = &b.Carry
	case "overflow":
		bit = &b.Overflow
	case "negative":
		bit = &b.Negative
	}

	return
}

// Get returns the value of a register or flag pseudo-register.
func (b *Bank) Get(name string) (value float64, err error) {
	name = strings.ToLower(name)

	if n, ok := registerIndex[name]; ok {
		value = b.Register[n]
		return
	}

	if bit := b.flag(name); bit != nil {
		if *bit {
			value = 1
		}
		return
	}

	if name == "zero" {
		return
	}

	err = ErrRegisterInvalid
	return
}

// Set writes a register or flag pseudo-register. Flag writes coerce
// numeric truthiness; writes to the always-zero register are discarded.
func (b *Bank) Set(name string, value float64) (err error) {
	name = strings.ToLower(name)

	if n, ok := registerIndex[name]; ok {
		b.Register[n] = value
		return
	}

	if bit := b.flag(name); bit != nil {
		*bit = value != 0
		return
	}

	if name == "zero" {
		// read-only, silently discards
		return
	}

	err = ErrRegisterInvalid
	return
}
