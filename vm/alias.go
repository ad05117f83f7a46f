package vm

import (
	"strings"
)

// AliasTable maps symbolic names to operand tokens. Targets are raw
// tokens, not resolved values; substitution is deferred to each use and
// recursion through chained aliases is the caller's job.
type AliasTable struct {
	target map[string]string
}

// Define binds a name to a target token. Redefinition is last-write-wins.
func (at *AliasTable) Define(name, target string) {
	if at.target == nil {
		at.target = make(map[string]string, 16)
	}
	at.target[strings.ToLower(name)] = target
}

// Resolve returns the target token bound to a name.
func (at *AliasTable) Resolve(name string) (target string, ok bool) {
	target, ok = at.target[strings.ToLower(name)]
	return
}

// Reset drops all definitions.
func (at *AliasTable) Reset() {
	clear(at.target)
}
