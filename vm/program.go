package vm

// Instruction is a single parsed statement: a mnemonic, its parsed
// operands, and the source location for diagnostics.
type Instruction struct {
	Mnemonic string
	Operands []*Operand
	Line     string // original source text
	LineNo   int    // 1-based source line number
}

// Program is an ordered instruction list plus the label map produced by
// linking. Immutable after parse.
type Program struct {
	Instructions []Instruction

	// Labels maps a label name to the 1-based program index of the
	// instruction that follows it.
	Labels map[string]int
}

// Lookup returns the 1-based program index a label points at.
func (prog *Program) Lookup(label string) (index int, ok bool) {
	index, ok = prog.Labels[label]
	return
}
