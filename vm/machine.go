package vm

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"asmvm/host"
)

// State is the execution engine state.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	StateRunning = State(0) // running
	StateHalted  = State(1) // halted
	StateFaulted = State(2) // faulted
)

// aliasDepthLimit bounds alias chain recursion; a longer chain is
// reported as an alias cycle.
const aliasDepthLimit = 64

// Machine is the single mutable unit of interpreter state: program
// counter, register/flag bank, memory, alias table, and engine state.
// It is owned by exactly one goroutine of control.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program  // The linked program under execution.
	Host    host.Host // External collaborators (sleep, yield, output).

	Bank    Bank
	Memory  Memory
	Aliases AliasTable

	Ip    int // Instruction pointer; 0 = before first instruction.
	State State
}

// NewMachine creates a machine for a linked program, with zero-filled
// registers and memory and an empty alias table.
func NewMachine(prog *Program, h host.Host) (m *Machine) {
	m = &Machine{
		Program: prog,
		Host:    h,
	}

	return
}

// Reset returns the machine to its load-time state.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("vm: reset")
	}

	m.Bank.Reset()
	m.Memory.Reset()
	m.Aliases.Reset()
	m.Ip = 0
	m.State = StateRunning
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("   ip: %v (%v)\n", m.Ip, m.State)
	text += fmt.Sprintf("flags: eq=%v lt=%v gt=%v\n", m.Bank.Eq, m.Bank.Lt, m.Bank.Gt)
	for n, val := range m.Bank.Register {
		text += fmt.Sprintf("% 5s: %v\n", fmt.Sprintf("r%d", n), formatValue(val))
	}

	return
}

// resolve reads the value named by an operand.
func (m *Machine) resolve(op *Operand) (value float64, err error) {
	return m.resolveDepth(op, 0)
}

func (m *Machine) resolveDepth(op *Operand, depth int) (value float64, err error) {
	if depth > aliasDepthLimit {
		err = ErrAliasCycle
		return
	}

	switch op.Kind {
	case OperandLiteral:
		value = op.Value
	case OperandRegister:
		value, err = m.Bank.Get(op.Name)
	case OperandIndirect:
		var addr float64
		addr, err = m.resolveDepth(op.Inner, depth+1)
		if err != nil {
			return
		}
		value, err = m.Memory.Read(addr)
	case OperandName:
		target, ok := m.Aliases.Resolve(op.Name)
		if !ok {
			err = ErrLiteralInvalid(op.Text)
			return
		}
		value, err = m.resolveDepth(ParseOperand(target), depth+1)
	}

	return
}

// assign stores a value into the location named by an operand. Literals
// are not assignment targets.
func (m *Machine) assign(op *Operand, value float64) (err error) {
	return m.assignDepth(op, value, 0)
}

func (m *Machine) assignDepth(op *Operand, value float64, depth int) (err error) {
	if depth > aliasDepthLimit {
		return ErrAliasCycle
	}

	switch op.Kind {
	case OperandLiteral:
		err = ErrTargetInvalid
	case OperandRegister:
		err = m.Bank.Set(op.Name, value)
	case OperandIndirect:
		var addr float64
		addr, err = m.resolveDepth(op.Inner, depth+1)
		if err != nil {
			return
		}
		err = m.Memory.Write(addr, value)
	case OperandName:
		target, ok := m.Aliases.Resolve(op.Name)
		if !ok {
			err = ErrTargetInvalid
			return
		}
		err = m.assignDepth(ParseOperand(target), value, depth+1)
	}

	return
}

// handler executes one instruction against the machine.
type handler func(m *Machine, args []*Operand) error

// instruction is an instruction table entry: the required operand count
// and the handler. Arity validation is centralized in Step.
type instruction struct {
	args     int  // required operand count
	variadic bool // accepts operands beyond the required count
	fn       handler
}

var instructionTable = map[string]instruction{
	"out": {1, true, (*Machine).opOut},
	"mov": {2, false, (*Machine).opMov},
	"hlt": {0, false, (*Machine).opHlt},
	"slp": {1, false, (*Machine).opSlp},
	"nop": {0, false, (*Machine).opNop},
	"als": {2, false, (*Machine).opAls},
	"cmp": {2, false, (*Machine).opCmp},

	"jmp": {1, false, jumpWhen(func(b *Bank) bool { return true })},
	"je":  {1, false, jumpWhen(func(b *Bank) bool { return b.Eq })},
	"jne": {1, false, jumpWhen(func(b *Bank) bool { return !b.Eq })},
	"jl":  {1, false, jumpWhen(func(b *Bank) bool { return b.Lt })},
	"jle": {1, false, jumpWhen(func(b *Bank) bool { return b.Lt || b.Eq })},
	"jg":  {1, false, jumpWhen(func(b *Bank) bool { return b.Gt })},
	"jge": {1, false, jumpWhen(func(b *Bank) bool { return b.Gt || b.Eq })},

	"add":  {2, false, binaryOp(func(a, b float64) float64 { return a + b })},
	"sub":  {2, false, binaryOp(func(a, b float64) float64 { return a - b })},
	"mul":  {2, false, binaryOp(func(a, b float64) float64 { return a * b })},
	"div":  {2, false, binaryOp(func(a, b float64) float64 { return a / b })},
	"idiv": {2, false, binaryOp(func(a, b float64) float64 { return math.Floor(a / b) })},
	"mod":  {2, false, binaryOp(math.Mod)},
	"pow":  {2, false, binaryOp(math.Pow)},

	"sqrt": {1, false, unaryOp(math.Sqrt)},
	"inc":  {1, false, unaryOp(func(a float64) float64 { return a + 1 })},
	"dec":  {1, false, unaryOp(func(a float64) float64 { return a - 1 })},

	"and": {2, false, bitwiseOp(func(a, b int64) int64 { return a & b })},
	"or":  {2, false, bitwiseOp(func(a, b int64) int64 { return a | b })},
	"xor": {2, false, bitwiseOp(func(a, b int64) int64 { return a ^ b })},
	"shl": {2, false, bitwiseOp(func(a, b int64) int64 { return a << (uint(b) & 63) })},
	"shr": {2, false, bitwiseOp(func(a, b int64) int64 { return a >> (uint(b) & 63) })},
	"not": {1, false, unaryOp(func(a float64) float64 { return float64(^int64(a)) })},
}

// Step executes a single instruction cycle: increment the instruction
// pointer, fetch, decode, execute. done reports that the machine is no
// longer running; running off the end of the program is normal
// termination, not a fault.
func (m *Machine) Step() (done bool, err error) {
	if m.State != StateRunning {
		done = true
		return
	}

	m.Ip += 1
	if m.Ip > len(m.Program.Instructions) {
		m.State = StateHalted
		done = true
		return
	}

	inst := &m.Program.Instructions[m.Ip-1]

	defer func() {
		if err != nil {
			m.State = StateFaulted
			done = true
			err = &ErrRuntime{LineNo: inst.LineNo, Line: inst.Line, Err: err}
		}
	}()

	if m.Verbose {
		log.Printf("%3d: %v", m.Ip, inst.Line)
	}

	entry, ok := instructionTable[inst.Mnemonic]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	if len(inst.Operands) < entry.args {
		err = ErrOperandMissing
		return
	}
	if !entry.variadic && len(inst.Operands) > entry.args {
		err = ErrOperandExtra
		return
	}

	err = entry.fn(m, inst.Operands)
	if err != nil {
		return
	}

	if m.State != StateRunning {
		done = true
	}

	return
}

// Run steps the machine until it halts or faults.
func (m *Machine) Run() (err error) {
	for done := false; !done; {
		done, err = m.Step()
		if err != nil {
			return
		}
	}

	return
}

// formatValue renders a value the way out prints it: integral values
// without a fraction, everything else in shortest float form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (m *Machine) opOut(args []*Operand) (err error) {
	text := make([]string, len(args))
	for n, arg := range args {
		var v float64
		v, err = m.resolve(arg)
		if err != nil {
			return
		}
		text[n] = formatValue(v)
	}

	_, err = fmt.Fprintln(m.Host.Output(), strings.Join(text, " "))
	return
}

func (m *Machine) opMov(args []*Operand) (err error) {
	value, err := m.resolve(args[1])
	if err != nil {
		return
	}

	return m.assign(args[0], value)
}

func (m *Machine) opHlt(args []*Operand) (err error) {
	m.State = StateHalted
	return
}

func (m *Machine) opSlp(args []*Operand) (err error) {
	v, err := m.resolve(args[0])
	if err != nil {
		return
	}

	m.Host.Sleep(time.Duration(v * float64(time.Millisecond)))
	return
}

func (m *Machine) opNop(args []*Operand) (err error) {
	m.Host.Yield()
	return
}

func (m *Machine) opAls(args []*Operand) (err error) {
	m.Aliases.Define(args[0].Text, args[1].Text)
	return
}

func (m *Machine) opCmp(args []*Operand) (err error) {
	a, err := m.resolve(args[0])
	if err != nil {
		return
	}
	b, err := m.resolve(args[1])
	if err != nil {
		return
	}

	m.Bank.Eq = a == b
	m.Bank.Lt = a < b
	m.Bank.Gt = a > b
	return
}

// jump sets the instruction pointer so the next fetch lands on the
// label's target. Labels map to the 1-based index of the following
// instruction and the engine increments before fetching, hence the -1.
func (m *Machine) jump(op *Operand) (err error) {
	index, ok := m.Program.Lookup(op.Text)
	if !ok {
		err = ErrLabelMissing(op.Text)
		return
	}

	m.Ip = index - 1
	return
}

func jumpWhen(when func(b *Bank) bool) handler {
	return func(m *Machine, args []*Operand) (err error) {
		if when(&m.Bank) {
			err = m.jump(args[0])
		}
		return
	}
}

func binaryOp(fn func(a, b float64) float64) handler {
	return func(m *Machine, args []*Operand) (err error) {
		a, err := m.resolve(args[0])
		if err != nil {
			return
		}
		b, err := m.resolve(args[1])
		if err != nil {
			return
		}
		return m.assign(args[0], fn(a, b))
	}
}

func unaryOp(fn func(a float64) float64) handler {
	return func(m *Machine, args []*Operand) (err error) {
		a, err := m.resolve(args[0])
		if err != nil {
			return
		}
		return m.assign(args[0], fn(a))
	}
}

func bitwiseOp(fn func(a, b int64) int64) handler {
	return func(m *Machine, args []*Operand) (err error) {
		a, err := m.resolve(args[0])
		if err != nil {
			return
		}
		b, err := m.resolve(args[1])
		if err != nil {
			return
		}
		return m.assign(args[0], float64(fn(int64(a), int64(b))))
	}
}
