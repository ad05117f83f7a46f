package vm

import (
	"errors"

	"asmvm/translate"
)

var f = translate.From

var (
	// Operand resolution errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrTargetInvalid   = errors.New(f("target invalid"))
	ErrMemoryBounds    = errors.New(f("memory address out of bounds"))
	ErrAliasCycle      = errors.New(f("alias cycle"))

	// Execution errors
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Parser errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
)

// ErrLiteralInvalid reports a token that is not a number.
type ErrLiteralInvalid string

func (err ErrLiteralInvalid) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrLiteralInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrLiteralInvalid)
	return
}

// ErrLabelMissing reports a jump to an undefined label.
type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

func (err ErrLabelMissing) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelMissing)
	return
}

// ErrParseExpression reports an invalid compile-time $() expression.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates a parse error by source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime locates a fault by the source line of the faulting
// instruction.
type ErrRuntime struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
