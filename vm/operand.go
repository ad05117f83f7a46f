package vm

import (
	"strings"
)

// OperandKind classifies an operand token.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OperandLiteral  = OperandKind(0) // literal
	OperandRegister = OperandKind(1) // register
	OperandIndirect = OperandKind(2) // indirect
	OperandName     = OperandKind(3) // name
)

// Operand is a parsed operand token. Classification happens once, at
// parse time; only alias targets are re-parsed, at each use.
type Operand struct {
	Kind  OperandKind
	Text  string   // original token
	Value float64  // literal value (OperandLiteral)
	Name  string   // case-folded name (OperandRegister, OperandName)
	Inner *Operand // address expression (OperandIndirect)
}

// ParseOperand classifies a token as a bracket-indirect memory reference,
// a register or flag name, a numeric literal, or a bare name to be looked
// up in the alias table at use time.
func ParseOperand(token string) (op *Operand) {
	token = strings.TrimSpace(token)

	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		return &Operand{
			Kind:  OperandIndirect,
			Text:  token,
			Inner: ParseOperand(token[1 : len(token)-1]),
		}
	}

	name := strings.ToLower(token)
	if IsRegisterName(name) {
		return &Operand{Kind: OperandRegister, Text: token, Name: name}
	}

	if value, err := ParseLiteral(token); err == nil {
		return &Operand{Kind: OperandLiteral, Text: token, Value: value}
	}

	return &Operand{Kind: OperandName, Text: token, Name: name}
}

// String returns the original token text.
func (op *Operand) String() string {
	return op.Text
}
