package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperandClassification(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		token string
		kind  OperandKind
	}{
		{"5", OperandLiteral},
		{"3.5", OperandLiteral},
		{"0xff_ff", OperandLiteral},
		{"r0", OperandRegister},
		{"R15", OperandRegister},
		{"EQ", OperandRegister},
		{"zero", OperandRegister},
		{"carry", OperandRegister},
		{"[5]", OperandIndirect},
		{"[r0]", OperandIndirect},
		{"[[0]]", OperandIndirect},
		{"total", OperandName},
		{"r16", OperandName},
	}

	for _, c := range cases {
		op := ParseOperand(c.token)
		assert.Equal(c.kind, op.Kind, c.token)
		assert.Equal(c.token, op.Text, c.token)
	}
}

func TestParseOperandIndirect(t *testing.T) {
	assert := assert.New(t)

	op := ParseOperand("[r3]")
	assert.Equal(OperandIndirect, op.Kind)
	assert.NotNil(op.Inner)
	assert.Equal(OperandRegister, op.Inner.Kind)
	assert.Equal("r3", op.Inner.Name)

	nested := ParseOperand("[[0]]")
	assert.Equal(OperandIndirect, nested.Kind)
	assert.Equal(OperandIndirect, nested.Inner.Kind)
	assert.Equal(OperandLiteral, nested.Inner.Inner.Kind)
}

func TestParseOperandCaseFolding(t *testing.T) {
	assert := assert.New(t)

	op := ParseOperand("R9")
	assert.Equal(OperandRegister, op.Kind)
	assert.Equal("r9", op.Name)
	assert.Equal("R9", op.Text)

	alias := ParseOperand("Total")
	assert.Equal(OperandName, alias.Kind)
	assert.Equal("total", alias.Name)
}

func TestOperandKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("literal", OperandLiteral.String())
	assert.Equal("register", OperandRegister.String())
	assert.Equal("indirect", OperandIndirect.String())
	assert.Equal("name", OperandName.String())
}
