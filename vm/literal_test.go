package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiteral(t *testing.T) {
	assert := assert.New(t)

	good := []struct {
		token string
		value float64
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"3.5", 3.5},
		{"2.5e3", 2500},
		{"0x0", 0},
		{"0xff", 255},
		{"0xff_ff", 65535},
		{"1_000", 1000},
		{"1_000_000", 1000000},
	}

	for _, c := range good {
		value, err := ParseLiteral(c.token)
		assert.NoError(err, c.token)
		assert.Equal(c.value, value, c.token)
	}

	bad := []string{"", "abc", "0x", "0xzz", "1.2.3", "r0", "[5]"}
	for _, token := range bad {
		_, err := ParseLiteral(token)
		assert.Error(err, token)
		assert.ErrorIs(err, ErrLiteralInvalid(""), token)
	}
}
