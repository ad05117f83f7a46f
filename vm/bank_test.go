package vm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBankRegisters(t *testing.T) {
	assert := assert.New(t)

	bank := &Bank{}

	for n := 0; n < RegisterCount; n++ {
		name := fmt.Sprintf("r%d", n)
		value, err := bank.Get(name)
		assert.NoError(err, name)
		assert.Equal(float64(0), value, name)

		assert.NoError(bank.Set(name, float64(n)+0.5))
	}

	// lookup is case-insensitive
	value, err := bank.Get("R15")
	assert.NoError(err)
	assert.Equal(15.5, value)

	assert.NoError(bank.Set("R0", 9))
	value, err = bank.Get("r0")
	assert.NoError(err)
	assert.Equal(float64(9), value)
}

func TestBankZero(t *testing.T) {
	assert := assert.New(t)

	bank := &Bank{}

	// writes to zero are discarded
	assert.NoError(bank.Set("zero", 42))
	value, err := bank.Get("zero")
	assert.NoError(err)
	assert.Equal(float64(0), value)
}

func TestBankFlags(t *testing.T) {
	assert := assert.New(t)

	bank := &Bank{}

	for _, name := range []string{"eq", "lt", "gt", "carry", "overflow", "negative"} {
		value, err := bank.Get(name)
		assert.NoError(err, name)
		assert.Equal(float64(0), value, name)

		// numeric truthiness coercion
		assert.NoError(bank.Set(name, 3.5), name)
		value, err = bank.Get(name)
		assert.NoError(err, name)
		assert.Equal(float64(1), value, name)

		assert.NoError(bank.Set(name, 0), name)
		value, err = bank.Get(name)
		assert.NoError(err, name)
		assert.Equal(float64(0), value, name)
	}
}

func TestBankUnknown(t *testing.T) {
	assert := assert.New(t)

	bank := &Bank{}

	_, err := bank.Get("r16")
	assert.ErrorIs(err, ErrRegisterInvalid)

	err = bank.Set("bogus", 1)
	assert.ErrorIs(err, ErrRegisterInvalid)
}

func TestBankReset(t *testing.T) {
	assert := assert.New(t)

	bank := &Bank{}
	assert.NoError(bank.Set("r3", 7))
	assert.NoError(bank.Set("eq", 1))

	bank.Reset()

	value, err := bank.Get("r3")
	assert.NoError(err)
	assert.Equal(float64(0), value)
	assert.False(bank.Eq)
}
