package host

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalOutput(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	l := NewLocal(out)
	defer l.Close()

	_, err := l.Output().Write([]byte("hello"))
	assert.NoError(err)
	assert.Equal("hello", out.String())
}

func TestLocalYield(t *testing.T) {
	assert := assert.New(t)

	l := NewLocal(&bytes.Buffer{})
	defer l.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			l.Yield()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		assert.Fail("yield rendezvous stalled")
	}
}

func TestLocalSleep(t *testing.T) {
	assert := assert.New(t)

	l := NewLocal(&bytes.Buffer{})
	defer l.Close()

	start := time.Now()
	l.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(time.Since(start), 10*time.Millisecond)
}
