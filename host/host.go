// Package host provides the collaborator contract between the virtual
// machine and its surroundings: a blocking sleep primitive, an event
// rendezvous for cooperative yields, and a text output sink.
package host

import (
	"io"
	"time"
)

// Host is the set of external primitives the machine may block on.
type Host interface {
	// Sleep blocks the machine for a wall-clock duration.
	Sleep(d time.Duration)
	// Yield pushes a marker event to the host and blocks until the
	// host acknowledges it. A round-trip signal, not a timer.
	Yield()
	// Output returns the sink for program output and diagnostics.
	Output() io.Writer
}

// Local implements Host against the real scheduler. Yields are serviced
// by a background echo goroutine over a notify/ack channel pair.
type Local struct {
	Out io.Writer

	notify chan struct{}
	ack    chan struct{}
}

// NewLocal creates a Local host writing program output to out.
func NewLocal(out io.Writer) (l *Local) {
	l = &Local{
		Out:    out,
		notify: make(chan struct{}),
		ack:    make(chan struct{}),
	}

	go func() {
		for range l.notify {
			l.ack <- struct{}{}
		}
		close(l.ack)
	}()

	return
}

// Close shuts down the echo goroutine. The host cannot yield afterwards.
func (l *Local) Close() (err error) {
	close(l.notify)

	return
}

// Sleep blocks for a wall-clock duration.
func (l *Local) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Yield sends a marker to the echo goroutine and blocks until it comes
// back.
func (l *Local) Yield() {
	l.notify <- struct{}{}
	<-l.ack
}

// Output returns the program output sink.
func (l *Local) Output() io.Writer {
	return l.Out
}
