package incident

import (
	"errors"
	"sync"
)

var (
	ErrBusClosed = errors.New("incident bus is closed")
	ErrBusFull   = errors.New("incident bus is full")
)

// Bus is a bounded in-process queue of incidents.
type Bus struct {
	mu     sync.RWMutex
	closed bool
	ch     chan Incident
}

func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}

	return &Bus{
		ch: make(chan Incident, buffer),
	}
}

// Publish enqueues in without blocking. Request handlers call it, so a full
// queue drops the report instead of stalling the response.
func (b *Bus) Publish(in Incident) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	select {
	case b.ch <- in:
		return nil
	default:
		return ErrBusFull
	}
}

func (b *Bus) Subscribe() <-chan Incident {
	return b.ch
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.ch)
}
