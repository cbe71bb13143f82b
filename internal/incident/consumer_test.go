package incident

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/wsgate/internal/pkg/pkgerror"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgroutine"
)

type recordingHandler struct {
	mu   sync.Mutex
	refs []string
	err  error
}

func (h *recordingHandler) Handle(_ context.Context, in Incident) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refs = append(h.refs, in.Reference)
	return h.err
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.refs)
}

func TestConsumerDedupesByReference(t *testing.T) {
	bus := NewBus(10)
	handler := &recordingHandler{}
	runner := pkgroutine.NewManager(4)
	consumer := NewConsumer(bus, handler, runner, ConsumerConfig{Workers: 2})

	for _, ref := range []string{"a", "b", "a", "c"} {
		if err := bus.Publish(Incident{Reference: ref}); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	consumer.Start(context.Background())
	if err := consumer.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := runner.Wait(); err != nil {
		t.Fatalf("runner wait: %v", err)
	}

	if got := handler.count(); got != 3 {
		t.Fatalf("expected 3 handled incidents, got %d (%v)", got, handler.refs)
	}
}

func TestConsumerDrainsOnCancel(t *testing.T) {
	bus := NewBus(10)
	handler := &recordingHandler{err: errors.New("sink down")}
	consumer := NewConsumer(bus, handler, pkgroutine.NewManager(1), ConsumerConfig{})

	for _, ref := range []string{"x", "y", "z"} {
		if err := bus.Publish(Incident{Reference: ref}); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := consumer.work(ctx); err != nil {
		t.Fatalf("work: %v", err)
	}

	if got := handler.count(); got != 3 {
		t.Fatalf("expected buffered incidents handled, got %d", got)
	}
}

func TestNewConsumerDefaultWorkers(t *testing.T) {
	c := NewConsumer(NewBus(1), nil, pkgroutine.NewManager(1), ConsumerConfig{Workers: 0})
	if c.workers != 2 {
		t.Fatalf("expected 2 workers, got %d", c.workers)
	}
}

func TestConsumerDedupeWindowIsBounded(t *testing.T) {
	handler := &recordingHandler{}
	consumer := NewConsumer(NewBus(1), handler, pkgroutine.NewManager(1), ConsumerConfig{DedupeWindow: 100})

	for i := 0; i < 5000; i++ {
		consumer.process(context.Background(), FromError(pkgerror.NewInternal(pkgerror.InternalWebError), "/", "", time.Time{}))
	}

	if got := consumer.seen.Len(); got != 100 {
		t.Fatalf("expected 100 remembered references, got %d", got)
	}
	if got := handler.count(); got != 5000 {
		t.Fatalf("expected every fresh reference handled, got %d", got)
	}
}

func TestConsumerForgetsOldReferences(t *testing.T) {
	handler := &recordingHandler{}
	consumer := NewConsumer(NewBus(1), handler, pkgroutine.NewManager(1), ConsumerConfig{DedupeWindow: 2})
	ctx := context.Background()

	for _, ref := range []string{"a", "b", "b", "c", "a"} {
		consumer.process(ctx, Incident{Reference: ref})
	}

	// "b" repeats inside the window; "a" was pushed out by "c"
	want := []string{"a", "b", "c", "a"}
	if !reflect.DeepEqual(handler.refs, want) {
		t.Fatalf("expected %v, got %v", want, handler.refs)
	}
}

func TestNewConsumerDefaultDedupeWindow(t *testing.T) {
	c := NewConsumer(NewBus(1), nil, pkgroutine.NewManager(1), ConsumerConfig{})
	for i := 0; i < DefaultDedupeWindow+10; i++ {
		c.seen.Add(fmt.Sprintf("ref-%d", i), struct{}{})
	}
	if got := c.seen.Len(); got != DefaultDedupeWindow {
		t.Fatalf("expected %d, got %d", DefaultDedupeWindow, got)
	}
}
