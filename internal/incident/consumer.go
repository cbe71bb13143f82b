package incident

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultDedupeWindow is how many recent references a Consumer remembers.
const DefaultDedupeWindow = 4096

// Runner starts background work; *pkgroutine.Manager satisfies it.
type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type ConsumerConfig struct {
	Workers      int
	DedupeWindow int
}

// Consumer drains the bus with a fixed number of workers. A reference seen
// among the last DedupeWindow incidents is skipped.
type Consumer struct {
	bus     *Bus
	handler Handler
	runner  Runner
	workers int
	seen    *lru.Cache[string, struct{}]
}

func NewConsumer(bus *Bus, handler Handler, runner Runner, cfg ConsumerConfig) *Consumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 2
	}
	window := cfg.DedupeWindow
	if window < 1 {
		window = DefaultDedupeWindow
	}

	// lru.New only fails for a non-positive size.
	seen, _ := lru.New[string, struct{}](window)

	return &Consumer{
		bus:     bus,
		handler: handler,
		runner:  runner,
		workers: workers,
		seen:    seen,
	}
}

// Start launches the workers on the runner. They stop when the bus is closed
// or ctx is canceled, handling whatever is still buffered first.
func (c *Consumer) Start(ctx context.Context) {
	for i := 0; i < c.workers; i++ {
		c.runner.Go(ctx, c.work)
	}
}

// Stop closes the bus. Workers exit once the buffer is drained.
func (c *Consumer) Stop(context.Context) error {
	c.bus.Close()
	return nil
}

func (c *Consumer) work(ctx context.Context) error {
	ch := c.bus.Subscribe()
	for {
		select {
		case in, ok := <-ch:
			if !ok {
				return nil
			}
			c.process(ctx, in)
		case <-ctx.Done():
			c.drain(context.WithoutCancel(ctx), ch)
			return nil
		}
	}
}

func (c *Consumer) drain(ctx context.Context, ch <-chan Incident) {
	for {
		select {
		case in, ok := <-ch:
			if !ok {
				return
			}
			c.process(ctx, in)
		default:
			return
		}
	}
}

func (c *Consumer) process(ctx context.Context, in Incident) {
	if c.handler == nil {
		return
	}

	if in.Reference != "" {
		if found, _ := c.seen.ContainsOrAdd(in.Reference, struct{}{}); found {
			slog.InfoContext(ctx, "skip duplicate incident", "reference", in.Reference)
			return
		}
	}

	if err := c.handler.Handle(ctx, in); err != nil {
		slog.ErrorContext(ctx, "failed to handle incident", "reference", in.Reference, "error", err)
	}
}
