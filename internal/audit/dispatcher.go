package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	LocationID string
	UserID     string
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

// Sink receives audit events. Use cases depend on this rather than on the
// concrete Dispatcher so tests can capture events.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	wg     sync.WaitGroup
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			zap.S().Warnw("audit write failed", "action", ev.Action, "error", err)
		}
	}
}

// Dispatch never blocks; when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		zap.S().Warnw("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drains pending events and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) Dispatch(Event) {}
