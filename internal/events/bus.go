// Package events delivers fire-and-forget cache notifications. Emission never
// blocks a cache operation: when the buffer is full the event is dropped.
package events

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type Name string

const (
	CacheHit     Name = "cache_hit"
	CacheMiss    Name = "cache_miss"
	CacheCleared Name = "cache_cleared"
	EntryDeleted Name = "entry_deleted"
)

type Event struct {
	Name Name
	Key  string
	At   time.Time
}

const busBuffer = 1024

// Bus fans events out to subscribers from a single dispatcher goroutine.
type Bus struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	handlers []func(Event)

	ch      chan Event
	dropped atomic.Int64
}

func NewBus(ctx context.Context) *Bus {
	ctx, cancel := context.WithCancel(ctx)
	b := &Bus{
		ctx:    ctx,
		cancel: cancel,
		ch:     make(chan Event, busBuffer),
	}
	go b.dispatch()
	return b
}

func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	b.handlers = append(b.handlers, fn)
	b.mu.Unlock()
}

// Publish enqueues an event without blocking. Events published with no
// subscribers or past a full buffer are dropped.
func (b *Bus) Publish(e Event) {
	select {
	case b.ch <- e:
	default:
		b.dropped.Add(1)
	}
}

// Dropped reports how many events were discarded due to backpressure.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

func (b *Bus) Close() error {
	b.cancel()
	return nil
}

func (b *Bus) dispatch() {
	for {
		select {
		case <-b.ctx.Done():
			return
		case e := <-b.ch:
			b.mu.RLock()
			handlers := b.handlers
			b.mu.RUnlock()
			for _, fn := range handlers {
				fn(e)
			}
		}
	}
}
