package container

import (
	"context"
	"sync"
)

// Queue is a bounded, thread-safe FIFO queue. Items are popped in the
// order they were pushed. Push blocks while the queue is full and
// Pop/Front block while it is empty; the Try variants never block. A
// single instance is safe for concurrent use by multiple goroutines
// without external synchronization.
type Queue[T any] struct {
	mu       sync.Mutex
	notFull  sync.Cond
	notEmpty sync.Cond
	items    []T
	capacity int // < 1 means unbounded
}

// NewQueue constructs a queue. capacity < 1 makes it unbounded.
func NewQueue[T any](capacity int) *Queue[T] {
	q := &Queue[T]{capacity: capacity}
	q.notFull.L = &q.mu
	q.notEmpty.L = &q.mu
	return q
}

func (q *Queue[T]) wake() {
	q.mu.Lock()
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
	q.mu.Unlock()
}

func (q *Queue[T]) full() bool {
	return q.capacity >= 1 && len(q.items) >= q.capacity
}

func (q *Queue[T]) popLocked() T {
	item := q.items[0]
	var zero T
	q.items[0] = zero // release the reference
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil // let the drained backing array go
	}
	return item
}

// Push appends item to the back, blocking while the queue is full. It
// returns the context's error if ctx is cancelled or times out first.
func (q *Queue[T]) Push(ctx context.Context, item T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	stop := context.AfterFunc(ctx, q.wake)
	defer stop()
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.full() {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.notFull.Wait()
	}
	q.items = append(q.items, item)
	q.notEmpty.Signal()
	return nil
}

// Pop removes and returns the oldest item, blocking while the queue is
// empty. It returns the context's error if ctx is cancelled or times out
// first.
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	stop := context.AfterFunc(ctx, q.wake)
	defer stop()
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		q.notEmpty.Wait()
	}
	item := q.popLocked()
	q.notFull.Signal()
	return item, nil
}

// Front returns the oldest item without removing it, blocking while the
// queue is empty, with the same cancellation rule as Pop.
func (q *Queue[T]) Front(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	stop := context.AfterFunc(ctx, q.wake)
	defer stop()
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		q.notEmpty.Wait()
	}
	return q.items[0], nil
}

// TryPush appends item without blocking; it reports false when the queue
// is full.
func (q *Queue[T]) TryPush(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.full() {
		return false
	}
	q.items = append(q.items, item)
	q.notEmpty.Signal()
	return true
}

// TryPop removes and returns the oldest item without blocking; it reports
// false when the queue is empty.
func (q *Queue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	item := q.popLocked()
	q.notFull.Signal()
	return item, true
}

// TryFront returns the oldest item without removing it and without
// blocking; it reports false when the queue is empty.
func (q *Queue[T]) TryFront() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Len returns the number of items currently held.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Full reports whether a bounded queue is at capacity. An unbounded queue
// is never full.
func (q *Queue[T]) Full() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.full()
}

// Cap returns the configured capacity; < 1 means unbounded.
func (q *Queue[T]) Cap() int { return q.capacity }
