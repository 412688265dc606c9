// Package container provides bounded, thread-safe LIFO and FIFO
// containers used to hand data between a behavior tree and its
// environment. Blocking operations park on condition variables and honor
// context cancellation; without a deadline on the context they block
// indefinitely, which is a caller-visible liveness risk on a queue that
// never drains.
package container

import (
	"context"
	"errors"
	"sync"
)

// ErrCapacity is returned by Replace when the replacement contents exceed
// the container's capacity.
var ErrCapacity = errors.New("container: contents exceed capacity")

// Stack is a bounded, thread-safe LIFO stack. Items are popped in the
// inverse order they were pushed. Push blocks while the stack is full and
// Pop/Top block while it is empty; the Try variants never block. A single
// instance is safe for concurrent use by multiple goroutines without
// external synchronization.
type Stack[T any] struct {
	mu       sync.Mutex
	notFull  sync.Cond
	notEmpty sync.Cond
	items    []T
	capacity int // < 1 means unbounded
}

// NewStack constructs a stack. capacity < 1 makes it unbounded.
func NewStack[T any](capacity int) *Stack[T] {
	s := &Stack[T]{capacity: capacity}
	s.notFull.L = &s.mu
	s.notEmpty.L = &s.mu
	return s
}

// wake broadcasts to both condition variables so waiters can observe a
// cancelled context. Taking the lock first prevents missed wakeups.
func (s *Stack[T]) wake() {
	s.mu.Lock()
	s.notFull.Broadcast()
	s.notEmpty.Broadcast()
	s.mu.Unlock()
}

func (s *Stack[T]) full() bool {
	return s.capacity >= 1 && len(s.items) >= s.capacity
}

// Push appends item to the top, blocking while the stack is full. It
// returns the context's error if ctx is cancelled or times out first.
func (s *Stack[T]) Push(ctx context.Context, item T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	stop := context.AfterFunc(ctx, s.wake)
	defer stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.full() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.notFull.Wait()
	}
	s.items = append(s.items, item)
	s.notEmpty.Signal()
	return nil
}

// Pop removes and returns the top item, blocking while the stack is
// empty. It returns the context's error if ctx is cancelled or times out
// first.
func (s *Stack[T]) Pop(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	stop := context.AfterFunc(ctx, s.wake)
	defer stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.items) == 0 {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		s.notEmpty.Wait()
	}
	item := s.items[len(s.items)-1]
	var zero T
	s.items[len(s.items)-1] = zero // release the reference
	s.items = s.items[:len(s.items)-1]
	s.notFull.Signal()
	return item, nil
}

// Top returns the top item without removing it, blocking while the stack
// is empty, with the same cancellation rule as Pop.
func (s *Stack[T]) Top(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	stop := context.AfterFunc(ctx, s.wake)
	defer stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.items) == 0 {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		s.notEmpty.Wait()
	}
	return s.items[len(s.items)-1], nil
}

// TryPush appends item without blocking; it reports false when the stack
// is full.
func (s *Stack[T]) TryPush(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.full() {
		return false
	}
	s.items = append(s.items, item)
	s.notEmpty.Signal()
	return true
}

// TryPop removes and returns the top item without blocking; it reports
// false when the stack is empty.
func (s *Stack[T]) TryPop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	item := s.items[len(s.items)-1]
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	s.notFull.Signal()
	return item, true
}

// TryTop returns the top item without removing it and without blocking;
// it reports false when the stack is empty.
func (s *Stack[T]) TryTop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Replace discards the current contents and installs items, bottom to
// top. It fails with ErrCapacity when items exceed the capacity, leaving
// the contents unchanged.
func (s *Stack[T]) Replace(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capacity >= 1 && len(items) > s.capacity {
		return ErrCapacity
	}
	s.items = append(s.items[:0:0], items...)
	if len(s.items) > 0 {
		s.notEmpty.Broadcast()
	}
	if !s.full() {
		s.notFull.Broadcast()
	}
	return nil
}

// Len returns the number of items currently held.
func (s *Stack[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool {
	return s.Len() == 0
}

// Full reports whether a bounded stack is at capacity. An unbounded stack
// is never full.
func (s *Stack[T]) Full() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.full()
}

// Cap returns the configured capacity; < 1 means unbounded.
func (s *Stack[T]) Cap() int { return s.capacity }
