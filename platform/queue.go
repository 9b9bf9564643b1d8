package platform

import (
	"sync/atomic"

	"github.com/lixenwraith/ripple/constant"
)

// Queue is a lock-free MPSC ring buffer feeding the dispatch loop
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (dispatch loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue[T any] struct {
	events    [constant.EventQueueSize]T
	published [constant.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                        // Read index
	tail      atomic.Uint64                        // Write index
	wake      chan struct{}
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{wake: make(chan struct{}, 1)}
}

// Push claims a slot by CAS on tail, then publishes it and wakes the
// dispatch loop. Any number of command goroutines may push at once
func (q *Queue[T]) Push(event T) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constant.EventBufferMask

			q.events[idx] = event
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > constant.EventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-constant.EventQueueSize)
			}
			break
		}
	}

	select {
	case q.wake <- struct{}{}:
	default:
		// Consumer already signalled
	}
}

// Wait returns a channel that receives after at least one Push
// Spurious wakes are possible; Consume may return nil
func (q *Queue[T]) Wait() <-chan struct{} {
	return q.wake
}

// Consume drains every published event in arrival order
// Only the dispatch loop calls it; a slot claimed but not yet published ends
// the batch early and re-arms the wake signal
func (q *Queue[T]) Consume() []T {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > constant.EventQueueSize {
			maxAvailable = constant.EventQueueSize
			currentHead = currentTail - constant.EventQueueSize
		}

		result := make([]T, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & constant.EventBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				// Writer mid-publish; make sure the consumer comes back
				select {
				case q.wake <- struct{}{}:
				default:
				}
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (q *Queue[T]) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > constant.EventQueueSize {
		return constant.EventQueueSize
	}
	return diff
}
