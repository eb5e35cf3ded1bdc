package queue

import (
	"errors"

	"github.com/hyperbolic-timechamber/collections-go/src/list"
)

var ErrEmptyQueue = errors.New("Queue: empty queue")

// Queue is a FIFO container backed by a list.List. Enqueue appends;
// Dequeue pops the front, shifting the remainder forward. The list's
// shrink policy keeps the buffer bounded as the queue drains.
type Queue[T any] struct {
	items list.List[T]
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Enqueue(value T) {
	q.items.Append(value)
}

func (q *Queue[T]) Dequeue() (T, error) {
	value, err := q.items.Pop(0)
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}
	return value, nil
}

func (q *Queue[T]) Front() (T, error) {
	value, err := q.items.Front()
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}
	return value, nil
}

func (q *Queue[T]) Back() (T, error) {
	value, err := q.items.Back()
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}
	return value, nil
}

func (q *Queue[T]) Size() int {
	return q.items.Len()
}

// Cap is the backing list's capacity, which grows by doubling on
// enqueue and halves as dequeues drain the queue below quarter
// occupancy.
func (q *Queue[T]) Cap() int {
	return q.items.Cap()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.items.IsEmpty()
}

func (q *Queue[T]) Clear() {
	q.items.Clear()
}

func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{items: *q.items.Clone()}
}
