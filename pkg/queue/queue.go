// Package queue implements a FIFO container backed by a doubly linked list.
package queue

import (
	"fmt"

	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/classicds/datastructs/pkg/containers"
)

const containerName = "queue"

// Queue is a FIFO container: values are enqueued at the rear and dequeued
// from the front. A Queue is not safe for concurrent use.
type Queue[T any] struct {
	items *doublylinkedlist.List
	opts  containers.Options
}

// New returns an empty queue.
func New[T any](opts ...containers.Option) *Queue[T] {
	return &Queue[T]{
		items: doublylinkedlist.New(),
		opts:  containers.NewOptions(opts...),
	}
}

// Enqueue adds value at the rear.
func (q *Queue[T]) Enqueue(value T) {
	q.items.Append(value)
}

// Dequeue removes and returns the front value. Dequeuing an empty queue logs
// a queue underflow and returns the zero value and false.
func (q *Queue[T]) Dequeue() (T, bool) {
	value, ok := q.Peek()
	if !ok {
		q.opts.ReportEmpty(containerName, "dequeue", "queue underflow")
		return value, false
	}

	q.items.Remove(0)
	return value, true
}

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	v, ok := q.items.Get(0)
	if !ok {
		return zero, false
	}
	// a stored nil interface value comes back as the zero T
	value, _ := v.(T)
	return value, true
}

func (q *Queue[T]) IsEmpty() bool {
	return q.items.Empty()
}

func (q *Queue[T]) Len() int {
	return q.items.Size()
}

// Display returns the contents from front to rear.
func (q *Queue[T]) Display() []T {
	values := make([]T, 0, q.items.Size())
	it := q.items.Iterator()
	for it.Next() {
		value, _ := it.Value().(T)
		values = append(values, value)
	}
	return values
}

func (q *Queue[T]) String() string {
	return fmt.Sprint(q.Display())
}
