// Package stack implements a LIFO container backed by a dynamic array.
package stack

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/classicds/datastructs/pkg/containers"
)

const containerName = "stack"

// Stack is a LIFO container whose top is the end of the backing array.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items *arraylist.List
	opts  containers.Options
}

// New returns an empty stack.
func New[T any](opts ...containers.Option) *Stack[T] {
	return &Stack[T]{
		items: arraylist.New(),
		opts:  containers.NewOptions(opts...),
	}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.items.Add(value)
}

// Pop removes and returns the top value. Popping an empty stack logs a stack
// underflow and returns the zero value and false.
func (s *Stack[T]) Pop() (T, bool) {
	value, ok := s.Peek()
	if !ok {
		s.opts.ReportEmpty(containerName, "pop", "stack underflow")
		return value, false
	}

	s.items.Remove(s.items.Size() - 1)
	return value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if s.items.Empty() {
		return zero, false
	}

	v, _ := s.items.Get(s.items.Size() - 1)
	// a stored nil interface value comes back as the zero T
	value, _ := v.(T)
	return value, true
}

func (s *Stack[T]) IsEmpty() bool {
	return s.items.Empty()
}

func (s *Stack[T]) Len() int {
	return s.items.Size()
}

// Display returns the contents from bottom to top.
func (s *Stack[T]) Display() []T {
	values := make([]T, 0, s.items.Size())
	for _, v := range s.items.Values() {
		value, _ := v.(T)
		values = append(values, value)
	}
	return values
}

func (s *Stack[T]) String() string {
	return fmt.Sprint(s.Display())
}
