// Package linkedlist implements a singly linked list that owns its chain of
// nodes through the head pointer.
package linkedlist

import (
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/classicds/datastructs/pkg/containers"
)

const containerName = "linkedlist"

type node[T comparable] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list. The length is not cached, so Len walks
// the chain. A LinkedList is not safe for concurrent use.
type LinkedList[T comparable] struct {
	head *node[T]
	opts containers.Options
}

// New returns an empty list.
func New[T comparable](opts ...containers.Option) *LinkedList[T] {
	return &LinkedList[T]{opts: containers.NewOptions(opts...)}
}

// FromValues returns a list holding values in order.
func FromValues[T comparable](values []T, opts ...containers.Option) *LinkedList[T] {
	l := New[T](opts...)
	var tail *node[T]
	for _, v := range values {
		n := &node[T]{value: v}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return l
}

// InsertAtBeginning makes value the new head.
func (l *LinkedList[T]) InsertAtBeginning(value T) {
	l.head = &node[T]{value: value, next: l.head}
}

// InsertAtEnd appends value after the last node.
func (l *LinkedList[T]) InsertAtEnd(value T) {
	n := &node[T]{value: value}
	if l.head == nil {
		l.head = n
		return
	}

	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = n
}

// InsertAtPosition inserts value so that it ends up at index position. Valid
// positions are 0 through Len(); any other position returns an error wrapping
// ErrOutOfBounds.
func (l *LinkedList[T]) InsertAtPosition(value T, position int) error {
	if position < 0 {
		return outOfBoundsError(position, l.Len())
	}
	if position == 0 {
		l.InsertAtBeginning(value)
		return nil
	}

	current := l.head
	for i := 0; i < position-1 && current != nil; i++ {
		current = current.next
	}
	if current == nil {
		return outOfBoundsError(position, l.Len())
	}

	current.next = &node[T]{value: value, next: current.next}
	return nil
}

// DeleteAtBeginning unlinks the head. It reports false when the list is empty.
func (l *LinkedList[T]) DeleteAtBeginning() bool {
	if l.head == nil {
		l.reportEmpty("delete_at_beginning")
		return false
	}

	l.head = l.head.next
	return true
}

// DeleteAtEnd unlinks the last node. It reports false when the list is empty.
func (l *LinkedList[T]) DeleteAtEnd() bool {
	if l.head == nil {
		l.reportEmpty("delete_at_end")
		return false
	}
	if l.head.next == nil {
		l.head = nil
		return true
	}

	current := l.head
	for current.next.next != nil {
		current = current.next
	}
	current.next = nil
	return true
}

// DeleteAtPosition unlinks the node at index position. Deleting from an empty
// list is a no-op that reports false, whatever the position. On a non-empty
// list, positions outside 0 through Len()-1 return an error wrapping
// ErrOutOfBounds.
func (l *LinkedList[T]) DeleteAtPosition(position int) (bool, error) {
	if l.head == nil {
		l.reportEmpty("delete_at_position")
		return false, nil
	}
	if position < 0 {
		return false, outOfBoundsError(position, l.Len())
	}
	if position == 0 {
		return l.DeleteAtBeginning(), nil
	}

	current := l.head
	for i := 0; i < position-1 && current.next != nil; i++ {
		current = current.next
	}
	if current.next == nil {
		return false, outOfBoundsError(position, l.Len())
	}

	current.next = current.next.next
	return true, nil
}

// Search returns the index of the first node holding key.
func (l *LinkedList[T]) Search(key T) (int, bool) {
	position := 0
	for current := l.head; current != nil; current = current.next {
		if current.value == key {
			return position, true
		}
		position++
	}

	l.opts.Logger().Info("element not found in the list",
		zap.String("container", containerName),
		zap.Any("key", key),
	)
	return -1, false
}

// Reverse relinks the chain in place so the former tail becomes the head.
func (l *LinkedList[T]) Reverse() {
	var previous *node[T]
	current := l.head
	for current != nil {
		next := current.next
		current.next = previous
		previous = current
		current = next
	}
	l.head = previous
}

// All returns an iterator over the values from head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.head; current != nil; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// Traverse returns the values from head to tail.
func (l *LinkedList[T]) Traverse() []T {
	values := []T{}
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the nodes.
func (l *LinkedList[T]) Len() int {
	n := 0
	for current := l.head; current != nil; current = current.next {
		n++
	}
	return n
}

// String renders the chain as "1 -> 2 -> 3 -> nil". An empty list renders as
// just "nil".
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	for v := range l.All() {
		fmt.Fprintf(&sb, "%v -> ", v)
	}
	sb.WriteString("nil")
	return sb.String()
}

func (l *LinkedList[T]) reportEmpty(operation string) {
	l.opts.ReportEmpty(containerName, operation, "the list is empty, no deletion performed")
}
