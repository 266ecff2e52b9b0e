package stack

// Stack is a persistent stack built from linked frames. The nil *Stack is the
// empty stack.
//
// Push and Pop never modify the stack they are given; each returns the stack
// to use from then on. Holding on to an older stack keeps seeing its frames.
type Stack[T any] struct {
	Value T
	next  *Stack[T]
}

func Push[T any](stack *Stack[T], value T) *Stack[T] {
	return &Stack[T]{Value: value, next: stack}
}

// Pop returns the top value and the stack below it. Pop panics on the empty
// stack; check IsEmpty first.
func Pop[T any](stack *Stack[T]) (T, *Stack[T]) {
	return stack.Value, stack.next
}

func IsEmpty[T any](stack *Stack[T]) bool {
	return stack == nil
}
