// Package errors tags errors with a sentinel without changing their message.
package errors

import (
	"errors"
)

// With returns an error that reads like base but also matches top (and
// anything top wraps) under errors.Is and errors.As.
func With(base, top error) error {
	if base == nil && top == nil {
		return nil
	}
	if top == nil {
		return base
	}
	if base == nil {
		return top
	}
	return joined{error: base, top: top}
}

type joined struct {
	error
	top error
}

func (j joined) Is(target error) bool {
	return errors.Is(j.top, target)
}

func (j joined) As(target any) bool {
	return errors.As(j.top, target)
}

// Unwrap continues the chain through base; top is only reachable via Is/As.
func (j joined) Unwrap() error {
	return j.error
}
