package booleans

import (
	"fmt"

	"github.com/ib-77/cond/pkg/cond"
)

type Result[T any] struct {
	value   bool
	matched bool
	result  cond.Option[T]
	err     error
}

// trueResult and falseResult are the shared starting points returned by Of.
// They are never reassigned; callers only ever receive copies.
var (
	trueResult  = Result[cond.Pending]{value: true}
	falseResult = Result[cond.Pending]{value: false}
)

func Of(b bool) Result[cond.Pending] {
	if b {
		return trueResult
	}
	return falseResult
}

// True returns the shared true starting point
func True() Result[cond.Pending] {
	return trueResult
}

// False returns the shared false starting point
func False() Result[cond.Pending] {
	return falseResult
}

// OfFunc evaluates p once and delegates to Of
func OfFunc(p cond.Predicate) Result[cond.Pending] {
	return Of(cond.Eval(p))
}

// From starts a chain whose result type is already known
func From[T any](b bool) Result[T] {
	return Result[T]{value: b}
}

func FromFunc[T any](p cond.Predicate) Result[T] {
	return From[T](cond.Eval(p))
}

func (r Result[T]) whenTrue() bool {
	return r.err == nil && !r.matched && r.value
}

func (r Result[T]) whenFalse() bool {
	return r.err == nil && !r.matched && !r.value
}

// ElseIf starts a fresh evaluation when the current value is false.
// It looks at the value, not at matched.
func (r Result[T]) ElseIf(b bool) Result[T] {
	if r.err != nil || r.value {
		return r
	}
	return From[T](b)
}

// ElseIfFunc is ElseIf with a predicate that is only evaluated when needed
func (r Result[T]) ElseIfFunc(p cond.Predicate) Result[T] {
	if r.err != nil || r.value {
		return r
	}
	return FromFunc[T](p)
}

// Run executes action when the value is true and nothing has matched yet
func (r Result[T]) Run(action func()) Result[T] {
	if !r.whenTrue() {
		return r
	}
	action()
	return Result[T]{value: true, matched: true, result: r.result}
}

// Set commits the supplied result when the value is true and nothing has matched yet
func (r Result[T]) Set(supplier func() T) Result[T] {
	if !r.whenTrue() {
		return r
	}
	return Result[T]{value: true, matched: true, result: cond.Some(supplier())}
}

// Raise commits the supplied error when the value is true and nothing has
// matched yet. Every later step returns the result unchanged.
func (r Result[T]) Raise(supplier func() error) Result[T] {
	if !r.whenTrue() {
		return r
	}
	return Result[T]{value: true, matched: true, result: r.result, err: supplier()}
}

func (r Result[T]) OrElse(action func()) Result[T] {
	if !r.whenFalse() {
		return r
	}
	action()
	return Result[T]{value: false, matched: true, result: r.result}
}

func (r Result[T]) OrElseSet(supplier func() T) Result[T] {
	if !r.whenFalse() {
		return r
	}
	return Result[T]{value: false, matched: true, result: cond.Some(supplier())}
}

func (r Result[T]) OrElseRaise(supplier func() error) Result[T] {
	if !r.whenFalse() {
		return r
	}
	return Result[T]{value: false, matched: true, result: r.result, err: supplier()}
}

// SetAs commits a result of a new type. Unless the branch fires, the
// value, matched flag and error carry over and no result is set.
func SetAs[R any](r Result[cond.Pending], supplier func() R) Result[R] {
	if !r.whenTrue() {
		return Result[R]{value: r.value, matched: r.matched, err: r.err}
	}
	return Result[R]{value: true, matched: true, result: cond.Some(supplier())}
}

// OrElseSetAs is SetAs for the false side
func OrElseSetAs[R any](r Result[cond.Pending], supplier func() R) Result[R] {
	if !r.whenFalse() {
		return Result[R]{value: r.value, matched: r.matched, err: r.err}
	}
	return Result[R]{value: false, matched: true, result: cond.Some(supplier())}
}

func (r Result[T]) And(other cond.Truth) Result[T] {
	return r.combine(other, func(a, b bool) bool { return a && b })
}

func (r Result[T]) Or(other cond.Truth) Result[T] {
	return r.combine(other, func(a, b bool) bool { return a || b })
}

func (r Result[T]) Xor(other cond.Truth) Result[T] {
	return r.combine(other, func(a, b bool) bool { return a != b })
}

// combine answers a new question: result and matched are dropped. A raised
// error is kept, left operand first.
func (r Result[T]) combine(other cond.Truth, op func(a, b bool) bool) Result[T] {
	out := From[T](op(r.value, other.Value()))
	if r.err != nil {
		out.err = r.err
	} else {
		out.err = other.Err()
	}
	return out
}

// Negate inverts the value and keeps everything else
func (r Result[T]) Negate() Result[T] {
	return Result[T]{value: !r.value, matched: r.matched, result: r.result, err: r.err}
}

func (r Result[T]) Value() bool {
	return r.value
}

func (r Result[T]) Matched() bool {
	return r.matched
}

func (r Result[T]) Result() cond.Option[T] {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) String() string {
	return fmt.Sprintf("Booleans[value=%t, result=%v]", r.value, r.result)
}

// Equal compares value and result. The matched flag and the error are not
// part of it. Result is comparable, so == is the stricter form that also
// compares matched and err.
func Equal[T comparable](a, b Result[T]) bool {
	return a.value == b.value && a.result == b.result
}
