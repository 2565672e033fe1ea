package chain

import (
	"fmt"

	"github.com/ib-77/cond/pkg/cond"
)

// Chain is the state between two branches. value reports whether a branch
// has been taken; result and err are fixed by that branch.
type Chain[T any] struct {
	value  bool
	result cond.Option[T]
	err    error
}

// End is the closed ladder. It only exposes what the taken branch produced.
type End[T any] struct {
	result cond.Option[T]
	err    error
}

// If starts a ladder whose result type is chosen later by SetAs
func If(b bool) Branch[cond.Pending] {
	return From[cond.Pending](b)
}

func IfFunc(p cond.Predicate) Branch[cond.Pending] {
	return If(cond.Eval(p))
}

// From starts a ladder with a known result type
func From[T any](b bool) Branch[T] {
	if b {
		return Branch[T]{facet: valid, chain: Chain[T]{value: true}}
	}
	return Branch[T]{facet: invalid, chain: Chain[T]{value: false}}
}

func FromFunc[T any](p cond.Predicate) Branch[T] {
	return From[T](cond.Eval(p))
}

// ElseIf evaluates the next branch. Once a branch has been taken every
// following one is invalid.
func (c Chain[T]) ElseIf(b bool) Branch[T] {
	if c.value {
		return Branch[T]{facet: invalid, chain: c}
	}
	return From[T](b)
}

// ElseIfFunc is ElseIf with a predicate that is not evaluated after a branch was taken
func (c Chain[T]) ElseIfFunc(p cond.Predicate) Branch[T] {
	if c.value {
		return Branch[T]{facet: invalid, chain: c}
	}
	return FromFunc[T](p)
}

// OrElse runs action when no branch was taken
func (c Chain[T]) OrElse(action func()) End[T] {
	if !c.value {
		action()
	}
	return c.end()
}

func (c Chain[T]) OrElseSet(supplier func() T) End[T] {
	if !c.value {
		return End[T]{result: cond.Some(supplier())}
	}
	return c.end()
}

func (c Chain[T]) OrElseRaise(supplier func() error) End[T] {
	if !c.value {
		return End[T]{err: supplier()}
	}
	return c.end()
}

// OrElseSetAs closes a ladder that has no result type yet
func OrElseSetAs[R any](c Chain[cond.Pending], supplier func() R) End[R] {
	if !c.value {
		return End[R]{result: cond.Some(supplier())}
	}
	return End[R]{err: c.err}
}

func (c Chain[T]) end() End[T] {
	return End[T]{result: c.result, err: c.err}
}

func (c Chain[T]) Get() cond.Option[T] {
	return c.result
}

func (c Chain[T]) Value() bool {
	return c.value
}

func (c Chain[T]) Err() error {
	return c.err
}

func (c Chain[T]) String() string {
	return fmt.Sprintf("Condition[value=%t, result=%v]", c.value, c.result)
}

func (e End[T]) Get() cond.Option[T] {
	return e.result
}

func (e End[T]) Err() error {
	return e.err
}
