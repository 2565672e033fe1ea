package chain

import "github.com/ib-77/cond/pkg/cond"

type facet uint8

const (
	invalid facet = iota
	valid
)

// Branch is one predicate-guarded step of the ladder
type Branch[T any] struct {
	facet facet
	chain Chain[T]
}

// Valid reports whether this branch will commit
func (b Branch[T]) Valid() bool {
	return b.facet == valid
}

// Run executes action on a valid branch
func (b Branch[T]) Run(action func()) Chain[T] {
	switch b.facet {
	case valid:
		action()
		return Chain[T]{value: true, result: b.chain.result}
	default:
		return b.chain
	}
}

// Set commits the supplied result on a valid branch
func (b Branch[T]) Set(supplier func() T) Chain[T] {
	switch b.facet {
	case valid:
		return Chain[T]{value: true, result: cond.Some(supplier())}
	default:
		return b.chain
	}
}

// Raise commits the supplied error on a valid branch. The rest of the
// ladder, including the else path, is skipped.
func (b Branch[T]) Raise(supplier func() error) Chain[T] {
	switch b.facet {
	case valid:
		return Chain[T]{value: true, err: supplier()}
	default:
		return b.chain
	}
}

// SetAs commits a result of a new type on a valid branch. An invalid branch
// keeps its taken flag and error; it never carries a result here.
func SetAs[R any](b Branch[cond.Pending], supplier func() R) Chain[R] {
	switch b.facet {
	case valid:
		return Chain[R]{value: true, result: cond.Some(supplier())}
	default:
		return Chain[R]{value: b.chain.value, err: b.chain.err}
	}
}
