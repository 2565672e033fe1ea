package cond

// Truth is the boolean side of a chain step
type Truth interface {
	// Value returns the outcome of the current predicate
	Value() bool
	// Err returns the error raised by a committed branch
	Err() error
}

// Outcome is the result side of a chain step
type Outcome[T any] interface {
	// Get returns the committed result, if any
	Get() Option[T]
	// Err returns the error raised by a committed branch
	Err() error
}

// Resolve collapses an outcome into a plain value. def is returned when no
// branch committed a result. A raised error is returned unchanged.
func Resolve[T any](o Outcome[T], def T) (T, error) {
	if err := o.Err(); err != nil {
		return def, err
	}
	return o.Get().OrElse(def), nil
}
