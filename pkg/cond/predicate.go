package cond

import "cmp"

// Predicate is a deferred boolean. Entry points that accept one call it at
// most once.
type Predicate func() bool

// Eval invokes p once. A panic raised by p is not recovered.
func Eval(p Predicate) bool {
	return p()
}

func Not(p Predicate) Predicate {
	return func() bool { return !p() }
}

// All short-circuits on the first false predicate. An empty list is true.
func All(ps ...Predicate) Predicate {
	return func() bool {
		for _, p := range ps {
			if !p() {
				return false
			}
		}
		return true
	}
}

// Any short-circuits on the first true predicate. An empty list is false.
func Any(ps ...Predicate) Predicate {
	return func() bool {
		for _, p := range ps {
			if p() {
				return true
			}
		}
		return false
	}
}

// Between reports whether lo <= v <= hi.
func Between[N cmp.Ordered](v, lo, hi N) Predicate {
	return func() bool { return v >= lo && v <= hi }
}
