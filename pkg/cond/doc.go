// Package cond holds the vocabulary shared by the booleans and chain packages:
// - Option: a result that is either committed (Some) or absent (None)
// - Pending: the placeholder result type used before a branch sets a value
// - Predicate, Eval, Not, All, Any, Between: deferred boolean entry points
//
// The packages built on it express an if / else-if / else ladder as a chain
// of value transformations instead of control-flow statements.
package cond
