// Package booleans provides Result[T], an immutable boolean paired with an
// optional result and a matched flag.
//
// Gated operations fire only while no earlier step has matched:
// - Run/Set/Raise: act when the value is true
// - OrElse/OrElseSet/OrElseRaise: act when the value is false
// - ElseIf/ElseIfFunc: start a fresh evaluation when the value is false
// - And/Or/Xor: answer a new boolean question (result and matched reset)
// - Negate: invert the value, keeping result and matched
//
// Of and OfFunc return the shared True()/False() values typed with
// cond.Pending; SetAs gives the chain its result type on the first commit.
// A raised error is carried in the value and stops every later step.
package booleans
