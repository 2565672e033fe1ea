// Package chain renders an if / else-if / else ladder as a chain of calls.
//
// Each step returns a Branch, which is either valid (its predicate is true
// and no earlier branch was taken) or invalid (everything else). Only the
// first valid branch runs its action, sets its result or raises its error;
// every later branch passes the chain through untouched.
//
// Key operations:
// - If/IfFunc/From/FromFunc: evaluate the first predicate
// - Branch.Run/Set/Raise, SetAs: commit the branch when it is valid
// - Chain.ElseIf/ElseIfFunc: evaluate the next predicate unless a branch was taken
// - Chain.OrElse/OrElseSet/OrElseRaise, OrElseSetAs: close the ladder into an End
// - End.Get: read the committed result
package chain
