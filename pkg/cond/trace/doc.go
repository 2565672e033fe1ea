// Package trace records how the predicates of a ladder were decided.
//
// A Recorder wraps predicates with Watch and keeps every evaluation in
// order. Each recorder has its own run id, and its decisions can be
// exported as YAML. Recorders travel on a context via WithRecorder.
package trace
