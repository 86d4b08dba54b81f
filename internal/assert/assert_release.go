//go:build !debug

// Package assert provides lightweight invariant checks used throughout the
// engine (zobrist/occupancy/undo consistency). Assertions are compiled out
// entirely in release builds and only active in binaries built with
// `-tags debug`.
package assert

// DEBUG controls whether Assert actually evaluates its condition.
const DEBUG = false

// Assert panics with the formatted message if test is false. Callers should
// still guard calls with `if assert.DEBUG { ... }` since Go evaluates the
// arguments to Assert eagerly even when the body is a no-op.
func Assert(test bool, msg string, a ...interface{}) {}
