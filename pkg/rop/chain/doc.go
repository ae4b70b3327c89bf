// Package chain implements a chain of responsibility for validation.
//
// Validators are created independently of their position and wired into a
// forward-only list by Build. Run walks the list from the head: the first link
// whose check fails ends the walk with a failed Outcome naming that link; when
// the last link passes, the Outcome is a success.
//
// Key operations:
// - New: a Validator from an identifier and a predicate
// - Build/MustBuild: assemble validators into a chain, rejecting duplicates
// - Run/Request: traverse a chain, returning or delivering an Outcome
// - RunContext/RunResult: traverse while observing context cancellation
// - Step/Predicate/ToResult: use a chain inside a rop pipeline
// - Links/Identifiers: inspect a chain, detecting cycles in hand-written links
package chain
