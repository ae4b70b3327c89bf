// Package lite runs one validation chain over many independent inputs with a
// fixed number of workers. Each traversal is synchronous; only the batch is
// spread across goroutines.
//
// Common usage:
// - Collect: validate a slice and get one Report per input, in input order
// - Run: fan an engine out over an input channel with a number of lines
// - Validate: the engine that runs a chain for an indexed input
// - Summarize: count passed, failed and skipped reports
package lite
