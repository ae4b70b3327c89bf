// Package core contains pipeline plumbing: channel helpers, options carried
// through the context (worker count, logger), and the locomotive that drives a
// synchronous engine over a channel of results. It holds no validation logic.
package core
