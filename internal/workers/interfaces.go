// Package workers provides the background execution primitives of the
// application: long-running workers that live as long as the server, and a
// bounded [Pool] that offloads CPU-heavy jobs (password hashing) from
// request goroutines.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts an ordinary function to the [Worker] interface.
type WorkerFunc func(ctx context.Context)

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
