// Package workers runs the background jobs of the background process.
//
// A [Worker] is started once with the process context. Workers that keep
// running spawn their own goroutines and stop when the context is done.
package workers

import "context"

// Worker is implemented by every background job.
type Worker interface {
	Run(ctx context.Context)
}
