// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and the image cleaner that
// removes uploaded files off the request path.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
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

// ImageCleaner removes image files in the background.
type ImageCleaner interface {
	Worker

	// Enqueue schedules path for removal without blocking. It reports
	// false when the path was dropped because the queue is full.
	Enqueue(path string) bool
}

// ImageRemover deletes a stored image.
type ImageRemover interface {
	Remove(ctx context.Context, path string) error
}
