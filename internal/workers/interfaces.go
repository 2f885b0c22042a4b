// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutine that lives
// until ctx is cancelled or Stop is called. Stop blocks until that goroutine
// has exited and is a no-op for a worker that is not running.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// ExpiredKeyEvictor drops session data keys whose TTL has passed and
// reports how many were removed.
type ExpiredKeyEvictor interface {
	EvictExpired(now time.Time) int
}
