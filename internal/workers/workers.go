package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops every worker and waits for all of them.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
