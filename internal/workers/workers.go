package workers

// Workers aggregates background workers so the application can start them
// all in one call during startup.
type Workers struct {
	workers []Worker
}

// NewWorkers constructs a Workers aggregate over the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every registered worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
