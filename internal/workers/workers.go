package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background workers.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewReminderWorker(storages.NoteRepository, NewLogNotifier(logger), cfg.ReminderInterval, logger),
	}}
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
