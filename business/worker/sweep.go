package worker

import "time"

func (w *Worker) sweepOperation() {
	w.logger.Infow("worker: sweepOperation: G started")
	defer w.logger.Infow("worker: sweepOperation: G completed")

	ticker := time.NewTicker(w.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := w.registry.Sweep(time.Now().UTC()); removed > 0 {
				w.logger.Infow("worker: sweepOperation: expired jobs removed", "count", removed)
			}

		case <-w.shut:
			w.logger.Infow("worker: sweepOperation: received shut signal")
			return
		}
	}
}
