package worker

import (
	"context"
)

func (w *Worker) analysisOperation() {
	w.logger.Infow("worker: analysisOperation: G started")
	defer w.logger.Infow("worker: analysisOperation: G completed")

	w.logger.Infow("worker: analysisOperation: G listening")
	for {
		select {
		case request := <-w.submitCh:
			w.registry.SetRunning(request.ID)
			w.logger.Infow("worker: analysisOperation: job started", "id", request.ID)

			ctx, cancel := context.WithTimeout(context.Background(), w.config.AnalysisTimeout)
			bundle := w.orchestrator.Run(ctx, request)
			cancel()

			outcome := Outcome{
				Bundle:          bundle,
				Recommendations: w.engine.Recommend(bundle),
			}

			w.registry.Complete(request.ID, outcome)
			w.broker.Publish(request.ID, outcome)
			w.logger.Infow("worker: analysisOperation: job completed", "id", request.ID,
				"recommendations", len(outcome.Recommendations))

		case <-w.shut:
			w.logger.Infow("worker: analysisOperation: received shut signal")
			return
		}
	}
}
