// Package worker runs submitted analysis requests in the background: it
// drains the job queue, runs the orchestrator and the coaching engine,
// records outcomes in the registry and publishes completion events.
package worker

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/salescoachapi/goSalesCoach/business/analysis"
	"github.com/salescoachapi/goSalesCoach/business/coaching"
	"github.com/salescoachapi/goSalesCoach/foundation/pubsub"
	"github.com/salescoachapi/goSalesCoach/foundation/registry"
)

type Worker struct {
	config       Config
	logger       *zap.SugaredLogger
	orchestrator *analysis.Orchestrator
	engine       *coaching.Engine
	registry     *registry.Registry[Outcome]
	broker       *pubsub.Broker

	wg    sync.WaitGroup
	shut  chan struct{}
	error chan error

	submitCh chan analysis.Request
}

func Run(s Settings) (*Worker, <-chan error) {
	w := &Worker{
		config:       s.Config,
		logger:       s.Logger,
		orchestrator: s.Orchestrator,
		engine:       s.Engine,
		registry:     s.Registry,
		broker:       s.Broker,
		shut:         make(chan struct{}),
		error:        make(chan error),
		submitCh:     make(chan analysis.Request, s.Config.QueueCapacity),
	}

	operations := []func(){
		w.analysisOperation,
		w.sweepOperation,
	}

	g := len(operations)
	w.wg.Add(g)

	hasStarted := make(chan bool)

	for _, op := range operations {
		go func(op func()) {
			defer w.wg.Done()
			hasStarted <- true
			op()
		}(op)
	}

	for i := 0; i < g; i++ {
		<-hasStarted
	}

	return w, w.error
}

// Submit registers a new job and enqueues it. A full queue rejects the
// request instead of blocking the caller; a rejected request leaves no
// registry entry behind.
func (w *Worker) Submit(request analysis.Request) error {
	w.registry.Create(request.ID)

	select {
	case w.submitCh <- request:
		return nil
	default:
		w.registry.Delete(request.ID)
		return fmt.Errorf("analysis queue is full, capacity[%d]", w.config.QueueCapacity)
	}
}

func (w *Worker) Shutdown(err error) {
	w.logger.Infow("worker: shutdown: started")
	defer w.logger.Infow("worker: shutdown: completed")

	w.logger.Infow("worker: shutdown: terminate goroutines")
	close(w.shut)

	w.wg.Wait()

	if err != nil {
		w.error <- err
	}
}
