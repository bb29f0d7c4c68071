package worker

import (
	"time"

	"go.uber.org/zap"

	"github.com/salescoachapi/goSalesCoach/business/analysis"
	"github.com/salescoachapi/goSalesCoach/business/coaching"
	"github.com/salescoachapi/goSalesCoach/foundation/pubsub"
	"github.com/salescoachapi/goSalesCoach/foundation/registry"
)

type Settings struct {
	Config
	Logger       *zap.SugaredLogger
	Orchestrator *analysis.Orchestrator
	Engine       *coaching.Engine
	Registry     *registry.Registry[Outcome]
	Broker       *pubsub.Broker
}

type Config struct {
	QueueCapacity   int
	AnalysisTimeout time.Duration
	SweepInterval   time.Duration
}

// =====================================================================================================================

// Outcome is the stored and published result of one finished analysis job.
type Outcome struct {
	Bundle          analysis.Bundle           `json:"analysis"`
	Recommendations []coaching.Recommendation `json:"coaching_recommendations"`
}
