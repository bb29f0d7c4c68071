package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salescoachapi/goSalesCoach/business/analysis"
	"github.com/salescoachapi/goSalesCoach/business/analysis/emotion"
	"github.com/salescoachapi/goSalesCoach/business/analysis/speech"
	"github.com/salescoachapi/goSalesCoach/business/coaching"
	"github.com/salescoachapi/goSalesCoach/business/worker"
	"github.com/salescoachapi/goSalesCoach/foundation/external/transcriber"
	"github.com/salescoachapi/goSalesCoach/foundation/pubsub"
	"github.com/salescoachapi/goSalesCoach/foundation/registry"
)

type Handlers struct {
	Logger       *zap.SugaredLogger
	Worker       *worker.Worker
	Registry     *registry.Registry[worker.Outcome]
	Broker       *pubsub.Broker
	Orchestrator *analysis.Orchestrator
	Engine       *coaching.Engine
	Transcriber  *transcriber.Client
	WaitTimeout  time.Duration
}

func (h *Handlers) Routes(router *gin.Engine) {
	router.GET("/health", h.health)

	v1 := router.Group("/v1")
	v1.POST("/analyses/sync", h.analyzeSync)
	v1.POST("/analyses", h.submitAnalysis)
	v1.GET("/analyses/:id", h.getAnalysis)
	v1.GET("/analyses/:id/result", h.waitResult)
}

// analysisPayload is the wire shape of one analysis request: raw per-modality
// inputs plus the enabled-modality set. Omitted modalities default to all
// enabled.
type analysisPayload struct {
	Frames     []emotion.Frame      `json:"frames"`
	Speech     speech.Features      `json:"speech"`
	Text       string               `json:"text"`
	AudioURL   string               `json:"audio_url"`
	Modalities *analysis.Modalities `json:"modalities"`
}

func (p *analysisPayload) toRequest(id string) analysis.Request {
	modalities := analysis.AllModalities()
	if p.Modalities != nil {
		modalities = *p.Modalities
	}

	return analysis.Request{
		ID:         id,
		Frames:     p.Frames,
		Speech:     p.Speech,
		Text:       p.Text,
		Modalities: modalities,
	}
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// analyzeSync runs the whole pipeline inline and returns the bundle plus the
// recommendation list.
func (h *Handlers) analyzeSync(c *gin.Context) {
	var payload analysisPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.resolveTranscript(c.Request.Context(), &payload)

	request := payload.toRequest(uuid.New().String())

	bundle := h.Orchestrator.Run(c.Request.Context(), request)
	recommendations := h.Engine.Recommend(bundle)

	c.JSON(http.StatusOK, gin.H{
		"id":                       request.ID,
		"analysis":                 bundle,
		"coaching_recommendations": recommendations,
	})
}

// submitAnalysis enqueues a background job and returns its ID immediately.
func (h *Handlers) submitAnalysis(c *gin.Context) {
	var payload analysisPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.resolveTranscript(c.Request.Context(), &payload)

	request := payload.toRequest(uuid.New().String())

	if err := h.Worker.Submit(request); err != nil {
		h.Logger.Errorw("handlers: submitAnalysis", "ERROR", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": request.ID, "status": registry.StatusPending})
}

func (h *Handlers) getAnalysis(c *gin.Context) {
	job, exists := h.Registry.Get(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// waitResult blocks until the job finishes or the wait timeout passes. A job
// still in flight after the timeout reports its current status with 202.
func (h *Handlers) waitResult(c *gin.Context) {
	id := c.Param("id")

	job, exists := h.Registry.Get(id)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}
	if job.Status == registry.StatusCompleted {
		c.JSON(http.StatusOK, job.Result)
		return
	}

	sub := pubsub.NewSubscriber(1)
	h.Broker.Subscribe(id, sub)
	defer h.Broker.Unsubscribe(id, sub)

	// The job may have finished between the status check and the
	// subscription.
	if job, exists := h.Registry.Get(id); exists && job.Status == registry.StatusCompleted {
		c.JSON(http.StatusOK, job.Result)
		return
	}

	timer := time.NewTimer(h.WaitTimeout)
	defer timer.Stop()

	select {
	case payload := <-sub.GetChannel():
		if outcome, ok := payload.(worker.Outcome); ok {
			c.JSON(http.StatusOK, outcome)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected event payload"})

	case <-timer.C:
		job, _ := h.Registry.Get(id)
		c.JSON(http.StatusAccepted, gin.H{"id": id, "status": job.Status})

	case <-c.Request.Context().Done():
	}
}

// resolveTranscript fills the speech transcript from the external provider
// when the request carries only an audio reference. Provider failure leaves
// the transcript empty and the speech modality degrades to its default.
func (h *Handlers) resolveTranscript(ctx context.Context, payload *analysisPayload) {
	if payload.AudioURL == "" || payload.Speech.Transcript != "" || !h.Transcriber.Enabled() {
		return
	}

	result, err := h.Transcriber.Transcribe(ctx, payload.AudioURL)
	if err != nil {
		h.Logger.Errorw("handlers: resolveTranscript", "ERROR", err)
		return
	}

	payload.Speech.Transcript = result.Transcript
	payload.Speech.TranscriptConfidence = result.Confidence
	if payload.Speech.DurationSeconds == 0 {
		payload.Speech.DurationSeconds = result.DurationSeconds
	}
}
