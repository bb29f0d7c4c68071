// Package analysis fans one request out to the modality summarizers and
// assembles their results into a single bundle. The orchestrator itself never
// fails: a summarizer that panics, receives empty input, or is disabled
// contributes its modality default, and cancellation degrades the remaining
// branches without blocking.
package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/salescoachapi/goSalesCoach/business/analysis/emotion"
	"github.com/salescoachapi/goSalesCoach/business/analysis/modality"
	"github.com/salescoachapi/goSalesCoach/business/analysis/speech"
	"github.com/salescoachapi/goSalesCoach/business/analysis/text"
	"github.com/salescoachapi/goSalesCoach/foundation/lexicon"
)

// Modalities is the per-request enable set.
type Modalities struct {
	Emotion bool `json:"emotion"`
	Speech  bool `json:"speech"`
	Text    bool `json:"text"`
}

func AllModalities() Modalities {
	return Modalities{Emotion: true, Speech: true, Text: true}
}

// Request carries the raw per-modality inputs for one analysis.
type Request struct {
	ID         string          `json:"id"`
	Frames     []emotion.Frame `json:"frames"`
	Speech     speech.Features `json:"speech"`
	Text       string          `json:"text"`
	Modalities Modalities      `json:"modalities"`
}

// Bundle is the fused per-request output. Fields are assigned by modality
// identity, never by completion order, and the bundle is immutable once
// returned.
type Bundle struct {
	ID      string                           `json:"id"`
	Emotion modality.Result[emotion.Summary] `json:"emotions"`
	Speech  modality.Result[speech.Summary]  `json:"speech"`
	Text    modality.Result[text.Summary]    `json:"text"`
}

type Orchestrator struct {
	lexicons *lexicon.Set
	logger   *zap.SugaredLogger
}

func NewOrchestrator(lexicons *lexicon.Set, logger *zap.SugaredLogger) *Orchestrator {
	return &Orchestrator{
		lexicons: lexicons,
		logger:   logger,
	}
}

// Run invokes the enabled summarizers concurrently and waits for all of them
// to finish or fail. When the text input is empty the speech transcript is
// reused as the document under analysis.
func (o *Orchestrator) Run(ctx context.Context, request Request) Bundle {
	document := request.Text
	if document == "" {
		document = request.Speech.Transcript
	}

	emotionCh := make(chan modality.Result[emotion.Summary], 1)
	speechCh := make(chan modality.Result[speech.Summary], 1)
	textCh := make(chan modality.Result[text.Summary], 1)

	if request.Modalities.Emotion {
		go func() { emotionCh <- emotion.Summarize(request.Frames, o.lexicons) }()
	} else {
		emotionCh <- modality.Degraded(emotion.Default(o.lexicons), modality.Disabled)
	}

	if request.Modalities.Speech {
		go func() { speechCh <- speech.Summarize(request.Speech, o.lexicons) }()
	} else {
		speechCh <- modality.Degraded(speech.Default(), modality.Disabled)
	}

	if request.Modalities.Text {
		go func() { textCh <- text.Summarize(document, o.lexicons) }()
	} else {
		textCh <- modality.Degraded(text.Default(), modality.Disabled)
	}

	bundle := Bundle{ID: request.ID}

	// Join barrier. An abandoned branch sends into its buffered channel and
	// the result is discarded, so a bundle already handed off is never
	// written to.
	select {
	case bundle.Emotion = <-emotionCh:
	case <-ctx.Done():
		bundle.Emotion = modality.Degraded(emotion.Default(o.lexicons), modality.Cancelled)
	}

	select {
	case bundle.Speech = <-speechCh:
	case <-ctx.Done():
		bundle.Speech = modality.Degraded(speech.Default(), modality.Cancelled)
	}

	select {
	case bundle.Text = <-textCh:
	case <-ctx.Done():
		bundle.Text = modality.Degraded(text.Default(), modality.Cancelled)
	}

	if bundle.Emotion.Degraded() {
		o.logger.Infow("analysis: emotion degraded", "id", request.ID, "reason", bundle.Emotion.Reason)
	}
	if bundle.Speech.Degraded() {
		o.logger.Infow("analysis: speech degraded", "id", request.ID, "reason", bundle.Speech.Reason)
	}
	if bundle.Text.Degraded() {
		o.logger.Infow("analysis: text degraded", "id", request.ID, "reason", bundle.Text.Reason)
	}

	return bundle
}
