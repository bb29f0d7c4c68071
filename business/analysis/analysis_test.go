package analysis_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/salescoachapi/goSalesCoach/business/analysis"
	"github.com/salescoachapi/goSalesCoach/business/analysis/emotion"
	"github.com/salescoachapi/goSalesCoach/business/analysis/modality"
	"github.com/salescoachapi/goSalesCoach/business/analysis/speech"
	"github.com/salescoachapi/goSalesCoach/foundation/lexicon"
)

func newOrchestrator() *analysis.Orchestrator {
	return analysis.NewOrchestrator(lexicon.Default(), zap.NewNop().Sugar())
}

func happyFrame(lex *lexicon.Set) emotion.Frame {
	scores := make(map[string]float64, len(lex.EmotionLabels))
	for _, label := range lex.EmotionLabels {
		scores[label] = 0.05
	}
	scores["happy"] = 0.7
	return emotion.Frame{Faces: []emotion.Face{{Scores: scores}}}
}

func TestRun(t *testing.T) {
	lex := lexicon.Default()

	t.Run("all modalities succeed", func(t *testing.T) {
		t.Parallel()
		request := analysis.Request{
			ID:     "req-1",
			Frames: []emotion.Frame{happyFrame(lex)},
			Speech: speech.Features{
				Transcript:      "We definitely deliver value.",
				DurationSeconds: 10,
			},
			Text:       "Our proven solution will improve your results.",
			Modalities: analysis.AllModalities(),
		}

		bundle := newOrchestrator().Run(context.Background(), request)

		if bundle.ID != "req-1" {
			t.Fatalf("id: got %q, want req-1", bundle.ID)
		}
		if bundle.Emotion.Degraded() || bundle.Speech.Degraded() || bundle.Text.Degraded() {
			t.Fatalf("unexpected degradation: %q %q %q",
				bundle.Emotion.Reason, bundle.Speech.Reason, bundle.Text.Reason)
		}
		if bundle.Emotion.Summary.DominantEmotion != "happy" {
			t.Fatalf("emotion assigned wrong result: %+v", bundle.Emotion.Summary)
		}
		if bundle.Speech.Summary.Transcript != request.Speech.Transcript {
			t.Fatalf("speech assigned wrong result: %+v", bundle.Speech.Summary)
		}
		if bundle.Text.Summary.WordCount != 7 {
			t.Fatalf("text word count: got %d, want 7", bundle.Text.Summary.WordCount)
		}
	})

	t.Run("disabled modalities degrade without running", func(t *testing.T) {
		t.Parallel()
		request := analysis.Request{
			ID:         "req-2",
			Frames:     []emotion.Frame{happyFrame(lex)},
			Text:       "A short update.",
			Modalities: analysis.Modalities{Text: true},
		}

		bundle := newOrchestrator().Run(context.Background(), request)

		if bundle.Emotion.Reason != modality.Disabled {
			t.Fatalf("emotion reason: got %q, want %q", bundle.Emotion.Reason, modality.Disabled)
		}
		if bundle.Speech.Reason != modality.Disabled {
			t.Fatalf("speech reason: got %q, want %q", bundle.Speech.Reason, modality.Disabled)
		}
		if bundle.Text.Degraded() {
			t.Fatalf("text degraded: %q", bundle.Text.Reason)
		}
		if bundle.Emotion.Summary.DominantEmotion != "neutral" {
			t.Fatalf("emotion default: got %+v", bundle.Emotion.Summary)
		}
	})

	t.Run("empty inputs degrade their branch only", func(t *testing.T) {
		t.Parallel()
		request := analysis.Request{
			ID:         "req-3",
			Text:       "A fine plan.",
			Modalities: analysis.AllModalities(),
		}

		bundle := newOrchestrator().Run(context.Background(), request)

		if bundle.Emotion.Reason != modality.EmptyInput {
			t.Fatalf("emotion reason: got %q, want %q", bundle.Emotion.Reason, modality.EmptyInput)
		}
		if bundle.Speech.Reason != modality.EmptyInput {
			t.Fatalf("speech reason: got %q, want %q", bundle.Speech.Reason, modality.EmptyInput)
		}
		if bundle.Text.Degraded() {
			t.Fatalf("text degraded: %q", bundle.Text.Reason)
		}
	})

	t.Run("summarizer failure degrades its branch only", func(t *testing.T) {
		t.Parallel()

		// A nil lexicon makes every summarizer that reaches its word lists
		// fail internally. The failures must stay inside their branches.
		broken := analysis.NewOrchestrator(nil, zap.NewNop().Sugar())

		request := analysis.Request{
			ID:         "req-6",
			Frames:     []emotion.Frame{happyFrame(lex)},
			Text:       "Our proven solution will improve your results.",
			Modalities: analysis.AllModalities(),
		}

		bundle := broken.Run(context.Background(), request)

		if bundle.Emotion.Reason != modality.InternalError {
			t.Fatalf("emotion reason: got %q, want %q", bundle.Emotion.Reason, modality.InternalError)
		}
		if bundle.Text.Reason != modality.InternalError {
			t.Fatalf("text reason: got %q, want %q", bundle.Text.Reason, modality.InternalError)
		}
		if bundle.Speech.Reason != modality.EmptyInput {
			t.Fatalf("speech reason: got %q, want %q", bundle.Speech.Reason, modality.EmptyInput)
		}
		if bundle.Emotion.Summary.AverageScores == nil {
			t.Fatal("emotion default missing its score map")
		}
	})

	t.Run("text falls back to the speech transcript", func(t *testing.T) {
		t.Parallel()
		request := analysis.Request{
			ID: "req-4",
			Speech: speech.Features{
				Transcript:      "Our strategy delivers measurable growth.",
				DurationSeconds: 5,
			},
			Modalities: analysis.AllModalities(),
		}

		bundle := newOrchestrator().Run(context.Background(), request)

		if bundle.Text.Degraded() {
			t.Fatalf("text degraded: %q", bundle.Text.Reason)
		}
		if bundle.Text.Summary.WordCount != 5 {
			t.Fatalf("text word count: got %d, want 5", bundle.Text.Summary.WordCount)
		}
	})

	t.Run("cancellation still returns a complete bundle", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		request := analysis.Request{
			ID:         "req-5",
			Frames:     []emotion.Frame{happyFrame(lex)},
			Speech:     speech.Features{Transcript: "quick check", DurationSeconds: 1},
			Text:       "quick check",
			Modalities: analysis.AllModalities(),
		}

		bundle := newOrchestrator().Run(ctx, request)

		// Each branch either finished before the join observed cancellation
		// or was degraded with the cancelled reason. Either way every field
		// carries a usable summary.
		if bundle.Emotion.Degraded() && bundle.Emotion.Reason != modality.Cancelled {
			t.Fatalf("emotion reason: got %q", bundle.Emotion.Reason)
		}
		if bundle.Speech.Degraded() && bundle.Speech.Reason != modality.Cancelled {
			t.Fatalf("speech reason: got %q", bundle.Speech.Reason)
		}
		if bundle.Text.Degraded() && bundle.Text.Reason != modality.Cancelled {
			t.Fatalf("text reason: got %q", bundle.Text.Reason)
		}
		if bundle.Emotion.Summary.AverageScores == nil {
			t.Fatal("emotion summary missing its score map")
		}
	})
}
