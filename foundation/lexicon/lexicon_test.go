package lexicon_test

import (
	"testing"

	"github.com/salescoachapi/goSalesCoach/foundation/lexicon"
)

func TestDefault(t *testing.T) {
	lex := lexicon.Default()

	t.Run("label order is fixed", func(t *testing.T) {
		t.Parallel()
		want := []string{"angry", "disgust", "fear", "happy", "sad", "surprise", "neutral"}
		if len(lex.EmotionLabels) != len(want) {
			t.Fatalf("labels: got %v", lex.EmotionLabels)
		}
		for i, label := range want {
			if lex.EmotionLabels[i] != label {
				t.Fatalf("label %d: got %q, want %q", i, lex.EmotionLabels[i], label)
			}
		}
	})

	t.Run("positive emotions are known labels", func(t *testing.T) {
		t.Parallel()
		known := make(map[string]bool, len(lex.EmotionLabels))
		for _, label := range lex.EmotionLabels {
			known[label] = true
		}
		for _, label := range lex.PositiveEmotions {
			if !known[label] {
				t.Fatalf("positive emotion %q is not a label", label)
			}
		}
	})

	t.Run("term lists are lowercase", func(t *testing.T) {
		t.Parallel()
		lists := map[string][]string{
			"filler":     lex.FillerTerms,
			"confident":  lex.ConfidentTerms,
			"uncertain":  lex.UncertainTerms,
			"positive":   lex.PositiveTerms,
			"negative":   lex.NegativeTerms,
			"persuasive": lex.PersuasiveTerms,
		}
		for name, terms := range lists {
			for _, term := range terms {
				for _, r := range term {
					if r >= 'A' && r <= 'Z' {
						t.Fatalf("%s term %q is not lowercase", name, term)
					}
				}
			}
		}
	})
}
