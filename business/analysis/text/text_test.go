package text_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/salescoachapi/goSalesCoach/business/analysis/modality"
	"github.com/salescoachapi/goSalesCoach/business/analysis/text"
	"github.com/salescoachapi/goSalesCoach/foundation/lexicon"
)

func within(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
}

func TestSummarize(t *testing.T) {
	lex := lexicon.Default()

	t.Run("blank input yields the neutral default", func(t *testing.T) {
		t.Parallel()
		result := text.Summarize("  \n ", lex)

		if !result.Degraded() {
			t.Fatal("expected a degraded result")
		}
		if result.Reason != modality.EmptyInput {
			t.Fatalf("reason: got %q, want %q", result.Reason, modality.EmptyInput)
		}
		if result.Summary.Sentiment != text.SentimentNeutral {
			t.Fatalf("sentiment: got %q, want neutral", result.Summary.Sentiment)
		}
		if result.Summary.KeyPhrases == nil || len(result.Summary.KeyPhrases) != 0 {
			t.Fatalf("key phrases: got %v, want empty slice", result.Summary.KeyPhrases)
		}
	})

	t.Run("positive sentiment", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("great great results", lex).Summary

		if s.Sentiment != text.SentimentPositive {
			t.Fatalf("sentiment: got %q, want positive", s.Sentiment)
		}
		within(t, "score", s.SentimentScore, 2.0/3.0)
		if s.SentimentDetail.PositiveCount != 2 || s.SentimentDetail.NegativeCount != 0 {
			t.Fatalf("detail: got %+v", s.SentimentDetail)
		}
	})

	t.Run("negative sentiment", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("terrible awful outcome", lex).Summary

		if s.Sentiment != text.SentimentNegative {
			t.Fatalf("sentiment: got %q, want negative", s.Sentiment)
		}
		within(t, "score", s.SentimentScore, -2.0/3.0)
	})

	t.Run("no sentiment words is neutral with zero score", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("the cat sat on the mat", lex).Summary

		if s.Sentiment != text.SentimentNeutral || s.SentimentScore != 0 {
			t.Fatalf("got %q score %v, want neutral 0", s.Sentiment, s.SentimentScore)
		}
	})

	t.Run("small positive score stays neutral", func(t *testing.T) {
		t.Parallel()
		input := "great" + strings.Repeat(" word", 59)

		s := text.Summarize(input, lex).Summary
		if s.Sentiment != text.SentimentNeutral {
			t.Fatalf("sentiment: got %q, want neutral", s.Sentiment)
		}
		within(t, "score", s.SentimentScore, 1.0/60.0)
	})

	t.Run("persuasiveness blends structure and vocabulary", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("call now to gain benefits and improve growth", lex).Summary

		p := s.Persuasion
		if p.CallToAction != 1 || p.Urgency != 1 || p.Benefit != 2 {
			t.Fatalf("structure counts: got %+v", p)
		}
		if p.PersuasiveCount != 2 {
			t.Fatalf("persuasive count: got %d, want 2", p.PersuasiveCount)
		}
		within(t, "structure score", p.StructureScore, 0.4)
		within(t, "vocabulary score", p.VocabularyScore, 1.0)
		within(t, "persuasiveness", s.PersuasivenessScore, 0.7)
	})

	t.Run("professional vocabulary raises the score", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("strategy analysis framework", lex).Summary

		if s.ProfessionalismScore != 1 {
			t.Fatalf("professionalism: got %v, want 1", s.ProfessionalismScore)
		}
		if s.Professionalism.ProfessionalCount != 3 {
			t.Fatalf("professional count: got %d, want 3", s.Professionalism.ProfessionalCount)
		}
	})

	t.Run("casual vocabulary is penalized", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("yeah cool stuff", lex).Summary

		if s.ProfessionalismScore != 0 {
			t.Fatalf("professionalism: got %v, want 0", s.ProfessionalismScore)
		}
		within(t, "casual penalty", s.Professionalism.CasualPenalty, 0.5)
	})

	t.Run("short simple sentences read as very easy", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("The cat sat. The dog ran.", lex).Summary

		if s.ClarityScore != 1 {
			t.Fatalf("clarity: got %v, want 1", s.ClarityScore)
		}
		if s.Clarity.ReadabilityLevel != "Very Easy" {
			t.Fatalf("level: got %q", s.Clarity.ReadabilityLevel)
		}
		within(t, "average sentence length", s.Clarity.AverageSentenceLength, 3)
		if s.SentenceCount != 2 {
			t.Fatalf("sentences: got %d, want 2", s.SentenceCount)
		}
	})

	t.Run("long complex sentences lower clarity", func(t *testing.T) {
		t.Parallel()
		input := strings.TrimSpace(strings.Repeat("wonderful ", 30)) + "."

		s := text.Summarize(input, lex).Summary
		within(t, "clarity", s.ClarityScore, (206.835-1.015*30-84.6)/100)
		within(t, "complex ratio", s.Clarity.ComplexWordRatio, 1)
	})

	t.Run("key phrases by family in order", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("Our analytics platform helps. Improve efficiency now. 40% gains today.", lex).Summary

		want := []string{"our analytics platform", "improve efficiency now", "40% gains today"}
		if !reflect.DeepEqual(s.KeyPhrases, want) {
			t.Fatalf("key phrases: got %v, want %v", s.KeyPhrases, want)
		}
		if s.WordCount != 9 || s.SentenceCount != 3 {
			t.Fatalf("counts: got words=%d sentences=%d", s.WordCount, s.SentenceCount)
		}
	})

	t.Run("duplicate phrases collapse to the first", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("Our main platform. Our main platform.", lex).Summary

		want := []string{"our main platform"}
		if !reflect.DeepEqual(s.KeyPhrases, want) {
			t.Fatalf("key phrases: got %v, want %v", s.KeyPhrases, want)
		}
	})

	t.Run("style counts pronouns emphasis and questions", func(t *testing.T) {
		t.Parallel()
		s := text.Summarize("I really believe you will find this very useful?", lex).Summary

		if s.Style.FirstPerson != 1 || s.Style.SecondPerson != 1 {
			t.Fatalf("pronouns: got %+v", s.Style)
		}
		if s.Style.Emphasis != 2 {
			t.Fatalf("emphasis: got %d, want 2", s.Style.Emphasis)
		}
		if s.Style.Questions != 1 {
			t.Fatalf("questions: got %d, want 1", s.Style.Questions)
		}
	})
}
