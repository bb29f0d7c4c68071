// Package speech reduces prosodic features and the transcript into delivery
// metrics: pace, clarity, engagement and vocal confidence.
package speech

import (
	"regexp"
	"strings"

	"github.com/salescoachapi/goSalesCoach/business/analysis/modality"
	"github.com/salescoachapi/goSalesCoach/foundation/lexicon"
)

// baseClarity is the floor component averaged into the clarity score.
const baseClarity = 0.8

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Summarize computes the speech summary for one feature bundle. A blank
// transcript or an internal panic yields the all-zero default with the reason
// recorded on the result.
func Summarize(features Features, lex *lexicon.Set) (result modality.Result[Summary]) {
	defer func() {
		if r := recover(); r != nil {
			result = modality.Degraded(Default(), modality.InternalError)
		}
	}()

	if strings.TrimSpace(features.Transcript) == "" {
		return modality.Degraded(Default(), modality.EmptyInput)
	}

	lower := strings.ToLower(features.Transcript)
	words := strings.Fields(lower)

	fillers, totalFillers := countFillers(lower, lex)
	confident, uncertain := matchIndicators(lower, lex)

	var speakingRate float64
	if features.DurationSeconds > 0 {
		speakingRate = float64(len(words)) / (features.DurationSeconds / 60)
	}

	linguistic := Linguistic{
		TotalWords:            len(words),
		FillerPercentage:      percentage(totalFillers, len(words)),
		ConfidentTerms:        confident,
		UncertainTerms:        uncertain,
		ConfidenceRatio:       float64(len(confident)) / float64(len(uncertain)+1),
		AverageSentenceLength: averageSentenceLength(lower),
		ProfessionalScore:     professionalScore(lower, totalFillers, len(words), lex),
	}

	clarity := clamp01(mean(
		1.0-features.VolumeVariance,
		min1(float64(features.Pauses.Strategic)/5.0),
		baseClarity,
	))

	engagement := clamp01(mean(
		features.Tone.EnergyLevel,
		features.Tone.EnthusiasmScore,
		1.0-features.Tone.MonotoneRisk,
	))

	linguisticConfidence := float64(len(confident)) / float64(len(confident)+len(uncertain)+1)
	confidence := clamp01(mean(linguisticConfidence, features.Pitch.Stability))

	delivery := Delivery{
		Clarity:    clarity,
		Engagement: engagement,
		Confidence: confidence,
		Overall:    clamp01(mean(clarity, engagement, confidence)),
	}

	summary := Summary{
		Transcript:   features.Transcript,
		Confidence:   features.TranscriptConfidence,
		SpeakingRate: speakingRate,
		VolumeLevel:  features.VolumeLevel,
		FillerWords:  fillers,
		Tone:         features.Tone,
		Pauses:       features.Pauses,
		Linguistic:   linguistic,
		Delivery:     delivery,
	}

	return modality.Ok(summary)
}

// Default is the summary used when the modality failed or was disabled.
func Default() Summary {
	return Summary{FillerWords: map[string]int{}}
}

// countFillers tallies occurrences of each filler term in the lowercased
// transcript. Only terms that occur at least once appear in the map.
func countFillers(lower string, lex *lexicon.Set) (map[string]int, int) {
	fillers := make(map[string]int)
	var total int

	for _, term := range lex.FillerTerms {
		if n := strings.Count(lower, term); n > 0 {
			fillers[term] = n
			total += n
		}
	}

	return fillers, total
}

// matchIndicators reports which confidence and uncertainty markers appear in
// the transcript.
func matchIndicators(lower string, lex *lexicon.Set) ([]string, []string) {
	var confident, uncertain []string

	for _, term := range lex.ConfidentTerms {
		if strings.Contains(lower, term) {
			confident = append(confident, term)
		}
	}
	for _, term := range lex.UncertainTerms {
		if strings.Contains(lower, term) {
			uncertain = append(uncertain, term)
		}
	}

	return confident, uncertain
}

func averageSentenceLength(text string) float64 {
	var total, sentences int

	for _, sentence := range sentenceSplit.Split(text, -1) {
		if words := strings.Fields(sentence); len(words) > 0 {
			total += len(words)
			sentences++
		}
	}

	if sentences == 0 {
		return 0
	}
	return float64(total) / float64(sentences)
}

func professionalScore(lower string, totalFillers, totalWords int, lex *lexicon.Set) float64 {
	score := 0.7

	if totalWords > 0 {
		score -= float64(totalFillers) / float64(totalWords) * 0.5
	}

	var hits int
	for _, term := range lex.SpeechProfessionalTerms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	score += float64(hits) / float64(len(lex.SpeechProfessionalTerms)) * 0.2

	return clamp01(score)
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func mean(values ...float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
