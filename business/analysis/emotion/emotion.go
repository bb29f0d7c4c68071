// Package emotion reduces per-frame face detections into one emotion summary.
package emotion

import (
	"github.com/salescoachapi/goSalesCoach/business/analysis/modality"
	"github.com/salescoachapi/goSalesCoach/foundation/lexicon"
)

// Summarize computes the emotion summary for an ordered frame sequence.
// It never returns an error: empty input or an internal panic yields the
// all-zero "neutral" default with the reason recorded on the result.
func Summarize(frames []Frame, lex *lexicon.Set) (result modality.Result[Summary]) {
	defer func() {
		if r := recover(); r != nil {
			result = modality.Degraded(Default(lex), modality.InternalError)
		}
	}()

	if len(frames) == 0 {
		return modality.Degraded(Default(lex), modality.EmptyInput)
	}

	counts := make(map[string]int, len(lex.EmotionLabels))
	sums := make(map[string]float64, len(lex.EmotionLabels))
	for _, label := range lex.EmotionLabels {
		counts[label] = 0
		sums[label] = 0
	}

	var observations int
	var engagementTotal float64
	var frameDominants []string

	for _, frame := range frames {
		var bestConfidence float64
		var bestDominant string

		for _, face := range frame.Faces {
			dominant, confidence := dominantLabel(face.Scores, lex)
			counts[dominant]++
			observations++

			for _, label := range lex.EmotionLabels {
				sums[label] += face.Scores[label]
			}

			for _, label := range lex.PositiveEmotions {
				engagementTotal += face.Scores[label]
			}

			if bestDominant == "" || confidence > bestConfidence {
				bestConfidence = confidence
				bestDominant = dominant
			}
		}

		if bestDominant != "" {
			frameDominants = append(frameDominants, bestDominant)
		}
	}

	summary := Summary{
		DominantEmotion: "neutral",
		AverageScores:   make(map[string]float64, len(lex.EmotionLabels)),
		FaceCount:       observations,
		FramesAnalyzed:  len(frames),
		Stability:       stability(frames, frameDominants, lex),
	}

	for _, label := range lex.EmotionLabels {
		if observations > 0 {
			summary.AverageScores[label] = sums[label] / float64(observations)
		} else {
			summary.AverageScores[label] = 0
		}
	}

	if observations > 0 {
		dominant := lex.EmotionLabels[0]
		for _, label := range lex.EmotionLabels[1:] {
			if counts[label] > counts[dominant] {
				dominant = label
			}
		}
		summary.DominantEmotion = dominant
		summary.Confidence = float64(counts[dominant]) / float64(observations)
		summary.Engagement = engagementTotal / float64(observations)
	}

	return modality.Ok(summary)
}

// Default is the summary used when the modality failed or was disabled. A nil
// lexicon falls back to the standard label set, keeping the recovery path in
// Summarize panic-free.
func Default(lex *lexicon.Set) Summary {
	if lex == nil {
		lex = lexicon.Default()
	}

	scores := make(map[string]float64, len(lex.EmotionLabels))
	for _, label := range lex.EmotionLabels {
		scores[label] = 0
	}

	return Summary{
		DominantEmotion: "neutral",
		AverageScores:   scores,
	}
}

// dominantLabel picks the argmax of a face distribution. Ties resolve to the
// label appearing first in the fixed label order.
func dominantLabel(scores map[string]float64, lex *lexicon.Set) (string, float64) {
	dominant := lex.EmotionLabels[0]
	confidence := scores[dominant]

	for _, label := range lex.EmotionLabels[1:] {
		if scores[label] > confidence {
			dominant = label
			confidence = scores[label]
		}
	}

	return dominant, confidence
}

// stability is the fraction of frames whose most-confident face agrees with
// the modal per-frame dominant. Fewer than two analyzed frames, or fewer than
// two frames containing a face, count as perfectly stable.
func stability(frames []Frame, frameDominants []string, lex *lexicon.Set) float64 {
	if len(frames) < 2 || len(frameDominants) < 2 {
		return 1.0
	}

	counts := make(map[string]int, len(lex.EmotionLabels))
	for _, label := range frameDominants {
		counts[label]++
	}

	mode := lex.EmotionLabels[0]
	for _, label := range lex.EmotionLabels[1:] {
		if counts[label] > counts[mode] {
			mode = label
		}
	}

	return float64(counts[mode]) / float64(len(frameDominants))
}
