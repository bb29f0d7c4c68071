// Package text reduces free text into sentiment, persuasiveness,
// professionalism and clarity scores plus extracted key phrases.
package text

import (
	"regexp"
	"strings"

	"github.com/salescoachapi/goSalesCoach/business/analysis/modality"
	"github.com/salescoachapi/goSalesCoach/foundation/lexicon"
)

var (
	whitespace    = regexp.MustCompile(`\s+`)
	sentenceSplit = regexp.MustCompile(`[.!?]+`)

	callToAction = regexp.MustCompile(`\b(call|contact|reach|schedule|book|sign|register)\b`)
	urgency      = regexp.MustCompile(`\b(now|today|immediately|limited|exclusive|urgent)\b`)
	benefit      = regexp.MustCompile(`\b(benefit|advantage|gain|improve|increase|save)\b`)

	nounPhrase       = regexp.MustCompile(`\b(?:our|the|a|an)\s+\w+(?:\s+\w+)*(?:\s+(?:solution|product|service|platform|system|approach|strategy|method))\b`)
	benefitPhrase    = regexp.MustCompile(`\b(?:increase|improve|enhance|reduce|save|boost|optimize)\s+\w+(?:\s+\w+)*\b`)
	quantifiedPhrase = regexp.MustCompile(`\b\d+%?\s+\w+(?:\s+\w+)*\b`)

	firstPerson  = regexp.MustCompile(`\b(i|me|my|myself)\b`)
	secondPerson = regexp.MustCompile(`\b(you|your|yourself)\b`)
	thirdPerson  = regexp.MustCompile(`\b(he|she|they|them|their)\b`)
)

// Phrase-family caps applied before deduplication.
const (
	maxNounPhrases       = 5
	maxBenefitPhrases    = 3
	maxQuantifiedPhrases = 3
)

// Summarize computes the text summary for one document. Blank input or an
// internal panic yields the all-zero neutral default with the reason recorded
// on the result.
func Summarize(raw string, lex *lexicon.Set) (result modality.Result[Summary]) {
	defer func() {
		if r := recover(); r != nil {
			result = modality.Degraded(Default(), modality.InternalError)
		}
	}()

	if strings.TrimSpace(raw) == "" {
		return modality.Degraded(Default(), modality.EmptyInput)
	}

	cleaned := strings.ToLower(whitespace.ReplaceAllString(strings.TrimSpace(raw), " "))
	words := strings.Fields(cleaned)

	sentiment, sentimentScore, sentimentDetail := analyzeSentiment(words, lex)
	persuasivenessScore, persuasion := analyzePersuasiveness(cleaned, words, lex)
	professionalismScore, professionalism := analyzeProfessionalism(words, lex)
	clarityScore, clarity := analyzeClarity(raw, words)

	summary := Summary{
		Sentiment:            sentiment,
		SentimentScore:       sentimentScore,
		PersuasivenessScore:  persuasivenessScore,
		ProfessionalismScore: professionalismScore,
		ClarityScore:         clarityScore,
		KeyPhrases:           extractKeyPhrases(cleaned),
		WordCount:            len(words),
		SentenceCount:        countSentences(raw),
		SentimentDetail:      sentimentDetail,
		Persuasion:           persuasion,
		Professionalism:      professionalism,
		Clarity:              clarity,
		Style:                analyzeStyle(cleaned, raw, words, lex),
	}

	return modality.Ok(summary)
}

// Default is the summary used when the modality failed or was disabled.
func Default() Summary {
	return Summary{
		Sentiment:  SentimentNeutral,
		KeyPhrases: []string{},
	}
}

func analyzeSentiment(words []string, lex *lexicon.Set) (Sentiment, float64, SentimentBreakdown) {
	positive := membership(lex.PositiveTerms)
	negative := membership(lex.NegativeTerms)

	detail := SentimentBreakdown{}
	for _, word := range words {
		if positive[word] {
			detail.PositiveCount++
			detail.PositiveTerms = append(detail.PositiveTerms, word)
		}
		if negative[word] {
			detail.NegativeCount++
			detail.NegativeTerms = append(detail.NegativeTerms, word)
		}
	}

	if detail.PositiveCount+detail.NegativeCount == 0 {
		return SentimentNeutral, 0, detail
	}

	score := float64(detail.PositiveCount-detail.NegativeCount) / float64(len(words))

	switch {
	case score > 0.02:
		return SentimentPositive, score, detail
	case score < -0.02:
		return SentimentNegative, score, detail
	}
	return SentimentNeutral, score, detail
}

func analyzePersuasiveness(cleaned string, words []string, lex *lexicon.Set) (float64, PersuasionBreakdown) {
	persuasive := membership(lex.PersuasiveTerms)

	detail := PersuasionBreakdown{
		CallToAction: len(callToAction.FindAllString(cleaned, -1)),
		Urgency:      len(urgency.FindAllString(cleaned, -1)),
		Benefit:      len(benefit.FindAllString(cleaned, -1)),
	}
	for _, word := range words {
		if persuasive[word] {
			detail.PersuasiveCount++
		}
	}

	var ratio float64
	if len(words) > 0 {
		ratio = float64(detail.PersuasiveCount) / float64(len(words))
	}

	detail.StructureScore = min1(float64(detail.CallToAction+detail.Urgency+detail.Benefit) / 10)
	detail.VocabularyScore = min1(ratio * 10)

	return (detail.StructureScore + detail.VocabularyScore) / 2, detail
}

func analyzeProfessionalism(words []string, lex *lexicon.Set) (float64, ProfessionalismBreakdown) {
	professional := membership(lex.ProfessionalTerms)
	casual := membership(lex.CasualTerms)

	detail := ProfessionalismBreakdown{}
	for _, word := range words {
		if professional[word] {
			detail.ProfessionalCount++
		}
		if casual[word] {
			detail.CasualCount++
		}
	}

	if len(words) > 0 {
		detail.VocabularyScore = min1(float64(detail.ProfessionalCount) / float64(len(words)) * 15)

		penalty := float64(detail.CasualCount) / float64(len(words)) * 10
		if penalty > 0.5 {
			penalty = 0.5
		}
		detail.CasualPenalty = penalty
	}

	return clamp01(detail.VocabularyScore - detail.CasualPenalty + 0.5), detail
}

// analyzeClarity is a normalized Flesch-style readability estimate. Words
// longer than eight characters stand in for the syllable count.
func analyzeClarity(raw string, words []string) (float64, ClarityBreakdown) {
	var sentenceLengths int
	var sentences int
	for _, sentence := range sentenceSplit.Split(raw, -1) {
		if sw := strings.Fields(sentence); len(sw) > 0 {
			sentenceLengths += len(sw)
			sentences++
		}
	}

	detail := ClarityBreakdown{}
	if sentences == 0 || len(words) == 0 {
		detail.ReadabilityLevel = readabilityLevel(0)
		return 0, detail
	}

	detail.AverageSentenceLength = float64(sentenceLengths) / float64(sentences)

	var complexWords int
	for _, word := range words {
		if len(word) > 8 {
			complexWords++
		}
	}
	detail.ComplexWordRatio = float64(complexWords) / float64(len(words))

	readability := 206.835 - 1.015*detail.AverageSentenceLength - 84.6*detail.ComplexWordRatio
	score := clamp01(readability / 100)

	detail.ReadabilityLevel = readabilityLevel(score)
	return score, detail
}

func extractKeyPhrases(cleaned string) []string {
	var phrases []string
	phrases = append(phrases, capped(nounPhrase.FindAllString(cleaned, -1), maxNounPhrases)...)
	phrases = append(phrases, capped(benefitPhrase.FindAllString(cleaned, -1), maxBenefitPhrases)...)
	phrases = append(phrases, capped(quantifiedPhrase.FindAllString(cleaned, -1), maxQuantifiedPhrases)...)

	seen := make(map[string]bool, len(phrases))
	unique := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if !seen[phrase] {
			seen[phrase] = true
			unique = append(unique, phrase)
		}
	}

	return unique
}

func analyzeStyle(cleaned string, raw string, words []string, lex *lexicon.Set) Style {
	emphasis := membership(lex.EmphasisTerms)

	style := Style{
		FirstPerson:  len(firstPerson.FindAllString(cleaned, -1)),
		SecondPerson: len(secondPerson.FindAllString(cleaned, -1)),
		ThirdPerson:  len(thirdPerson.FindAllString(cleaned, -1)),
		Questions:    strings.Count(raw, "?"),
	}
	for _, word := range words {
		if emphasis[word] {
			style.Emphasis++
		}
	}

	return style
}

func countSentences(raw string) int {
	var sentences int
	for _, sentence := range sentenceSplit.Split(raw, -1) {
		if strings.TrimSpace(sentence) != "" {
			sentences++
		}
	}
	return sentences
}

func readabilityLevel(score float64) string {
	switch {
	case score >= 0.9:
		return "Very Easy"
	case score >= 0.8:
		return "Easy"
	case score >= 0.7:
		return "Fairly Easy"
	case score >= 0.6:
		return "Standard"
	case score >= 0.5:
		return "Fairly Difficult"
	}
	return "Difficult"
}

func membership(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[term] = true
	}
	return set
}

func capped(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
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
