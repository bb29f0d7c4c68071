// Package lexicon holds the fixed word lists used by the modality summarizers.
// A Set is built once at startup and shared read-only across goroutines.
package lexicon

type Set struct {
	EmotionLabels    []string
	PositiveEmotions []string

	FillerTerms    []string
	ConfidentTerms []string
	UncertainTerms []string

	PositiveTerms     []string
	NegativeTerms     []string
	PersuasiveTerms   []string
	ProfessionalTerms []string
	CasualTerms       []string
	EmphasisTerms     []string

	SpeechProfessionalTerms []string
}

func Default() *Set {
	return &Set{
		EmotionLabels: []string{
			"angry", "disgust", "fear", "happy",
			"sad", "surprise", "neutral",
		},

		PositiveEmotions: []string{"happy", "surprise"},

		FillerTerms: []string{
			"um", "uh", "like", "you know", "so", "actually", "basically",
			"literally", "right", "okay", "well", "i mean", "kind of", "sort of",
		},

		ConfidentTerms: []string{
			"definitely", "certainly", "absolutely", "guaranteed", "proven", "established",
		},

		UncertainTerms: []string{
			"maybe", "perhaps", "possibly", "might", "could be", "i think", "probably",
		},

		PositiveTerms: []string{
			"excellent", "amazing", "fantastic", "great", "wonderful", "outstanding",
			"beneficial", "effective", "successful", "proven", "innovative", "revolutionary",
			"powerful", "exceptional", "remarkable", "impressive", "valuable", "advantageous",
		},

		NegativeTerms: []string{
			"terrible", "awful", "bad", "poor", "weak", "disappointing",
			"difficult", "challenging", "problematic", "concerning", "inadequate",
			"insufficient", "limited", "restricted", "complicated", "confusing",
		},

		PersuasiveTerms: []string{
			"proven", "guaranteed", "exclusive", "limited", "opportunity", "benefit",
			"advantage", "solution", "results", "success", "growth", "increase",
			"improve", "enhance", "optimize", "maximize", "achieve", "deliver",
		},

		ProfessionalTerms: []string{
			"strategy", "implementation", "optimization", "efficiency", "productivity",
			"performance", "methodology", "framework", "analysis", "evaluation",
			"assessment", "recommendation", "proposal", "initiative", "objective",
		},

		CasualTerms: []string{
			"like", "yeah", "okay", "cool", "awesome", "stuff", "things",
		},

		EmphasisTerms: []string{
			"very", "really", "extremely", "absolutely", "definitely", "certainly",
		},

		SpeechProfessionalTerms: []string{
			"solution", "productivity", "efficiency", "roi", "comprehensive", "platform",
		},
	}
}
