package text

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type SentimentBreakdown struct {
	PositiveCount int      `json:"positive_words_count"`
	NegativeCount int      `json:"negative_words_count"`
	PositiveTerms []string `json:"positive_words"`
	NegativeTerms []string `json:"negative_words"`
}

type PersuasionBreakdown struct {
	PersuasiveCount int     `json:"persuasive_words_count"`
	CallToAction    int     `json:"call_to_action_count"`
	Urgency         int     `json:"urgency_indicators"`
	Benefit         int     `json:"benefit_statements"`
	StructureScore  float64 `json:"structure_score"`
	VocabularyScore float64 `json:"vocabulary_score"`
}

type ProfessionalismBreakdown struct {
	ProfessionalCount int     `json:"professional_words_count"`
	CasualCount       int     `json:"casual_words_count"`
	VocabularyScore   float64 `json:"vocabulary_score"`
	CasualPenalty     float64 `json:"casual_penalty"`
}

type ClarityBreakdown struct {
	AverageSentenceLength float64 `json:"average_sentence_length"`
	ComplexWordRatio      float64 `json:"complex_word_ratio"`
	ReadabilityLevel      string  `json:"readability_level"`
}

// Style captures communication-style counters over the raw text.
type Style struct {
	FirstPerson  int `json:"first_person_usage"`
	SecondPerson int `json:"second_person_usage"`
	ThirdPerson  int `json:"third_person_usage"`
	Questions    int `json:"question_count"`
	Emphasis     int `json:"emphasis_word_count"`
}

type Summary struct {
	Sentiment            Sentiment                `json:"sentiment"`
	SentimentScore       float64                  `json:"sentiment_score"`
	PersuasivenessScore  float64                  `json:"persuasiveness_score"`
	ProfessionalismScore float64                  `json:"professionalism_score"`
	ClarityScore         float64                  `json:"clarity_score"`
	KeyPhrases           []string                 `json:"key_phrases"`
	WordCount            int                      `json:"word_count"`
	SentenceCount        int                      `json:"sentence_count"`
	SentimentDetail      SentimentBreakdown       `json:"sentiment_breakdown"`
	Persuasion           PersuasionBreakdown      `json:"persuasiveness_breakdown"`
	Professionalism      ProfessionalismBreakdown `json:"professionalism_breakdown"`
	Clarity              ClarityBreakdown         `json:"clarity_breakdown"`
	Style                Style                    `json:"communication_style"`
}
