package speech

// Features is the audio-derived input bundle: prosodic measurements from the
// audio pipeline plus the transcript produced by speech-to-text.
type Features struct {
	Transcript           string  `json:"transcript"`
	TranscriptConfidence float64 `json:"transcript_confidence"`
	DurationSeconds      float64 `json:"duration_seconds"`
	VolumeLevel          float64 `json:"volume_level"`
	VolumeVariance       float64 `json:"volume_variance"`
	Pitch                Pitch   `json:"pitch"`
	Tone                 Tone    `json:"tone"`
	Pauses               Pauses  `json:"pauses"`
}

type Pitch struct {
	Average   float64 `json:"average"`
	Range     float64 `json:"range"`
	Stability float64 `json:"stability"`
}

type Tone struct {
	EnergyLevel     float64 `json:"energy_level"`
	EnthusiasmScore float64 `json:"enthusiasm_score"`
	MonotoneRisk    float64 `json:"monotone_risk"`
}

type Pauses struct {
	TotalSeconds  float64 `json:"total_pause_time"`
	AverageLength float64 `json:"average_pause_length"`
	Frequency     float64 `json:"pause_frequency"`
	Strategic     int     `json:"strategic_pauses"`
	Filler        int     `json:"filler_pauses"`
}

// Delivery carries the normalized delivery scores, all within [0,1].
type Delivery struct {
	Clarity    float64 `json:"clarity_score"`
	Engagement float64 `json:"engagement_score"`
	Confidence float64 `json:"confidence_score"`
	Overall    float64 `json:"overall_delivery_score"`
}

// Linguistic is the transcript breakdown behind the delivery scores.
type Linguistic struct {
	TotalWords            int      `json:"total_words"`
	FillerPercentage      float64  `json:"filler_percentage"`
	ConfidentTerms        []string `json:"confident_language"`
	UncertainTerms        []string `json:"uncertain_language"`
	ConfidenceRatio       float64  `json:"confidence_ratio"`
	AverageSentenceLength float64  `json:"average_sentence_length"`
	ProfessionalScore     float64  `json:"professional_score"`
}

type Summary struct {
	Transcript   string         `json:"transcript"`
	Confidence   float64        `json:"confidence"`
	SpeakingRate float64        `json:"speaking_rate"`
	VolumeLevel  float64        `json:"volume_level"`
	FillerWords  map[string]int `json:"filler_words"`
	Tone         Tone           `json:"tone_analysis"`
	Pauses       Pauses         `json:"pause_analysis"`
	Linguistic   Linguistic     `json:"linguistic_analysis"`
	Delivery     Delivery       `json:"delivery_metrics"`
}
