package coaching

type Category string

const (
	CategoryPresentationStyle     Category = "presentation_style"
	CategoryEmotionalIntelligence Category = "emotional_intelligence"
	CategoryCommunication         Category = "communication"
	CategoryPersuasion            Category = "persuasion"
	CategoryConfidence            Category = "confidence"
	CategoryEngagement            Category = "engagement"
	CategoryGeneral               Category = "general"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to its sort weight. Unknown priorities rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Recommendation is one coaching item. Title is the deduplication identity:
// two recommendations with the same title are the same recommendation.
type Recommendation struct {
	Category        Category `json:"category"`
	Priority        Priority `json:"priority"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ActionableSteps []string `json:"actionable_steps"`
	Examples        []string `json:"examples"`
}

// Thresholds are the fixed trigger levels of the rule set. Built once at
// startup and shared read-only.
type Thresholds struct {
	LowEngagement         float64
	LowStability          float64
	SlowSpeakingRate      float64
	FastSpeakingRate      float64
	MaxFillerWords        int
	LowVocalConfidence    float64
	LowPersuasiveness     float64
	LowProfessionalism    float64
	LowClarity            float64
	LowOverallConfidence  float64
	LowEmotionEngagement  float64
	StrongVocalConfidence float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		LowEngagement:         0.5,
		LowStability:          0.7,
		SlowSpeakingRate:      120,
		FastSpeakingRate:      150,
		MaxFillerWords:        3,
		LowVocalConfidence:    0.7,
		LowPersuasiveness:     0.6,
		LowProfessionalism:    0.7,
		LowClarity:            0.6,
		LowOverallConfidence:  0.6,
		LowEmotionEngagement:  0.6,
		StrongVocalConfidence: 0.7,
	}
}
