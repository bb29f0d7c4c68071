package emotion

// BoundingBox locates a detected face within a frame.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Face is one detection produced by the upstream face pipeline. Scores is a
// probability distribution over the fixed emotion label set, summing to 1.0.
type Face struct {
	Bounds BoundingBox        `json:"bounds"`
	Scores map[string]float64 `json:"scores"`
}

// Frame is one sampled video frame with its face detections.
type Frame struct {
	Index     int     `json:"index"`
	Timestamp float64 `json:"timestamp"`
	Faces     []Face  `json:"faces"`
}

// Summary reduces all face observations of one recording into a single
// distribution plus stability and engagement metrics.
type Summary struct {
	DominantEmotion string             `json:"dominant_emotion"`
	Confidence      float64            `json:"confidence"`
	AverageScores   map[string]float64 `json:"emotion_scores"`
	FaceCount       int                `json:"face_count"`
	FramesAnalyzed  int                `json:"frames_analyzed"`
	Stability       float64            `json:"emotion_stability"`
	Engagement      float64            `json:"engagement_level"`
}
