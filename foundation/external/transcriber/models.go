package transcriber

// Result is the provider response for one audio reference.
type Result struct {
	Transcript      string  `json:"transcript"`
	Confidence      float64 `json:"confidence"`
	DurationSeconds float64 `json:"duration_seconds"`
}
