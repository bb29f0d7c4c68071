// Package modality defines the result wrapper shared by the summarizers.
// A summarizer never fails: it either produces a computed summary or its
// modality default together with the reason the default was used.
package modality

type Reason string

const (
	None          Reason = ""
	EmptyInput    Reason = "empty_input"
	InternalError Reason = "internal_error"
	Disabled      Reason = "disabled"
	Cancelled     Reason = "cancelled"
)

type Result[T any] struct {
	Summary T      `json:"summary"`
	Reason  Reason `json:"degraded_reason,omitempty"`
}

func Ok[T any](summary T) Result[T] {
	return Result[T]{Summary: summary}
}

func Degraded[T any](summary T, reason Reason) Result[T] {
	return Result[T]{Summary: summary, Reason: reason}
}

// Degraded reports whether the summary is the modality default rather than a
// value computed from real input.
func (r Result[T]) Degraded() bool {
	return r.Reason != None
}
