// Package registry tracks in-flight and recently finished analysis jobs in
// memory. Finished jobs are swept after a retention window; there is no
// durable history.
package registry

import (
	"sync"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

type Job[T any] struct {
	ID          string    `json:"id"`
	Status      Status    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
	Result      T         `json:"result,omitempty"`
}

type Registry[T any] struct {
	retention time.Duration
	jobs      map[string]Job[T]
	sync.RWMutex
}

func New[T any](retention time.Duration) *Registry[T] {
	return &Registry[T]{
		retention: retention,
		jobs:      make(map[string]Job[T]),
	}
}

func (r *Registry[T]) Create(id string) Job[T] {
	r.Lock()
	defer r.Unlock()
	{
		job := Job[T]{
			ID:          id,
			Status:      StatusPending,
			SubmittedAt: time.Now().UTC(),
		}
		r.jobs[id] = job
		return job
	}
}

func (r *Registry[T]) SetRunning(id string) bool {
	r.Lock()
	defer r.Unlock()
	{
		job, exists := r.jobs[id]
		if !exists {
			return false
		}
		job.Status = StatusRunning
		r.jobs[id] = job
		return true
	}
}

func (r *Registry[T]) Complete(id string, result T) bool {
	r.Lock()
	defer r.Unlock()
	{
		job, exists := r.jobs[id]
		if !exists {
			return false
		}
		job.Status = StatusCompleted
		job.CompletedAt = time.Now().UTC()
		job.Result = result
		r.jobs[id] = job
		return true
	}
}

func (r *Registry[T]) Delete(id string) {
	r.Lock()
	defer r.Unlock()
	{
		delete(r.jobs, id)
	}
}

func (r *Registry[T]) Get(id string) (Job[T], bool) {
	r.RLock()
	defer r.RUnlock()
	{
		job, exists := r.jobs[id]
		return job, exists
	}
}

// Sweep removes completed jobs whose retention window has passed and returns
// how many were removed.
func (r *Registry[T]) Sweep(now time.Time) int {
	r.Lock()
	defer r.Unlock()

	var removed int
	for id, job := range r.jobs {
		if job.Status == StatusCompleted && now.Sub(job.CompletedAt) > r.retention {
			delete(r.jobs, id)
			removed++
		}
	}

	return removed
}
