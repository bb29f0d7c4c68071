package registry_test

import (
	"testing"
	"time"

	"github.com/salescoachapi/goSalesCoach/foundation/registry"
)

func TestRegistry(t *testing.T) {
	t.Run("lifecycle pending to completed", func(t *testing.T) {
		t.Parallel()
		r := registry.New[string](time.Minute)

		job := r.Create("job-1")
		if job.Status != registry.StatusPending {
			t.Fatalf("status: got %q, want pending", job.Status)
		}
		if job.SubmittedAt.IsZero() {
			t.Fatal("submitted time not set")
		}

		if !r.SetRunning("job-1") {
			t.Fatal("set running failed")
		}
		job, exists := r.Get("job-1")
		if !exists || job.Status != registry.StatusRunning {
			t.Fatalf("after running: exists=%v status=%q", exists, job.Status)
		}

		if !r.Complete("job-1", "done") {
			t.Fatal("complete failed")
		}
		job, _ = r.Get("job-1")
		if job.Status != registry.StatusCompleted || job.Result != "done" {
			t.Fatalf("after complete: %+v", job)
		}
		if job.CompletedAt.IsZero() {
			t.Fatal("completed time not set")
		}
	})

	t.Run("unknown ids", func(t *testing.T) {
		t.Parallel()
		r := registry.New[string](time.Minute)

		if r.SetRunning("missing") {
			t.Fatal("set running reported success for an unknown id")
		}
		if r.Complete("missing", "x") {
			t.Fatal("complete reported success for an unknown id")
		}
		if _, exists := r.Get("missing"); exists {
			t.Fatal("get reported an unknown id")
		}
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		t.Parallel()
		r := registry.New[string](time.Minute)

		r.Create("job-1")
		r.Delete("job-1")

		if _, exists := r.Get("job-1"); exists {
			t.Fatal("deleted job still present")
		}

		// Deleting an unknown id is a no-op.
		r.Delete("missing")
	})

	t.Run("sweep removes only expired completed jobs", func(t *testing.T) {
		t.Parallel()
		r := registry.New[string](time.Minute)

		r.Create("pending")
		r.Create("fresh")
		r.Complete("fresh", "ok")
		r.Create("stale")
		r.Complete("stale", "ok")

		if removed := r.Sweep(time.Now().UTC()); removed != 0 {
			t.Fatalf("premature sweep removed %d jobs", removed)
		}

		if removed := r.Sweep(time.Now().UTC().Add(2 * time.Minute)); removed != 2 {
			t.Fatalf("sweep removed %d jobs, want 2", removed)
		}
		if _, exists := r.Get("pending"); !exists {
			t.Fatal("sweep removed a pending job")
		}
		if _, exists := r.Get("stale"); exists {
			t.Fatal("expired job survived the sweep")
		}
	})
}
