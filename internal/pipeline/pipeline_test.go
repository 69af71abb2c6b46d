package pipeline

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestAnalyzeDrafts(t *testing.T) {
	jobs := []Job{
		{Name: "a.txt", Text: "First draft."},
		{Name: "b.txt", Text: "Second draft."},
		{Name: "c.txt", Text: "Third draft."},
	}

	var called int32
	errs := AnalyzeDrafts(jobs, 2, func(job Job) error {
		atomic.AddInt32(&called, 1)
		if job.Name == "b.txt" {
			return errors.New("test error")
		}
		return nil
	})

	if called != int32(len(jobs)) {
		t.Fatalf("expected %d calls, got %d", len(jobs), called)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}

func TestAnalyzeDraftsEmpty(t *testing.T) {
	if errs := AnalyzeDrafts(nil, 4, func(Job) error { return nil }); errs != nil {
		t.Fatalf("expected nil for empty job list, got %v", errs)
	}
}
