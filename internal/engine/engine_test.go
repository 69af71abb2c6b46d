package engine

import (
	"reflect"
	"testing"
)

func TestAnalyzeEmptyDraft(t *testing.T) {
	snap := Analyze("")
	if snap.HasText {
		t.Fatalf("expected HasText false for empty draft")
	}
	if !snap.Issues.NotEnoughText {
		t.Fatalf("expected the distinguished not-enough-text issue state")
	}
	if snap.Metrics.ReadingTime() != "0m 0s" {
		t.Fatalf("expected 0m 0s, got %q", snap.Metrics.ReadingTime())
	}
	if len(snap.Frequency) != 0 || len(snap.Sentences) != 0 {
		t.Fatalf("expected empty frequency and sentence lists")
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	draft := "The report was written by the team. I think think this is good. That was soooooo good."
	a := Analyze(draft)
	b := Analyze(draft)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected bit-identical snapshots for the same draft")
	}
}

func TestAnalyzeBundlesAllPasses(t *testing.T) {
	snap := Analyze("The report was written by the team. The team team celebrated loudly.")
	if !snap.HasText {
		t.Fatalf("expected HasText true")
	}
	if snap.Metrics.SentenceCount != 2 {
		t.Fatalf("expected 2 sentences, got %d", snap.Metrics.SentenceCount)
	}
	if snap.Issues.Total < 2 {
		t.Fatalf("expected passive-voice and repeated-word issues, got %+v", snap.Issues.ByKind)
	}
	if len(snap.Frequency) == 0 {
		t.Fatalf("expected a ranked frequency list")
	}
	if snap.Frequency[0].Word != "team" {
		t.Fatalf("expected 'team' to lead the ranking, got %+v", snap.Frequency[0])
	}
}

func TestAnalyzeParallelSafety(t *testing.T) {
	drafts := []string{
		"First draft. Short and clean.",
		"Second draft was written quickly by someone.",
		"Third draft draft has a repeat repeat problem.",
	}
	baseline := make([]Snapshot, len(drafts))
	for i, d := range drafts {
		baseline[i] = Analyze(d)
	}

	done := make(chan int, len(drafts)*8)
	for r := 0; r < 8; r++ {
		for i, d := range drafts {
			go func(i int, d string) {
				if !reflect.DeepEqual(Analyze(d), baseline[i]) {
					done <- -1
					return
				}
				done <- i
			}(i, d)
		}
	}
	for n := 0; n < len(drafts)*8; n++ {
		if <-done == -1 {
			t.Fatalf("concurrent analysis diverged from sequential baseline")
		}
	}
}
