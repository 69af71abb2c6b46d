package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"draftlens/internal/critique"
	"draftlens/internal/engine"
)

func TestRenderFullReport(t *testing.T) {
	draft := "The report was written by the team. It covers three topics."
	snap := engine.Analyze(draft)
	result := &critique.Result{
		Criteria: []critique.CriterionResult{
			{CriterionNumber: 1, Criterion: "Uses evidence", Rating: critique.RatingAccomplished, Feedback: "Sources are present."},
			{CriterionNumber: 2, Criterion: "Clear structure", Rating: critique.RatingNotEvident, Feedback: "No visible sections."},
		},
		Summary: []string{"Solid start.", "Add headings."},
	}

	out := Render("My Essay", draft, snap, result, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"Title: My Essay",
		"Words: 11",
		"Sentences: 2",
		"- Solid start.",
		"1. Uses evidence — Accomplished",
		"2. Clear structure — Not Evident",
		"Original Draft",
		draft,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}

	// Sections appear in template order: metrics, summary, criteria, draft.
	order := []string{"Metrics", "AI Summary", "Criteria Feedback", "Original Draft"}
	last := -1
	for _, section := range order {
		idx := strings.Index(out, section)
		if idx <= last {
			t.Fatalf("section %q out of order:\n%s", section, out)
		}
		last = idx
	}
}

func TestRenderWithoutCritique(t *testing.T) {
	draft := "Just metrics today."
	out := Render("Quick", draft, engine.Analyze(draft), nil, time.Now())
	if strings.Contains(out, "AI Summary") || strings.Contains(out, "Criteria Feedback") {
		t.Fatalf("expected AI sections omitted without a result:\n%s", out)
	}
	if !strings.Contains(out, "Original Draft") {
		t.Fatalf("expected the draft section regardless")
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	if err := Write(path, "report body\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(raw) != "report body\n" {
		t.Fatalf("unexpected content %q", raw)
	}
}
