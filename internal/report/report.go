// Package report renders the exportable plain-text feedback report:
// metrics, AI summary, per-criterion feedback, then the original draft.
// The format is a one-way template; nothing parses it back in.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"draftlens/internal/critique"
	"draftlens/internal/engine"
)

func Render(title, draft string, snap engine.Snapshot, result *critique.Result, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("DraftLens Feedback Report\n")
	b.WriteString("=========================\n")
	fmt.Fprintf(&b, "Title: %s\n", strings.TrimSpace(title))
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(time.RFC3339))

	m := snap.Metrics
	b.WriteString("Metrics\n-------\n")
	fmt.Fprintf(&b, "Words: %d\n", m.WordCount)
	fmt.Fprintf(&b, "Characters: %d\n", m.CharCount)
	fmt.Fprintf(&b, "Sentences: %d\n", m.SentenceCount)
	fmt.Fprintf(&b, "Average sentence length: %d words\n", m.AvgSentenceLength)
	fmt.Fprintf(&b, "Longest sentence: %d words\n", m.LongestSentenceWords)
	fmt.Fprintf(&b, "Estimated reading time: %s\n", m.ReadingTime())
	fmt.Fprintf(&b, "Issues flagged: %d\n\n", snap.Issues.Total)

	if result != nil {
		b.WriteString("AI Summary\n----------\n")
		for _, line := range result.Summary {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\nCriteria Feedback\n-----------------\n")
		for _, c := range result.Criteria {
			fmt.Fprintf(&b, "%d. %s — %s\n", c.CriterionNumber, c.Criterion, c.Rating)
			if c.Feedback != "" {
				fmt.Fprintf(&b, "   %s\n", c.Feedback)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("Original Draft\n--------------\n")
	b.WriteString(strings.TrimSpace(draft))
	b.WriteString("\n")
	return b.String()
}

func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
