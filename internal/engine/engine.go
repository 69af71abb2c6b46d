// Package engine bundles the pure analysis passes into a single immutable
// snapshot. The caller owns the draft and re-supplies it on every call;
// nothing here retains state between calls, so concurrent Analyze calls on
// independent drafts need no coordination.
package engine

import (
	"strings"

	"draftlens/internal/issues"
	"draftlens/internal/metrics"
	"draftlens/internal/segment"
	"draftlens/internal/wordfreq"
)

type Snapshot struct {
	HasText   bool               `json:"hasText"`
	Sentences []segment.Sentence `json:"sentences"`
	Metrics   metrics.Metrics    `json:"metrics"`
	Issues    issues.Report      `json:"issues"`
	Frequency []wordfreq.Entry   `json:"frequency"`
}

// Analyze recomputes everything from scratch. Same draft in, bit-identical
// snapshot out.
func Analyze(draft string) Snapshot {
	sentences := segment.Split(draft)
	return Snapshot{
		HasText:   strings.TrimSpace(draft) != "",
		Sentences: sentences,
		Metrics:   metrics.Compute(draft, sentences),
		Issues:    issues.Detect(draft, sentences),
		Frequency: wordfreq.Rank(draft),
	}
}
