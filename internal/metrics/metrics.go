package metrics

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"draftlens/internal/segment"
)

// Fixed reading rate. Not configurable.
const readingWordsPerMinute = 225

type Metrics struct {
	WordCount            int `json:"wordCount"`
	CharCount            int `json:"charCount"`
	SentenceCount        int `json:"sentenceCount"`
	AvgSentenceLength    int `json:"avgSentenceLength"`
	LongestSentenceWords int `json:"longestSentenceWords"`
	ReadingMinutes       int `json:"readingMinutes"`
	ReadingSeconds       int `json:"readingSeconds"`
}

// Compute derives all metrics from scratch on every call. Pure; never
// incremental.
func Compute(draft string, sentences []segment.Sentence) Metrics {
	trimmed := strings.TrimSpace(draft)
	if trimmed == "" {
		return Metrics{}
	}

	words := segment.TokenCount(draft)
	longest := 0
	for _, s := range sentences {
		if n := segment.TokenCount(s.Text); n > longest {
			longest = n
		}
	}

	avg := 0
	if len(sentences) > 0 {
		avg = int(math.Round(float64(words) / float64(len(sentences))))
	}

	return Metrics{
		WordCount:            words,
		CharCount:            utf8.RuneCountInString(trimmed),
		SentenceCount:        len(sentences),
		AvgSentenceLength:    avg,
		LongestSentenceWords: longest,
		ReadingMinutes:       words / readingWordsPerMinute,
		ReadingSeconds:       int(math.Round(float64(words%readingWordsPerMinute) / readingWordsPerMinute * 60)),
	}
}

// ReadingTime renders the reading estimate as "3m 24s".
func (m Metrics) ReadingTime() string {
	return fmt.Sprintf("%dm %ds", m.ReadingMinutes, m.ReadingSeconds)
}
