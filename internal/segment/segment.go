package segment

import (
	"regexp"
	"strings"
)

var terminalRun = regexp.MustCompile(`[.!?]+`)

// Sentence is a trimmed fragment of the draft. Index is the 1-based
// position of the sentence in source order.
type Sentence struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Split breaks text on maximal runs of terminal punctuation, trims each
// fragment, and drops empty ones. A literal character-class split:
// abbreviations and decimal numbers mis-segment ("Mr. Smith" becomes two
// fragments) and callers must tolerate that. Text with no terminal
// punctuation counts as a single sentence when non-empty.
func Split(text string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := terminalRun.Split(text, -1)
	out := make([]Sentence, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Sentence{Index: len(out) + 1, Text: p})
	}
	return out
}

// TokenCount counts maximal whitespace-delimited non-empty tokens.
func TokenCount(s string) int {
	return len(strings.Fields(s))
}
