package issues

import (
	"regexp"
	"strings"

	"draftlens/internal/segment"
)

type Kind string

const (
	LongSentence       Kind = "long_sentence"
	RepeatedWord       Kind = "repeated_word"
	PassiveVoice       Kind = "passive_voice"
	SuspiciousSpelling Kind = "suspicious_spelling"
)

const (
	longSentenceTokens = 30
	excerptRunes       = 100
	maxSpellingIssues  = 10
)

// Issue is a single heuristic flag. SentenceIndex is 0 for draft-level
// issues (spelling), which have no sentence attribution.
type Issue struct {
	Kind          Kind   `json:"kind"`
	SentenceIndex int    `json:"sentenceIndex,omitempty"`
	Excerpt       string `json:"excerpt"`
}

// Report distinguishes "not enough text" from "text present, nothing
// flagged": NotEnoughText is only set for an empty draft, and Total is the
// sum of all per-kind lists.
type Report struct {
	NotEnoughText bool             `json:"notEnoughText"`
	ByKind        map[Kind][]Issue `json:"byKind"`
	Total         int              `json:"total"`
}

func (r Report) Clean() bool {
	return !r.NotEnoughText && r.Total == 0
}

// Kinds returns the detector kinds in their fixed evaluation order.
func Kinds() []Kind {
	return []Kind{LongSentence, RepeatedWord, PassiveVoice, SuspiciousSpelling}
}

// Coarse lexical heuristic for passive voice: a form of "to be" followed by
// an -ed token or a short fixed list of irregular participles. Flags
// "is very aged"-style false positives and misses irregulars outside the
// list; that tradeoff is accepted.
var passivePattern = regexp.MustCompile(`(?i)\b(?:is|are|was|were|been|being)\s+(?:[A-Za-z]+ed|written|given|taken|made|done|shown|seen)\b`)

// Sentence-level detectors in evaluation order. Adding a detector means
// adding a pair here; call sites stay untouched.
var sentenceDetectors = []struct {
	kind  Kind
	match func(text string) bool
}{
	{LongSentence, isLongSentence},
	{RepeatedWord, hasAdjacentRepeat},
	{PassiveVoice, passivePattern.MatchString},
}

// Detect runs every heuristic over the draft. Empty input short-circuits to
// the distinguished "not enough text" state. Within each kind issues are
// ordered by ascending sentence index; spelling issues by token order.
func Detect(draft string, sentences []segment.Sentence) Report {
	report := Report{ByKind: map[Kind][]Issue{}}
	if strings.TrimSpace(draft) == "" {
		report.NotEnoughText = true
		return report
	}

	for _, s := range sentences {
		for _, d := range sentenceDetectors {
			if d.match(s.Text) {
				report.ByKind[d.kind] = append(report.ByKind[d.kind], Issue{
					Kind:          d.kind,
					SentenceIndex: s.Index,
					Excerpt:       excerpt(s.Text),
				})
			}
		}
	}

	for _, w := range suspiciousTokens(draft) {
		report.ByKind[SuspiciousSpelling] = append(report.ByKind[SuspiciousSpelling], Issue{
			Kind:    SuspiciousSpelling,
			Excerpt: w,
		})
	}

	for _, list := range report.ByKind {
		report.Total += len(list)
	}
	return report
}

func isLongSentence(text string) bool {
	return segment.TokenCount(text) > longSentenceTokens
}

// hasAdjacentRepeat reports an immediately-adjacent case-insensitive word
// repetition: a word token, whitespace, then the identical token with a
// word boundary on both sides. Go's regexp has no backreferences, so the
// boundary rules are applied token-wise: the first token must end with the
// word and the second must start with it, with nothing but whitespace in
// between.
func hasAdjacentRepeat(text string) bool {
	tokens := strings.Fields(text)
	for i := 0; i+1 < len(tokens); i++ {
		prev := trailingWordRun(tokens[i])
		if prev == "" {
			continue
		}
		next := leadingWordRun(tokens[i+1])
		if strings.EqualFold(prev, next) {
			return true
		}
	}
	return false
}

func isWordChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

// trailingWordRun returns the maximal run of word characters ending the
// token, or "" if the token ends in punctuation.
func trailingWordRun(tok string) string {
	runes := []rune(tok)
	end := len(runes)
	start := end
	for start > 0 && isWordChar(runes[start-1]) {
		start--
	}
	return string(runes[start:end])
}

// leadingWordRun returns the maximal run of word characters opening the
// token, or "" if the token starts with punctuation.
func leadingWordRun(tok string) string {
	runes := []rune(tok)
	end := 0
	for end < len(runes) && isWordChar(runes[end]) {
		end++
	}
	return string(runes[:end])
}

// suspiciousTokens scans the whole lowercased draft, strips non-alphabetic
// characters from each whitespace token, and flags any token containing 4+
// consecutive identical letters. Capped at the first 10 matches.
func suspiciousTokens(draft string) []string {
	out := []string{}
	for _, tok := range strings.Fields(strings.ToLower(draft)) {
		w := stripNonAlpha(tok)
		if w == "" {
			continue
		}
		if hasLetterRun(w, 4) {
			out = append(out, w)
			if len(out) >= maxSpellingIssues {
				break
			}
		}
	}
	return out
}

func stripNonAlpha(tok string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, tok)
}

func hasLetterRun(w string, n int) bool {
	run := 0
	var prev rune
	for _, r := range w {
		if r == prev {
			run++
		} else {
			run = 1
			prev = r
		}
		if run >= n {
			return true
		}
	}
	return false
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptRunes {
		return text
	}
	return string(runes[:excerptRunes]) + "…"
}
