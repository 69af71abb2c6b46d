package wordfreq

import (
	"sort"
	"strings"
)

const (
	maxEntries    = 10
	minWordLength = 4
)

// Fixed stopword set: common function words excluded from ranking.
var stopwords = map[string]struct{}{
	"the": {}, "be": {}, "to": {}, "of": {}, "and": {}, "a": {}, "in": {},
	"that": {}, "have": {}, "i": {}, "it": {}, "for": {}, "not": {}, "on": {},
	"with": {}, "he": {}, "as": {}, "you": {}, "do": {}, "at": {}, "this": {},
	"but": {}, "his": {}, "by": {}, "from": {}, "they": {}, "we": {},
	"say": {}, "her": {}, "she": {}, "or": {}, "an": {}, "will": {},
	"my": {}, "one": {}, "all": {}, "would": {}, "there": {}, "their": {},
	"was": {}, "is": {}, "are": {}, "been": {}, "has": {}, "had": {},
	"were": {}, "can": {}, "could": {}, "should": {}, "may": {},
}

type Entry struct {
	Word    string `json:"word"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// Rank returns up to 10 (word, count) pairs sorted by descending count,
// ties broken by first occurrence in the token stream so output is
// deterministic. Percent is each count relative to the top count, for
// proportional bar rendering.
func Rank(draft string) []Entry {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	for _, tok := range strings.Fields(strings.ToLower(draft)) {
		w := normalize(tok)
		if len(w) < minWordLength {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, seen := counts[w]; !seen {
			firstSeen[w] = len(firstSeen)
		}
		counts[w]++
	}
	if len(counts) == 0 {
		return nil
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.SliceStable(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})
	if len(words) > maxEntries {
		words = words[:maxEntries]
	}

	top := counts[words[0]]
	out := make([]Entry, 0, len(words))
	for _, w := range words {
		out = append(out, Entry{
			Word:    w,
			Count:   counts[w],
			Percent: counts[w] * 100 / top,
		})
	}
	return out
}

// normalize strips everything but lowercase letters from a token.
func normalize(tok string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, tok)
}
