package wordfreq

import (
	"strings"
	"testing"
)

func TestRankOrdersByCount(t *testing.T) {
	entries := Rank("testing testing coding coding coding python")
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
	}
	want := []Entry{
		{Word: "coding", Count: 3, Percent: 100},
		{Word: "testing", Count: 2, Percent: 66},
		{Word: "python", Count: 1, Percent: 33},
	}
	for i, e := range entries {
		if e != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], e)
		}
	}
}

func TestRankTieBreaksByFirstOccurrence(t *testing.T) {
	entries := Rank("zebra apple zebra apple mango")
	if entries[0].Word != "zebra" || entries[1].Word != "apple" {
		t.Fatalf("expected first-occurrence tie-break, got %+v", entries)
	}
}

func TestRankDropsShortAndStopwords(t *testing.T) {
	entries := Rank("the cat ran with their would should elephant elephant")
	if len(entries) != 1 {
		t.Fatalf("expected only 'elephant' to qualify, got %+v", entries)
	}
	if entries[0].Word != "elephant" || entries[0].Count != 2 {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestRankNormalizesTokens(t *testing.T) {
	entries := Rank("Coding, coding; CODING!")
	if len(entries) != 1 || entries[0].Count != 3 {
		t.Fatalf("expected punctuation and case stripped before counting, got %+v", entries)
	}
}

func TestRankCapsAtTen(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	}
	entries := Rank(strings.Join(words, " "))
	if len(entries) != 10 {
		t.Fatalf("expected the list capped at 10, got %d", len(entries))
	}
}

func TestRankNoQualifyingWords(t *testing.T) {
	if got := Rank("the and a to of in it on"); got != nil {
		t.Fatalf("expected empty ranked list, got %+v", got)
	}
	if got := Rank(""); got != nil {
		t.Fatalf("expected empty ranked list for empty draft, got %+v", got)
	}
}
