package offline

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"draftlens/internal/engine"
	"draftlens/internal/wordfreq"
)

type failTransport struct{}

func (f failTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network disabled for offline test")
}

// The local analysis passes must never reach for the network. Critique is
// the only feature that talks to a remote service.
func TestOfflineMode(t *testing.T) {
	original := http.DefaultTransport
	http.DefaultTransport = failTransport{}
	t.Cleanup(func() { http.DefaultTransport = original })

	text := strings.Repeat("The narrator describes the harbor at dawn. ", 200)
	snap := engine.Analyze(text)
	if !snap.HasText {
		t.Fatal("expected analysis to work offline")
	}
	if snap.Metrics.SentenceCount != 200 {
		t.Fatalf("expected 200 sentences offline, got %d", snap.Metrics.SentenceCount)
	}
	if len(snap.Issues.ByKind) == 0 && !snap.Issues.Clean() {
		t.Fatal("expected issue detection to run offline")
	}

	ranked := wordfreq.Rank(text)
	if len(ranked) == 0 {
		t.Fatal("expected frequency ranking to work offline")
	}
}
