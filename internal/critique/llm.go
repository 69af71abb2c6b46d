package critique

import "context"

// LLMClient abstracts the text-generation service so the orchestrator can
// be exercised without the network.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMSettings carries the upstream configuration for concrete clients.
type LLMSettings struct {
	APIKey  string
	Model   string
	BaseURL string
}
