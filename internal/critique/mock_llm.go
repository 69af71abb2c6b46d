package critique

import "context"

// MockLLM is a canned LLMClient for tests and local runs without a key.
type MockLLM struct {
	Response string
	Err      error
}

func (m MockLLM) Complete(_ context.Context, _ string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
