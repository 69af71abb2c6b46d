// Package critique sends a draft plus user-authored success criteria to a
// text-generation service and decodes the constrained JSON verdict. One
// attempt per trigger: nothing in here retries.
package critique

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const maxCriteria = 15

type Request struct {
	Draft    string   `json:"draft"`
	Criteria []string `json:"criteria"`
}

// Validate rejects malformed requests before any network call.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Draft) == "" {
		return &ValidationError{Reason: "draft is empty"}
	}
	if len(r.Criteria) == 0 {
		return &ValidationError{Reason: "at least one criterion is required"}
	}
	if len(r.Criteria) > maxCriteria {
		return &ValidationError{Reason: fmt.Sprintf("%d criteria exceed the limit of %d", len(r.Criteria), maxCriteria)}
	}
	for i, c := range r.Criteria {
		if strings.TrimSpace(c) == "" {
			return &ValidationError{Reason: fmt.Sprintf("criterion %d is empty", i+1)}
		}
	}
	return nil
}

type CriterionResult struct {
	CriterionNumber int    `json:"criterionNumber"`
	Criterion       string `json:"criterion"`
	Rating          Rating `json:"rating"`
	Feedback        string `json:"feedback"`
}

// Result is produced fresh per call and never merged with prior results.
type Result struct {
	Criteria []CriterionResult `json:"criteria"`
	Summary  []string          `json:"summary"`
}

type Orchestrator struct {
	llm LLMClient
}

func NewOrchestrator(llm LLMClient) (*Orchestrator, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Orchestrator{llm: llm}, nil
}

// Evaluate runs one critique: validate, prompt, call, decode. Validation
// failures never reach the network; upstream failures are classified into
// the taxonomy and surfaced without retry.
func (o *Orchestrator) Evaluate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log.Debug("critique run started", "run_id", runID, "criteria", len(req.Criteria), "draft_words", len(strings.Fields(req.Draft)))

	raw, err := o.llm.Complete(ctx, BuildPrompt(req))
	if err != nil {
		classified := classifyUpstreamErr(err)
		log.Warn("critique run failed", "run_id", runID, "error", classified)
		return nil, classified
	}

	result, err := decodeResult(raw, req.Criteria)
	if err != nil {
		var protoErr *ProtocolError
		if errors.As(err, &protoErr) {
			log.Warn("critique response rejected", "run_id", runID, "reason", protoErr.Reason, "raw", snippet(protoErr.Raw, 220))
		}
		return nil, err
	}

	log.Debug("critique run completed", "run_id", runID, "summary_lines", len(result.Summary))
	return result, nil
}

// resultWire mirrors Result with the rating as a plain string so the closed
// enum is checked explicitly instead of through struct decoding.
type resultWire struct {
	Criteria []struct {
		CriterionNumber int    `json:"criterionNumber"`
		Criterion       string `json:"criterion"`
		Rating          string `json:"rating"`
		Feedback        string `json:"feedback"`
	} `json:"criteria"`
	Summary []string `json:"summary"`
}

func decodeResult(raw string, criteria []string) (*Result, error) {
	jsonText := extractJSONObject(raw)
	if jsonText == "" {
		return nil, &ProtocolError{Reason: "no JSON object in model response", Raw: raw}
	}

	var wire resultWire
	if err := json.Unmarshal([]byte(jsonText), &wire); err != nil {
		return nil, &ProtocolError{Reason: fmt.Sprintf("malformed JSON: %v", err), Raw: raw}
	}
	if len(wire.Criteria) != len(criteria) {
		return nil, &ProtocolError{
			Reason: fmt.Sprintf("expected %d criterion entries, got %d", len(criteria), len(wire.Criteria)),
			Raw:    raw,
		}
	}
	if len(wire.Summary) == 0 {
		return nil, &ProtocolError{Reason: "missing summary", Raw: raw}
	}

	out := &Result{Summary: wire.Summary}
	for i, c := range wire.Criteria {
		if c.CriterionNumber != i+1 {
			return nil, &ProtocolError{
				Reason: fmt.Sprintf("criterion %d numbered %d", i+1, c.CriterionNumber),
				Raw:    raw,
			}
		}
		rating, err := ParseRating(c.Rating)
		if err != nil {
			return nil, &ProtocolError{Reason: err.Error(), Raw: raw}
		}
		text := strings.TrimSpace(c.Criterion)
		if text == "" {
			text = criteria[i]
		}
		out.Criteria = append(out.Criteria, CriterionResult{
			CriterionNumber: c.CriterionNumber,
			Criterion:       text,
			Rating:          rating,
			Feedback:        strings.TrimSpace(c.Feedback),
		})
	}
	return out, nil
}

// extractJSONObject pulls the first balanced {...} out of a model response,
// tolerating fenced markdown around it.
func extractJSONObject(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "```") {
		lines := strings.Split(s, "\n")
		if len(lines) >= 3 {
			s = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

func snippet(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
