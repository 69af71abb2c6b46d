package critique

import (
	"fmt"
	"strings"
)

const critiqueTemplate = `SYSTEM: You are an experienced writing teacher giving formative feedback on a student draft.
TASK: Rate the draft against each numbered success criterion below, then write a short overall summary.
CRITERIA:
%s
RULES:
- Use exactly one rating per criterion: "Exceeding", "Accomplished", "Developing", or "Not Evident".
- Feedback per criterion is 1-3 sentences, specific to this draft.
- The summary is 2-4 short strings covering overall strengths and next steps.
OUTPUT: JSON only, no prose around it:
{"criteria":[{"criterionNumber":1,"criterion":"...","rating":"...","feedback":"..."}],"summary":["..."]}
DRAFT:
%s`

// BuildPrompt renders the critique prompt for a validated request.
func BuildPrompt(req Request) string {
	lines := make([]string, 0, len(req.Criteria))
	for i, c := range req.Criteria {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, strings.TrimSpace(c)))
	}
	return strings.TrimSpace(fmt.Sprintf(critiqueTemplate, strings.Join(lines, "\n"), strings.TrimSpace(req.Draft)))
}
