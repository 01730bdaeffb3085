// Package prompt builds the completion request text for a resume/job
// description pair. The template is fixed; both inputs are embedded verbatim
// and nothing is truncated or sanitized here.
package prompt

import (
	_ "embed"
	"strings"
)

//go:embed matcher_prompt.md
var matcherPrompt string

const (
	jobDescriptionToken = "{{JOB_DESCRIPTION}}"
	resumeToken         = "{{RESUME}}"
)

// Build returns the full prompt for one analysis. Pure and deterministic:
// the same inputs always yield the same output.
func Build(resumeText, jobDescription string) string {
	r := strings.NewReplacer(
		jobDescriptionToken, jobDescription,
		resumeToken, resumeText,
	)
	return r.Replace(matcherPrompt)
}
