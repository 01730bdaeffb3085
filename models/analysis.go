package models

// Verdict is the qualification-level match verdict from the analysis
type Verdict string

const (
	VerdictYes     Verdict = "Yes"
	VerdictNo      Verdict = "No"
	VerdictPartial Verdict = "Partial"
)

// QualificationMatch is one qualification row extracted from the model reply
type QualificationMatch struct {
	Qualification string  `json:"qualification"`
	Percent       int     `json:"percent"`
	Verdict       Verdict `json:"verdict"`
}

// AnalysisRequest pairs a resume text with a job description for one analysis
type AnalysisRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// AnalysisResult is the outcome of one analysis. Raw is always present;
// Score and Matches are best-effort extractions from the free-text reply and
// may be nil/empty when the model ignored the requested format.
type AnalysisResult struct {
	Raw     string               `json:"raw"`
	Score   *int                 `json:"score,omitempty"`
	Matches []QualificationMatch `json:"matches,omitempty"`

	// Warning carries non-fatal problems (e.g. the resume could not be
	// persisted for reuse); the analysis itself still succeeded.
	Warning string `json:"warning,omitempty"`
}

// FitLabel maps an ATS score to the fit label shown to the user
func FitLabel(score int) string {
	switch {
	case score >= 85:
		return "Excellent Fit"
	case score >= 70:
		return "Good Fit"
	case score >= 50:
		return "Fair Fit - Some Refinement Needed"
	default:
		return "Weak Fit - Consider Major Edits"
	}
}
