// Package parser extracts the ATS score and qualification rows from the
// model's free-text reply. The provider is not schema-constrained, so
// everything here is best-effort: Parse never fails, and callers must treat
// the structured fields as optional enrichment over the raw text.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/akum103/ats-resume-matcher/models"
)

var (
	scoreRe = regexp.MustCompile(`(?i)ATS (?:Match )?Score[:\-]?\s*(\d{1,3})\s*%`)

	// A qualification row is three consecutive lines: a label line (the
	// "Qualification:" prefix is optional), a "Match %" line and a
	// "Match" verdict line.
	tripletRe = regexp.MustCompile(`(?im)^[ \t]*(?:Qualification[:\-][ \t]*)?([^\n]*?)[ \t]*\r?\n[ \t]*Match %[:\-]?[ \t]*(\d{1,3})[ \t]*%[ \t]*\r?\n[ \t]*Match[:\-]?[ \t]*(Yes|No|Partial)\b`)
)

// Parse extracts an AnalysisResult from the provider reply. The raw text is
// always preserved; an unparseable reply yields an unset score and no rows.
func Parse(response string) models.AnalysisResult {
	result := models.AnalysisResult{Raw: response}

	result.Score = parseScore(response)
	result.Matches = parseMatches(response)

	return result
}

// parseScore returns the first labeled score in document order, or nil.
// Matches above 100 violate the score range and are passed over.
func parseScore(response string) *int {
	for _, m := range scoreRe.FindAllStringSubmatch(response, -1) {
		score, err := strconv.Atoi(m[1])
		if err != nil || score > 100 {
			continue
		}
		return &score
	}
	return nil
}

// parseMatches collects every well-formed qualification triplet in document
// order. Malformed or out-of-range triplets are skipped, never fatal.
func parseMatches(response string) []models.QualificationMatch {
	var matches []models.QualificationMatch
	for _, m := range tripletRe.FindAllStringSubmatch(response, -1) {
		qualification := strings.TrimSpace(m[1])
		if qualification == "" {
			continue
		}

		percent, err := strconv.Atoi(m[2])
		if err != nil || percent > 100 {
			continue
		}

		matches = append(matches, models.QualificationMatch{
			Qualification: qualification,
			Percent:       percent,
			Verdict:       normalizeVerdict(m[3]),
		})
	}
	return matches
}

func normalizeVerdict(raw string) models.Verdict {
	switch strings.ToLower(raw) {
	case "yes":
		return models.VerdictYes
	case "no":
		return models.VerdictNo
	default:
		return models.VerdictPartial
	}
}
