package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akum103/ats-resume-matcher/models"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     *int
	}{
		{"colon", "Some analysis...\nATS Score: 77%\nMore text", ptr(77)},
		{"dash", "ATS Score- 64%", ptr(64)},
		{"match score variant", "Approximate ATS Match Score: 82%", ptr(82)},
		{"case insensitive", "ats score: 55%", ptr(55)},
		{"first in document order", "ATS Score: 40%\nATS Score: 90%", ptr(40)},
		{"over 100 skipped for later valid", "ATS Score: 250%\nATS Score: 90%", ptr(90)},
		{"absent", "No score anywhere in this reply.", nil},
		{"number without label", "The match is 77% overall.", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.response)
			if tt.want == nil {
				assert.Nil(t, got.Score)
			} else {
				require.NotNil(t, got.Score)
				assert.Equal(t, *tt.want, *got.Score)
			}
		})
	}
}

func TestParseTriplets(t *testing.T) {
	response := "| table | ignored |\n" +
		"Qualification: Salesforce admin\n" +
		"Match %: 90%\n" +
		"Match: Yes\n" +
		"Qualification: Data migration\n" +
		"Match %: 60%\n" +
		"Match: Partial\n" +
		"ATS Match Score: 82%\n"

	result := Parse(response)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, models.QualificationMatch{Qualification: "Salesforce admin", Percent: 90, Verdict: models.VerdictYes}, result.Matches[0])
	assert.Equal(t, models.QualificationMatch{Qualification: "Data migration", Percent: 60, Verdict: models.VerdictPartial}, result.Matches[1])

	require.NotNil(t, result.Score)
	assert.Equal(t, 82, *result.Score)
	assert.Equal(t, response, result.Raw, "raw text must be preserved verbatim")
}

func TestParseTripletWithoutLabelPrefix(t *testing.T) {
	response := "CRM administration\nMatch %: 75%\nMatch: No\n"

	result := Parse(response)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "CRM administration", result.Matches[0].Qualification)
	assert.Equal(t, models.VerdictNo, result.Matches[0].Verdict)
}

func TestParseSkipsMalformedTriplets(t *testing.T) {
	response := "Qualification: Incomplete row\n" +
		"Match %: 80%\n" +
		"no verdict line here\n" +
		"Qualification: Out of range\n" +
		"Match %: 140%\n" +
		"Match: Yes\n" +
		"Qualification: Valid row\n" +
		"Match %: 100%\n" +
		"Match: Yes\n"

	result := Parse(response)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Valid row", result.Matches[0].Qualification)
	assert.Equal(t, 100, result.Matches[0].Percent)
}

func TestParseUnstructuredReply(t *testing.T) {
	response := "The model decided to answer in prose without any tables or scores."

	result := Parse(response)
	assert.Nil(t, result.Score)
	assert.Empty(t, result.Matches)
	assert.Equal(t, response, result.Raw)
}

func ptr(n int) *int {
	return &n
}
