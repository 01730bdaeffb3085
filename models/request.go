package models

// LoginRequest selects one of the configured users
// @Description Login request naming one of the configured users
type LoginRequest struct {
	User string `json:"user" example:"Ankit"`
}

// AuthResponse is returned on successful login or token refresh
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token     string `json:"token"`
	User      string `json:"user" example:"Ankit"`
	ExpiresAt string `json:"expires_at" example:"2024-01-16T10:30:00Z"`
}

// UsersResponse lists the configured users
// @Description Configured user identifiers
type UsersResponse struct {
	Users []string `json:"users"`
}

// AnalyzeRequest is the JSON form of an analysis request; the resume comes
// from the store for the authenticated user
// @Description Analysis request reusing the stored resume
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" example:"Seeking Salesforce admin with data migration experience."`
}

// AnalyzeResponse is the API response for a completed analysis
// @Description Analysis result with optional score and qualification rows
type AnalyzeResponse struct {
	User     string               `json:"user" example:"Ankit"`
	Score    *int                 `json:"score,omitempty" example:"82"`
	FitLabel string               `json:"fit_label,omitempty" example:"Good Fit"`
	Matches  []QualificationMatch `json:"matches,omitempty"`
	Raw      string               `json:"raw"`
	Warning  string               `json:"warning,omitempty"`
}

// ResumeResponse returns the stored resume text for a user
// @Description Stored resume text
type ResumeResponse struct {
	User   string `json:"user" example:"Ankit"`
	Resume string `json:"resume"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"job_description is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
