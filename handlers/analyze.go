package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akum103/ats-resume-matcher/auth"
	"github.com/akum103/ats-resume-matcher/config"
	"github.com/akum103/ats-resume-matcher/extractor"
	"github.com/akum103/ats-resume-matcher/llm"
	"github.com/akum103/ats-resume-matcher/logger"
	"github.com/akum103/ats-resume-matcher/models"
	"github.com/akum103/ats-resume-matcher/pipeline"
	"github.com/akum103/ats-resume-matcher/storage"
)

// AnalyzeHandler runs resume/job-description analyses
type AnalyzeHandler struct {
	extractor *extractor.DocumentExtractor
	store     storage.ResumeStore
	completer llm.Completer
	archive   *storage.ArchiveStore
	opts      llm.Options
}

// NewAnalyzeHandler creates a new analyze handler. archive may be nil when
// raw-upload archival is not configured.
func NewAnalyzeHandler(cfg *config.Config, store storage.ResumeStore, completer llm.Completer, archive *storage.ArchiveStore) *AnalyzeHandler {
	return &AnalyzeHandler{
		extractor: extractor.NewDocumentExtractor(),
		store:     store,
		completer: completer,
		archive:   archive,
		opts:      llm.Options{Model: cfg.OpenAIModel, Temperature: cfg.Temperature},
	}
}

// Analyze matches the caller's resume against a job description
// @Summary Analyze resume against a job description
// @Description Upload a resume (.pdf or .docx) with a job description, or send only a job description to reuse the stored resume. Returns the full model reply with a best-effort ATS score and qualification rows.
// @Tags Analysis
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param request body models.AnalyzeRequest false "Analysis request (JSON, reuses stored resume)"
// @Param resume_file formData file false "Resume file (.pdf or .docx)"
// @Param job_description formData string false "Job description text"
// @Success 200 {object} models.AnalyzeResponse "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid input or unreadable document"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 502 {object} models.ErrorResponse "Completion provider failure"
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Authentication required",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	input, ok := h.readInput(c, claims.User)
	if !ok {
		return
	}

	// One pipeline instance per request; nothing is shared across
	// concurrent analyses except the store.
	p := pipeline.New(h.extractor, h.store, h.completer, h.opts)
	result, err := p.Run(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	warning := result.Warning
	if h.archive != nil && len(input.FileData) > 0 {
		if _, err := h.archive.ArchiveUpload(c.Request.Context(), input.User, input.FileData, input.Filename); err != nil {
			logger.Warn().Err(err).Str("user", input.User).Msg("failed to archive uploaded resume")
			if warning == "" {
				warning = "the uploaded file could not be archived"
			}
		}
	}

	resp := models.AnalyzeResponse{
		User:    input.User,
		Score:   result.Score,
		Matches: result.Matches,
		Raw:     result.Raw,
		Warning: warning,
	}
	if result.Score != nil {
		resp.FitLabel = models.FitLabel(*result.Score)
	}

	logger.Info().
		Str("user", input.User).
		Bool("fresh_upload", len(input.FileData) > 0).
		Int("matches", len(result.Matches)).
		Msg("analysis complete")

	c.JSON(http.StatusOK, resp)
}

// GetResume returns the stored resume text for the caller
// @Summary Get stored resume
// @Description Return the most recently stored resume text for the authenticated user
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ResumeResponse "Stored resume"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 404 {object} models.ErrorResponse "No resume stored"
// @Router /resume [get]
func (h *AnalyzeHandler) GetResume(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Authentication required",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	text, ok, err := h.store.Load(c.Request.Context(), claims.User)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to load resume",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No resume stored for this user; upload one first",
			Code:  http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, models.ResumeResponse{User: claims.User, Resume: text})
}

// readInput assembles the pipeline input from either a multipart form
// (optional resume_file + job_description) or a JSON body (job description
// only, stored resume reused)
func (h *AnalyzeHandler) readInput(c *gin.Context, user string) (pipeline.Input, bool) {
	input := pipeline.Input{User: user}

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		input.JobDescription = c.PostForm("job_description")

		file, header, err := c.Request.FormFile("resume_file")
		if err == nil {
			defer file.Close()

			buf := new(bytes.Buffer)
			if _, err := io.Copy(buf, file); err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "Failed to read resume file",
					Code:  http.StatusBadRequest,
				})
				return input, false
			}
			input.FileData = buf.Bytes()
			input.Filename = header.Filename
		}
	} else {
		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid request body",
				Code:    http.StatusBadRequest,
				Details: err.Error(),
			})
			return input, false
		}
		input.JobDescription = req.JobDescription
	}

	return input, true
}

// writeError maps pipeline errors to HTTP responses
func (h *AnalyzeHandler) writeError(c *gin.Context, err error) {
	var extErr *extractor.ExtractionError
	var provErr *llm.ProviderError

	switch {
	case errors.Is(err, pipeline.ErrMissingJobDescription),
		errors.Is(err, pipeline.ErrNoResume),
		errors.Is(err, extractor.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: err.Error(),
			Code:  http.StatusBadRequest,
		})
	case errors.As(err, &extErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "The uploaded document could not be read; try re-exporting it",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
	case errors.As(err, &provErr):
		status := http.StatusBadGateway
		if provErr.StatusCode == http.StatusTooManyRequests {
			status = http.StatusTooManyRequests
		}
		c.JSON(status, models.ErrorResponse{
			Error:   "The analysis provider is unavailable; please retry",
			Code:    status,
			Details: provErr.Error(),
		})
	case errors.Is(err, llm.ErrEmptyResponse):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "The analysis provider returned an empty reply; please retry",
			Code:    http.StatusBadGateway,
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Analysis failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
	}
}
