// Package pipeline sequences one resume/job-description analysis: resolve
// resume text (fresh upload or stored copy), build the prompt, call the
// completion provider and parse the reply. One Pipeline instance handles
// exactly one request and is discarded afterward.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akum103/ats-resume-matcher/extractor"
	"github.com/akum103/ats-resume-matcher/llm"
	"github.com/akum103/ats-resume-matcher/logger"
	"github.com/akum103/ats-resume-matcher/models"
	"github.com/akum103/ats-resume-matcher/parser"
	"github.com/akum103/ats-resume-matcher/prompt"
	"github.com/akum103/ats-resume-matcher/storage"
)

// State is the pipeline's position in the analysis lifecycle. States are
// never re-entered.
type State string

const (
	StateAwaitingInput State = "awaiting_input"
	StateExtracting    State = "extracting"
	StateExtracted     State = "extracted"
	StatePrompting     State = "prompting"
	StateCalling       State = "calling"
	StateParsing       State = "parsing"
	StateComplete      State = "complete"
	StateFailed        State = "failed"
)

// Input validation errors; the pipeline stays in AwaitingInput and no
// provider call is made.
var (
	ErrMissingJobDescription = errors.New("a job description is required")
	ErrNoResume              = errors.New("no resume uploaded and none stored for this user")
)

// Input carries everything one analysis needs. FileData is optional; without
// it the stored resume for User is reused.
type Input struct {
	User           string
	JobDescription string
	FileData       []byte
	Filename       string
}

// Pipeline orchestrates one analysis request
type Pipeline struct {
	extractor *extractor.DocumentExtractor
	store     storage.ResumeStore
	completer llm.Completer
	opts      llm.Options

	state  State
	reason string
}

// New creates a pipeline with its collaborators injected; there are no
// package-level singletons.
func New(ext *extractor.DocumentExtractor, store storage.ResumeStore, completer llm.Completer, opts llm.Options) *Pipeline {
	return &Pipeline{
		extractor: ext,
		store:     store,
		completer: completer,
		opts:      opts,
		state:     StateAwaitingInput,
	}
}

// State reports the pipeline's current lifecycle state
func (p *Pipeline) State() State {
	return p.state
}

// Reason returns the human-readable failure reason once the pipeline has
// reached the Failed state
func (p *Pipeline) Reason() string {
	return p.reason
}

// Run executes the analysis. Validation failures leave the pipeline in
// AwaitingInput; extraction and provider errors move it to Failed. A store
// failure after extraction is downgraded to a warning on the result.
func (p *Pipeline) Run(ctx context.Context, in Input) (*models.AnalysisResult, error) {
	if strings.TrimSpace(in.JobDescription) == "" {
		return nil, ErrMissingJobDescription
	}

	var warning string
	var resumeText string

	if len(in.FileData) > 0 {
		p.state = StateExtracting
		text, err := p.extractor.Extract(in.FileData, in.Filename)
		if err != nil {
			return nil, p.fail(err)
		}
		resumeText = text
		p.state = StateExtracted

		if err := p.store.Save(ctx, in.User, resumeText); err != nil {
			// Persistence is a convenience feature; the analysis
			// proceeds without it.
			logger.Warn().Err(err).Str("user", in.User).Msg("failed to persist resume")
			warning = "your resume could not be saved for reuse; future analyses will need a fresh upload"
		}
	} else {
		text, ok, err := p.store.Load(ctx, in.User)
		if err != nil {
			return nil, p.fail(fmt.Errorf("failed to load stored resume: %w", err))
		}
		if !ok {
			return nil, ErrNoResume
		}
		resumeText = text
	}

	p.state = StatePrompting
	promptText := prompt.Build(resumeText, in.JobDescription)

	p.state = StateCalling
	reply, err := p.completer.Complete(ctx, promptText, p.opts)
	if err != nil {
		return nil, p.fail(err)
	}

	p.state = StateParsing
	result := parser.Parse(reply)
	result.Warning = warning

	p.state = StateComplete
	return &result, nil
}

func (p *Pipeline) fail(err error) error {
	p.state = StateFailed
	p.reason = err.Error()
	return err
}
