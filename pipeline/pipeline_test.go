package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akum103/ats-resume-matcher/extractor"
	"github.com/akum103/ats-resume-matcher/llm"
	"github.com/akum103/ats-resume-matcher/models"
	"github.com/akum103/ats-resume-matcher/storage"
)

// mockCompleter records calls and returns a canned reply or error
type mockCompleter struct {
	calls      int
	lastPrompt string
	reply      string
	err        error
}

func (m *mockCompleter) Complete(_ context.Context, prompt string, _ llm.Options) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// failingStore rejects every save to exercise the persistence warning path
type failingStore struct {
	storage.ResumeStore
}

func (f *failingStore) Save(context.Context, string, string) error {
	return errors.New("disk full")
}

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`,
		"word/document.xml": `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body.String() + `</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func newFileStore(t *testing.T) *storage.FileResumeStore {
	t.Helper()
	store, err := storage.NewFileResumeStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func newPipeline(store storage.ResumeStore, completer llm.Completer) *Pipeline {
	return New(extractor.NewDocumentExtractor(), store, completer, llm.Options{Model: "gpt-3.5-turbo", Temperature: 0.4})
}

func TestRunEndToEnd(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	completer := &mockCompleter{
		reply: "ATS Score: 82%\n" +
			"Qualification: Salesforce admin\n" +
			"Match %: 90%\n" +
			"Match: Yes\n",
	}
	p := newPipeline(store, completer)

	result, err := p.Run(ctx, Input{
		User:           "Ankit",
		JobDescription: "Seeking Salesforce admin with data migration experience.",
		FileData:       buildDocx(t, "Managed CRM rollout.", "Led data migration."),
		Filename:       "resume.docx",
	})
	require.NoError(t, err)
	assert.Equal(t, StateComplete, p.State())

	require.NotNil(t, result.Score)
	assert.Equal(t, 82, *result.Score)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, models.QualificationMatch{Qualification: "Salesforce admin", Percent: 90, Verdict: models.VerdictYes}, result.Matches[0])
	assert.Equal(t, completer.reply, result.Raw)
	assert.Empty(t, result.Warning)

	// The prompt embeds both the extracted resume text and the JD.
	assert.Contains(t, completer.lastPrompt, "Managed CRM rollout.")
	assert.Contains(t, completer.lastPrompt, "Led data migration.")
	assert.Contains(t, completer.lastPrompt, "Seeking Salesforce admin with data migration experience.")

	// The extracted text was persisted for reuse.
	saved, ok, err := store.Load(ctx, "Ankit")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, saved, "Managed CRM rollout.")
}

func TestRunMissingJobDescription(t *testing.T) {
	completer := &mockCompleter{reply: "unused"}
	p := newPipeline(newFileStore(t), completer)

	_, err := p.Run(context.Background(), Input{
		User:           "Ankit",
		JobDescription: "   \n",
		FileData:       buildDocx(t, "Some resume."),
		Filename:       "resume.docx",
	})
	assert.ErrorIs(t, err, ErrMissingJobDescription)
	assert.Equal(t, StateAwaitingInput, p.State())
	assert.Zero(t, completer.calls, "no provider call may be made without a job description")
}

func TestRunReusesStoredResume(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	require.NoError(t, store.Save(ctx, "Medha", "Stored resume text."))

	completer := &mockCompleter{reply: "plain prose reply"}
	p := newPipeline(store, completer)

	result, err := p.Run(ctx, Input{User: "Medha", JobDescription: "Any role."})
	require.NoError(t, err)
	assert.Equal(t, StateComplete, p.State())
	assert.Equal(t, 1, completer.calls)
	assert.Contains(t, completer.lastPrompt, "Stored resume text.")

	// Unstructured reply degrades to raw-text-only.
	assert.Nil(t, result.Score)
	assert.Empty(t, result.Matches)
	assert.Equal(t, "plain prose reply", result.Raw)
}

func TestRunNoResumeAnywhere(t *testing.T) {
	completer := &mockCompleter{}
	p := newPipeline(newFileStore(t), completer)

	_, err := p.Run(context.Background(), Input{User: "Ankit", JobDescription: "A job."})
	assert.ErrorIs(t, err, ErrNoResume)
	assert.Equal(t, StateAwaitingInput, p.State())
	assert.Zero(t, completer.calls)
}

func TestRunProviderError(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	completer := &mockCompleter{err: &llm.ProviderError{StatusCode: 429, Message: "rate limited"}}
	p := newPipeline(store, completer)

	_, err := p.Run(ctx, Input{
		User:           "Ankit",
		JobDescription: "A job.",
		FileData:       buildDocx(t, "Managed CRM rollout."),
		Filename:       "resume.docx",
	})
	require.Error(t, err)

	var provErr *llm.ProviderError
	assert.ErrorAs(t, err, &provErr)
	assert.Equal(t, StateFailed, p.State())
	assert.NotEmpty(t, p.Reason())

	// The save from the Extracted step must survive the later failure.
	saved, ok, loadErr := store.Load(ctx, "Ankit")
	require.NoError(t, loadErr)
	require.True(t, ok)
	assert.Contains(t, saved, "Managed CRM rollout.")
}

func TestRunExtractionError(t *testing.T) {
	completer := &mockCompleter{}
	p := newPipeline(newFileStore(t), completer)

	_, err := p.Run(context.Background(), Input{
		User:           "Ankit",
		JobDescription: "A job.",
		FileData:       []byte("not a document"),
		Filename:       "resume.docx",
	})
	require.Error(t, err)

	var extErr *extractor.ExtractionError
	assert.ErrorAs(t, err, &extErr)
	assert.Equal(t, StateFailed, p.State())
	assert.Zero(t, completer.calls)
}

func TestRunPersistenceWarning(t *testing.T) {
	completer := &mockCompleter{reply: "ATS Score: 70%"}
	p := newPipeline(&failingStore{}, completer)

	result, err := p.Run(context.Background(), Input{
		User:           "Ankit",
		JobDescription: "A job.",
		FileData:       buildDocx(t, "Managed CRM rollout."),
		Filename:       "resume.docx",
	})
	require.NoError(t, err, "a persistence failure must not abort the analysis")
	assert.Equal(t, StateComplete, p.State())
	assert.NotEmpty(t, result.Warning)
	require.NotNil(t, result.Score)
	assert.Equal(t, 70, *result.Score)
}
