package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/akum103/ats-resume-matcher/config"
)

// ArchiveStore keeps the original uploaded resume bytes in a Cloud Storage
// bucket. Archival is a convenience on top of the text store; callers treat
// failures as warnings, not analysis errors.
type ArchiveStore struct {
	client     *storage.Client
	bucketName string
}

// NewArchiveStore creates a Cloud Storage archive client
func NewArchiveStore(ctx context.Context, cfg *config.Config) (*ArchiveStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &ArchiveStore{
		client:     client,
		bucketName: cfg.ArchiveBucket,
	}, nil
}

// Close closes the Cloud Storage client
func (a *ArchiveStore) Close() error {
	return a.client.Close()
}

// ArchiveUpload stores the raw uploaded document for a user and returns the
// object URL
func (a *ArchiveStore) ArchiveUpload(ctx context.Context, user string, content []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	objectName := fmt.Sprintf("resumes/%s/%d%s", NormalizeUser(user), time.Now().Unix(), ext)

	obj := a.client.Bucket(a.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentTypeForExt(ext)

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write archive object: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close archive writer: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", a.bucketName, objectName), nil
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
