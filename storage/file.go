package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileResumeStore keeps one <user>_resume.txt per user under a directory.
// Writes go to a temp file first and are renamed into place, so a concurrent
// Load never observes a half-written resume.
type FileResumeStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileResumeStore creates the store, creating the directory if needed
func NewFileResumeStore(dir string) (*FileResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create resume directory: %w", err)
	}
	return &FileResumeStore{dir: dir}, nil
}

// Save overwrites the stored resume for the user
func (s *FileResumeStore) Save(_ context.Context, user, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "resume-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write resume: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path(user)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to store resume: %w", err)
	}
	return nil
}

// Load returns the stored resume for the user, if any
func (s *FileResumeStore) Load(_ context.Context, user string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(user))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read resume: %w", err)
	}
	return string(data), true, nil
}

func (s *FileResumeStore) path(user string) string {
	return filepath.Join(s.dir, NormalizeUser(user)+"_resume.txt")
}
