package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/akum103/ats-resume-matcher/config"
)

const resumesCollection = "resumes"

// FirestoreResumeStore backs the resume store with one Firestore document
// per user
type FirestoreResumeStore struct {
	client *firestore.Client
}

type resumeDoc struct {
	Text      string    `firestore:"text"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// NewFirestoreResumeStore creates a Firestore-backed resume store
func NewFirestoreResumeStore(ctx context.Context, cfg *config.Config) (*FirestoreResumeStore, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return &FirestoreResumeStore{client: client}, nil
}

// Close closes the underlying Firestore client
func (s *FirestoreResumeStore) Close() error {
	return s.client.Close()
}

// Save overwrites the stored resume for the user
func (s *FirestoreResumeStore) Save(ctx context.Context, user, text string) error {
	doc := s.client.Collection(resumesCollection).Doc(NormalizeUser(user))
	_, err := doc.Set(ctx, resumeDoc{Text: text, UpdatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to store resume: %w", err)
	}
	return nil
}

// Load returns the stored resume for the user, if any
func (s *FirestoreResumeStore) Load(ctx context.Context, user string) (string, bool, error) {
	snap, err := s.client.Collection(resumesCollection).Doc(NormalizeUser(user)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load resume: %w", err)
	}

	var doc resumeDoc
	if err := snap.DataTo(&doc); err != nil {
		return "", false, fmt.Errorf("failed to parse resume document: %w", err)
	}
	return doc.Text, true, nil
}
