package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dph/portal/internal/database"
	"github.com/dph/portal/internal/database/repository"
)

// FeedbackService stores visitor feedback.
type FeedbackService struct {
	Repo *repository.FeedbackRepo
	Now  func() time.Time
}

// Submit stores f after trimming its fields. Every field is required.
func (s *FeedbackService) Submit(ctx context.Context, f repository.Feedback) (repository.Feedback, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Mobile = strings.TrimSpace(f.Mobile)
	f.Message = strings.TrimSpace(f.Message)
	if f.Name == "" || f.Email == "" || f.Mobile == "" || f.Message == "" {
		return repository.Feedback{}, ErrMissingFields
	}

	now := s.now()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now
	if err := s.Repo.Insert(ctx, f); err != nil {
		return repository.Feedback{}, fmt.Errorf("insert feedback: %w", err)
	}
	return f, nil
}

// List returns all feedback, newest first.
func (s *FeedbackService) List(ctx context.Context) ([]repository.Feedback, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return list, nil
}

func (s *FeedbackService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return database.Now()
}
