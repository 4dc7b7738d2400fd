package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"brandloop/contexts/marketplace/submission-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/submission-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	submissions map[string]entities.Submission
}

func NewStore(seed []entities.Submission) *Store {
	submissions := make(map[string]entities.Submission, len(seed))
	for _, item := range seed {
		submissions[item.SubmissionID] = item
	}
	return &Store{submissions: submissions}
}

func (s *Store) CreateSubmission(_ context.Context, submission entities.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.submissions[submission.SubmissionID]; exists {
		return domainerrors.ErrInvalidSubmissionInput
	}
	s.submissions[submission.SubmissionID] = submission
	return nil
}

func (s *Store) GetSubmission(_ context.Context, submissionID string) (entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.submissions[strings.TrimSpace(submissionID)]
	if !exists {
		return entities.Submission{}, domainerrors.ErrSubmissionNotFound
	}
	return item, nil
}

func (s *Store) UpdateSubmission(_ context.Context, submission entities.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.submissions[submission.SubmissionID]; !exists {
		return domainerrors.ErrSubmissionNotFound
	}
	s.submissions[submission.SubmissionID] = submission
	return nil
}

func (s *Store) ListByEngagement(_ context.Context, engagementID string) ([]entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Submission, 0)
	for _, item := range s.submissions {
		if item.EngagementID == strings.TrimSpace(engagementID) {
			items = append(items, item)
		}
	}
	sortNewestFirst(items)
	return items, nil
}

func (s *Store) ListByEngagements(_ context.Context, engagementIDs []string) ([]entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(engagementIDs))
	for _, engagementID := range engagementIDs {
		wanted[strings.TrimSpace(engagementID)] = true
	}

	items := make([]entities.Submission, 0)
	for _, item := range s.submissions {
		if wanted[item.EngagementID] {
			items = append(items, item)
		}
	}
	sortNewestFirst(items)
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortNewestFirst(items []entities.Submission) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].SubmittedAt.After(items[j].SubmittedAt)
	})
}
