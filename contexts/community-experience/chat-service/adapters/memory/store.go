package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "brandloop/contexts/community-experience/chat-service/domain/errors"
	"brandloop/contexts/community-experience/chat-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	threads        map[string]ports.Thread
	threadsByPair  map[string]string
	threadMessages map[string][]ports.Message
}

func NewStore() *Store {
	return &Store{
		threads:        make(map[string]ports.Thread),
		threadsByPair:  make(map[string]string),
		threadMessages: make(map[string][]ports.Message),
	}
}

func (s *Store) EnsureDirectThread(
	_ context.Context,
	firstUserID string,
	secondUserID string,
	threadID string,
	now time.Time,
) (ports.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(firstUserID, secondUserID)
	if existingID, exists := s.threadsByPair[key]; exists {
		return s.threads[existingID], nil
	}

	thread := ports.Thread{
		ThreadID:       strings.TrimSpace(threadID),
		Kind:           ports.ThreadKindDirect,
		ParticipantIDs: []string{strings.TrimSpace(firstUserID), strings.TrimSpace(secondUserID)},
		CreatedAt:      now.UTC(),
	}
	s.threads[thread.ThreadID] = thread
	s.threadsByPair[key] = thread.ThreadID
	return thread, nil
}

func (s *Store) GetThread(_ context.Context, threadID string) (ports.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, exists := s.threads[strings.TrimSpace(threadID)]
	if !exists {
		return ports.Thread{}, domainerrors.ErrThreadNotFound
	}
	return thread, nil
}

func (s *Store) IsParticipant(_ context.Context, threadID string, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, exists := s.threads[strings.TrimSpace(threadID)]
	if !exists {
		return false, domainerrors.ErrThreadNotFound
	}
	for _, participantID := range thread.ParticipantIDs {
		if participantID == strings.TrimSpace(userID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateMessage(_ context.Context, message ports.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.threads[message.ThreadID]; !exists {
		return domainerrors.ErrThreadNotFound
	}
	s.threadMessages[message.ThreadID] = append(s.threadMessages[message.ThreadID], message)
	return nil
}

func (s *Store) ListMessages(_ context.Context, input ports.ListMessagesInput) ([]ports.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	threadID := strings.TrimSpace(input.ThreadID)
	if _, exists := s.threads[threadID]; !exists {
		return nil, domainerrors.ErrThreadNotFound
	}

	messages := append([]ports.Message(nil), s.threadMessages[threadID]...)
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	if input.Limit > 0 && len(messages) > input.Limit {
		messages = messages[len(messages)-input.Limit:]
	}
	return messages, nil
}

func (s *Store) DeleteOrphanedDirectThreads(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for threadID, thread := range s.threads {
		if thread.Kind != ports.ThreadKindDirect || len(thread.ParticipantIDs) >= 2 {
			continue
		}
		delete(s.threads, threadID)
		delete(s.threadMessages, threadID)
		for key, id := range s.threadsByPair {
			if id == threadID {
				delete(s.threadsByPair, key)
			}
		}
		removed++
	}
	return removed, nil
}

// DropParticipant simulates an account deletion leaving the thread one sided.
func (s *Store) DropParticipant(threadID string, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, exists := s.threads[strings.TrimSpace(threadID)]
	if !exists {
		return
	}
	remaining := make([]string, 0, len(thread.ParticipantIDs))
	for _, participantID := range thread.ParticipantIDs {
		if participantID != strings.TrimSpace(userID) {
			remaining = append(remaining, participantID)
		}
	}
	thread.ParticipantIDs = remaining
	s.threads[thread.ThreadID] = thread
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func pairKey(firstUserID string, secondUserID string) string {
	first := strings.TrimSpace(firstUserID)
	second := strings.TrimSpace(secondUserID)
	if second < first {
		first, second = second, first
	}
	return first + "|" + second
}
