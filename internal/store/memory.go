package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/verdictlab/verdict/internal/domain"
)

type factKey struct {
	fact     string
	subjectA string
	subjectB string
}

// MemoryFactStore is an in-process FactStore. It backs tests and the
// server when no DATABASE_URL is configured.
type MemoryFactStore struct {
	mu      sync.RWMutex
	answers map[factKey]domain.Answer
}

func NewMemoryFactStore() *MemoryFactStore {
	return &MemoryFactStore{answers: make(map[factKey]domain.Answer)}
}

func (s *MemoryFactStore) Put(ctx context.Context, a *domain.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := factKey{a.Fact, a.SubjectA, a.SubjectB}
	now := time.Now()
	if existing, ok := s.answers[key]; ok {
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
	} else {
		a.ID = uuid.New()
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	s.answers[key] = *a
	return nil
}

func (s *MemoryFactStore) Get(ctx context.Context, fact, subjectA, subjectB string) (*domain.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.answers[factKey{fact, subjectA, subjectB}]
	if !ok {
		return nil, ErrNotFound
	}
	out := a
	return &out, nil
}

func (s *MemoryFactStore) Delete(ctx context.Context, fact, subjectA, subjectB string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := factKey{fact, subjectA, subjectB}
	if _, ok := s.answers[key]; !ok {
		return ErrNotFound
	}
	delete(s.answers, key)
	return nil
}

func (s *MemoryFactStore) ListBySubject(ctx context.Context, subject string) ([]domain.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Answer
	for key, a := range s.answers {
		if key.subjectA == subject || key.subjectB == subject {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Fact != out[j].Fact {
			return out[i].Fact < out[j].Fact
		}
		if out[i].SubjectA != out[j].SubjectA {
			return out[i].SubjectA < out[j].SubjectA
		}
		return out[i].SubjectB < out[j].SubjectB
	})
	return out, nil
}
