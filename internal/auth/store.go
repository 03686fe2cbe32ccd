package auth

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"appraise/internal/apperr"
)

// UserStore is the credential store. Users are only ever inserted; the one
// mutation is appending an assessment reference.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint64) (*User, error)
	Insert(ctx context.Context, u *User) (*User, error)
	AppendAssessment(ctx context.Context, userID uint64, assessmentID string) error
}

// MemoryUserStore keeps users for the lifetime of the process.
type MemoryUserStore struct {
	mu      sync.RWMutex
	nextID  atomic.Uint64
	byID    map[uint64]*User
	byEmail map[string]uint64
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    map[uint64]*User{},
		byEmail: map[string]uint64{},
	}
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return s.byID[id].clone(), nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id uint64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return u.clone(), nil
}

func (s *MemoryUserStore) Insert(_ context.Context, u *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return nil, fmt.Errorf("insert user %q: %w", u.Email, apperr.ErrConflict)
	}

	stored := u.clone()
	stored.ID = s.nextID.Add(1)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	if stored.Assessments == nil {
		stored.Assessments = []string{}
	}

	s.byID[stored.ID] = stored
	s.byEmail[stored.Email] = stored.ID
	return stored.clone(), nil
}

func (s *MemoryUserStore) AppendAssessment(_ context.Context, userID uint64, assessmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[userID]
	if !ok {
		return apperr.ErrNotFound
	}
	u.Assessments = append(u.Assessments, assessmentID)
	return nil
}
