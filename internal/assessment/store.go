package assessment

import (
	"context"
	"errors"
	"sync"

	"appraise/internal/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store interface {
	Save(ctx context.Context, a *Assessment) error
	Find(ctx context.Context, f Filter) ([]Assessment, error)
	FindOne(ctx context.Context, f Filter) (*Assessment, error)
}

// MemoryStore keeps assessments in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Assessment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, a *Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *a)
	return nil
}

func (s *MemoryStore) Find(_ context.Context, f Filter) ([]Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Assessment, 0)
	for i := range s.items {
		if f.match(&s.items[i]) {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) FindOne(_ context.Context, f Filter) (*Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if f.match(&s.items[i]) {
			a := s.items[i]
			return &a, nil
		}
	}
	return nil, apperr.ErrNotFound
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Save(ctx context.Context, a *Assessment) error {
	return s.DB.WithContext(ctx).Create(a).Error
}

func (s *GormStore) Find(ctx context.Context, f Filter) ([]Assessment, error) {
	out := make([]Assessment, 0)
	if err := s.scope(ctx, f).Order("created_at asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) FindOne(ctx context.Context, f Filter) (*Assessment, error) {
	// the id column is uuid; anything else cannot match
	if f.ID != "" {
		if _, err := uuid.Parse(f.ID); err != nil {
			return nil, apperr.ErrNotFound
		}
	}

	var a Assessment
	if err := s.scope(ctx, f).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *GormStore) scope(ctx context.Context, f Filter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&Assessment{})
	if f.ID != "" {
		q = q.Where("id = ?", f.ID)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	return q
}
