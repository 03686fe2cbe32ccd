package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotObject = errors.New("assessment must be a JSON object")

// Owners records which assessments a user owns.
type Owners interface {
	AppendAssessment(ctx context.Context, userID uint64, assessmentID string) error
}

type Service struct {
	Store  Store
	Owners Owners
	Log    *zap.Logger
	Now    func() time.Time
}

func NewService(store Store, owners Owners, log *zap.Logger) *Service {
	return &Service{Store: store, Owners: owners, Log: log, Now: time.Now}
}

// Create saves data as a new assessment of userID and then appends its id to
// the owner's list. A failed append is reported but the saved assessment is
// kept.
func (s *Service) Create(ctx context.Context, userID uint64, data json.RawMessage) (*Assessment, error) {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, ErrNotObject
	}

	a := &Assessment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Data:      data,
		CreatedAt: s.Now().UTC(),
	}
	if err := s.Store.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}

	if err := s.Owners.AppendAssessment(ctx, userID, a.ID); err != nil {
		s.Log.Error("assessment saved but owner not updated",
			zap.Uint64("user_id", userID),
			zap.String("assessment_id", a.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("append assessment to owner: %w", err)
	}

	return a, nil
}

func (s *Service) List(ctx context.Context, userID uint64) ([]Assessment, error) {
	return s.Store.Find(ctx, Filter{UserID: userID})
}

// Get returns the assessment only if userID owns it.
func (s *Service) Get(ctx context.Context, userID uint64, id string) (*Assessment, error) {
	return s.Store.FindOne(ctx, Filter{ID: id, UserID: userID})
}
