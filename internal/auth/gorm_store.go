package auth

import (
	"context"
	"errors"
	"fmt"

	"appraise/internal/apperr"

	"gorm.io/gorm"
)

// GormUserStore persists users in the users table. The DB must be opened
// with TranslateError so duplicate emails surface as gorm.ErrDuplicatedKey.
type GormUserStore struct {
	DB *gorm.DB
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *GormUserStore) FindByID(ctx context.Context, id uint64) (*User, error) {
	var u User
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *GormUserStore) Insert(ctx context.Context, u *User) (*User, error) {
	stored := u.clone()
	stored.ID = 0
	if stored.Assessments == nil {
		stored.Assessments = []string{}
	}
	if err := s.DB.WithContext(ctx).Create(stored).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("insert user %q: %w", u.Email, apperr.ErrConflict)
		}
		return nil, err
	}
	return stored, nil
}

func (s *GormUserStore) AppendAssessment(ctx context.Context, userID uint64, assessmentID string) error {
	res := s.DB.WithContext(ctx).Exec(
		`update users set assessments = array_append(assessments, ?) where id = ?`,
		assessmentID, userID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}
