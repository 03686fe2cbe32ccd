package auth

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null;default:''" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Assessments  pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"assessments"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"createdAt"`
}

func (u *User) clone() *User {
	c := *u
	if u.Assessments != nil {
		c.Assessments = make(pq.StringArray, len(u.Assessments))
		copy(c.Assessments, u.Assessments)
	}
	return &c
}
