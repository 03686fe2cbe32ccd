package assessment

import (
	"encoding/json"
	"time"
)

// Assessment is a client-submitted record owned by one user. Data holds the
// submitted JSON object verbatim.
type Assessment struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	UserID    uint64          `gorm:"index;not null"`
	Data      json.RawMessage `gorm:"type:jsonb;not null;default:'{}'::jsonb"`
	CreatedAt time.Time       `gorm:"index;not null;default:now()"`
}

// MarshalJSON renders the submitted fields with id, user and createdAt laid
// over them.
func (a Assessment) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	if len(a.Data) > 0 {
		if err := json.Unmarshal(a.Data, &out); err != nil {
			return nil, err
		}
	}
	out["id"] = a.ID
	out["user"] = a.UserID
	out["createdAt"] = a.CreatedAt
	return json.Marshal(out)
}

// Filter selects assessments; zero fields match everything.
type Filter struct {
	ID     string
	UserID uint64
}

func (f Filter) match(a *Assessment) bool {
	if f.ID != "" && a.ID != f.ID {
		return false
	}
	if f.UserID != 0 && a.UserID != f.UserID {
		return false
	}
	return true
}
