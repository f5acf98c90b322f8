package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is a generated quiz owned by one user. Deletion is permanent.
type Assessment struct {
	ID        uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string                         `gorm:"not null;index" json:"user_id"`
	Category  string                         `gorm:"not null" json:"category"`
	Questions datatypes.JSONType[[]Question] `json:"questions"`
	QuizScore int                            `gorm:"not null;default:0" json:"quiz_score"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// QuestionList returns the stored question set.
func (a *Assessment) QuestionList() []Question {
	return a.Questions.Data()
}
