package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentAnswer is one recorded response to one question within one
// assignment. At most one row exists per (assignment, question); re-saving
// overwrites. IsCorrect stays nil until the assignment is graded.
type StudentAnswer struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TestAssignmentID uuid.UUID `json:"test_assignment_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignment_question,priority:1"`
	QuestionID       uuid.UUID `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignment_question,priority:2"`
	SelectedAnswer   string    `json:"selected_answer" gorm:"not null"` // one of "a".."e"
	IsCorrect        *bool     `json:"is_correct,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (a *StudentAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
