package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Test struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string         `json:"name" gorm:"not null"`
	Description     string         `json:"description,omitempty"`
	DurationMinutes *int           `json:"duration_minutes,omitempty"`
	MaxAttempts     int            `json:"max_attempts" gorm:"not null;default:0"` // 0 = unlimited
	CreatedByID     uuid.UUID      `json:"created_by_id" gorm:"type:uuid"`
	Questions       []TestQuestion `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Test) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TestQuestion links a question into a test at a fixed position. Order is
// unique within a test.
type TestQuestion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TestID     uuid.UUID `json:"test_id" gorm:"type:uuid;not null;uniqueIndex:idx_test_question,priority:1;uniqueIndex:idx_test_order,priority:1"`
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_test_question,priority:2"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Order      int       `json:"order" gorm:"column:question_order;not null;uniqueIndex:idx_test_order,priority:2"`
	CreatedAt  time.Time `json:"created_at"`
}

func (tq *TestQuestion) BeforeCreate(tx *gorm.DB) error {
	if tq.ID == uuid.Nil {
		tq.ID = uuid.New()
	}
	return nil
}
