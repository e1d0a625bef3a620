package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusAssigned   = "ASSIGNED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// TestAssignment is one student's attempt record against one test. Rows are
// created either by a teacher bulk-assigning (ASSIGNED) or implicitly by a
// one-shot submission (COMPLETED immediately). (test_id, student_id) carries
// no unique constraint: every one-shot submission adds a new COMPLETED row
// for the same pair.
type TestAssignment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TestID      uuid.UUID       `json:"test_id" gorm:"type:uuid;not null;index"`
	Test        Test            `json:"test,omitempty" gorm:"foreignKey:TestID"`
	StudentID   uuid.UUID       `json:"student_id" gorm:"type:uuid;not null;index"`
	Status      string          `json:"status" gorm:"not null;default:'ASSIGNED'"` // "ASSIGNED", "IN_PROGRESS", "COMPLETED"
	Score       *float64        `json:"score,omitempty"`                           // 0..100
	StartedAt   *time.Time      `json:"started_at,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Answers     []StudentAnswer `json:"answers,omitempty" gorm:"foreignKey:TestAssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (a *TestAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
