package dto

import (
	"time"

	"github.com/google/uuid"
)

// TestQuestionRefDTO links an existing question into a test at a position.
type TestQuestionRefDTO struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	Order      int       `json:"order" binding:"required,min=1"`
}

// TestCreateDTO is for staff to create a new test from bank questions.
type TestCreateDTO struct {
	Name            string               `json:"name" binding:"required,min=3"`
	Description     string               `json:"description,omitempty" binding:"omitempty,max=500"`
	DurationMinutes *int                 `json:"duration_minutes" binding:"omitempty,min=1"`
	MaxAttempts     int                  `json:"max_attempts" binding:"min=0"`
	Questions       []TestQuestionRefDTO `json:"questions" binding:"required,min=1,dive"`
}

// TestResponseDTO is the full test view returned to staff after creation.
type TestResponseDTO struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	DurationMinutes *int                   `json:"duration_minutes,omitempty"`
	MaxAttempts     int                    `json:"max_attempts"`
	Questions       []QuestionWithOrderDTO `json:"questions,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// QuestionWithOrderDTO pairs a bank question with its position in a test.
type QuestionWithOrderDTO struct {
	Order    int                 `json:"order"`
	Question QuestionResponseDTO `json:"question"`
}

// TestSummaryDTO is used for listing tests available to students.
type TestSummaryDTO struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	MaxAttempts     int       `json:"max_attempts"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// StudentTestDTO is the student-facing test view: questions without answer keys.
type StudentTestDTO struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	DurationMinutes *int                 `json:"duration_minutes,omitempty"`
	MaxAttempts     int                  `json:"max_attempts"`
	Questions       []StudentQuestionDTO `json:"questions,omitempty"`
}
