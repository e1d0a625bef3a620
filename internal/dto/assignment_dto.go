package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Attempt limit ---

// AttemptHistoryDTO summarizes one completed attempt, most recent first.
// Unanswered questions have no recorded row, so they count toward neither
// correct nor incorrect here.
type AttemptHistoryDTO struct {
	ID             uuid.UUID  `json:"id"`
	Score          *float64   `json:"score,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
}

type AttemptCheckDTO struct {
	Allowed   bool                `json:"allowed"`
	Remaining *int                `json:"remaining"` // nil when the test is unlimited
	Total     int                 `json:"total"`
	History   []AttemptHistoryDTO `json:"history"`
}

// --- One-shot submission ---

// TestSubmitDTO carries the whole answer set at once, keyed by question id.
// Questions without an entry are graded as empty.
type TestSubmitDTO struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

type StudentAnswerDTO struct {
	ID             uuid.UUID `json:"id"`
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedAnswer string    `json:"selected_answer"`
	IsCorrect      *bool     `json:"is_correct,omitempty"`
}

// GradedResultDTO is the one-shot pathway response: the created assignment,
// its recorded answers and the classification counts.
type GradedResultDTO struct {
	ID             uuid.UUID          `json:"id"`
	TestID         uuid.UUID          `json:"test_id"`
	TestName       string             `json:"test_name,omitempty"`
	StudentID      uuid.UUID          `json:"student_id"`
	Status         string             `json:"status"`
	Score          *float64           `json:"score,omitempty"`
	StartedAt      *time.Time         `json:"started_at,omitempty"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
	Answers        []StudentAnswerDTO `json:"answers"`
	CorrectCount   int                `json:"correct_count"`
	IncorrectCount int                `json:"incorrect_count"`
	EmptyCount     int                `json:"empty_count"`
}

// --- Bulk assignment ---

type AssignmentsCreateDTO struct {
	TestID     uuid.UUID   `json:"test_id" binding:"required"`
	StudentIDs []uuid.UUID `json:"student_ids" binding:"required,min=1"`
}

// AssignmentsCreatedDTO reports only newly-created rows; pairs that already
// had an assignment are skipped.
type AssignmentsCreatedDTO struct {
	Count int `json:"count"`
}

// --- Incremental pathway ---

type SaveAnswerDTO struct {
	QuestionID     uuid.UUID `json:"question_id" binding:"required"`
	SelectedAnswer string    `json:"selected_answer" binding:"required,oneof=a b c d e"`
}

type AssignmentSummaryDTO struct {
	ID            uuid.UUID  `json:"id"`
	TestID        uuid.UUID  `json:"test_id"`
	TestName      string     `json:"test_name"`
	QuestionCount int        `json:"question_count"`
	Status        string     `json:"status"`
	Score         *float64   `json:"score,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// AssignmentDetailDTO is the student view of one assignment: the test's
// questions without answer keys, plus whatever answers were saved so far.
type AssignmentDetailDTO struct {
	ID          uuid.UUID          `json:"id"`
	Status      string             `json:"status"`
	Score       *float64           `json:"score,omitempty"`
	StartedAt   *time.Time         `json:"started_at,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	Test        StudentTestDTO     `json:"test"`
	Answers     []StudentAnswerDTO `json:"answers"`
}

// CompletedAssignmentDTO is what the incremental submit returns. Unlike the
// one-shot pathway it carries no empty count.
type CompletedAssignmentDTO struct {
	ID          uuid.UUID  `json:"id"`
	TestID      uuid.UUID  `json:"test_id"`
	StudentID   uuid.UUID  `json:"student_id"`
	Status      string     `json:"status"`
	Score       *float64   `json:"score,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
