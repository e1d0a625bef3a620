package dto

import (
	"time"

	"github.com/google/uuid"
)

// QuestionCreateDTO is used by staff to add a question to the bank. Options
// must cover exactly the keys "a".."e".
type QuestionCreateDTO struct {
	ImageURL      *string           `json:"image_url"`
	Options       map[string]string `json:"options" binding:"required"`
	CorrectAnswer string            `json:"correct_answer" binding:"required,oneof=a b c d e"`
	Difficulty    int               `json:"difficulty" binding:"required,min=1,max=10"`
}

// QuestionResponseDTO is the staff-facing view of a question, answer key
// included.
type QuestionResponseDTO struct {
	ID            uuid.UUID         `json:"id"`
	ImageURL      *string           `json:"image_url,omitempty"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Difficulty    int               `json:"difficulty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// StudentQuestionDTO is the student-facing view: no correct answer.
type StudentQuestionDTO struct {
	ID         uuid.UUID         `json:"id"`
	Order      int               `json:"order"`
	ImageURL   *string           `json:"image_url,omitempty"`
	Options    map[string]string `json:"options"`
	Difficulty int               `json:"difficulty"`
}
