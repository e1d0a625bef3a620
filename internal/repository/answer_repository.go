package repository

import (
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	// Upsert writes the answer for (assignment, question), overwriting a prior
	// selection. Last write wins; no history is kept.
	Upsert(answer *model.StudentAnswer) error
	FindByAssignment(assignmentID uuid.UUID) ([]model.StudentAnswer, error)
	FindByAssignmentAndQuestion(assignmentID, questionID uuid.UUID) (*model.StudentAnswer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Upsert(answer *model.StudentAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "test_assignment_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"selected_answer", "updated_at"}),
	}).Create(answer).Error
}

func (r *answerRepository) FindByAssignment(assignmentID uuid.UUID) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	err := r.db.Where("test_assignment_id = ?", assignmentID).Find(&answers).Error
	return answers, err
}

func (r *answerRepository) FindByAssignmentAndQuestion(assignmentID, questionID uuid.UUID) (*model.StudentAnswer, error) {
	var answer model.StudentAnswer
	err := r.db.Where("test_assignment_id = ? AND question_id = ?", assignmentID, questionID).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}
