package repository

import (
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uuid.UUID) (*model.Question, error)
	FindByIDs(ids []uuid.UUID) ([]model.Question, error)
	FindAll() ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uuid.UUID) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ids []uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Question{}, "id = ?", id).Error
}
