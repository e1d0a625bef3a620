package repository

import (
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestWithQuestionCount struct {
	model.Test
	QuestionCount int
}

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uuid.UUID) (*model.Test, error)
	FindByIDWithQuestions(id uuid.UUID) (*model.Test, error)
	FindAllWithQuestionCount() ([]TestWithQuestionCount, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// GORM creates the associated TestQuestion rows when test.Questions is
	// populated; the unique index on (test_id, question_order) backs the
	// order-uniqueness rule.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uuid.UUID) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(id uuid.UUID) (*model.Test, error) {
	var test model.Test
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_questions.question_order ASC")
		}).
		Preload("Questions.Question").
		First(&test, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllWithQuestionCount() ([]TestWithQuestionCount, error) {
	var results []TestWithQuestionCount
	err := r.db.Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM test_questions WHERE test_questions.test_id = tests.id) as question_count").
		Where("tests.deleted_at IS NULL").
		Order("tests.created_at DESC").
		Scan(&results).Error
	return results, err
}
