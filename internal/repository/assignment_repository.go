package repository

import (
	"time"

	"github.com/ekremtasci/testportal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentWithQuestionCount struct {
	model.TestAssignment
	TestName      string
	QuestionCount int
}

type AssignmentRepository interface {
	Create(assignment *model.TestAssignment) error
	// CreateMissing inserts one ASSIGNED row per (testID, studentID) pair that
	// does not already have an assignment, all inside one transaction, and
	// returns the number of rows actually created.
	CreateMissing(testID uuid.UUID, studentIDs []uuid.UUID) (int, error)
	FindCompletedByTestAndStudent(testID, studentID uuid.UUID) ([]model.TestAssignment, error)
	FindAllByStudent(studentID uuid.UUID) ([]AssignmentWithQuestionCount, error)
	FindByIDForStudent(id, studentID uuid.UUID) (*model.TestAssignment, error)
	// TransitionToInProgress performs the guarded ASSIGNED -> IN_PROGRESS
	// update and returns the number of affected rows. Zero means the row does
	// not exist, is not owned by the student, or is not in ASSIGNED state.
	TransitionToInProgress(id, studentID uuid.UUID, startedAt time.Time) (int64, error)
	FindInProgressForStudent(id, studentID uuid.UUID) (*model.TestAssignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.TestAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) CreateMissing(testID uuid.UUID, studentIDs []uuid.UUID) (int, error) {
	created := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing []model.TestAssignment
		if err := tx.Select("student_id").
			Where("test_id = ? AND student_id IN ?", testID, studentIDs).
			Find(&existing).Error; err != nil {
			return err
		}

		assigned := make(map[uuid.UUID]bool, len(existing))
		for _, a := range existing {
			assigned[a.StudentID] = true
		}

		var toCreate []model.TestAssignment
		for _, studentID := range studentIDs {
			if assigned[studentID] {
				continue
			}
			toCreate = append(toCreate, model.TestAssignment{
				TestID:    testID,
				StudentID: studentID,
				Status:    model.StatusAssigned,
			})
		}
		if len(toCreate) == 0 {
			return nil
		}
		if err := tx.Create(&toCreate).Error; err != nil {
			return err
		}
		created = len(toCreate)
		return nil
	})
	return created, err
}

func (r *assignmentRepository) FindCompletedByTestAndStudent(testID, studentID uuid.UUID) ([]model.TestAssignment, error) {
	var attempts []model.TestAssignment
	err := r.db.
		Preload("Answers").
		Where("test_id = ? AND student_id = ? AND status = ?", testID, studentID, model.StatusCompleted).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *assignmentRepository) FindAllByStudent(studentID uuid.UUID) ([]AssignmentWithQuestionCount, error) {
	var results []AssignmentWithQuestionCount
	err := r.db.Model(&model.TestAssignment{}).
		Select(`test_assignments.*,
			tests.name as test_name,
			(SELECT COUNT(*) FROM test_questions WHERE test_questions.test_id = test_assignments.test_id) as question_count`).
		Joins("JOIN tests ON tests.id = test_assignments.test_id").
		Where("test_assignments.student_id = ?", studentID).
		Order("tests.name ASC").
		Scan(&results).Error
	return results, err
}

func (r *assignmentRepository) FindByIDForStudent(id, studentID uuid.UUID) (*model.TestAssignment, error) {
	var assignment model.TestAssignment
	err := r.db.
		Preload("Test").
		Preload("Test.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_questions.question_order ASC")
		}).
		Preload("Test.Questions.Question").
		Preload("Answers").
		Where("id = ? AND student_id = ?", id, studentID).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) TransitionToInProgress(id, studentID uuid.UUID, startedAt time.Time) (int64, error) {
	result := r.db.Model(&model.TestAssignment{}).
		Where("id = ? AND student_id = ? AND status = ?", id, studentID, model.StatusAssigned).
		Updates(map[string]interface{}{
			"status":     model.StatusInProgress,
			"started_at": startedAt,
		})
	return result.RowsAffected, result.Error
}

func (r *assignmentRepository) FindInProgressForStudent(id, studentID uuid.UUID) (*model.TestAssignment, error) {
	var assignment model.TestAssignment
	err := r.db.
		Where("id = ? AND student_id = ? AND status = ?", id, studentID, model.StatusInProgress).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
