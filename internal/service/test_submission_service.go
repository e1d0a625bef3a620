package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestSubmissionService is the one-shot pathway: the student submits the
// entire answer set at once and receives a graded, COMPLETED assignment. It
// never touches ASSIGNED or IN_PROGRESS rows; every call creates a new row.
type TestSubmissionService interface {
	SubmitTest(testID, studentID uuid.UUID, answers map[uuid.UUID]string) (*dto.GradedResultDTO, error)
}

type testSubmissionService struct {
	attemptLimiter AttemptLimitService
	db             *gorm.DB // transaction scope for the grading flow
}

func NewTestSubmissionService(attemptLimiter AttemptLimitService, db *gorm.DB) TestSubmissionService {
	return &testSubmissionService{attemptLimiter: attemptLimiter, db: db}
}

func (s *testSubmissionService) SubmitTest(testID, studentID uuid.UUID, answers map[uuid.UUID]string) (*dto.GradedResultDTO, error) {
	check, err := s.attemptLimiter.CheckAttemptLimit(testID, studentID)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, &AttemptLimitError{Total: check.Total}
	}

	var (
		result   classification
		created  model.TestAssignment
		testName string
	)

	// Assignment row and its answer rows commit together or not at all; a
	// partially graded state must never be observable.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var test model.Test
		if err := tx.
			Preload("Questions", func(db *gorm.DB) *gorm.DB {
				return db.Order("test_questions.question_order ASC")
			}).
			Preload("Questions.Question").
			First(&test, "id = ?", testID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTestNotFound
			}
			return fmt.Errorf("loading test %s: %w", testID, err)
		}
		testName = test.Name

		result = classifyAnswers(test.Questions, answers)
		score := percentageScore(result.CorrectCount, len(test.Questions))

		now := time.Now()
		created = model.TestAssignment{
			TestID:      testID,
			StudentID:   studentID,
			Status:      model.StatusCompleted,
			Score:       &score,
			StartedAt:   &now,
			CompletedAt: &now,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("creating assignment record: %w", err)
		}

		if len(result.Answers) > 0 {
			for i := range result.Answers {
				result.Answers[i].TestAssignmentID = created.ID
			}
			if err := tx.Create(&result.Answers).Error; err != nil {
				return fmt.Errorf("creating answer records: %w", err)
			}
		}

		// Re-read so the response reflects exactly what was persisted.
		if err := tx.Preload("Answers").First(&created, "id = ?", created.ID).Error; err != nil {
			return fmt.Errorf("reloading graded assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTestNotFound) {
			log.Error().Err(err).Str("testID", testID.String()).Str("studentID", studentID.String()).Msg("SubmitTest: grading transaction failed")
		}
		return nil, err
	}

	log.Info().
		Str("assignmentID", created.ID.String()).
		Str("studentID", studentID.String()).
		Int("correct", result.CorrectCount).
		Int("incorrect", result.IncorrectCount).
		Int("empty", result.EmptyCount).
		Msg("SubmitTest: attempt graded")

	resp := dto.GradedResultDTO{
		ID:             created.ID,
		TestID:         created.TestID,
		TestName:       testName,
		StudentID:      created.StudentID,
		Status:         created.Status,
		Score:          created.Score,
		StartedAt:      created.StartedAt,
		CompletedAt:    created.CompletedAt,
		Answers:        make([]dto.StudentAnswerDTO, 0, len(created.Answers)),
		CorrectCount:   result.CorrectCount,
		IncorrectCount: result.IncorrectCount,
		EmptyCount:     result.EmptyCount,
	}
	for _, ans := range created.Answers {
		resp.Answers = append(resp.Answers, dto.StudentAnswerDTO{
			ID:             ans.ID,
			QuestionID:     ans.QuestionID,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      ans.IsCorrect,
		})
	}
	return &resp, nil
}
