package service

import (
	"errors"
	"fmt"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UserTestService serves the student-facing catalog views. Question answer
// keys never appear in its responses.
type UserTestService interface {
	GetAllTests() ([]dto.TestSummaryDTO, error)
	GetTestDetails(testID uuid.UUID) (*dto.StudentTestDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: repository error")
		return nil, fmt.Errorf("loading tests: %w", err)
	}

	summaries := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		var summary dto.TestSummaryDTO
		if err := copier.Copy(&summary, &twc.Test); err != nil {
			return nil, fmt.Errorf("preparing test summary: %w", err)
		}
		summary.QuestionCount = twc.QuestionCount
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *userTestService) GetTestDetails(testID uuid.UUID) (*dto.StudentTestDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("loading test %s: %w", testID, err)
	}

	resp := dto.StudentTestDTO{
		ID:              test.ID,
		Name:            test.Name,
		Description:     test.Description,
		DurationMinutes: test.DurationMinutes,
		MaxAttempts:     test.MaxAttempts,
		Questions:       make([]dto.StudentQuestionDTO, 0, len(test.Questions)),
	}
	for _, tq := range test.Questions {
		resp.Questions = append(resp.Questions, dto.StudentQuestionDTO{
			ID:         tq.QuestionID,
			Order:      tq.Order,
			ImageURL:   tq.Question.ImageURL,
			Options:    tq.Question.Options(),
			Difficulty: tq.Question.Difficulty,
		})
	}
	return &resp, nil
}
