package service

import (
	"errors"
	"fmt"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptLimitService decides whether a student may start a new attempt on a
// test, based on completed-attempt history and the configured maximum.
type AttemptLimitService interface {
	CheckAttemptLimit(testID, studentID uuid.UUID) (*dto.AttemptCheckDTO, error)
}

type attemptLimitService struct {
	testRepo       repository.TestRepository
	assignmentRepo repository.AssignmentRepository
}

func NewAttemptLimitService(testRepo repository.TestRepository, assignmentRepo repository.AssignmentRepository) AttemptLimitService {
	return &attemptLimitService{testRepo: testRepo, assignmentRepo: assignmentRepo}
}

// CheckAttemptLimit is a pure read with no side effects. maxAttempts == 0
// means unlimited: always allowed, remaining reported as null.
//
// Callers that check and then write do so without a lock, so two concurrent
// submissions at the last allowed attempt can both pass before either
// commits.
func (s *attemptLimitService) CheckAttemptLimit(testID, studentID uuid.UUID) (*dto.AttemptCheckDTO, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		log.Error().Err(err).Str("testID", testID.String()).Msg("CheckAttemptLimit: failed to load test")
		return nil, fmt.Errorf("loading test %s: %w", testID, err)
	}

	previousAttempts, err := s.assignmentRepo.FindCompletedByTestAndStudent(testID, studentID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID.String()).Str("studentID", studentID.String()).Msg("CheckAttemptLimit: failed to load completed attempts")
		return nil, fmt.Errorf("loading completed attempts: %w", err)
	}

	unlimited := test.MaxAttempts == 0
	attemptCount := len(previousAttempts)

	allowed := unlimited || attemptCount < test.MaxAttempts
	var remaining *int
	if !unlimited {
		r := test.MaxAttempts - attemptCount
		remaining = &r
	}

	history := make([]dto.AttemptHistoryDTO, 0, len(previousAttempts))
	for _, attempt := range previousAttempts {
		entry := dto.AttemptHistoryDTO{
			ID:          attempt.ID,
			Score:       attempt.Score,
			CompletedAt: attempt.CompletedAt,
		}
		for _, ans := range attempt.Answers {
			if ans.IsCorrect == nil {
				continue
			}
			if *ans.IsCorrect {
				entry.CorrectCount++
			} else {
				entry.IncorrectCount++
			}
		}
		history = append(history, entry)
	}

	return &dto.AttemptCheckDTO{
		Allowed:   allowed,
		Remaining: remaining,
		Total:     test.MaxAttempts,
		History:   history,
	}, nil
}
