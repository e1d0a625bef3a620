package service

import (
	"fmt"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/ekremtasci/testportal/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AdminTestService interface {
	CreateTest(req dto.TestCreateDTO, creatorID uuid.UUID) (*dto.TestResponseDTO, error)
}

type adminTestService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
}

func NewAdminTestService(testRepo repository.TestRepository, questionRepo repository.QuestionRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo, questionRepo: questionRepo}
}

// CreateTest creates a test from existing bank questions. Order numbers must
// be unique within the test, and every referenced question must exist.
func (s *adminTestService) CreateTest(req dto.TestCreateDTO, creatorID uuid.UUID) (*dto.TestResponseDTO, error) {
	orderSeen := make(map[int]bool, len(req.Questions))
	questionIDs := make([]uuid.UUID, 0, len(req.Questions))
	for _, ref := range req.Questions {
		if orderSeen[ref.Order] {
			return nil, fmt.Errorf("duplicate question order %d", ref.Order)
		}
		orderSeen[ref.Order] = true
		questionIDs = append(questionIDs, ref.QuestionID)
	}

	existing, err := s.questionRepo.FindByIDs(questionIDs)
	if err != nil {
		return nil, fmt.Errorf("loading referenced questions: %w", err)
	}
	if len(existing) != len(questionIDs) {
		return nil, ErrQuestionNotFound
	}

	test := model.Test{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		MaxAttempts:     req.MaxAttempts,
		CreatedByID:     creatorID,
	}
	for _, ref := range req.Questions {
		test.Questions = append(test.Questions, model.TestQuestion{
			QuestionID: ref.QuestionID,
			Order:      ref.Order,
		})
	}

	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("CreateTest: failed to create test")
		return nil, fmt.Errorf("creating test: %w", err)
	}

	createdWithQuestions, err := s.testRepo.FindByIDWithQuestions(test.ID)
	if err != nil {
		log.Error().Err(err).Str("testID", test.ID.String()).Msg("CreateTest: failed to reload created test")
		return nil, fmt.Errorf("reloading created test: %w", err)
	}
	return testToResponseDTO(createdWithQuestions), nil
}

func testToResponseDTO(test *model.Test) *dto.TestResponseDTO {
	resp := dto.TestResponseDTO{
		ID:              test.ID,
		Name:            test.Name,
		Description:     test.Description,
		DurationMinutes: test.DurationMinutes,
		MaxAttempts:     test.MaxAttempts,
		CreatedAt:       test.CreatedAt,
	}
	for _, tq := range test.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionWithOrderDTO{
			Order:    tq.Order,
			Question: questionToResponseDTO(&tq.Question),
		})
	}
	return &resp
}
