package service

import (
	"errors"
	"fmt"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/ekremtasci/testportal/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestion(id uuid.UUID) (*dto.QuestionResponseDTO, error)
	GetAllQuestions() ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(id uuid.UUID, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(id uuid.UUID) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if err := validateOptions(req.Options); err != nil {
		return nil, err
	}

	question := model.Question{
		ImageURL:      req.ImageURL,
		CorrectAnswer: req.CorrectAnswer,
		Difficulty:    req.Difficulty,
	}
	applyOptions(&question, req.Options)

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: failed to create question")
		return nil, fmt.Errorf("creating question: %w", err)
	}
	resp := questionToResponseDTO(&question)
	return &resp, nil
}

func (s *questionService) GetQuestion(id uuid.UUID) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("loading question %s: %w", id, err)
	}
	resp := questionToResponseDTO(question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponseDTO, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("loading questions: %w", err)
	}
	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		resp = append(resp, questionToResponseDTO(&questions[i]))
	}
	return resp, nil
}

func (s *questionService) UpdateQuestion(id uuid.UUID, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if err := validateOptions(req.Options); err != nil {
		return nil, err
	}

	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("loading question %s: %w", id, err)
	}

	question.ImageURL = req.ImageURL
	question.CorrectAnswer = req.CorrectAnswer
	question.Difficulty = req.Difficulty
	applyOptions(question, req.Options)

	if err := s.repo.Update(question); err != nil {
		return nil, fmt.Errorf("updating question %s: %w", id, err)
	}
	resp := questionToResponseDTO(question)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uuid.UUID) error {
	return s.repo.Delete(id)
}

// validateOptions requires exactly the keys "a".."e", each with non-empty
// text.
func validateOptions(options map[string]string) error {
	if len(options) != len(model.OptionKeys) {
		return fmt.Errorf("options must contain exactly %d entries keyed a..e", len(model.OptionKeys))
	}
	for _, key := range model.OptionKeys {
		text, ok := options[key]
		if !ok {
			return fmt.Errorf("options missing entry for key %q", key)
		}
		if text == "" {
			return fmt.Errorf("option %q must not be empty", key)
		}
	}
	return nil
}

func applyOptions(q *model.Question, options map[string]string) {
	q.OptionA = options["a"]
	q.OptionB = options["b"]
	q.OptionC = options["c"]
	q.OptionD = options["d"]
	q.OptionE = options["e"]
}

func questionToResponseDTO(q *model.Question) dto.QuestionResponseDTO {
	return dto.QuestionResponseDTO{
		ID:            q.ID,
		ImageURL:      q.ImageURL,
		Options:       q.Options(),
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    q.Difficulty,
		CreatedAt:     q.CreatedAt,
	}
}
