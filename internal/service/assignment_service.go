package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/ekremtasci/testportal/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AssignmentService owns the assignment lifecycle: teacher bulk assignment,
// the ASSIGNED -> IN_PROGRESS -> COMPLETED state machine, and the student's
// read views. Every transition checks ownership and the current state.
type AssignmentService interface {
	CreateAssignments(testID uuid.UUID, studentIDs []uuid.UUID, creatorID uuid.UUID) (*dto.AssignmentsCreatedDTO, error)
	GetAssignmentsForStudent(studentID uuid.UUID) ([]dto.AssignmentSummaryDTO, error)
	GetAssignmentDetails(assignmentID, studentID uuid.UUID) (*dto.AssignmentDetailDTO, error)
	StartTest(assignmentID, studentID uuid.UUID) error
	SaveAnswer(assignmentID, studentID, questionID uuid.UUID, selectedAnswer string) (*dto.StudentAnswerDTO, error)
	SubmitAndGrade(assignmentID, studentID uuid.UUID) (*dto.CompletedAssignmentDTO, error)
}

type assignmentService struct {
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	answerRepo     repository.AnswerRepository
	db             *gorm.DB // transaction scope for SubmitAndGrade
}

func NewAssignmentService(
	userRepo repository.UserRepository,
	assignmentRepo repository.AssignmentRepository,
	answerRepo repository.AnswerRepository,
	db *gorm.DB,
) AssignmentService {
	return &assignmentService{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		answerRepo:     answerRepo,
		db:             db,
	}
}

// CreateAssignments inserts one ASSIGNED row per student that does not
// already have an assignment for the test. The recipient check is
// all-or-nothing: a single non-student id rejects the whole call before any
// write. The returned count covers newly-created rows only, so a repeated
// call is a no-op reporting zero.
func (s *assignmentService) CreateAssignments(testID uuid.UUID, studentIDs []uuid.UUID, creatorID uuid.UUID) (*dto.AssignmentsCreatedDTO, error) {
	creator, err := s.userRepo.FindByID(creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermissionDenied
		}
		return nil, fmt.Errorf("loading creator %s: %w", creatorID, err)
	}
	if !creator.IsStaff() {
		return nil, ErrPermissionDenied
	}

	students, err := s.userRepo.FindStudentsByIDs(studentIDs)
	if err != nil {
		return nil, fmt.Errorf("loading assignment recipients: %w", err)
	}
	if len(students) != len(studentIDs) {
		return nil, ErrInvalidStudentIDs
	}

	count, err := s.assignmentRepo.CreateMissing(testID, studentIDs)
	if err != nil {
		log.Error().Err(err).Str("testID", testID.String()).Msg("CreateAssignments: failed to create assignment rows")
		return nil, fmt.Errorf("creating assignments: %w", err)
	}

	log.Info().Str("testID", testID.String()).Int("requested", len(studentIDs)).Int("created", count).Msg("CreateAssignments: done")
	return &dto.AssignmentsCreatedDTO{Count: count}, nil
}

func (s *assignmentService) GetAssignmentsForStudent(studentID uuid.UUID) ([]dto.AssignmentSummaryDTO, error) {
	assignments, err := s.assignmentRepo.FindAllByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID.String()).Msg("GetAssignmentsForStudent: repository error")
		return nil, fmt.Errorf("loading assignments for student %s: %w", studentID, err)
	}

	summaries := make([]dto.AssignmentSummaryDTO, 0, len(assignments))
	for _, a := range assignments {
		summaries = append(summaries, dto.AssignmentSummaryDTO{
			ID:            a.ID,
			TestID:        a.TestID,
			TestName:      a.TestName,
			QuestionCount: a.QuestionCount,
			Status:        a.Status,
			Score:         a.Score,
			StartedAt:     a.StartedAt,
			CompletedAt:   a.CompletedAt,
		})
	}
	return summaries, nil
}

// GetAssignmentDetails returns the assignment with its test questions (never
// including the answer key) and the answers saved so far. A missing row and a
// row owned by another student are indistinguishable in the result, so ids
// cannot be probed.
func (s *assignmentService) GetAssignmentDetails(assignmentID, studentID uuid.UUID) (*dto.AssignmentDetailDTO, error) {
	assignment, err := s.assignmentRepo.FindByIDForStudent(assignmentID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("loading assignment %s: %w", assignmentID, err)
	}

	resp := dto.AssignmentDetailDTO{
		ID:          assignment.ID,
		Status:      assignment.Status,
		Score:       assignment.Score,
		StartedAt:   assignment.StartedAt,
		CompletedAt: assignment.CompletedAt,
		Test: dto.StudentTestDTO{
			ID:              assignment.Test.ID,
			Name:            assignment.Test.Name,
			Description:     assignment.Test.Description,
			DurationMinutes: assignment.Test.DurationMinutes,
			MaxAttempts:     assignment.Test.MaxAttempts,
			Questions:       make([]dto.StudentQuestionDTO, 0, len(assignment.Test.Questions)),
		},
		Answers: make([]dto.StudentAnswerDTO, 0, len(assignment.Answers)),
	}
	for _, tq := range assignment.Test.Questions {
		resp.Test.Questions = append(resp.Test.Questions, dto.StudentQuestionDTO{
			ID:         tq.QuestionID,
			Order:      tq.Order,
			ImageURL:   tq.Question.ImageURL,
			Options:    tq.Question.Options(),
			Difficulty: tq.Question.Difficulty,
		})
	}
	for _, ans := range assignment.Answers {
		resp.Answers = append(resp.Answers, dto.StudentAnswerDTO{
			ID:             ans.ID,
			QuestionID:     ans.QuestionID,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      ans.IsCorrect,
		})
	}
	return &resp, nil
}

// StartTest moves an owned ASSIGNED assignment to IN_PROGRESS and stamps
// startedAt. The update is guarded by (id, student, status); zero affected
// rows is reported as one generic client error.
func (s *assignmentService) StartTest(assignmentID, studentID uuid.UUID) error {
	affected, err := s.assignmentRepo.TransitionToInProgress(assignmentID, studentID, time.Now())
	if err != nil {
		log.Error().Err(err).Str("assignmentID", assignmentID.String()).Msg("StartTest: transition update failed")
		return fmt.Errorf("starting assignment %s: %w", assignmentID, err)
	}
	if affected == 0 {
		return ErrCannotStart
	}
	return nil
}

// SaveAnswer upserts the student's selection for one question of an owned,
// IN_PROGRESS assignment. A second save for the same question overwrites the
// first. IsCorrect stays unset until grading.
func (s *assignmentService) SaveAnswer(assignmentID, studentID, questionID uuid.UUID, selectedAnswer string) (*dto.StudentAnswerDTO, error) {
	if !model.IsValidOptionKey(selectedAnswer) {
		return nil, ErrInvalidAnswer
	}

	if _, err := s.assignmentRepo.FindInProgressForStudent(assignmentID, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInProgress
		}
		return nil, fmt.Errorf("loading assignment %s: %w", assignmentID, err)
	}

	answer := model.StudentAnswer{
		TestAssignmentID: assignmentID,
		QuestionID:       questionID,
		SelectedAnswer:   selectedAnswer,
	}
	if err := s.answerRepo.Upsert(&answer); err != nil {
		log.Error().Err(err).Str("assignmentID", assignmentID.String()).Str("questionID", questionID.String()).Msg("SaveAnswer: upsert failed")
		return nil, fmt.Errorf("saving answer: %w", err)
	}

	// Re-read so the response carries the surviving row, not the transient
	// insert candidate the conflict clause may have discarded.
	saved, err := s.answerRepo.FindByAssignmentAndQuestion(assignmentID, questionID)
	if err != nil {
		return nil, fmt.Errorf("reloading saved answer: %w", err)
	}

	var resp dto.StudentAnswerDTO
	if err := copier.Copy(&resp, saved); err != nil {
		return nil, fmt.Errorf("preparing answer response: %w", err)
	}
	return &resp, nil
}

// SubmitAndGrade grades the recorded answers of an owned IN_PROGRESS
// assignment and completes it, all in one transaction. The IN_PROGRESS
// precondition is re-checked inside the transaction, so a concurrent double
// submit fails instead of double-grading. Unanswered questions contribute
// neither correct nor incorrect; this pathway reports no empty count.
func (s *assignmentService) SubmitAndGrade(assignmentID, studentID uuid.UUID) (*dto.CompletedAssignmentDTO, error) {
	var completed model.TestAssignment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var assignment model.TestAssignment
		err := tx.
			Preload("Answers").
			Preload("Test.Questions").
			Preload("Test.Questions.Question").
			Where("id = ? AND student_id = ? AND status = ?", assignmentID, studentID, model.StatusInProgress).
			First(&assignment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotInProgress
			}
			return fmt.Errorf("loading assignment %s: %w", assignmentID, err)
		}

		graded, correctCount := gradeRecorded(assignment.Test.Questions, assignment.Answers)
		for _, ans := range graded {
			if err := tx.Model(&model.StudentAnswer{}).
				Where("id = ?", ans.ID).
				Update("is_correct", *ans.IsCorrect).Error; err != nil {
				return fmt.Errorf("grading answer %s: %w", ans.ID, err)
			}
		}

		score := roundedScore(correctCount, len(assignment.Test.Questions))
		now := time.Now()
		result := tx.Model(&model.TestAssignment{}).
			Where("id = ? AND status = ?", assignmentID, model.StatusInProgress).
			Updates(map[string]interface{}{
				"status":       model.StatusCompleted,
				"score":        score,
				"completed_at": now,
			})
		if result.Error != nil {
			return fmt.Errorf("completing assignment %s: %w", assignmentID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotInProgress
		}

		assignment.Status = model.StatusCompleted
		assignment.Score = &score
		assignment.CompletedAt = &now
		completed = assignment
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotInProgress) {
			log.Error().Err(err).Str("assignmentID", assignmentID.String()).Msg("SubmitAndGrade: grading transaction failed")
		}
		return nil, err
	}

	log.Info().
		Str("assignmentID", completed.ID.String()).
		Float64("score", *completed.Score).
		Msg("SubmitAndGrade: assignment completed")

	return &dto.CompletedAssignmentDTO{
		ID:          completed.ID,
		TestID:      completed.TestID,
		StudentID:   completed.StudentID,
		Status:      completed.Status,
		Score:       completed.Score,
		StartedAt:   completed.StartedAt,
		CompletedAt: completed.CompletedAt,
	}, nil
}
