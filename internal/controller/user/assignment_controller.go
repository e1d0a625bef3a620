package user

import (
	"errors"
	"net/http"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/middleware"
	"github.com/ekremtasci/testportal/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AssignmentController struct {
	assignmentService service.AssignmentService
}

func NewAssignmentController(assignmentService service.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// GetMyAssignments godoc
// @Summary (Student) List my assignments
// @Tags Student - Assignments
// @Produce json
// @Success 200 {array} dto.AssignmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /assignments [get]
func (c *AssignmentController) GetMyAssignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAssignmentsForStudent(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetMyAssignments: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve assignments"})
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// GetAssignmentDetails godoc
// @Summary (Student) Get one of my assignments with questions and saved answers
// @Description Questions never include the correct answer. An assignment belonging to another student is reported as not found.
// @Tags Student - Assignments
// @Produce json
// @Param assignment_id path string true "Assignment ID"
// @Success 200 {object} dto.AssignmentDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{assignment_id} [get]
func (c *AssignmentController) GetAssignmentDetails(ctx *gin.Context) {
	assignmentID, err := uuid.Parse(ctx.Param("assignment_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assignment ID format"})
		return
	}

	details, err := c.assignmentService.GetAssignmentDetails(assignmentID, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Assignment not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve assignment"})
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// StartTest godoc
// @Summary (Student) Start an assigned test
// @Description Moves the assignment from ASSIGNED to IN_PROGRESS and stamps the start time.
// @Tags Student - Assignments
// @Produce json
// @Param assignment_id path string true "Assignment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Already started or does not exist"
// @Router /assignments/{assignment_id}/start [post]
func (c *AssignmentController) StartTest(ctx *gin.Context) {
	assignmentID, err := uuid.Parse(ctx.Param("assignment_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assignment ID format"})
		return
	}

	if err := c.assignmentService.StartTest(assignmentID, middleware.UserID(ctx)); err != nil {
		if errors.Is(err, service.ErrCannotStart) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("assignmentID", assignmentID.String()).Msg("StartTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start test"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test started successfully"})
}

// SaveAnswer godoc
// @Summary (Student) Save one answer during an in-progress test
// @Description Upserts the selection for a question; a later save for the same question overwrites the earlier one. Answers persist across disconnects.
// @Tags Student - Assignments
// @Accept json
// @Produce json
// @Param assignment_id path string true "Assignment ID"
// @Param answer body dto.SaveAnswerDTO true "Question ID and selected answer (a..e)"
// @Success 200 {object} dto.StudentAnswerDTO
// @Failure 400 {object} dto.ErrorResponse "Assignment not in progress or invalid answer"
// @Router /assignments/{assignment_id}/answers [put]
func (c *AssignmentController) SaveAnswer(ctx *gin.Context) {
	assignmentID, err := uuid.Parse(ctx.Param("assignment_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assignment ID format"})
		return
	}

	var req dto.SaveAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	saved, err := c.assignmentService.SaveAnswer(assignmentID, middleware.UserID(ctx), req.QuestionID, req.SelectedAnswer)
	if err != nil {
		if errors.Is(err, service.ErrNotInProgress) || errors.Is(err, service.ErrInvalidAnswer) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("assignmentID", assignmentID.String()).Msg("SaveAnswer: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save answer"})
		return
	}
	ctx.JSON(http.StatusOK, saved)
}

// SubmitAndGrade godoc
// @Summary (Student) Submit an in-progress test for grading
// @Description Grades all saved answers, completes the assignment and returns the final score. A second submit is rejected.
// @Tags Student - Assignments
// @Produce json
// @Param assignment_id path string true "Assignment ID"
// @Success 200 {object} dto.CompletedAssignmentDTO
// @Failure 400 {object} dto.ErrorResponse "Assignment not in progress"
// @Router /assignments/{assignment_id}/submit [post]
func (c *AssignmentController) SubmitAndGrade(ctx *gin.Context) {
	assignmentID, err := uuid.Parse(ctx.Param("assignment_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assignment ID format"})
		return
	}

	result, err := c.assignmentService.SubmitAndGrade(assignmentID, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotInProgress) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("assignmentID", assignmentID.String()).Msg("SubmitAndGrade: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit test"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
