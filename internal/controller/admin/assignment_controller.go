package admin

import (
	"errors"
	"net/http"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/middleware"
	"github.com/ekremtasci/testportal/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AssignmentController struct {
	assignmentService service.AssignmentService
}

func NewAssignmentController(assignmentService service.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// CreateAssignments godoc
// @Summary (Staff) Assign a test to students
// @Description Creates one ASSIGNED row per student. Pairs that already have an assignment are skipped; the returned count covers new rows only. All recipient IDs must belong to students.
// @Tags Staff - Assignments
// @Accept json
// @Produce json
// @Param assignment_data body dto.AssignmentsCreateDTO true "Test ID and recipient student IDs"
// @Success 201 {object} dto.AssignmentsCreatedDTO
// @Failure 400 {object} dto.ErrorResponse "One or more IDs are not students"
// @Failure 403 {object} dto.ErrorResponse "Caller lacks an authoring role"
// @Router /admin/assignments [post]
func (c *AssignmentController) CreateAssignments(ctx *gin.Context) {
	var req dto.AssignmentsCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.assignmentService.CreateAssignments(req.TestID, req.StudentIDs, middleware.UserID(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPermissionDenied):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrInvalidStudentIDs):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Msg("Admin CreateAssignments: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create assignments"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, result)
}
