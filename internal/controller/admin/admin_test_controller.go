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

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

// CreateTest godoc
// @Summary (Staff) Create a new test
// @Description Creates a test from existing bank questions. Question order numbers must be unique within the test. max_attempts 0 means unlimited.
// @Tags Staff - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test definition with ordered question references"
// @Success 201 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input (duplicate order, unknown question id, missing fields)"
// @Failure 403 {object} dto.ErrorResponse "Staff access required"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	testResp, err := c.adminTestService.CreateTest(req, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "One or more referenced questions do not exist"})
			return
		}
		log.Error().Err(err).Msg("Admin CreateTest: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create test", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}
