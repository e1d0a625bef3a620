package user

import (
	"errors"
	"net/http"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/middleware"
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/ekremtasci/testportal/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService       service.UserTestService
	attemptLimitService   service.AttemptLimitService
	testSubmissionService service.TestSubmissionService
}

func NewUserTestController(
	uts service.UserTestService,
	als service.AttemptLimitService,
	tss service.TestSubmissionService,
) *UserTestController {
	return &UserTestController{
		userTestService:       uts,
		attemptLimitService:   als,
		testSubmissionService: tss,
	}
}

// GetAllTests godoc
// @Summary (Student) List all available tests
// @Tags Student - Tests
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests"})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (Student) Get a test with its questions
// @Description Questions are returned in order and never include the correct answer.
// @Tags Student - Tests
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.StudentTestDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, err := uuid.Parse(ctx.Param("test_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test ID format"})
		return
	}

	details, err := c.userTestService.GetTestDetails(testID)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve test"})
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// CheckAttemptLimit godoc
// @Summary (Student) Check whether a new attempt may start
// @Description Returns the attempt policy outcome plus the student's completed-attempt history for this test, most recent first.
// @Tags Student - Tests
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.AttemptCheckDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{test_id}/attempt-check [get]
func (c *UserTestController) CheckAttemptLimit(ctx *gin.Context) {
	testID, err := uuid.Parse(ctx.Param("test_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test ID format"})
		return
	}

	result, err := c.attemptLimitService.CheckAttemptLimit(testID, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Str("testID", testID.String()).Msg("CheckAttemptLimit: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to check attempt limit"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SubmitTest godoc
// @Summary (Student) Submit a whole test in one shot
// @Description Grades the submitted answer set immediately and records a new COMPLETED attempt. Questions absent from the answer map are graded as empty.
// @Tags Student - Tests
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param submission body dto.TestSubmitDTO true "Answers keyed by question ID, values a..e"
// @Success 201 {object} dto.GradedResultDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed answers or attempt limit reached"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /tests/{test_id}/submissions [post]
func (c *UserTestController) SubmitTest(ctx *gin.Context) {
	testID, err := uuid.Parse(ctx.Param("test_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test ID format"})
		return
	}

	var req dto.TestSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	// Validate before any store access: keys must be question ids, values
	// must be option keys.
	answers := make(map[uuid.UUID]string, len(req.Answers))
	for rawID, selected := range req.Answers {
		questionID, err := uuid.Parse(rawID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Answer keys must be valid question IDs"})
			return
		}
		if !model.IsValidOptionKey(selected) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Selected answers must be one of a, b, c, d, e"})
			return
		}
		answers[questionID] = selected
	}

	result, err := c.testSubmissionService.SubmitTest(testID, middleware.UserID(ctx), answers)
	if err != nil {
		var limitErr *service.AttemptLimitError
		switch {
		case errors.Is(err, service.ErrTestNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
		case errors.As(err, &limitErr):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: limitErr.Error()})
		default:
			log.Error().Err(err).Str("testID", testID.String()).Msg("SubmitTest: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit test"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, result)
}
