package admin

import (
	"errors"
	"net/http"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Staff) Add a question to the bank
// @Description Options must contain exactly five non-empty entries keyed a..e; the correct answer is one of those keys.
// @Tags Staff - Questions
// @Accept json
// @Produce json
// @Param question_data body dto.QuestionCreateDTO true "Question definition"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.CreateQuestion(req)
	if err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetQuestion godoc
// @Summary (Staff) Get one question with its answer key
// @Tags Staff - Questions
// @Produce json
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{question_id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("question_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	resp, err := c.questionService.GetQuestion(id)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve question"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAllQuestions godoc
// @Summary (Staff) List all bank questions
// @Tags Staff - Questions
// @Produce json
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	resp, err := c.questionService.GetAllQuestions()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQuestion godoc
// @Summary (Staff) Replace a question's content
// @Tags Staff - Questions
// @Accept json
// @Produce json
// @Param question_id path string true "Question ID"
// @Param question_data body dto.QuestionCreateDTO true "New question content"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{question_id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("question_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.UpdateQuestion(id, req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to update question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Staff) Delete a question from the bank
// @Tags Staff - Questions
// @Produce json
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("question_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	if err := c.questionService.DeleteQuestion(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete question"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted"})
}
