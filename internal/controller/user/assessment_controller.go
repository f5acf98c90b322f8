package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/Careerly/internal/auth"
	"github.com/lshigami/Careerly/internal/dto"
	"github.com/lshigami/Careerly/internal/service"
	"github.com/rs/zerolog/log"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(as service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: as}
}

// GenerateAssessment godoc
// @Summary Generate a new interview assessment
// @Description Builds a personalised multiple-choice quiz with the AI service and stores it with a score of 0.
// @Tags Assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateAssessmentDTO true "Topic, difficulty and number of questions"
// @Success 201 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 502 {object} dto.ErrorResponse "AI response could not be processed"
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /assessments [post]
func (c *AssessmentController) GenerateAssessment(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}
	var req dto.GenerateAssessmentDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateAssessment: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	assessment, err := c.assessmentService.GenerateAssessment(ctx.Request.Context(), caller, req)
	if err != nil {
		respondError(ctx, err, "GenerateAssessment")
		return
	}
	ctx.JSON(http.StatusCreated, assessment)
}

// GetAssessments godoc
// @Summary List the caller's assessments
// @Description Newest first. Anonymous callers get an empty list.
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [get]
func (c *AssessmentController) GetAssessments(ctx *gin.Context) {
	assessments, err := c.assessmentService.GetAssessments(ctx.Request.Context(), auth.CallerFrom(ctx))
	if err != nil {
		respondError(ctx, err, "GetAssessments")
		return
	}
	ctx.JSON(http.StatusOK, assessments)
}

// GetAssessmentStats godoc
// @Summary Score statistics over the caller's assessments
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AssessmentStatsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/stats [get]
func (c *AssessmentController) GetAssessmentStats(ctx *gin.Context) {
	stats, err := c.assessmentService.GetAssessmentStats(ctx.Request.Context(), auth.CallerFrom(ctx))
	if err != nil {
		respondError(ctx, err, "GetAssessmentStats")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetAssessment godoc
// @Summary Get one assessment with its questions
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param assessment_id path string true "Assessment ID (UUID)"
// @Success 200 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Assessment ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{assessment_id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id, ok := parseAssessmentID(ctx)
	if !ok {
		return
	}
	assessment, err := c.assessmentService.GetAssessment(ctx.Request.Context(), auth.CallerFrom(ctx), id)
	if err != nil {
		respondError(ctx, err, "GetAssessment")
		return
	}
	ctx.JSON(http.StatusOK, assessment)
}

// SubmitAssessmentAnswers godoc
// @Summary Submit answers and score an assessment
// @Description Answers are letters A-D aligned with the question order; null or "" means unanswered. Resubmitting overwrites the previous score.
// @Tags Assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessment_id path string true "Assessment ID (UUID)"
// @Param request body dto.SubmitAnswersDTO true "Answers by position"
// @Success 200 {object} dto.AssessmentResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 422 {object} dto.ErrorResponse "Assessment has no questions"
// @Router /assessments/{assessment_id}/submissions [post]
func (c *AssessmentController) SubmitAssessmentAnswers(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}
	id, ok := parseAssessmentID(ctx)
	if !ok {
		return
	}
	var req dto.SubmitAnswersDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAssessmentAnswers: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.assessmentService.SubmitAssessmentAnswers(ctx.Request.Context(), caller, id, req)
	if err != nil {
		respondError(ctx, err, "SubmitAssessmentAnswers")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteAssessment godoc
// @Summary Permanently delete an assessment
// @Tags Assessments
// @Security BearerAuth
// @Param assessment_id path string true "Assessment ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid Assessment ID format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{assessment_id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}
	id, ok := parseAssessmentID(ctx)
	if !ok {
		return
	}
	if err := c.assessmentService.DeleteAssessment(ctx.Request.Context(), caller, id); err != nil {
		respondError(ctx, err, "DeleteAssessment")
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseAssessmentID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("assessment_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Assessment ID format"})
		return uuid.Nil, false
	}
	return id, true
}
