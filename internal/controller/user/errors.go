package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Careerly/internal/auth"
	"github.com/lshigami/Careerly/internal/dto"
	"github.com/lshigami/Careerly/internal/service"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors onto a status and a message meant for
// people. Internal error text is only logged.
func respondError(ctx *gin.Context, err error, op string) {
	status, message := http.StatusInternalServerError, "Something went wrong. Please try again."

	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		status, message = http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, service.ErrAssessmentNotFound):
		status, message = http.StatusNotFound, "Assessment not found or you don't have permission to access it"
	case errors.Is(err, service.ErrEmptyQuestionSet):
		status, message = http.StatusUnprocessableEntity, "This assessment has no questions to score"
	case errors.Is(err, service.ErrServiceOverloaded):
		status, message = http.StatusServiceUnavailable, "The AI service is currently overloaded. Please try again in a few moments."
	case errors.Is(err, service.ErrServiceMisconfigured):
		status, message = http.StatusInternalServerError, "AI service configuration error. Please contact support."
	case errors.Is(err, service.ErrResponseParse):
		status, message = http.StatusBadGateway, "Failed to process AI response. Please try again."
	case errors.Is(err, service.ErrGenerationFailed):
		status, message = http.StatusBadGateway, "Failed to generate assessment. Please try again."
	}

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("op", op).Msg("Request failed")
	ctx.JSON(status, dto.ErrorResponse{Message: message})
}

// requireCaller answers 401 for anonymous requests to write endpoints, before
// the body is looked at.
func requireCaller(ctx *gin.Context) (auth.Caller, bool) {
	caller := auth.CallerFrom(ctx)
	if !caller.Authenticated() {
		respondError(ctx, service.ErrAuthenticationRequired, ctx.FullPath())
		return caller, false
	}
	return caller, true
}
