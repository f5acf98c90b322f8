package service

import "errors"

// Errors surfaced by the assessment workflow. Callers match them with
// errors.Is; the wrapped cause is for logs only.
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAssessmentNotFound     = errors.New("assessment not found")
	ErrEmptyQuestionSet       = errors.New("assessment has no questions to score")

	ErrServiceOverloaded    = errors.New("generation service overloaded")
	ErrServiceMisconfigured = errors.New("generation service misconfigured")
	ErrGenerationFailed     = errors.New("generation failed")
	ErrResponseParse        = errors.New("failed to parse generated assessment")
)
