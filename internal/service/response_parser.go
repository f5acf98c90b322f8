package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lshigami/Careerly/internal/model"
)

// QuestionSet is the decoded body of a generation response.
type QuestionSet struct {
	Questions []model.Question `json:"questions"`
}

// ParseError is returned when generated text cannot be read as a question
// set. It matches ErrResponseParse.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrResponseParse, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrResponseParse, e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrResponseParse }

func (e *ParseError) Unwrap() error { return e.Err }

var codeFence = regexp.MustCompile("```(?:json|JSON)?")

// CleanJSON removes markdown code fences and surrounding whitespace.
func CleanJSON(raw string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(raw, ""))
}

// ParseQuestionSet decodes generated text into questions. Only JSON
// well-formedness is checked: an object without "questions" yields an
// empty set, metadata fields take any JSON value, and per-question content
// is left for scoring to deal with.
func ParseQuestionSet(raw string) (QuestionSet, error) {
	cleaned := CleanJSON(raw)
	if cleaned == "" {
		return QuestionSet{}, &ParseError{Reason: "empty response"}
	}

	var set QuestionSet
	if err := json.Unmarshal([]byte(cleaned), &set); err != nil {
		return QuestionSet{}, &ParseError{Reason: "invalid JSON", Err: err}
	}
	return set, nil
}
