package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerateAssessmentDTO is the request body for creating a new assessment.
type GenerateAssessmentDTO struct {
	Topic         string `json:"topic" binding:"required"`
	Difficulty    string `json:"difficulty" binding:"required"`
	QuestionCount int    `json:"question_count" binding:"required,min=1,max=50"`
}

// SubmitAnswersDTO carries one answer per question, aligned by position.
// A null or empty entry means the question was left unanswered.
type SubmitAnswersDTO struct {
	Answers []*string `json:"answers"`
}

// QuestionDTO exposes a stored question. Difficulty, TimeToAnswer and
// Skills are returned exactly as generated, whatever their JSON type.
type QuestionDTO struct {
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer string          `json:"correct_answer"`
	Explanation   string          `json:"explanation"`
	Difficulty    json.RawMessage `json:"difficulty,omitempty" swaggertype:"object"`
	TimeToAnswer  json.RawMessage `json:"time_to_answer,omitempty" swaggertype:"object"`
	Skills        json.RawMessage `json:"skills,omitempty" swaggertype:"object"`
}

type AssessmentResponseDTO struct {
	ID        uuid.UUID     `json:"id"`
	Category  string        `json:"category"`
	QuizScore int           `json:"quiz_score"`
	Questions []QuestionDTO `json:"questions"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type AssessmentSummaryDTO struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	QuizScore     int       `json:"quiz_score"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// QuestionResultDTO is one row of the scored breakdown.
type QuestionResultDTO struct {
	Question          string  `json:"question"`
	UserAnswer        *string `json:"user_answer"`
	CorrectAnswerText string  `json:"correct_answer_text"`
	IsCorrect         bool    `json:"is_correct"`
	Explanation       string  `json:"explanation"`
}

type AssessmentResultDTO struct {
	ID             uuid.UUID           `json:"id"`
	QuizScore      int                 `json:"quiz_score"`
	Category       string              `json:"category"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Questions      []QuestionResultDTO `json:"questions"`
	ImprovementTip string              `json:"improvement_tip"`
}

type CategoryStatsDTO struct {
	Category     string  `json:"category"`
	Count        int     `json:"count"`
	AverageScore float64 `json:"average_score"`
}

type AssessmentStatsDTO struct {
	TotalAssessments int                `json:"total_assessments"`
	AverageScore     float64            `json:"average_score"`
	BestScore        int                `json:"best_score"`
	LatestScore      *int               `json:"latest_score,omitempty"`
	Categories       []CategoryStatsDTO `json:"categories"`
}
