package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Careerly/internal/auth"
	"github.com/lshigami/Careerly/internal/dto"
	"github.com/lshigami/Careerly/internal/events"
	"github.com/lshigami/Careerly/internal/model"
	"github.com/lshigami/Careerly/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssessmentService is the quiz workflow: generate, read, score, delete.
// Every operation is scoped to the caller it is given.
type AssessmentService interface {
	GenerateAssessment(ctx context.Context, caller auth.Caller, req dto.GenerateAssessmentDTO) (*dto.AssessmentResponseDTO, error)
	SubmitAssessmentAnswers(ctx context.Context, caller auth.Caller, id uuid.UUID, req dto.SubmitAnswersDTO) (*dto.AssessmentResultDTO, error)
	GetAssessment(ctx context.Context, caller auth.Caller, id uuid.UUID) (*dto.AssessmentResponseDTO, error)
	GetAssessments(ctx context.Context, caller auth.Caller) ([]dto.AssessmentSummaryDTO, error)
	DeleteAssessment(ctx context.Context, caller auth.Caller, id uuid.UUID) error
	GetAssessmentStats(ctx context.Context, caller auth.Caller) (*dto.AssessmentStatsDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	userRepo       repository.UserRepository
	generator      TextGenerator
	publisher      events.Publisher
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	userRepo repository.UserRepository,
	generator TextGenerator,
	publisher events.Publisher,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		userRepo:       userRepo,
		generator:      generator,
		publisher:      publisher,
	}
}

func (s *assessmentService) GenerateAssessment(ctx context.Context, caller auth.Caller, req dto.GenerateAssessmentDTO) (*dto.AssessmentResponseDTO, error) {
	if !caller.Authenticated() {
		return nil, ErrAuthenticationRequired
	}

	params := PromptParams{
		Topic:         req.Topic,
		Difficulty:    req.Difficulty,
		QuestionCount: req.QuestionCount,
	}
	profile, err := s.userRepo.FindByID(ctx, caller.UserID)
	switch {
	case err == nil:
		params.Industry = profile.Industry
		params.Experience = profile.Experience
		params.Skills = profile.Skills.Data()
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Debug().Str("userID", caller.UserID).Msg("GenerateAssessment: No profile stored, using defaults")
	default:
		return nil, fmt.Errorf("failed to load profile for %s: %w", caller.UserID, err)
	}

	raw, err := s.generator.GenerateText(ctx, ComposeAssessmentPrompt(params))
	if err != nil {
		return nil, err
	}

	set, err := ParseQuestionSet(raw)
	if err != nil {
		log.Warn().Err(err).Str("userID", caller.UserID).Int("rawLength", len(raw)).Msg("GenerateAssessment: Could not parse generated questions")
		return nil, err
	}
	if len(set.Questions) != req.QuestionCount {
		log.Warn().Int("requested", req.QuestionCount).Int("received", len(set.Questions)).Msg("GenerateAssessment: Question count differs from request")
	}

	assessment := model.Assessment{
		UserID:    caller.UserID,
		Category:  req.Topic,
		Questions: datatypes.NewJSONType(set.Questions),
		QuizScore: 0,
	}
	if err := s.assessmentRepo.Create(ctx, &assessment); err != nil {
		log.Error().Err(err).Str("userID", caller.UserID).Msg("GenerateAssessment: Failed to persist assessment")
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	log.Info().Str("assessmentID", assessment.ID.String()).Str("userID", caller.UserID).Int("questions", len(set.Questions)).Msg("Assessment generated")
	s.publish(ctx, events.AssessmentGenerated, &assessment)
	return toAssessmentResponse(&assessment)
}

func (s *assessmentService) SubmitAssessmentAnswers(ctx context.Context, caller auth.Caller, id uuid.UUID, req dto.SubmitAnswersDTO) (*dto.AssessmentResultDTO, error) {
	if !caller.Authenticated() {
		return nil, ErrAuthenticationRequired
	}

	assessment, err := s.assessmentRepo.FindByIDForOwner(ctx, id, caller.UserID)
	if err != nil {
		return nil, notFoundOr(err, "failed to load assessment")
	}

	scored, err := ScoreAnswers(assessment.QuestionList(), req.Answers)
	if err != nil {
		return nil, err
	}

	if err := s.assessmentRepo.UpdateScore(ctx, assessment, caller.UserID, scored.Score); err != nil {
		return nil, notFoundOr(err, "failed to save score")
	}
	assessment.QuizScore = scored.Score

	log.Info().
		Str("assessmentID", assessment.ID.String()).
		Int("correct", scored.CorrectCount).
		Int("total", scored.Total).
		Int("score", scored.Score).
		Msg("Assessment scored")
	s.publish(ctx, events.AssessmentScored, assessment)

	resp := &dto.AssessmentResultDTO{
		ID:             assessment.ID,
		QuizScore:      scored.Score,
		Category:       assessment.Category,
		CreatedAt:      assessment.CreatedAt,
		UpdatedAt:      assessment.UpdatedAt,
		Questions:      make([]dto.QuestionResultDTO, len(scored.Breakdown)),
		ImprovementTip: ImprovementTip,
	}
	for i, r := range scored.Breakdown {
		resp.Questions[i] = dto.QuestionResultDTO(r)
	}
	return resp, nil
}

func (s *assessmentService) GetAssessment(ctx context.Context, caller auth.Caller, id uuid.UUID) (*dto.AssessmentResponseDTO, error) {
	if !caller.Authenticated() {
		return nil, ErrAssessmentNotFound
	}
	assessment, err := s.assessmentRepo.FindByIDForOwner(ctx, id, caller.UserID)
	if err != nil {
		return nil, notFoundOr(err, "failed to load assessment")
	}
	return toAssessmentResponse(assessment)
}

func (s *assessmentService) GetAssessments(ctx context.Context, caller auth.Caller) ([]dto.AssessmentSummaryDTO, error) {
	if !caller.Authenticated() {
		return []dto.AssessmentSummaryDTO{}, nil
	}
	assessments, err := s.assessmentRepo.FindAllByOwner(ctx, caller.UserID)
	if err != nil {
		log.Error().Err(err).Str("userID", caller.UserID).Msg("GetAssessments: Repository error")
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}

	summaries := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	if err := copier.Copy(&summaries, &assessments); err != nil {
		return nil, fmt.Errorf("error preparing assessment list: %w", err)
	}
	for i := range summaries {
		summaries[i].QuestionCount = len(assessments[i].QuestionList())
	}
	return summaries, nil
}

func (s *assessmentService) DeleteAssessment(ctx context.Context, caller auth.Caller, id uuid.UUID) error {
	if !caller.Authenticated() {
		return ErrAuthenticationRequired
	}
	if err := s.assessmentRepo.DeleteForOwner(ctx, id, caller.UserID); err != nil {
		return notFoundOr(err, "failed to delete assessment")
	}
	log.Info().Str("assessmentID", id.String()).Str("userID", caller.UserID).Msg("Assessment deleted")
	return nil
}

func (s *assessmentService) publish(ctx context.Context, routingKey string, a *model.Assessment) {
	event := events.AssessmentEvent{
		AssessmentID: a.ID.String(),
		UserID:       a.UserID,
		Category:     a.Category,
		QuizScore:    a.QuizScore,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		log.Warn().Err(err).Str("event", routingKey).Str("assessmentID", event.AssessmentID).Msg("Failed to publish assessment event")
	}
}

// notFoundOr collapses "missing" and "owned by someone else" into
// ErrAssessmentNotFound and wraps anything else.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAssessmentNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func toAssessmentResponse(a *model.Assessment) (*dto.AssessmentResponseDTO, error) {
	resp := dto.AssessmentResponseDTO{
		ID:        a.ID,
		Category:  a.Category,
		QuizScore: a.QuizScore,
		Questions: []dto.QuestionDTO{},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if questions := a.QuestionList(); len(questions) > 0 {
		if err := copier.Copy(&resp.Questions, &questions); err != nil {
			return nil, fmt.Errorf("error preparing assessment response: %w", err)
		}
	}
	return &resp, nil
}
