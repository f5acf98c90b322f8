package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Careerly/config"
	"github.com/lshigami/Careerly/internal/auth"
	"github.com/lshigami/Careerly/internal/dto"
	"github.com/lshigami/Careerly/internal/events"
	"github.com/lshigami/Careerly/internal/model"
	"github.com/lshigami/Careerly/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Gemini: config.Gemini{Model: "gemini-2.5-flash", Client: config.ClientGenerativeAI},
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Assessment{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

type stubGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []events.AssessmentEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, event events.AssessmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type AssessmentServiceSuite struct {
	suite.Suite
	db        *gorm.DB
	generator *stubGenerator
	publisher *recordingPublisher
	userRepo  repository.UserRepository
	svc       AssessmentService
	alice     auth.Caller
	bob       auth.Caller
}

func TestAssessmentServiceSuite(t *testing.T) {
	suite.Run(t, new(AssessmentServiceSuite))
}

func (s *AssessmentServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.generator = &stubGenerator{text: "```json\n" + sampleQuestions + "\n```"}
	s.publisher = &recordingPublisher{}
	s.userRepo = repository.NewUserRepository(s.db)
	s.svc = NewAssessmentService(repository.NewAssessmentRepository(s.db), s.userRepo, s.generator, s.publisher)
	s.alice = auth.Caller{UserID: "user_alice"}
	s.bob = auth.Caller{UserID: "user_bob"}
}

func (s *AssessmentServiceSuite) generate(caller auth.Caller) *dto.AssessmentResponseDTO {
	resp, err := s.svc.GenerateAssessment(context.Background(), caller, dto.GenerateAssessmentDTO{
		Topic: "Geography", Difficulty: "easy", QuestionCount: 2,
	})
	s.Require().NoError(err)
	return resp
}

func (s *AssessmentServiceSuite) countAssessments() int64 {
	var n int64
	s.Require().NoError(s.db.Model(&model.Assessment{}).Count(&n).Error)
	return n
}

func (s *AssessmentServiceSuite) TestGenerateAssessment_PersistsWithZeroScore() {
	resp := s.generate(s.alice)

	s.NotEqual(uuid.Nil, resp.ID)
	s.Equal("Geography", resp.Category)
	s.Equal(0, resp.QuizScore)
	s.Require().Len(resp.Questions, 2)
	s.Equal("B", resp.Questions[0].CorrectAnswer)
	s.JSONEq(`2`, string(resp.Questions[0].TimeToAnswer))

	stored, err := s.svc.GetAssessment(context.Background(), s.alice, resp.ID)
	s.Require().NoError(err)
	s.Equal(resp.Questions, stored.Questions)

	s.Equal([]string{events.AssessmentGenerated}, s.publisher.keys)
	s.Equal(resp.ID.String(), s.publisher.events[0].AssessmentID)
}

func (s *AssessmentServiceSuite) TestGenerateAssessment_UsesStoredProfile() {
	industry := "healthcare"
	years := 4
	s.Require().NoError(s.userRepo.Upsert(context.Background(), &model.User{ID: s.alice.UserID, Industry: &industry, Experience: &years}))

	s.generate(s.alice)

	s.Require().Len(s.generator.prompts, 1)
	s.Contains(s.generator.prompts[0], "for a healthcare professional with 4 years of experience")
}

func (s *AssessmentServiceSuite) TestGenerateAssessment_KeepsFreeFormMetadata() {
	s.generator.text = `{"questions":[{"question":"q","options":["a","b","c","d"],"correctAnswer":"C","explanation":"e","difficulty":"Medium","timeToAnswer":"2-3 minutes","skills":"Go"}]}`

	resp, err := s.svc.GenerateAssessment(context.Background(), s.alice, dto.GenerateAssessmentDTO{Topic: "Go", Difficulty: "Medium", QuestionCount: 1})

	s.Require().NoError(err)
	stored, err := s.svc.GetAssessment(context.Background(), s.alice, resp.ID)
	s.Require().NoError(err)
	s.Require().Len(stored.Questions, 1)
	s.JSONEq(`"Medium"`, string(stored.Questions[0].Difficulty))
	s.JSONEq(`"2-3 minutes"`, string(stored.Questions[0].TimeToAnswer))
	s.JSONEq(`"Go"`, string(stored.Questions[0].Skills))
}

func (s *AssessmentServiceSuite) TestGenerateAssessment_MalformedOutputPersistsNothing() {
	s.generator.text = "Sorry, I cannot help with that."

	_, err := s.svc.GenerateAssessment(context.Background(), s.alice, dto.GenerateAssessmentDTO{Topic: "Go", Difficulty: "easy", QuestionCount: 2})

	s.ErrorIs(err, ErrResponseParse)
	s.Zero(s.countAssessments())
	s.Empty(s.publisher.keys)
}

func (s *AssessmentServiceSuite) TestGenerateAssessment_GenerationFailurePersistsNothing() {
	s.generator.err = fmt.Errorf("%w: upstream", ErrServiceOverloaded)

	_, err := s.svc.GenerateAssessment(context.Background(), s.alice, dto.GenerateAssessmentDTO{Topic: "Go", Difficulty: "easy", QuestionCount: 2})

	s.ErrorIs(err, ErrServiceOverloaded)
	s.Zero(s.countAssessments())
}

func (s *AssessmentServiceSuite) TestGenerateAssessment_RequiresCaller() {
	_, err := s.svc.GenerateAssessment(context.Background(), auth.Caller{}, dto.GenerateAssessmentDTO{Topic: "Go", Difficulty: "easy", QuestionCount: 2})

	s.ErrorIs(err, ErrAuthenticationRequired)
	s.Empty(s.generator.prompts)
}

func (s *AssessmentServiceSuite) TestGenerateAssessment_PublishFailureIsNotFatal() {
	s.publisher.err = fmt.Errorf("broker down")
	resp := s.generate(s.alice)
	s.NotEqual(uuid.Nil, resp.ID)
	s.EqualValues(1, s.countAssessments())
}

func (s *AssessmentServiceSuite) TestSubmitAssessmentAnswers_ScoresAndStores() {
	created := s.generate(s.alice)

	result, err := s.svc.SubmitAssessmentAnswers(context.Background(), s.alice, created.ID, dto.SubmitAnswersDTO{Answers: letters("B", "A")})

	s.Require().NoError(err)
	s.Equal(50, result.QuizScore)
	s.Equal(ImprovementTip, result.ImprovementTip)
	s.Require().Len(result.Questions, 2)
	s.True(result.Questions[0].IsCorrect)
	s.Equal("Paris", result.Questions[0].CorrectAnswerText)
	s.False(result.Questions[1].IsCorrect)
	s.Equal("go", result.Questions[1].CorrectAnswerText)

	stored, err := s.svc.GetAssessment(context.Background(), s.alice, created.ID)
	s.Require().NoError(err)
	s.Equal(50, stored.QuizScore)
	s.Equal([]string{events.AssessmentGenerated, events.AssessmentScored}, s.publisher.keys)
	s.Equal(50, s.publisher.events[1].QuizScore)
}

func (s *AssessmentServiceSuite) TestSubmitAssessmentAnswers_LastWriteWins() {
	created := s.generate(s.alice)
	ctx := context.Background()

	_, err := s.svc.SubmitAssessmentAnswers(ctx, s.alice, created.ID, dto.SubmitAnswersDTO{Answers: letters("B", "B")})
	s.Require().NoError(err)
	_, err = s.svc.SubmitAssessmentAnswers(ctx, s.alice, created.ID, dto.SubmitAnswersDTO{Answers: letters("-", "-")})
	s.Require().NoError(err)

	stored, err := s.svc.GetAssessment(ctx, s.alice, created.ID)
	s.Require().NoError(err)
	s.Equal(0, stored.QuizScore)
}

func (s *AssessmentServiceSuite) TestSubmitAssessmentAnswers_EmptyQuestionSet() {
	empty := model.Assessment{UserID: s.alice.UserID, Category: "Empty"}
	s.Require().NoError(repository.NewAssessmentRepository(s.db).Create(context.Background(), &empty))

	_, err := s.svc.SubmitAssessmentAnswers(context.Background(), s.alice, empty.ID, dto.SubmitAnswersDTO{Answers: letters("A")})

	s.ErrorIs(err, ErrEmptyQuestionSet)
}

func (s *AssessmentServiceSuite) TestOwnershipIsolation() {
	ctx := context.Background()
	created := s.generate(s.alice)

	_, err := s.svc.GetAssessment(ctx, s.bob, created.ID)
	s.ErrorIs(err, ErrAssessmentNotFound)

	_, err = s.svc.SubmitAssessmentAnswers(ctx, s.bob, created.ID, dto.SubmitAnswersDTO{Answers: letters("B", "B")})
	s.ErrorIs(err, ErrAssessmentNotFound)

	s.ErrorIs(s.svc.DeleteAssessment(ctx, s.bob, created.ID), ErrAssessmentNotFound)

	list, err := s.svc.GetAssessments(ctx, s.bob)
	s.Require().NoError(err)
	s.Empty(list)

	stored, err := s.svc.GetAssessment(ctx, s.alice, created.ID)
	s.Require().NoError(err)
	s.Equal(0, stored.QuizScore)
}

func (s *AssessmentServiceSuite) TestGetAssessment_UnknownID() {
	_, err := s.svc.GetAssessment(context.Background(), s.alice, uuid.New())
	s.ErrorIs(err, ErrAssessmentNotFound)
}

func (s *AssessmentServiceSuite) TestGetAssessments_NewestFirst() {
	ctx := context.Background()
	older := s.generate(s.alice)
	newer := s.generate(s.alice)
	// pin timestamps so ordering does not depend on clock resolution
	s.Require().NoError(s.db.Model(&model.Assessment{}).Where("id = ?", older.ID).Update("created_at", older.CreatedAt.Add(-time.Hour)).Error)

	list, err := s.svc.GetAssessments(ctx, s.alice)

	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(newer.ID, list[0].ID)
	s.Equal(older.ID, list[1].ID)
	s.Equal(2, list[0].QuestionCount)
}

func (s *AssessmentServiceSuite) TestAnonymousReadsAreEmpty() {
	ctx := context.Background()
	s.generate(s.alice)

	list, err := s.svc.GetAssessments(ctx, auth.Caller{})
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)

	stats, err := s.svc.GetAssessmentStats(ctx, auth.Caller{})
	s.Require().NoError(err)
	s.Equal(0, stats.TotalAssessments)

	_, err = s.svc.GetAssessment(ctx, auth.Caller{}, uuid.New())
	s.ErrorIs(err, ErrAssessmentNotFound)

	s.ErrorIs(s.svc.DeleteAssessment(ctx, auth.Caller{}, uuid.New()), ErrAuthenticationRequired)
	_, err = s.svc.SubmitAssessmentAnswers(ctx, auth.Caller{}, uuid.New(), dto.SubmitAnswersDTO{})
	s.ErrorIs(err, ErrAuthenticationRequired)
}

func (s *AssessmentServiceSuite) TestDeleteAssessment_IsPermanent() {
	ctx := context.Background()
	created := s.generate(s.alice)

	s.Require().NoError(s.svc.DeleteAssessment(ctx, s.alice, created.ID))

	s.Zero(s.countAssessments())
	s.ErrorIs(s.svc.DeleteAssessment(ctx, s.alice, created.ID), ErrAssessmentNotFound)
}

func (s *AssessmentServiceSuite) TestGetAssessmentStats() {
	ctx := context.Background()
	first := s.generate(s.alice)
	_, err := s.svc.SubmitAssessmentAnswers(ctx, s.alice, first.ID, dto.SubmitAnswersDTO{Answers: letters("B", "B")})
	s.Require().NoError(err)
	s.generate(s.bob)

	stats, err := s.svc.GetAssessmentStats(ctx, s.alice)

	s.Require().NoError(err)
	s.Equal(1, stats.TotalAssessments)
	s.Equal(100, stats.BestScore)
	s.Equal(100.0, stats.AverageScore)
}

func TestToAssessmentResponse_NoQuestions(t *testing.T) {
	resp, err := toAssessmentResponse(&model.Assessment{Category: "Go"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Questions)
	assert.Empty(t, resp.Questions)
}
