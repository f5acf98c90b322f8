package service

import (
	"context"
	"fmt"
	"math"

	"github.com/lshigami/Careerly/internal/auth"
	"github.com/lshigami/Careerly/internal/dto"
	"github.com/lshigami/Careerly/internal/model"
	"github.com/rs/zerolog/log"
)

func (s *assessmentService) GetAssessmentStats(ctx context.Context, caller auth.Caller) (*dto.AssessmentStatsDTO, error) {
	if !caller.Authenticated() {
		return SummarizeAssessments(nil), nil
	}
	assessments, err := s.assessmentRepo.FindAllByOwner(ctx, caller.UserID)
	if err != nil {
		log.Error().Err(err).Str("userID", caller.UserID).Msg("GetAssessmentStats: Repository error")
		return nil, fmt.Errorf("failed to load assessments for stats: %w", err)
	}
	return SummarizeAssessments(assessments), nil
}

// SummarizeAssessments aggregates scores. assessments must be ordered
// newest first; categories keep the order in which they first appear.
func SummarizeAssessments(assessments []model.Assessment) *dto.AssessmentStatsDTO {
	stats := &dto.AssessmentStatsDTO{Categories: []dto.CategoryStatsDTO{}}
	if len(assessments) == 0 {
		return stats
	}

	type bucket struct {
		count int
		sum   int
	}
	buckets := make(map[string]*bucket)
	var order []string
	sum := 0

	for i, a := range assessments {
		if i == 0 {
			latest := a.QuizScore
			stats.LatestScore = &latest
		}
		if a.QuizScore > stats.BestScore {
			stats.BestScore = a.QuizScore
		}
		sum += a.QuizScore

		b, ok := buckets[a.Category]
		if !ok {
			b = &bucket{}
			buckets[a.Category] = b
			order = append(order, a.Category)
		}
		b.count++
		b.sum += a.QuizScore
	}

	stats.TotalAssessments = len(assessments)
	stats.AverageScore = roundOneDecimal(float64(sum) / float64(len(assessments)))
	for _, category := range order {
		b := buckets[category]
		stats.Categories = append(stats.Categories, dto.CategoryStatsDTO{
			Category:     category,
			Count:        b.count,
			AverageScore: roundOneDecimal(float64(b.sum) / float64(b.count)),
		})
	}
	return stats
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
