package service

import (
	"testing"

	"github.com/lshigami/Careerly/internal/dto"
	"github.com/lshigami/Careerly/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeAssessments_Empty(t *testing.T) {
	stats := SummarizeAssessments(nil)

	assert.Equal(t, 0, stats.TotalAssessments)
	assert.Nil(t, stats.LatestScore)
	assert.NotNil(t, stats.Categories)
	assert.Empty(t, stats.Categories)
}

func TestSummarizeAssessments(t *testing.T) {
	// newest first
	assessments := []model.Assessment{
		{Category: "Go", QuizScore: 80},
		{Category: "SQL", QuizScore: 45},
		{Category: "Go", QuizScore: 67},
	}

	stats := SummarizeAssessments(assessments)

	assert.Equal(t, 3, stats.TotalAssessments)
	assert.Equal(t, 64.0, stats.AverageScore)
	assert.Equal(t, 80, stats.BestScore)
	require.NotNil(t, stats.LatestScore)
	assert.Equal(t, 80, *stats.LatestScore)
	assert.Equal(t, []dto.CategoryStatsDTO{
		{Category: "Go", Count: 2, AverageScore: 73.5},
		{Category: "SQL", Count: 1, AverageScore: 45},
	}, stats.Categories)
}

func TestSummarizeAssessments_RoundsToOneDecimal(t *testing.T) {
	stats := SummarizeAssessments([]model.Assessment{
		{Category: "Go", QuizScore: 100},
		{Category: "Go", QuizScore: 0},
		{Category: "Go", QuizScore: 0},
	})
	assert.Equal(t, 33.3, stats.AverageScore)
}
