package service

import "github.com/lshigami/Careerly/internal/model"

const ImprovementTip = "Review the questions you answered incorrectly and study the explanations provided."

// QuestionResult is the scored view of one question.
type QuestionResult struct {
	Question          string
	UserAnswer        *string // nil when unanswered
	CorrectAnswerText string
	IsCorrect         bool
	Explanation       string
}

type ScoreResult struct {
	Score        int
	CorrectCount int
	Total        int
	Breakdown    []QuestionResult
}

// ScoreAnswers grades answers against questions by position. An answer
// counts only when it equals the stored letter exactly; nil, empty and
// missing entries are wrong. The score is 100*correct/total rounded half up.
func ScoreAnswers(questions []model.Question, answers []*string) (ScoreResult, error) {
	total := len(questions)
	if total == 0 {
		return ScoreResult{}, ErrEmptyQuestionSet
	}

	result := ScoreResult{Total: total, Breakdown: make([]QuestionResult, total)}
	for i, q := range questions {
		var answer *string
		if i < len(answers) && answers[i] != nil && *answers[i] != "" {
			a := *answers[i]
			answer = &a
		}

		correct := answer != nil && *answer == q.CorrectAnswer
		if correct {
			result.CorrectCount++
		}

		display, ok := q.OptionForLetter(q.CorrectAnswer)
		if !ok {
			display = q.CorrectAnswer
		}

		result.Breakdown[i] = QuestionResult{
			Question:          q.Question,
			UserAnswer:        answer,
			CorrectAnswerText: display,
			IsCorrect:         correct,
			Explanation:       q.Explanation,
		}
	}

	result.Score = percentRoundHalfUp(result.CorrectCount, total)
	return result, nil
}

// percentRoundHalfUp computes round(100*n/d) in integers so that exact
// halves (1/8 = 12.5%) always round up.
func percentRoundHalfUp(n, d int) int {
	return (200*n + d) / (2 * d)
}
