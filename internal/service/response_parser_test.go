package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuestions = `{
  "questions": [
    {
      "question": "What is the capital of France?",
      "options": ["London", "Paris", "Berlin", "Madrid"],
      "correctAnswer": "B",
      "explanation": "Paris is the capital of France.",
      "difficulty": 1,
      "timeToAnswer": 2,
      "skills": ["geography"]
    },
    {
      "question": "Which keyword starts a goroutine?",
      "options": ["async", "go", "spawn", "thread"],
      "correctAnswer": "B",
      "explanation": "The go statement starts a goroutine.",
      "timeToAnswer": "1"
    }
  ]
}`

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSON("```\n{\"a\":1}\n```  "))
	assert.Equal(t, `{"a":1}`, CleanJSON("  {\"a\":1}\n"))
}

func TestParseQuestionSet_FencedJSON(t *testing.T) {
	set, err := ParseQuestionSet("```json\n" + sampleQuestions + "\n```")

	require.NoError(t, err)
	require.Len(t, set.Questions, 2)
	first := set.Questions[0]
	assert.Equal(t, "What is the capital of France?", first.Question)
	assert.Equal(t, []string{"London", "Paris", "Berlin", "Madrid"}, first.Options)
	assert.Equal(t, "B", first.CorrectAnswer)
	assert.JSONEq(t, `1`, string(first.Difficulty))
	assert.JSONEq(t, `2`, string(first.TimeToAnswer))
	assert.JSONEq(t, `["geography"]`, string(first.Skills))
	assert.JSONEq(t, `"1"`, string(set.Questions[1].TimeToAnswer))
	assert.Empty(t, set.Questions[1].Difficulty)
}

func TestParseQuestionSet_AcceptsAnyMetadataValues(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"word difficulty", "difficulty", `"Medium"`},
		{"range difficulty", "difficulty", `"3-4"`},
		{"null difficulty", "difficulty", `null`},
		{"object time", "timeToAnswer", `{"min":2}`},
		{"string skills", "skills", `"Go"`},
		{"numeric skills", "skills", `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{"questions":[{"question":"q","options":["a","b","c","d"],"correctAnswer":"A","explanation":"e","` +
				tt.field + `":` + tt.value + `}]}`

			set, err := ParseQuestionSet(raw)

			require.NoError(t, err)
			require.Len(t, set.Questions, 1)
			assert.Equal(t, "A", set.Questions[0].CorrectAnswer)
		})
	}
}

func TestParseQuestionSet_LeavesContentChecksToScoring(t *testing.T) {
	raw := `{"questions":[
		{"question":"no options","correctAnswer":"A"},
		{"question":"odd letter","options":["a","b","c","d"],"correctAnswer":"Z"},
		{"question":"two options","options":["a","b"],"correctAnswer":"D","difficulty":"Hard"}
	]}`

	set, err := ParseQuestionSet(raw)

	require.NoError(t, err)
	require.Len(t, set.Questions, 3)
	assert.Nil(t, set.Questions[0].Options)
	assert.Equal(t, "Z", set.Questions[1].CorrectAnswer)

	scored, err := ScoreAnswers(set.Questions, letters("A", "Z", "A"))
	require.NoError(t, err)
	assert.Equal(t, 67, scored.Score)
	assert.Equal(t, "A", scored.Breakdown[0].CorrectAnswerText)
	assert.Equal(t, "Z", scored.Breakdown[1].CorrectAnswerText)
	assert.Equal(t, "D", scored.Breakdown[2].CorrectAnswerText)
}

func TestParseQuestionSet_PlainJSON(t *testing.T) {
	set, err := ParseQuestionSet(sampleQuestions)
	require.NoError(t, err)
	assert.Len(t, set.Questions, 2)
}

func TestParseQuestionSet_MissingQuestionsIsEmptySet(t *testing.T) {
	set, err := ParseQuestionSet(`{"items": []}`)
	require.NoError(t, err)
	assert.Empty(t, set.Questions)
}

func TestParseQuestionSet_Failures(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{"empty", "", "empty response"},
		{"only fences", "```json\n```", "empty response"},
		{"prose", "Here are your questions!", "invalid JSON"},
		{"truncated", `{"questions": [{"question": "x"`, "invalid JSON"},
		{"wrong questions type", `{"questions": "none"}`, "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuestionSet(tt.raw)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrResponseParse)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.reason, parseErr.Reason)
		})
	}
}
