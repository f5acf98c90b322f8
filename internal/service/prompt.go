package service

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultIndustry   = "technology"
	defaultExperience = "intermediate"
	defaultSkills     = "general skills"
)

// PromptParams are the inputs of an assessment generation prompt. Profile
// fields are optional.
type PromptParams struct {
	Topic         string
	Difficulty    string
	QuestionCount int
	Industry      *string
	Experience    *int
	Skills        []string
}

// ComposeAssessmentPrompt builds the generation prompt. It is deterministic
// and does no validation: a zero or negative QuestionCount is written as is.
// An experience of 0 years counts as unknown.
func ComposeAssessmentPrompt(p PromptParams) string {
	industry := defaultIndustry
	if p.Industry != nil && strings.TrimSpace(*p.Industry) != "" {
		industry = *p.Industry
	}
	experience := defaultExperience
	if p.Experience != nil && *p.Experience > 0 {
		experience = strconv.Itoa(*p.Experience)
	}
	skills := defaultSkills
	if len(p.Skills) > 0 {
		skills = strings.Join(p.Skills, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "As an expert interviewer and career advisor, generate a technical assessment for a %s professional with %s years of experience.\n\n", industry, experience)

	b.WriteString("Assessment Details:\n")
	fmt.Fprintf(&b, "Topic: %s\n", p.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", p.Difficulty)
	fmt.Fprintf(&b, "Number of Questions: %d\n\n", p.QuestionCount)

	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "Industry: %s\n", industry)
	fmt.Fprintf(&b, "Experience: %s years\n", experience)
	fmt.Fprintf(&b, "Skills: %s\n\n", skills)

	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "1. Generate exactly %d multiple choice questions\n", p.QuestionCount)
	b.WriteString("2. Include a mix of question types (technical, behavioral, situational)\n")
	fmt.Fprintf(&b, "3. Tailor questions to %s difficulty level\n", p.Difficulty)
	fmt.Fprintf(&b, "4. Focus on %s within the context of %s\n", p.Topic, industry)
	b.WriteString("5. For each question, provide:\n")
	b.WriteString("   - The question text\n")
	b.WriteString("   - Four answer options (A, B, C, D)\n")
	b.WriteString("   - The correct answer (one of A, B, C, or D)\n")
	b.WriteString("   - An explanation for the correct answer\n")
	b.WriteString("   - Difficulty rating (1-5)\n")
	b.WriteString("   - Estimated time to answer (in minutes)\n")
	b.WriteString("   - Key skills being assessed\n")
	b.WriteString("6. Format the response as strict JSON with the following structure:\n")
	b.WriteString(questionSchema)
	b.WriteString("7. Do not include any additional text, explanations, or markdown formatting\n")
	b.WriteString("8. Make sure each question has exactly one correct answer\n")
	b.WriteString("9. Ensure the options are plausible but only one is correct\n")
	b.WriteString("10. Focus questions on the user's industry and skills when relevant\n")
	return b.String()
}

const questionSchema = `   {
     "questions": [
       {
         "question": "Question text",
         "options": ["Option A", "Option B", "Option C", "Option D"],
         "correctAnswer": "A",
         "explanation": "Explanation of why the correct answer is right",
         "difficulty": 3,
         "timeToAnswer": "2",
         "skills": ["skill1", "skill2"]
       }
     ]
   }
`
