package model

import "encoding/json"

// Question is one multiple-choice item of an assessment. It is stored
// inside the assessment's JSON column, never as a row of its own, and
// its json tags follow the shape the generation prompt asks for.
//
// Difficulty, TimeToAnswer and Skills are kept as the model wrote them.
// Nothing reads them, so any JSON value is accepted.
type Question struct {
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer string          `json:"correctAnswer"` // "A".."D"
	Explanation   string          `json:"explanation"`
	Difficulty    json.RawMessage `json:"difficulty,omitempty"`
	TimeToAnswer  json.RawMessage `json:"timeToAnswer,omitempty"`
	Skills        json.RawMessage `json:"skills,omitempty"`
}

// OptionForLetter resolves "A".."D" to the option text at that index.
func (q Question) OptionForLetter(letter string) (string, bool) {
	if len(letter) != 1 {
		return "", false
	}
	idx := int(letter[0]) - 'A'
	if idx < 0 || idx > 3 || idx >= len(q.Options) {
		return "", false
	}
	return q.Options[idx], true
}
