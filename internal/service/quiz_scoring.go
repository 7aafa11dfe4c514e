package service

import (
	"fmt"
	"math"
	"strings"

	"gleam_backend/internal/model"
)

// IncompleteError is returned by Submit when not every question has an
// answer. The message is what the portal shows next to the submit button.
type IncompleteError struct {
	Remaining int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d soal lagi", e.Remaining)
}

// Progress is the derived completion percentage, rounded to the nearest
// whole number. It is never stored.
func Progress(answered, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(answered) / float64(total)))
}

func countRemaining(questions []model.Question, answers map[uint]string) int {
	remaining := 0
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			remaining++
		}
	}
	return remaining
}

// answerMatches compares a recorded value against the question's answer key.
// Choice questions match on the exact option number or value; free-response
// answers are compared case-insensitively after trimming.
func answerMatches(q model.Question, value string) bool {
	if q.AnswerKey == "" {
		return false
	}
	switch q.QuestionType {
	case model.QuestionFreeResponse:
		return strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(q.AnswerKey))
	default:
		return value == q.AnswerKey
	}
}

type ScoreResult struct {
	TotalScore int `json:"totalScore"`
	MaxScore   int `json:"maxScore"`
	Percentage int `json:"percentage"`
}

func scoreAnswers(questions []model.Question, answers map[uint]string) ScoreResult {
	res := ScoreResult{}
	for _, q := range questions {
		res.MaxScore += q.Weight
		if value, ok := answers[q.ID]; ok && answerMatches(q, value) {
			res.TotalScore += q.Weight
		}
	}
	if res.MaxScore > 0 {
		res.Percentage = int(math.Round(100 * float64(res.TotalScore) / float64(res.MaxScore)))
	}
	return res
}
