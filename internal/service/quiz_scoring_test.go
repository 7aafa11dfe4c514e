package service

import (
	"errors"
	"testing"

	"gleam_backend/internal/model"
)

func question(id uint, qType, key string, weight int) model.Question {
	q := model.Question{QuestionType: qType, AnswerKey: key, Weight: weight}
	q.ID = id
	return q
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		answered int
		total    int
		want     int
	}{
		{"empty bank", 0, 0, 0},
		{"nothing answered", 0, 3, 0},
		{"one of three rounds up", 1, 3, 33},
		{"two of three rounds up", 2, 3, 67},
		{"complete", 3, 3, 100},
		{"one of six", 1, 6, 17},
		{"half", 1, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.answered, tt.total); got != tt.want {
				t.Errorf("Progress(%d, %d) = %d, want %d", tt.answered, tt.total, got, tt.want)
			}
		})
	}
}

func TestIncompleteErrorMessage(t *testing.T) {
	err := &IncompleteError{Remaining: 1}
	if err.Error() != "1 soal lagi" {
		t.Errorf("got %q, want %q", err.Error(), "1 soal lagi")
	}

	err = &IncompleteError{Remaining: 7}
	if err.Error() != "7 soal lagi" {
		t.Errorf("got %q, want %q", err.Error(), "7 soal lagi")
	}

	var target *IncompleteError
	if !errors.As(error(err), &target) {
		t.Error("IncompleteError should be matchable with errors.As")
	}
}

func TestCountRemaining(t *testing.T) {
	questions := []model.Question{
		question(1, model.QuestionMultipleChoice, "2", 10),
		question(2, model.QuestionTrueFalse, "true", 5),
		question(3, model.QuestionFreeResponse, "sering haus", 5),
	}

	tests := []struct {
		name    string
		answers map[uint]string
		want    int
	}{
		{"no answers", map[uint]string{}, 3},
		{"two answered", map[uint]string{1: "2", 2: "true"}, 1},
		{"all answered", map[uint]string{1: "2", 2: "true", 3: "x"}, 0},
		{"answer for unknown question does not count", map[uint]string{99: "2"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countRemaining(questions, tt.answers); got != tt.want {
				t.Errorf("countRemaining = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnswerMatches(t *testing.T) {
	tests := []struct {
		name  string
		q     model.Question
		value string
		want  bool
	}{
		{"choice exact match", question(1, model.QuestionMultipleChoice, "2", 1), "2", true},
		{"choice wrong option", question(1, model.QuestionMultipleChoice, "2", 1), "3", false},
		{"true_false match", question(1, model.QuestionTrueFalse, "true", 1), "true", true},
		{"true_false case sensitive", question(1, model.QuestionTrueFalse, "true", 1), "True", false},
		{"free response case insensitive", question(1, model.QuestionFreeResponse, "Sering Haus", 1), "sering haus", true},
		{"free response trims whitespace", question(1, model.QuestionFreeResponse, "sering haus", 1), "  sering haus  ", true},
		{"free response wrong", question(1, model.QuestionFreeResponse, "sering haus", 1), "pusing", false},
		{"empty answer key never matches", question(1, model.QuestionMultipleChoice, "", 1), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := answerMatches(tt.q, tt.value); got != tt.want {
				t.Errorf("answerMatches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreAnswers(t *testing.T) {
	questions := []model.Question{
		question(1, model.QuestionMultipleChoice, "2", 10),
		question(2, model.QuestionTrueFalse, "true", 5),
		question(3, model.QuestionFreeResponse, "sering haus", 5),
	}

	tests := []struct {
		name           string
		answers        map[uint]string
		wantTotal      int
		wantMax        int
		wantPercentage int
	}{
		{
			name:           "all correct",
			answers:        map[uint]string{1: "2", 2: "true", 3: "Sering haus"},
			wantTotal:      20,
			wantMax:        20,
			wantPercentage: 100,
		},
		{
			name:           "partially correct",
			answers:        map[uint]string{1: "2", 2: "false", 3: "pusing"},
			wantTotal:      10,
			wantMax:        20,
			wantPercentage: 50,
		},
		{
			name:           "all wrong",
			answers:        map[uint]string{1: "1", 2: "false", 3: "pusing"},
			wantTotal:      0,
			wantMax:        20,
			wantPercentage: 0,
		},
		{
			name:           "uneven weights round percentage",
			answers:        map[uint]string{2: "true", 3: "sering haus"},
			wantTotal:      10,
			wantMax:        20,
			wantPercentage: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreAnswers(questions, tt.answers)
			if got.TotalScore != tt.wantTotal {
				t.Errorf("TotalScore = %d, want %d", got.TotalScore, tt.wantTotal)
			}
			if got.MaxScore != tt.wantMax {
				t.Errorf("MaxScore = %d, want %d", got.MaxScore, tt.wantMax)
			}
			if got.Percentage != tt.wantPercentage {
				t.Errorf("Percentage = %d, want %d", got.Percentage, tt.wantPercentage)
			}
		})
	}
}

func TestScoreAnswersEmptyBank(t *testing.T) {
	got := scoreAnswers(nil, map[uint]string{})
	if got.TotalScore != 0 || got.MaxScore != 0 || got.Percentage != 0 {
		t.Errorf("empty bank should score zero, got %+v", got)
	}
}
