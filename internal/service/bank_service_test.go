package service

import (
	"encoding/json"
	"testing"

	"gleam_backend/internal/model"
)

func TestValidateQuestion(t *testing.T) {
	options, _ := json.Marshal([]model.QuestionOption{
		{Number: 1, Text: "Ya"},
		{Number: 2, Text: "Tidak"},
	})

	tests := []struct {
		name    string
		req     QuestionRequest
		wantErr bool
	}{
		{
			name:    "valid multiple choice",
			req:     QuestionRequest{QuestionType: model.QuestionMultipleChoice, Content: "q", Options: options, AnswerKey: "1", Weight: 5},
			wantErr: false,
		},
		{
			name:    "multiple choice without options",
			req:     QuestionRequest{QuestionType: model.QuestionMultipleChoice, Content: "q", AnswerKey: "1", Weight: 5},
			wantErr: true,
		},
		{
			name:    "multiple choice with empty options array",
			req:     QuestionRequest{QuestionType: model.QuestionMultipleChoice, Content: "q", Options: json.RawMessage(`[]`), AnswerKey: "1", Weight: 5},
			wantErr: true,
		},
		{
			name:    "multiple choice with broken options json",
			req:     QuestionRequest{QuestionType: model.QuestionMultipleChoice, Content: "q", Options: json.RawMessage(`{not json`), AnswerKey: "1", Weight: 5},
			wantErr: true,
		},
		{
			name:    "multiple choice without answer key",
			req:     QuestionRequest{QuestionType: model.QuestionMultipleChoice, Content: "q", Options: options, Weight: 5},
			wantErr: true,
		},
		{
			name:    "valid true false",
			req:     QuestionRequest{QuestionType: model.QuestionTrueFalse, Content: "q", AnswerKey: "false", Weight: 2},
			wantErr: false,
		},
		{
			name:    "true false with bad key",
			req:     QuestionRequest{QuestionType: model.QuestionTrueFalse, Content: "q", AnswerKey: "yes", Weight: 2},
			wantErr: true,
		},
		{
			name:    "free response needs no key",
			req:     QuestionRequest{QuestionType: model.QuestionFreeResponse, Content: "q", Weight: 3},
			wantErr: false,
		},
		{
			name:    "zero weight",
			req:     QuestionRequest{QuestionType: model.QuestionFreeResponse, Content: "q", Weight: 0},
			wantErr: true,
		},
		{
			name:    "negative weight",
			req:     QuestionRequest{QuestionType: model.QuestionTrueFalse, Content: "q", AnswerKey: "true", Weight: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestion(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateQuestion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
