package model

import "encoding/json"

const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
	QuestionFreeResponse   = "free_response"
)

// QuestionOption is one numbered choice of a multiple-choice question.
type QuestionOption struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// swagger:model Question
type Question struct {
	BaseModel
	BankID       uint            `gorm:"index;type:bigint unsigned" json:"bankId"`
	QuestionType string          `gorm:"size:50;not null" json:"questionType"` // multiple_choice, true_false, free_response
	Content      string          `gorm:"type:text;not null" json:"content"`
	Options      json.RawMessage `gorm:"type:json" json:"options,omitempty"` // JSON: []QuestionOption
	AnswerKey    string          `gorm:"type:text" json:"answerKey"`
	Weight       int             `gorm:"default:1" json:"weight"`
	Order        int             `gorm:"default:0" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}
