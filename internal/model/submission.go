package model

import "encoding/json"

// AnswerItem pairs a question with the value the user selected or typed.
type AnswerItem struct {
	QuestionID uint   `json:"questionId"`
	Value      string `json:"value"`
}

// Submission is the immutable scored record produced by completing a bank.
// It is only ever created and read back, never updated.
// swagger:model Submission
type Submission struct {
	UUIDBase
	UserID     uint            `gorm:"index;type:bigint unsigned" json:"userId"`
	User       *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BankID     uint            `gorm:"index;type:bigint unsigned" json:"bankId"`
	TestType   TestType        `gorm:"type:enum('pre','post')" json:"testType"`
	Answers    json.RawMessage `gorm:"type:json" json:"answers"`
	TotalScore int             `json:"totalScore"`
	MaxScore   int             `json:"maxScore"`
	Percentage int             `json:"percentage"`
}

func (Submission) TableName() string {
	return "submissions"
}
