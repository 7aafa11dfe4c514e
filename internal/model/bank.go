package model

type TestType string

const (
	PreTest  TestType = "pre"
	PostTest TestType = "post"
)

// Label is the display form used by the portal ("pre" renders as "Pre Test").
func (t TestType) Label() string {
	switch t {
	case PreTest:
		return "Pre Test"
	case PostTest:
		return "Post Test"
	default:
		return string(t)
	}
}

const (
	BankStatusDraft     = "draft"
	BankStatusPublished = "published"
)

// QuestionBank is a named collection of quiz questions tied to one test type.
// swagger:model QuestionBank
type QuestionBank struct {
	BaseModel
	Name        string   `gorm:"size:255;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	TestType    TestType `gorm:"type:enum('pre','post');default:'pre'" json:"testType"`
	Status      string   `gorm:"size:20;default:'draft'" json:"status"`
	OwnerID     uint     `gorm:"index;type:bigint unsigned" json:"ownerId"`
}

func (QuestionBank) TableName() string {
	return "question_banks"
}
