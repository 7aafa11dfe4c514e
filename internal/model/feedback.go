package model

// Feedback is one website-survey entry. UserID is nil for anonymous entries.
// swagger:model Feedback
type Feedback struct {
	BaseModel
	UserID  *uint  `gorm:"index;type:bigint unsigned" json:"userId,omitempty"`
	Rating  int    `gorm:"not null" json:"rating"` // 1-5
	Comment string `gorm:"type:text" json:"comment"`
	Page    string `gorm:"size:255" json:"page"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
