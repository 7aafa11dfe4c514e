package model

// Material is one piece of educational content served to patients.
// swagger:model Material
type Material struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Category    string `gorm:"size:100" json:"category"`
	Body        string `gorm:"type:longtext" json:"body"`
	FileURL     string `gorm:"size:500" json:"fileUrl"`
	IsPublished bool   `gorm:"default:false" json:"isPublished"`
	AuthorID    uint   `gorm:"index;type:bigint unsigned" json:"authorId"`
}

func (Material) TableName() string {
	return "materials"
}
