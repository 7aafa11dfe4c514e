package repository

import (
	"gleam_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(f *model.Feedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) List(page, limit int) ([]model.Feedback, int64, error) {
	var fs []model.Feedback
	var total int64

	query := r.DB.Model(&model.Feedback{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&fs).Error
	return fs, total, err
}

func (r *FeedbackRepository) AverageRating() (float64, error) {
	var avg float64
	err := r.DB.Model(&model.Feedback{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}
