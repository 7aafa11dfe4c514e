package repository

import (
	"gleam_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(m *model.Material) error {
	return r.DB.Create(m).Error
}

func (r *MaterialRepository) FindByID(id uint) (*model.Material, error) {
	var m model.Material
	err := r.DB.First(&m, id).Error
	return &m, err
}

func (r *MaterialRepository) ListPublished(category string) ([]model.Material, error) {
	var ms []model.Material
	query := r.DB.Where("is_published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("created_at desc").Find(&ms).Error
	return ms, err
}

func (r *MaterialRepository) List(page, limit int) ([]model.Material, int64, error) {
	var ms []model.Material
	var total int64

	query := r.DB.Model(&model.Material{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ms).Error
	return ms, total, err
}

func (r *MaterialRepository) Update(m *model.Material) error {
	return r.DB.Save(m).Error
}

func (r *MaterialRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Material{}, id).Error
}
