package repository

import (
	"gleam_backend/internal/model"

	"gorm.io/gorm"
)

type ScreeningRepository struct {
	DB *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) *ScreeningRepository {
	return &ScreeningRepository{DB: db}
}

func (r *ScreeningRepository) Create(rec *model.ScreeningRecord) error {
	return r.DB.Create(rec).Error
}

func (r *ScreeningRepository) FindByID(id string) (*model.ScreeningRecord, error) {
	var rec model.ScreeningRecord
	err := r.DB.Preload("Patient").Where("id = ?", id).First(&rec).Error
	return &rec, err
}

func (r *ScreeningRepository) ListByPatient(patientID uint) ([]model.ScreeningRecord, error) {
	var recs []model.ScreeningRecord
	err := r.DB.Where("patient_id = ?", patientID).Order("created_at desc").Find(&recs).Error
	return recs, err
}

func (r *ScreeningRepository) List(page, limit int, riskLabel string) ([]model.ScreeningRecord, int64, error) {
	var recs []model.ScreeningRecord
	var total int64

	query := r.DB.Model(&model.ScreeningRecord{})
	if riskLabel != "" {
		query = query.Where("risk_label = ?", riskLabel)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Patient").Order("created_at desc").Offset(offset).Limit(limit).Find(&recs).Error
	return recs, total, err
}
