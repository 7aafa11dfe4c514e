package repository

import (
	"gleam_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(s *model.Submission) error {
	return r.DB.Create(s).Error
}

func (r *SubmissionRepository) FindByID(id string) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.Preload("User").Where("id = ?", id).First(&s).Error
	return &s, err
}

func (r *SubmissionRepository) ListByUser(userID uint, testType model.TestType) ([]model.Submission, error) {
	var ss []model.Submission
	query := r.DB.Where("user_id = ?", userID)
	if testType != "" {
		query = query.Where("test_type = ?", testType)
	}
	err := query.Order("created_at desc").Find(&ss).Error
	return ss, err
}

func (r *SubmissionRepository) List(page, limit int, testType model.TestType, studentName string) ([]model.Submission, int64, error) {
	var ss []model.Submission
	var total int64

	query := r.DB.Model(&model.Submission{}).
		Joins("LEFT JOIN users ON users.id = submissions.user_id").
		Where("users.deleted_at IS NULL")
	if testType != "" {
		query = query.Where("submissions.test_type = ?", testType)
	}
	if studentName != "" {
		query = query.Where("users.name LIKE ?", "%"+studentName+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("User").
		Order("submissions.created_at desc").
		Offset(offset).Limit(limit).
		Find(&ss).Error
	return ss, total, err
}

func (r *SubmissionRepository) CountByBank(bankID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).Where("bank_id = ?", bankID).Count(&count).Error
	return count, err
}
