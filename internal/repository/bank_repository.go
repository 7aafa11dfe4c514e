package repository

import (
	"gleam_backend/internal/model"

	"gorm.io/gorm"
)

type BankRepository struct {
	DB *gorm.DB
}

func NewBankRepository(db *gorm.DB) *BankRepository {
	return &BankRepository{DB: db}
}

func (r *BankRepository) CreateBank(b *model.QuestionBank) error {
	return r.DB.Create(b).Error
}

func (r *BankRepository) FindBankByID(id uint) (*model.QuestionBank, error) {
	var b model.QuestionBank
	err := r.DB.First(&b, id).Error
	return &b, err
}

func (r *BankRepository) FindPublishedBankByType(testType model.TestType) (*model.QuestionBank, error) {
	var b model.QuestionBank
	err := r.DB.Where("test_type = ? AND status = ?", testType, model.BankStatusPublished).
		Order("updated_at desc").First(&b).Error
	return &b, err
}

func (r *BankRepository) ListBanks(page, limit int, status string) ([]model.QuestionBank, int64, error) {
	var banks []model.QuestionBank
	var total int64

	query := r.DB.Model(&model.QuestionBank{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&banks).Error
	return banks, total, err
}

func (r *BankRepository) UpdateBank(b *model.QuestionBank) error {
	return r.DB.Save(b).Error
}

func (r *BankRepository) DeleteBank(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bank_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuestionBank{}, id).Error
	})
}

func (r *BankRepository) CountQuestions(bankID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("bank_id = ?", bankID).Count(&count).Error
	return count, err
}

func (r *BankRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *BankRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *BankRepository) ListQuestions(bankID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("bank_id = ?", bankID).
		Order("`order` asc, created_at asc").
		Find(&qs).Error
	return qs, err
}

func (r *BankRepository) UpdateQuestion(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *BankRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
