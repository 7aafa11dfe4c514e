package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"gleam_backend/internal/model"
	"gleam_backend/internal/repository"
	"gleam_backend/internal/util"

	"gorm.io/gorm"
)

// BankService is the admin-facing quiz builder: banks and their questions.
type BankService struct {
	Repo           *repository.BankRepository
	SubmissionRepo *repository.SubmissionRepository
}

func NewBankService(repo *repository.BankRepository, submissionRepo *repository.SubmissionRepository) *BankService {
	return &BankService{Repo: repo, SubmissionRepo: submissionRepo}
}

type BankRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	TestType    model.TestType `json:"testType" binding:"required,oneof=pre post"`
}

func (s *BankService) CreateBank(ownerID uint, req BankRequest) (*model.QuestionBank, error) {
	b := &model.QuestionBank{
		Name:        req.Name,
		Description: req.Description,
		TestType:    req.TestType,
		Status:      model.BankStatusDraft,
		OwnerID:     ownerID,
	}
	if err := s.Repo.CreateBank(b); err != nil {
		return nil, err
	}
	return b, nil
}

type BankView struct {
	model.QuestionBank
	QuestionCount int64 `json:"questionCount"`
}

func (s *BankService) GetBank(id uint) (*BankView, error) {
	b, err := s.Repo.FindBankByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBankNotFound
		}
		return nil, err
	}
	count, err := s.Repo.CountQuestions(id)
	if err != nil {
		return nil, err
	}
	return &BankView{QuestionBank: *b, QuestionCount: count}, nil
}

func (s *BankService) ListBanks(page, limit int, status string) ([]BankView, int64, error) {
	banks, total, err := s.Repo.ListBanks(page, limit, status)
	if err != nil {
		return nil, 0, err
	}
	views := make([]BankView, len(banks))
	for i, b := range banks {
		count, _ := s.Repo.CountQuestions(b.ID)
		views[i] = BankView{QuestionBank: b, QuestionCount: count}
	}
	return views, total, nil
}

func (s *BankService) UpdateBank(id uint, req BankRequest) (*model.QuestionBank, error) {
	b, err := s.Repo.FindBankByID(id)
	if err != nil {
		return nil, util.ErrBankNotFound
	}
	b.Name = req.Name
	b.Description = req.Description
	b.TestType = req.TestType
	if err := s.Repo.UpdateBank(b); err != nil {
		return nil, err
	}
	return b, nil
}

// PublishBank moves a draft bank with at least one question to published.
func (s *BankService) PublishBank(id uint) (*model.QuestionBank, error) {
	b, err := s.Repo.FindBankByID(id)
	if err != nil {
		return nil, util.ErrBankNotFound
	}
	count, err := s.Repo.CountQuestions(id)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.New("cannot publish an empty bank")
	}
	b.Status = model.BankStatusPublished
	if err := s.Repo.UpdateBank(b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBank refuses once submissions reference the bank, so historical
// reviews keep resolving.
func (s *BankService) DeleteBank(id uint) error {
	count, err := s.SubmissionRepo.CountByBank(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrBankHasSubmission
	}
	return s.Repo.DeleteBank(id)
}

type QuestionRequest struct {
	QuestionType string          `json:"questionType" binding:"required,oneof=multiple_choice true_false free_response"`
	Content      string          `json:"content" binding:"required"`
	Options      json.RawMessage `json:"options"`
	AnswerKey    string          `json:"answerKey"`
	Weight       int             `json:"weight"`
	Order        int             `json:"order"`
}

func validateQuestion(req QuestionRequest) error {
	if req.Weight <= 0 {
		return errors.New("question weight must be greater than zero")
	}
	switch req.QuestionType {
	case model.QuestionMultipleChoice:
		var opts []model.QuestionOption
		if len(req.Options) == 0 {
			return errors.New("multiple-choice question needs at least one option")
		}
		if err := json.Unmarshal(req.Options, &opts); err != nil {
			return fmt.Errorf("invalid options payload: %w", err)
		}
		if len(opts) == 0 {
			return errors.New("multiple-choice question needs at least one option")
		}
		if req.AnswerKey == "" {
			return errors.New("multiple-choice question needs an answer key")
		}
	case model.QuestionTrueFalse:
		if req.AnswerKey != "true" && req.AnswerKey != "false" {
			return errors.New("true/false answer key must be \"true\" or \"false\"")
		}
	}
	return nil
}

func (s *BankService) CreateQuestion(bankID uint, req QuestionRequest) (*model.Question, error) {
	if _, err := s.Repo.FindBankByID(bankID); err != nil {
		return nil, util.ErrBankNotFound
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	q := &model.Question{
		BankID:       bankID,
		QuestionType: req.QuestionType,
		Content:      req.Content,
		Options:      req.Options,
		AnswerKey:    req.AnswerKey,
		Weight:       req.Weight,
		Order:        req.Order,
	}
	if err := s.Repo.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *BankService) ListQuestions(bankID uint) ([]model.Question, error) {
	return s.Repo.ListQuestions(bankID)
}

func (s *BankService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.Repo.FindQuestionByID(id)
	if err != nil {
		return nil, util.ErrQuestionNotFound
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	q.QuestionType = req.QuestionType
	q.Content = req.Content
	q.Options = req.Options
	q.AnswerKey = req.AnswerKey
	q.Weight = req.Weight
	q.Order = req.Order
	if err := s.Repo.UpdateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *BankService) DeleteQuestion(id uint) error {
	return s.Repo.DeleteQuestion(id)
}
