package service

import (
	"encoding/json"
	"errors"

	"gleam_backend/internal/model"
	"gleam_backend/internal/repository"
	"gleam_backend/internal/util"

	"gorm.io/gorm"
)

// HistoryService is the read-only side of the quiz flow: score summaries and
// per-question review of past submissions. Nothing here mutates state.
type HistoryService struct {
	SubmissionRepo *repository.SubmissionRepository
	BankRepo       *repository.BankRepository
}

func NewHistoryService(submissionRepo *repository.SubmissionRepository, bankRepo *repository.BankRepository) *HistoryService {
	return &HistoryService{
		SubmissionRepo: submissionRepo,
		BankRepo:       bankRepo,
	}
}

type SubmissionSummary struct {
	ID            string         `json:"id"`
	BankID        uint           `json:"bankId"`
	BankName      string         `json:"bankName"`
	TestType      model.TestType `json:"testType"`
	TestTypeLabel string         `json:"testTypeLabel"`
	TotalScore    int            `json:"totalScore"`
	MaxScore      int            `json:"maxScore"`
	Percentage    int            `json:"percentage"`
	SubmittedAt   string         `json:"submittedAt"`
}

func (s *HistoryService) summarize(sub model.Submission) SubmissionSummary {
	summary := SubmissionSummary{
		ID:            sub.ID,
		BankID:        sub.BankID,
		TestType:      sub.TestType,
		TestTypeLabel: sub.TestType.Label(),
		TotalScore:    sub.TotalScore,
		MaxScore:      sub.MaxScore,
		Percentage:    sub.Percentage,
		SubmittedAt:   sub.CreatedAt.Format(util.TimeFormat),
	}
	if bank, err := s.BankRepo.FindBankByID(sub.BankID); err == nil {
		summary.BankName = bank.Name
	}
	return summary
}

// History lists a user's prior submissions, optionally filtered to one test
// type, newest first.
func (s *HistoryService) History(userID uint, testType model.TestType) ([]SubmissionSummary, error) {
	subs, err := s.SubmissionRepo.ListByUser(userID, testType)
	if err != nil {
		return nil, err
	}

	summaries := make([]SubmissionSummary, len(subs))
	for i, sub := range subs {
		summaries[i] = s.summarize(sub)
	}
	return summaries, nil
}

// QuestionReview is one row of the history-detail view: what the user
// answered, what it earned, and what the right answer was worth.
type QuestionReview struct {
	QuestionID    uint   `json:"questionId"`
	Content       string `json:"content"`
	UserAnswer    string `json:"userAnswer"`
	AwardedScore  int    `json:"awardedScore"`
	CorrectAnswer string `json:"correctAnswer"`
	CorrectScore  int    `json:"correctScore"`
	IsCorrect     bool   `json:"isCorrect"`
}

type SubmissionDetail struct {
	Summary SubmissionSummary `json:"summary"`
	Review  []QuestionReview  `json:"review"`
}

// Detail returns the summary plus the per-question review list. Patients can
// only open their own submissions; requireOwner is false for staff views.
func (s *HistoryService) Detail(id string, userID uint, requireOwner bool) (*SubmissionDetail, error) {
	sub, err := s.SubmissionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	if requireOwner && sub.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	var items []model.AnswerItem
	if err := json.Unmarshal(sub.Answers, &items); err != nil {
		return nil, err
	}
	answers := make(map[uint]string, len(items))
	for _, item := range items {
		answers[item.QuestionID] = item.Value
	}

	questions, err := s.BankRepo.ListQuestions(sub.BankID)
	if err != nil {
		return nil, err
	}

	review := make([]QuestionReview, len(questions))
	for i, q := range questions {
		value := answers[q.ID]
		correct := answerMatches(q, value)
		awarded := 0
		if correct {
			awarded = q.Weight
		}
		review[i] = QuestionReview{
			QuestionID:    q.ID,
			Content:       q.Content,
			UserAnswer:    value,
			AwardedScore:  awarded,
			CorrectAnswer: q.AnswerKey,
			CorrectScore:  q.Weight,
			IsCorrect:     correct,
		}
	}

	return &SubmissionDetail{
		Summary: s.summarize(*sub),
		Review:  review,
	}, nil
}

// List is the staff view over all submissions.
func (s *HistoryService) List(page, limit int, testType model.TestType, studentName string) ([]model.Submission, int64, error) {
	return s.SubmissionRepo.List(page, limit, testType, studentName)
}
