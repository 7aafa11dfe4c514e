package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gleam_backend/internal/model"
	"gleam_backend/internal/repository"
	"gleam_backend/internal/util"
	"gleam_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// QuizBankStore is the read surface the quiz flow needs from the bank
// repository.
type QuizBankStore interface {
	FindBankByID(id uint) (*model.QuestionBank, error)
	FindPublishedBankByType(testType model.TestType) (*model.QuestionBank, error)
	FindQuestionByID(id uint) (*model.Question, error)
	ListQuestions(bankID uint) ([]model.Question, error)
}

// SubmissionWriter persists the one terminal write of a quiz session.
type SubmissionWriter interface {
	Create(s *model.Submission) error
}

// SessionStore holds the in-progress answer maps. Production uses Redis.
type SessionStore interface {
	SetAnswer(ctx context.Context, key string, questionID uint, value string) error
	Answers(ctx context.Context, key string) (map[uint]string, error)
	Clear(ctx context.Context, key string) error
}

// QuizService drives a quiz session from question load through per-question
// answer capture to submission. In-progress answers live in the session store
// only; the submissions table sees nothing until a complete answer set is
// scored.
type QuizService struct {
	BankRepo       QuizBankStore
	SubmissionRepo SubmissionWriter
	Sessions       SessionStore
}

func NewQuizService(bankRepo *repository.BankRepository, submissionRepo *repository.SubmissionRepository, rdb *redis.Client) *QuizService {
	return &QuizService{
		BankRepo:       bankRepo,
		SubmissionRepo: submissionRepo,
		Sessions:       &redisSessionStore{client: rdb},
	}
}

// Abandoned sessions expire on their own.
const quizSessionTTL = 6 * time.Hour

func quizSessionKey(userID, bankID uint) string {
	return fmt.Sprintf("quiz_session:%d:%d", userID, bankID)
}

type redisSessionStore struct {
	client *redis.Client
}

func (s *redisSessionStore) SetAnswer(ctx context.Context, key string, questionID uint, value string) error {
	if err := s.client.HSet(ctx, key, fmt.Sprintf("%d", questionID), value).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, quizSessionTTL).Err()
}

func (s *redisSessionStore) Answers(ctx context.Context, key string) (map[uint]string, error) {
	raw, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	answers := make(map[uint]string, len(raw))
	for k, v := range raw {
		answers[util.MustParseUint(k)] = v
	}
	return answers, nil
}

func (s *redisSessionStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// QuizQuestionView is a question as the quiz taker sees it: no answer key.
type QuizQuestionView struct {
	ID           uint            `json:"id"`
	QuestionType string          `json:"questionType"`
	Content      string          `json:"content"`
	Options      json.RawMessage `json:"options,omitempty"`
	Weight       int             `json:"weight"`
	Order        int             `json:"order"`
}

type QuizBankView struct {
	BankID        uint               `json:"bankId"`
	Name          string             `json:"name"`
	TestType      model.TestType     `json:"testType"`
	TestTypeLabel string             `json:"testTypeLabel"`
	Questions     []QuizQuestionView `json:"questions"`
}

// LoadQuestions returns the ordered question list of a published bank with
// answer keys stripped.
func (s *QuizService) LoadQuestions(bankID uint) (*QuizBankView, error) {
	bank, err := s.BankRepo.FindBankByID(bankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBankNotFound
		}
		return nil, err
	}
	if bank.Status != model.BankStatusPublished {
		return nil, util.ErrBankNotPublished
	}

	questions, err := s.BankRepo.ListQuestions(bankID)
	if err != nil {
		return nil, err
	}

	view := &QuizBankView{
		BankID:        bank.ID,
		Name:          bank.Name,
		TestType:      bank.TestType,
		TestTypeLabel: bank.TestType.Label(),
		Questions:     make([]QuizQuestionView, len(questions)),
	}
	for i, q := range questions {
		view.Questions[i] = QuizQuestionView{
			ID:           q.ID,
			QuestionType: q.QuestionType,
			Content:      q.Content,
			Options:      q.Options,
			Weight:       q.Weight,
			Order:        q.Order,
		}
	}
	return view, nil
}

// RecordAnswer upserts one answer into the in-progress session. Re-answering
// the same question overwrites the previous value. Like load and submit, it
// only works against a published bank.
func (s *QuizService) RecordAnswer(ctx context.Context, userID, bankID, questionID uint, value string) error {
	bank, err := s.BankRepo.FindBankByID(bankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrBankNotFound
		}
		return err
	}
	if bank.Status != model.BankStatusPublished {
		return util.ErrBankNotPublished
	}

	q, err := s.BankRepo.FindQuestionByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	if q.BankID != bankID {
		return util.ErrQuestionNotFound
	}

	return s.Sessions.SetAnswer(ctx, quizSessionKey(userID, bankID), questionID, value)
}

func (s *QuizService) sessionAnswers(ctx context.Context, userID, bankID uint) (map[uint]string, error) {
	return s.Sessions.Answers(ctx, quizSessionKey(userID, bankID))
}

type QuizSessionView struct {
	BankID   uint            `json:"bankId"`
	Answers  map[uint]string `json:"answers"`
	Answered int             `json:"answered"`
	Total    int             `json:"total"`
	Progress int             `json:"progress"`
}

// GetSession reports the in-progress answer map and derived progress.
func (s *QuizService) GetSession(ctx context.Context, userID, bankID uint) (*QuizSessionView, error) {
	questions, err := s.BankRepo.ListQuestions(bankID)
	if err != nil {
		return nil, err
	}
	answers, err := s.sessionAnswers(ctx, userID, bankID)
	if err != nil {
		return nil, err
	}

	answered := len(questions) - countRemaining(questions, answers)
	return &QuizSessionView{
		BankID:   bankID,
		Answers:  answers,
		Answered: answered,
		Total:    len(questions),
		Progress: Progress(answered, len(questions)),
	}, nil
}

// ClearSession abandons an in-progress quiz, discarding its answers.
func (s *QuizService) ClearSession(ctx context.Context, userID, bankID uint) error {
	return s.Sessions.Clear(ctx, quizSessionKey(userID, bankID))
}

type SubmissionResult struct {
	SubmissionID  string         `json:"submissionId"`
	TotalScore    int            `json:"totalScore"`
	MaxScore      int            `json:"maxScore"`
	Percentage    int            `json:"percentage"`
	TestType      model.TestType `json:"testType"`
	TestTypeLabel string         `json:"testTypeLabel"`
}

// Submit scores the session and persists an immutable submission. It refuses
// locally, without touching the database, while any question is unanswered.
func (s *QuizService) Submit(ctx context.Context, userID, bankID uint) (*SubmissionResult, error) {
	bank, err := s.BankRepo.FindBankByID(bankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBankNotFound
		}
		return nil, err
	}
	if bank.Status != model.BankStatusPublished {
		return nil, util.ErrBankNotPublished
	}

	questions, err := s.BankRepo.ListQuestions(bankID)
	if err != nil {
		return nil, err
	}
	answers, err := s.sessionAnswers(ctx, userID, bankID)
	if err != nil {
		return nil, err
	}

	if remaining := countRemaining(questions, answers); remaining > 0 {
		monitoring.QuizSubmissions.WithLabelValues(string(bank.TestType), "refused").Inc()
		return nil, &IncompleteError{Remaining: remaining}
	}

	score := scoreAnswers(questions, answers)

	items := make([]model.AnswerItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, model.AnswerItem{QuestionID: q.ID, Value: answers[q.ID]})
	}
	answersJSON, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	submission := &model.Submission{
		UserID:     userID,
		BankID:     bankID,
		TestType:   bank.TestType,
		Answers:    answersJSON,
		TotalScore: score.TotalScore,
		MaxScore:   score.MaxScore,
		Percentage: score.Percentage,
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		monitoring.QuizSubmissions.WithLabelValues(string(bank.TestType), "error").Inc()
		return nil, err
	}
	monitoring.QuizSubmissions.WithLabelValues(string(bank.TestType), "completed").Inc()

	// The transient answer map has served its purpose.
	_ = s.ClearSession(ctx, userID, bankID)

	return &SubmissionResult{
		SubmissionID:  submission.ID,
		TotalScore:    score.TotalScore,
		MaxScore:      score.MaxScore,
		Percentage:    score.Percentage,
		TestType:      bank.TestType,
		TestTypeLabel: bank.TestType.Label(),
	}, nil
}
