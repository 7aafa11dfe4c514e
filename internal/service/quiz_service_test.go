package service

import (
	"context"
	"testing"

	"gleam_backend/internal/model"
	"gleam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeBankStore struct {
	banks     map[uint]*model.QuestionBank
	questions []model.Question
}

func (f *fakeBankStore) FindBankByID(id uint) (*model.QuestionBank, error) {
	bank, ok := f.banks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return bank, nil
}

func (f *fakeBankStore) FindPublishedBankByType(testType model.TestType) (*model.QuestionBank, error) {
	for _, bank := range f.banks {
		if bank.TestType == testType && bank.Status == model.BankStatusPublished {
			return bank, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBankStore) FindQuestionByID(id uint) (*model.Question, error) {
	for i := range f.questions {
		if f.questions[i].ID == id {
			return &f.questions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBankStore) ListQuestions(bankID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.BankID == bankID {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeSubmissionWriter struct {
	created []*model.Submission
}

func (f *fakeSubmissionWriter) Create(s *model.Submission) error {
	s.ID = "test-submission"
	f.created = append(f.created, s)
	return nil
}

type memorySessionStore struct {
	data map[string]map[uint]string
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{data: make(map[string]map[uint]string)}
}

func (m *memorySessionStore) SetAnswer(ctx context.Context, key string, questionID uint, value string) error {
	if m.data[key] == nil {
		m.data[key] = make(map[uint]string)
	}
	m.data[key][questionID] = value
	return nil
}

func (m *memorySessionStore) Answers(ctx context.Context, key string) (map[uint]string, error) {
	answers := make(map[uint]string, len(m.data[key]))
	for id, v := range m.data[key] {
		answers[id] = v
	}
	return answers, nil
}

func (m *memorySessionStore) Clear(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func bankQuestion(id, bankID uint, qType, key string, weight int) model.Question {
	q := question(id, qType, key, weight)
	q.BankID = bankID
	return q
}

func quizServiceForTest() (*QuizService, *fakeSubmissionWriter, *memorySessionStore) {
	published := &model.QuestionBank{Name: "Kuisioner Pre Test", TestType: model.PreTest, Status: model.BankStatusPublished}
	published.ID = 1
	draft := &model.QuestionBank{Name: "Kuisioner Post Test", TestType: model.PostTest, Status: model.BankStatusDraft}
	draft.ID = 2

	banks := &fakeBankStore{
		banks: map[uint]*model.QuestionBank{1: published, 2: draft},
		questions: []model.Question{
			bankQuestion(10, 1, model.QuestionMultipleChoice, "2", 2),
			bankQuestion(11, 1, model.QuestionTrueFalse, "true", 1),
			bankQuestion(12, 1, model.QuestionFreeResponse, "insulin", 3),
			bankQuestion(20, 2, model.QuestionTrueFalse, "false", 1),
		},
	}
	submissions := &fakeSubmissionWriter{}
	sessions := newMemorySessionStore()
	return &QuizService{BankRepo: banks, SubmissionRepo: submissions, Sessions: sessions}, submissions, sessions
}

func TestRecordAnswerOverwritesPreviousValue(t *testing.T) {
	svc, _, _ := quizServiceForTest()
	ctx := context.Background()

	require.NoError(t, svc.RecordAnswer(ctx, 7, 1, 10, "1"))
	require.NoError(t, svc.RecordAnswer(ctx, 7, 1, 10, "2"))

	session, err := svc.GetSession(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Answered)
	assert.Equal(t, "2", session.Answers[10])
	assert.Equal(t, 33, session.Progress)
}

func TestRecordAnswerRefusesDraftBank(t *testing.T) {
	svc, _, sessions := quizServiceForTest()
	ctx := context.Background()

	err := svc.RecordAnswer(ctx, 7, 2, 20, "false")
	assert.ErrorIs(t, err, util.ErrBankNotPublished)
	assert.Empty(t, sessions.data)
}

func TestRecordAnswerRejectsUnknownBankAndForeignQuestion(t *testing.T) {
	svc, _, _ := quizServiceForTest()
	ctx := context.Background()

	assert.ErrorIs(t, svc.RecordAnswer(ctx, 7, 99, 10, "2"), util.ErrBankNotFound)
	// Question 20 belongs to bank 2, not bank 1.
	assert.ErrorIs(t, svc.RecordAnswer(ctx, 7, 1, 20, "false"), util.ErrQuestionNotFound)
}

func TestSubmitRefusesIncompleteAndKeepsAnswers(t *testing.T) {
	svc, submissions, _ := quizServiceForTest()
	ctx := context.Background()

	require.NoError(t, svc.RecordAnswer(ctx, 7, 1, 10, "2"))

	_, err := svc.Submit(ctx, 7, 1)
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 2, incomplete.Remaining)
	assert.Equal(t, "2 soal lagi", incomplete.Error())

	// Nothing persisted, and the in-progress answers survive the refusal.
	assert.Empty(t, submissions.created)
	session, err := svc.GetSession(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, "2", session.Answers[10])
}

func TestSubmitScoresPersistsAndClearsSession(t *testing.T) {
	svc, submissions, sessions := quizServiceForTest()
	ctx := context.Background()

	require.NoError(t, svc.RecordAnswer(ctx, 7, 1, 10, "2"))
	require.NoError(t, svc.RecordAnswer(ctx, 7, 1, 11, "false"))
	require.NoError(t, svc.RecordAnswer(ctx, 7, 1, 12, "  Insulin "))

	result, err := svc.Submit(ctx, 7, 1)
	require.NoError(t, err)

	// Weights 2+1+3; the true/false answer is wrong, free response matches
	// after trimming and case folding.
	assert.Equal(t, 5, result.TotalScore)
	assert.Equal(t, 6, result.MaxScore)
	assert.Equal(t, 83, result.Percentage)
	assert.Equal(t, model.PreTest, result.TestType)
	assert.Equal(t, "test-submission", result.SubmissionID)

	require.Len(t, submissions.created, 1)
	stored := submissions.created[0]
	assert.Equal(t, uint(7), stored.UserID)
	assert.Equal(t, uint(1), stored.BankID)
	assert.Equal(t, 5, stored.TotalScore)

	assert.Empty(t, sessions.data)
	session, err := svc.GetSession(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Answered)
}

func TestSubmitRefusesDraftBank(t *testing.T) {
	svc, submissions, _ := quizServiceForTest()

	_, err := svc.Submit(context.Background(), 7, 2)
	assert.ErrorIs(t, err, util.ErrBankNotPublished)
	assert.Empty(t, submissions.created)
}
