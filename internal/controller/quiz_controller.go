package controller

import (
	"errors"

	"gleam_backend/internal/model"
	"gleam_backend/internal/service"
	"gleam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service  *service.QuizService
	BankRepo interface {
		FindPublishedBankByType(testType model.TestType) (*model.QuestionBank, error)
	}
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc, BankRepo: svc.BankRepo}
}

// GetActiveBank godoc
// @Summary Resolve the currently published bank for a test type
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param type query string true "pre or post"
// @Success 200 {object} util.Response
// @Router /api/patient/quiz/active [get]
func (c *QuizController) GetActiveBank(ctx *gin.Context) {
	testType := model.TestType(ctx.Query("type"))
	if testType != model.PreTest && testType != model.PostTest {
		util.BadRequest(ctx, "type must be pre or post")
		return
	}

	bank, err := c.BankRepo.FindPublishedBankByType(testType)
	if err != nil {
		util.Error(ctx, 404, "no published bank for this test type")
		return
	}

	util.Success(ctx, gin.H{"bankId": bank.ID, "name": bank.Name, "testType": bank.TestType})
}

// LoadQuestions godoc
// @Summary Ordered question list of a published bank, without answer keys
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Success 200 {object} util.Response
// @Router /api/patient/quiz/{id}/questions [get]
func (c *QuizController) LoadQuestions(ctx *gin.Context) {
	bankID := util.MustParseUint(ctx.Param("id"))
	if bankID == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	view, err := c.Service.LoadQuestions(bankID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrBankNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrBankNotPublished):
			util.Error(ctx, 403, "kuisioner belum dipublikasikan")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

type RecordAnswerRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

// RecordAnswer godoc
// @Summary Record one answer into the in-progress session
// @Description Re-answering the same question overwrites the old value.
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Param body body RecordAnswerRequest true "answer"
// @Success 200 {object} util.Response
// @Router /api/patient/quiz/{id}/answers [post]
func (c *QuizController) RecordAnswer(ctx *gin.Context) {
	bankID := util.MustParseUint(ctx.Param("id"))
	if bankID == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.Service.RecordAnswer(ctx.Request.Context(), claims.UserID, bankID, req.QuestionID, req.Value); err != nil {
		switch {
		case errors.Is(err, util.ErrBankNotFound), errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrBankNotPublished):
			util.Error(ctx, 403, "kuisioner belum dipublikasikan")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	session, err := c.Service.GetSession(ctx.Request.Context(), claims.UserID, bankID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// GetSession godoc
// @Summary In-progress answers and derived progress for a bank
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Success 200 {object} util.Response
// @Router /api/patient/quiz/{id}/session [get]
func (c *QuizController) GetSession(ctx *gin.Context) {
	bankID := util.MustParseUint(ctx.Param("id"))
	if bankID == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	session, err := c.Service.GetSession(ctx.Request.Context(), claims.UserID, bankID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// AbandonSession godoc
// @Summary Discard the in-progress answers for a bank
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Success 200 {object} util.Response
// @Router /api/patient/quiz/{id}/session [delete]
func (c *QuizController) AbandonSession(ctx *gin.Context) {
	bankID := util.MustParseUint(ctx.Param("id"))
	if bankID == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.Service.ClearSession(ctx.Request.Context(), claims.UserID, bankID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"cleared": bankID})
}

// Submit godoc
// @Summary Score the session and store the immutable submission
// @Description Refused with the remaining count while any question is
// @Description unanswered; the in-progress answers are kept so the user can
// @Description finish and retry.
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Success 200 {object} util.Response
// @Failure 422 {object} util.Response "incomplete answers"
// @Router /api/patient/quiz/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	bankID := util.MustParseUint(ctx.Param("id"))
	if bankID == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.Service.Submit(ctx.Request.Context(), claims.UserID, bankID)
	if err != nil {
		var incomplete *service.IncompleteError
		switch {
		case errors.As(err, &incomplete):
			util.Error(ctx, 422, incomplete.Error())
		case errors.Is(err, util.ErrBankNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrBankNotPublished):
			util.Error(ctx, 403, "kuisioner belum dipublikasikan")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
