package controller

import (
	"errors"
	"strconv"

	"gleam_backend/internal/service"
	"gleam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BankController struct {
	Service *service.BankService
}

func NewBankController(svc *service.BankService) *BankController {
	return &BankController{Service: svc}
}

// CreateBank godoc
// @Summary Create a question bank
// @Tags banks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.BankRequest true "bank payload"
// @Success 201 {object} util.Response
// @Router /api/admin/banks [post]
func (c *BankController) CreateBank(ctx *gin.Context) {
	var req service.BankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	b, err := c.Service.CreateBank(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, b)
}

// ListBanks godoc
// @Summary List question banks
// @Tags banks
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param status query string false "draft or published"
// @Success 200 {object} util.Response
// @Router /api/admin/banks [get]
func (c *BankController) ListBanks(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	status := ctx.Query("status")

	banks, total, err := c.Service.ListBanks(page, limit, status)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": banks, "total": total})
}

// GetBank godoc
// @Summary Bank detail with question count
// @Tags banks
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Success 200 {object} util.Response
// @Router /api/admin/banks/{id} [get]
func (c *BankController) GetBank(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	b, err := c.Service.GetBank(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, b)
}

// UpdateBank godoc
// @Summary Update bank name, description or test type
// @Tags banks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Param body body service.BankRequest true "bank payload"
// @Success 200 {object} util.Response
// @Router /api/admin/banks/{id} [put]
func (c *BankController) UpdateBank(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.BankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	b, err := c.Service.UpdateBank(id, req)
	if err != nil {
		if errors.Is(err, util.ErrBankNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, b)
}

// PublishBank godoc
// @Summary Publish a draft bank
// @Tags banks
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Success 200 {object} util.Response
// @Router /api/admin/banks/{id}/publish [post]
func (c *BankController) PublishBank(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	b, err := c.Service.PublishBank(id)
	if err != nil {
		if errors.Is(err, util.ErrBankNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, b)
}

// DeleteBank godoc
// @Summary Delete a bank and its questions
// @Tags banks
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Success 200 {object} util.Response
// @Router /api/admin/banks/{id} [delete]
func (c *BankController) DeleteBank(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteBank(id); err != nil {
		if errors.Is(err, util.ErrBankHasSubmission) {
			util.Error(ctx, 409, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// CreateQuestion godoc
// @Summary Add a question to a bank
// @Tags banks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Param body body service.QuestionRequest true "question payload"
// @Success 201 {object} util.Response
// @Router /api/admin/banks/{id}/questions [post]
func (c *BankController) CreateQuestion(ctx *gin.Context) {
	bankID := util.MustParseUint(ctx.Param("id"))
	if bankID == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(bankID, req)
	if err != nil {
		if errors.Is(err, util.ErrBankNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, q)
}

// ListQuestions godoc
// @Summary List a bank's questions with answer keys
// @Tags banks
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "bank id"
// @Success 200 {object} util.Response
// @Router /api/admin/banks/{id}/questions [get]
func (c *BankController) ListQuestions(ctx *gin.Context) {
	bankID := util.MustParseUint(ctx.Param("id"))
	if bankID == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	qs, err := c.Service.ListQuestions(bankID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, qs)
}

// UpdateQuestion godoc
// @Summary Edit a question
// @Tags banks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param qid path int true "question id"
// @Param body body service.QuestionRequest true "question payload"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{qid} [put]
func (c *BankController) UpdateQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("qid"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(id, req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, q)
}

// DeleteQuestion godoc
// @Summary Remove a question
// @Tags banks
// @Produce json
// @Security ApiKeyAuth
// @Param qid path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{qid} [delete]
func (c *BankController) DeleteQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("qid"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteQuestion(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
