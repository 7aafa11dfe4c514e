package controller

import (
	"errors"

	"gleam_backend/internal/model"
	"gleam_backend/internal/service"
	"gleam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	Service *service.HistoryService
}

func NewHistoryController(svc *service.HistoryService) *HistoryController {
	return &HistoryController{Service: svc}
}

// MyHistory godoc
// @Summary Submission history for the signed-in patient
// @Tags history
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "filter: pre or post"
// @Success 200 {object} util.Response
// @Router /api/patient/riwayat [get]
func (c *HistoryController) MyHistory(ctx *gin.Context) {
	testType := model.TestType(ctx.Query("type"))
	if testType != "" && testType != model.PreTest && testType != model.PostTest {
		util.BadRequest(ctx, "type must be pre or post")
		return
	}

	claims := util.GetUserFromContext(ctx)
	items, err := c.Service.History(claims.UserID, testType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// MyDetail godoc
// @Summary Per-question review of one of the patient's submissions
// @Tags history
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "submission id"
// @Success 200 {object} util.Response
// @Router /api/patient/riwayat/{id} [get]
func (c *HistoryController) MyDetail(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	detail, err := c.Service.Detail(ctx.Param("id"), claims.UserID, true)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// ListSubmissions godoc
// @Summary Paged submission list for staff dashboards
// @Tags history
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param type query string false "filter: pre or post"
// @Param name query string false "filter by participant name"
// @Success 200 {object} util.Response
// @Router /api/management/submissions [get]
func (c *HistoryController) ListSubmissions(ctx *gin.Context) {
	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))
	testType := model.TestType(ctx.Query("type"))

	items, total, err := c.Service.List(page, limit, testType, ctx.Query("name"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// SubmissionDetail godoc
// @Summary Review of any submission, for staff
// @Tags history
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "submission id"
// @Success 200 {object} util.Response
// @Router /api/management/submissions/{id} [get]
func (c *HistoryController) SubmissionDetail(ctx *gin.Context) {
	detail, err := c.Service.Detail(ctx.Param("id"), 0, false)
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}
