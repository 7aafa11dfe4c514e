package controller

import (
	"gleam_backend/internal/service"
	"gleam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Service *service.FeedbackService
}

func NewFeedbackController(svc *service.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: svc}
}

// Create godoc
// @Summary Leave website feedback
// @Description Works with or without a session; signed-in users get their id
// @Description attached to the entry.
// @Tags feedback
// @Accept json
// @Produce json
// @Param body body service.FeedbackRequest true "feedback"
// @Success 201 {object} util.Response
// @Router /api/feedback [post]
func (c *FeedbackController) Create(ctx *gin.Context) {
	var req service.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var userID *uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = &claims.UserID
	}

	entry, err := c.Service.Create(userID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, entry)
}

// List godoc
// @Summary Paged feedback entries with the overall average rating
// @Tags feedback
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/admin/feedback [get]
func (c *FeedbackController) List(ctx *gin.Context) {
	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	overview, err := c.Service.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}
