package controller

import (
	"encoding/json"
	"errors"

	"gleam_backend/internal/service"
	"gleam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScreeningController struct {
	Service *service.ScreeningService
}

func NewScreeningController(svc *service.ScreeningService) *ScreeningController {
	return &ScreeningController{Service: svc}
}

// Predict godoc
// @Summary Run a diabetes-risk prediction for the signed-in patient
// @Description Forwards the feature payload to the scoring service and stores
// @Description the returned risk label and probability.
// @Tags screening
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body object true "feature payload"
// @Success 200 {object} util.Response
// @Failure 502 {object} util.Response "scoring service failure"
// @Router /api/patient/screening/predict [post]
func (c *ScreeningController) Predict(ctx *gin.Context) {
	var features json.RawMessage
	if err := ctx.ShouldBindJSON(&features); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	record, err := c.Service.Predict(ctx.Request.Context(), claims.UserID, features)
	if err != nil {
		var perr *service.PredictionError
		switch {
		case errors.As(err, &perr):
			util.Error(ctx, 502, perr.Message)
		case errors.Is(err, util.ErrPredictionDecode):
			util.Error(ctx, 502, "hasil prediksi tidak dapat dibaca, coba lagi")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, record)
}

// MyHistory godoc
// @Summary Screening history of the signed-in patient, newest first
// @Tags screening
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/patient/screening [get]
func (c *ScreeningController) MyHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	records, err := c.Service.HistoryForPatient(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, records)
}

// List godoc
// @Summary Paged screening records across patients, for health workers
// @Tags screening
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param risk query string false "filter by risk label"
// @Success 200 {object} util.Response
// @Router /api/health_worker/screenings [get]
func (c *ScreeningController) List(ctx *gin.Context) {
	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	records, total, err := c.Service.List(page, limit, ctx.Query("risk"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": records, "total": total, "page": page, "limit": limit})
}

// Get godoc
// @Summary One screening record by id
// @Tags screening
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "record id"
// @Success 200 {object} util.Response
// @Router /api/health_worker/screenings/{id} [get]
func (c *ScreeningController) Get(ctx *gin.Context) {
	record, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, record)
}
