package controller

import (
	"errors"

	"gleam_backend/internal/service"
	"gleam_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContentController struct {
	Service *service.ContentService
}

func NewContentController(svc *service.ContentService) *ContentController {
	return &ContentController{Service: svc}
}

// ListPublished godoc
// @Summary Published educational materials, optionally by category
// @Tags content
// @Produce json
// @Param category query string false "category"
// @Success 200 {object} util.Response
// @Router /api/materials [get]
func (c *ContentController) ListPublished(ctx *gin.Context) {
	materials, err := c.Service.ListPublished(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, materials)
}

// GetMaterial godoc
// @Summary One material by id
// @Tags content
// @Produce json
// @Param id path int true "material id"
// @Success 200 {object} util.Response
// @Router /api/materials/{id} [get]
func (c *ContentController) GetMaterial(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	material, err := c.Service.GetMaterial(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, material)
}

// CreateMaterial godoc
// @Summary Create an educational material
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.MaterialRequest true "material"
// @Success 201 {object} util.Response
// @Router /api/admin/materials [post]
func (c *ContentController) CreateMaterial(ctx *gin.Context) {
	var req service.MaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	material, err := c.Service.CreateMaterial(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, material)
}

// ListAll godoc
// @Summary Paged material list including drafts, for admins
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/admin/materials [get]
func (c *ContentController) ListAll(ctx *gin.Context) {
	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	materials, total, err := c.Service.ListAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": materials, "total": total, "page": page, "limit": limit})
}

// UpdateMaterial godoc
// @Summary Update an educational material
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "material id"
// @Param body body service.MaterialRequest true "material"
// @Success 200 {object} util.Response
// @Router /api/admin/materials/{id} [put]
func (c *ContentController) UpdateMaterial(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.MaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material, err := c.Service.UpdateMaterial(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, material)
}

type PublishMaterialRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// SetPublished godoc
// @Summary Publish or unpublish a material
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "material id"
// @Param body body PublishMaterialRequest true "publish flag"
// @Success 200 {object} util.Response
// @Router /api/admin/materials/{id}/publish [patch]
func (c *ContentController) SetPublished(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req PublishMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material, err := c.Service.SetPublished(id, *req.Published)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, material)
}

// DeleteMaterial godoc
// @Summary Delete a material
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "material id"
// @Success 200 {object} util.Response
// @Router /api/admin/materials/{id} [delete]
func (c *ContentController) DeleteMaterial(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteMaterial(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// UploadFile godoc
// @Summary Upload an attachment for a material
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "image or PDF"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response "unsupported file type"
// @Router /api/admin/materials/upload [post]
func (c *ContentController) UploadFile(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.Service.UploadFile(ctx.Request.Context(), file)
	if err != nil {
		if errors.Is(err, util.ErrInvalidUploadType) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"url": url})
}
