package controller

import (
	"gleam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PortalController answers the per-segment home pages. By the time a request
// reaches it the guard has already normalized the path to the caller's own
// segment, so there is no authorization logic left here.
type PortalController struct{}

func NewPortalController() *PortalController {
	return &PortalController{}
}

var segmentMenus = map[string][]string{
	"admin":         {"users", "banks", "materials", "feedback"},
	"management":    {"reports", "submissions", "feedback"},
	"health_worker": {"patients", "screenings", "submissions"},
	"patient":       {"materials", "quiz", "history", "screening"},
}

// Home godoc
// @Summary Role home page under the protected portal root
// @Tags portal
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /portal/{segment} [get]
func (c *PortalController) Home(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	segment := string(claims.Role.Segment())
	util.Success(ctx, gin.H{
		"segment": segment,
		"name":    claims.Name,
		"menu":    segmentMenus[segment],
	})
}
