package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/app/services"
	"github.com/rbvitales/yearbook-api/internal/middleware"
)

// DashboardController handles the admin dashboard
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Overview returns entity totals and recent records
// @Summary Admin dashboard
// @Description Returns entity totals plus the most recently added students and albums
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dashboard [get]
func (c *DashboardController) Overview(ctx *gin.Context) {
	overview, err := c.dashboardService.Overview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      overview,
		Timestamp: time.Now(),
	})
}
