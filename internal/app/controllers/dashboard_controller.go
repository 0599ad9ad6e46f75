package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yusuf/campushub/internal/app/models/dto"
	"github.com/yusuf/campushub/internal/app/services"
	"github.com/yusuf/campushub/internal/middleware"
)

// DashboardController serves aggregate counts for the landing page
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetSummary returns entity totals and student distributions
// @Summary Dashboard summary
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardData} "Summary"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /dashboard/summary [get]
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	summary, err := c.dashboardService.GetSummary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}
