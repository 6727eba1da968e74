package v1

import (
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler defines the interface for the aggregate dashboard view
type DashboardHandler interface {
	Summary(ctx *gin.Context)
}

type dashboardHandler struct {
	dashboardService dashboard.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary handles the GET request to assemble the dashboard aggregate
// @Summary Retrieve the dashboard summary
// @Description Assemble the license's aggregate view: open and overdue tasks, risk counts, minutes this month and seat usage.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Router /dashboard [get]
func (handler *dashboardHandler) Summary(ctx *gin.Context) {
	identity := currentIdentity(ctx)

	summary, err := handler.dashboardService.Summary(ctx.Request.Context(), identity.LicenseID, identity.UserID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("summary query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	summaryResponse := SummaryResponse{
		OpenTasks:            summary.OpenTasks,
		OverdueTasks:         summary.OverdueTasks,
		TasksDueThisWeek:     summary.TasksDueThisWeek,
		HighRiskClients:      summary.HighRiskClients,
		AmlReviewsOverdue:    summary.AmlReviewsOverdue,
		MinutesThisMonth:     summary.MinutesThisMonth,
		BillableMinutesMonth: summary.BillableMinutesMonth,
		ActiveClients:        summary.ActiveClients,
		ActiveUsers:          summary.ActiveUsers,
		SeatLimit:            summary.SeatLimit,
		SeatUsagePercent:     summary.SeatUsagePercent,
		UnreadNotifications:  summary.UnreadNotifications,
	}

	ctx.JSON(http.StatusOK, summaryResponse)
}
