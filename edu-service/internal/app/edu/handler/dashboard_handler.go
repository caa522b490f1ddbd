package handler

import (
	"net/http"

	"aussieedu/edu-service/internal/app/edu/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler отдает агрегированную статистику по отзывам
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler создает обработчик дашборда
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats обрабатывает GET /api/dashboard
// Статистика считается на каждый запрос, без кеша
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.ComputeDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Not found")
		return
	}

	c.JSON(http.StatusOK, stats)
}
