package admin

import (
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSalesAnalytics 按日统计订单数
func (h *Handler) GetSalesAnalytics(c *gin.Context) {
	points, err := h.AnalyticsService.OrderFrequency(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondWithMappedError(c, err, analyticsErrorRules, "error.analytics_fetch_failed")
		return
	}
	response.Success(c, points)
}

// GetProductAnalytics 按分类统计销量
func (h *Handler) GetProductAnalytics(c *gin.Context) {
	items, err := h.AnalyticsService.CategoryBreakdown()
	if err != nil {
		respondWithMappedError(c, err, analyticsErrorRules, "error.analytics_fetch_failed")
		return
	}
	response.Success(c, items)
}
