package public

import (
	handlershared "github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// DeliveryStatusRequest 配送状态更新请求
type DeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListAssignedOrders 当前配送员名下的订单
func (h *Handler) ListAssignedOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	deliveries, err := h.DeliveryService.ListAssignedOrders(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.delivery_fetch_failed", err)
		return
	}
	response.Success(c, deliveries)
}

// UpdateDeliveryStatus 配送员更新配送状态
func (h *Handler) UpdateDeliveryStatus(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	deliveryID, ok := handlershared.ParseUintParam(c, "id", "error.delivery_id_invalid")
	if !ok {
		return
	}
	var req DeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	delivery, err := h.DeliveryService.UpdateDeliveryStatus(uid, deliveryID, req.Status)
	if err != nil {
		respondWithMappedError(c, err, deliveryStatusErrorRules, "error.delivery_update_failed")
		return
	}
	response.Success(c, delivery)
}
