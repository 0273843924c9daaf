package admin

import (
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AssignDeliveryRequest 指派配送员请求
type AssignDeliveryRequest struct {
	OrderID          uint `json:"order_id" binding:"required"`
	DeliveryPersonID uint `json:"delivery_person_id" binding:"required"`
}

// ListDeliveryPartners 配送员列表
func (h *Handler) ListDeliveryPartners(c *gin.Context) {
	partners, err := h.DeliveryService.ListDeliveryPartners()
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	response.Success(c, partners)
}

// AssignDelivery 为订单指派配送员
func (h *Handler) AssignDelivery(c *gin.Context) {
	var req AssignDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	delivery, err := h.DeliveryService.AssignDeliveryPartner(req.OrderID, req.DeliveryPersonID)
	if err != nil {
		respondWithMappedError(c, err, assignErrorRules, "error.delivery_update_failed")
		return
	}
	response.Success(c, delivery)
}
