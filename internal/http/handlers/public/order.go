package public

import (
	handlershared "github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Checkout 购物车结算
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	result, err := h.OrderService.Checkout(uid)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, "error.order_create_failed")
		return
	}
	response.Success(c, result)
}

// ListOrderHistory 当前用户订单历史
func (h *Handler) ListOrderHistory(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	orders, total, err := h.OrderService.ListOrderHistory(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder 当前用户订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseUintParam(c, "id", "error.order_id_invalid")
	if !ok {
		return
	}
	detail, err := h.OrderService.GetOrderByID(uid, orderID)
	if err != nil {
		respondWithMappedError(c, err, orderReadErrorRules, "error.order_fetch_failed")
		return
	}
	response.Success(c, detail)
}
