package admin

import (
	"strings"

	handlershared "github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 订单状态更新请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders 管理端订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	var userID uint
	if strings.TrimSpace(c.Query("user_id")) != "" {
		parsed, ok := handlershared.ParseUintQuery(c, "user_id", "error.bad_request")
		if !ok {
			return
		}
		userID = parsed
	}
	orders, total, err := h.OrderService.ListAdminOrders(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   strings.TrimSpace(c.Query("status")),
		OrderNo:  strings.TrimSpace(c.Query("order_no")),
	})
	if err != nil {
		respondWithMappedError(c, err, orderAdminErrorRules, "error.order_fetch_failed")
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder 管理端订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := handlershared.ParseUintParam(c, "id", "error.order_id_invalid")
	if !ok {
		return
	}
	detail, err := h.OrderService.GetAdminOrder(orderID)
	if err != nil {
		respondWithMappedError(c, err, orderAdminErrorRules, "error.order_fetch_failed")
		return
	}
	response.Success(c, detail)
}

// UpdateOrderStatus 管理端更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := handlershared.ParseUintParam(c, "id", "error.order_id_invalid")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderAdminErrorRules, "error.order_update_failed")
		return
	}
	response.Success(c, order)
}

// DeleteOrder 管理端删除订单
func (h *Handler) DeleteOrder(c *gin.Context) {
	orderID, ok := handlershared.ParseUintParam(c, "id", "error.order_id_invalid")
	if !ok {
		return
	}
	if err := h.OrderService.DeleteOrder(orderID); err != nil {
		respondWithMappedError(c, err, orderAdminErrorRules, "error.order_update_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
