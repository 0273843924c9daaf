package public

import (
	handlershared "github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// ConfirmPayment 确认订单支付
func (h *Handler) ConfirmPayment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseUintParam(c, "order_id", "error.order_id_invalid")
	if !ok {
		return
	}
	order, err := h.PaymentService.ConfirmPayment(c.Request.Context(), service.ConfirmPaymentInput{
		OrderID: orderID,
		UserID:  uid,
		Role:    handlershared.GetUserRole(c),
	})
	if err != nil {
		respondWithMappedError(c, err, paymentErrorRules, "error.payment_create_failed")
		return
	}
	response.Success(c, order)
}
