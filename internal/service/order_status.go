package service

import "github.com/shopfront/internal/constants"

// orderTransitions 订单状态流转表，未列出的目标状态一律拒绝
var orderTransitions = map[string][]string{
	constants.OrderStatusPendingPayment: {constants.OrderStatusConfirmed, constants.OrderStatusCancelled},
	constants.OrderStatusConfirmed:      {constants.OrderStatusShipped, constants.OrderStatusCancelled},
	constants.OrderStatusShipped:        {constants.OrderStatusDelivered, constants.OrderStatusCancelled},
	constants.OrderStatusDelivered:      {},
	constants.OrderStatusCancelled:      {},
}

// deliveryTransitions 配送状态流转表
var deliveryTransitions = map[string][]string{
	constants.DeliveryStatusPending:    {constants.DeliveryStatusInProgress, constants.DeliveryStatusCancelled},
	constants.DeliveryStatusInProgress: {constants.DeliveryStatusCompleted, constants.DeliveryStatusCancelled},
	constants.DeliveryStatusCompleted:  {},
	constants.DeliveryStatusCancelled:  {},
}

func isKnownOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

func isKnownDeliveryStatus(status string) bool {
	_, ok := deliveryTransitions[status]
	return ok
}

func isTransitionAllowed(from, to string) bool {
	return containsStatus(orderTransitions[from], to)
}

func isDeliveryTransitionAllowed(from, to string) bool {
	return containsStatus(deliveryTransitions[from], to)
}

func containsStatus(targets []string, status string) bool {
	for _, target := range targets {
		if target == status {
			return true
		}
	}
	return false
}

// orderStatusTimestampField 状态对应的时间戳字段
func orderStatusTimestampField(status string) string {
	switch status {
	case constants.OrderStatusConfirmed:
		return "paid_at"
	case constants.OrderStatusShipped:
		return "shipped_at"
	case constants.OrderStatusDelivered:
		return "delivered_at"
	case constants.OrderStatusCancelled:
		return "canceled_at"
	default:
		return ""
	}
}
