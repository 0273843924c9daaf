package service

import (
	"testing"

	"github.com/shopfront/internal/constants"
)

func TestOrderTransitions(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.OrderStatusPendingPayment, constants.OrderStatusConfirmed, true},
		{constants.OrderStatusPendingPayment, constants.OrderStatusCancelled, true},
		{constants.OrderStatusPendingPayment, constants.OrderStatusShipped, false},
		{constants.OrderStatusConfirmed, constants.OrderStatusShipped, true},
		{constants.OrderStatusConfirmed, constants.OrderStatusPendingPayment, false},
		{constants.OrderStatusShipped, constants.OrderStatusDelivered, true},
		{constants.OrderStatusShipped, constants.OrderStatusConfirmed, false},
		{constants.OrderStatusDelivered, constants.OrderStatusPendingPayment, false},
		{constants.OrderStatusDelivered, constants.OrderStatusCancelled, false},
		{constants.OrderStatusCancelled, constants.OrderStatusConfirmed, false},
		{"unknown", constants.OrderStatusConfirmed, false},
	}
	for _, tc := range cases {
		if got := isTransitionAllowed(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s: want %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestDeliveryTransitions(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.DeliveryStatusPending, constants.DeliveryStatusInProgress, true},
		{constants.DeliveryStatusPending, constants.DeliveryStatusCompleted, false},
		{constants.DeliveryStatusInProgress, constants.DeliveryStatusCompleted, true},
		{constants.DeliveryStatusInProgress, constants.DeliveryStatusCancelled, true},
		{constants.DeliveryStatusCompleted, constants.DeliveryStatusCancelled, false},
		{constants.DeliveryStatusCancelled, constants.DeliveryStatusPending, false},
	}
	for _, tc := range cases {
		if got := isDeliveryTransitionAllowed(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s: want %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestOrderStatusTimestampField(t *testing.T) {
	if got := orderStatusTimestampField(constants.OrderStatusConfirmed); got != "paid_at" {
		t.Fatalf("unexpected field for Confirmed: %s", got)
	}
	if got := orderStatusTimestampField(constants.OrderStatusCancelled); got != "canceled_at" {
		t.Fatalf("unexpected field for Cancelled: %s", got)
	}
	if got := orderStatusTimestampField(constants.OrderStatusPendingPayment); got != "" {
		t.Fatalf("expected no field for Pending Payment, got %s", got)
	}
}
