package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

type failingGateway struct{}

func (failingGateway) Charge(_ context.Context, _ *models.Order) (*ChargeResult, error) {
	return nil, errors.New("gateway down")
}

func TestConfirmPaymentWritesPaymentAndConfirmsOrder(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "A", 10, 10)
	customer := env.createUser(t, "alice@example.com", constants.RoleCustomer)
	orderID := env.checkoutOrder(t, customer.ID, product.ID, 2)

	order, err := env.payments.ConfirmPayment(context.Background(), ConfirmPaymentInput{
		OrderID: orderID,
		UserID:  customer.ID,
		Role:    constants.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("confirm payment failed: %v", err)
	}
	if order.Status != constants.OrderStatusConfirmed || order.PaidAt == nil {
		t.Fatalf("unexpected order after payment: %+v", order)
	}

	var payments []models.Payment
	if err := env.db.Where("order_id = ?", orderID).Find(&payments).Error; err != nil {
		t.Fatalf("load payments failed: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected one payment row, got %d", len(payments))
	}
	if payments[0].Provider != constants.PaymentProviderStub || payments[0].ProviderRef == "" {
		t.Fatalf("unexpected payment row: %+v", payments[0])
	}
	if payments[0].Amount.String() != "20.00" {
		t.Fatalf("expected payment amount 20.00, got %s", payments[0].Amount.String())
	}
}

func TestConfirmPaymentTwiceReportsAlreadyConfirmed(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "A", 10, 10)
	customer := env.createUser(t, "alice@example.com", constants.RoleCustomer)
	orderID := env.checkoutOrder(t, customer.ID, product.ID, 1)
	input := ConfirmPaymentInput{OrderID: orderID, UserID: customer.ID, Role: constants.RoleCustomer}

	if _, err := env.payments.ConfirmPayment(context.Background(), input); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	if _, err := env.payments.ConfirmPayment(context.Background(), input); !errors.Is(err, ErrOrderAlreadyConfirmed) {
		t.Fatalf("expected ErrOrderAlreadyConfirmed, got %v", err)
	}
	if status := env.orderStatus(t, orderID); status != constants.OrderStatusConfirmed {
		t.Fatalf("expected order to stay Confirmed, got %s", status)
	}
	var count int64
	env.db.Model(&models.Payment{}).Where("order_id = ?", orderID).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single payment row, got %d", count)
	}
}

func TestConfirmPaymentOwnershipAndState(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "A", 10, 10)
	alice := env.createUser(t, "alice@example.com", constants.RoleCustomer)
	bob := env.createUser(t, "bob@example.com", constants.RoleCustomer)
	admin := env.createUser(t, "root@example.com", constants.RoleAdmin)
	orderID := env.checkoutOrder(t, alice.ID, product.ID, 1)

	_, err := env.payments.ConfirmPayment(context.Background(), ConfirmPaymentInput{OrderID: orderID, UserID: bob.ID, Role: constants.RoleCustomer})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got %v", err)
	}
	if _, err := env.payments.ConfirmPayment(context.Background(), ConfirmPaymentInput{OrderID: 999, UserID: alice.ID, Role: constants.RoleCustomer}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for missing order, got %v", err)
	}

	if _, err := env.orders.UpdateOrderStatus(orderID, constants.OrderStatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	_, err = env.payments.ConfirmPayment(context.Background(), ConfirmPaymentInput{OrderID: orderID, UserID: admin.ID, Role: constants.RoleAdmin})
	if !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid for cancelled order, got %v", err)
	}
}

func TestConfirmPaymentGatewayFailureLeavesOrderPending(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "A", 10, 10)
	customer := env.createUser(t, "alice@example.com", constants.RoleCustomer)
	orderID := env.checkoutOrder(t, customer.ID, product.ID, 1)

	svc := NewPaymentService(repository.NewOrderRepository(env.db), repository.NewPaymentRepository(env.db), failingGateway{})
	_, err := svc.ConfirmPayment(context.Background(), ConfirmPaymentInput{OrderID: orderID, UserID: customer.ID, Role: constants.RoleCustomer})
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("expected ErrPaymentFailed, got %v", err)
	}
	if status := env.orderStatus(t, orderID); status != constants.OrderStatusPendingPayment {
		t.Fatalf("expected order to stay pending, got %s", status)
	}
}
