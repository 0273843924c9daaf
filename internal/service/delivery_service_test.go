package service

import (
	"errors"
	"testing"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

func TestAssignDeliveryPartnerValidation(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "A", 10, 10)
	customer := env.createUser(t, "alice@example.com", constants.RoleCustomer)
	courier := env.createUser(t, "dan@example.com", constants.RoleDelivery)
	orderID := env.checkoutOrder(t, customer.ID, product.ID, 1)

	if _, err := env.deliveries.AssignDeliveryPartner(orderID, customer.ID); !errors.Is(err, ErrInvalidDeliveryPerson) {
		t.Fatalf("expected ErrInvalidDeliveryPerson for customer, got %v", err)
	}
	if _, err := env.deliveries.AssignDeliveryPartner(orderID, 9999); !errors.Is(err, ErrInvalidDeliveryPerson) {
		t.Fatalf("expected ErrInvalidDeliveryPerson for missing user, got %v", err)
	}
	if _, err := env.deliveries.AssignDeliveryPartner(9999, courier.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	// 未支付订单不能发货
	if _, err := env.deliveries.AssignDeliveryPartner(orderID, courier.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid for unpaid order, got %v", err)
	}
	if status := env.orderStatus(t, orderID); status != constants.OrderStatusPendingPayment {
		t.Fatalf("expected order untouched, got %s", status)
	}
}

func TestDeliveryLifecycleMarksOrderDelivered(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "A", 10, 10)
	customer := env.createUser(t, "alice@example.com", constants.RoleCustomer)
	courier := env.createUser(t, "dan@example.com", constants.RoleDelivery)
	other := env.createUser(t, "eve@example.com", constants.RoleDelivery)
	orderID := env.checkoutOrder(t, customer.ID, product.ID, 1)
	if _, err := env.orders.UpdateOrderStatus(orderID, constants.OrderStatusConfirmed); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	delivery, err := env.deliveries.AssignDeliveryPartner(orderID, courier.ID)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if delivery.Status != constants.DeliveryStatusPending {
		t.Fatalf("expected Pending delivery, got %s", delivery.Status)
	}
	if status := env.orderStatus(t, orderID); status != constants.OrderStatusShipped {
		t.Fatalf("expected order Shipped, got %s", status)
	}

	assigned, err := env.deliveries.ListAssignedOrders(courier.ID)
	if err != nil {
		t.Fatalf("list assigned failed: %v", err)
	}
	if len(assigned) != 1 || assigned[0].Order == nil || len(assigned[0].Order.Items) != 1 {
		t.Fatalf("unexpected assigned deliveries: %+v", assigned)
	}

	if _, err := env.deliveries.UpdateDeliveryStatus(other.ID, delivery.ID, constants.DeliveryStatusInProgress); !errors.Is(err, ErrDeliveryNotFound) {
		t.Fatalf("expected ErrDeliveryNotFound for other courier, got %v", err)
	}
	if _, err := env.deliveries.UpdateDeliveryStatus(courier.ID, delivery.ID, constants.DeliveryStatusCompleted); !errors.Is(err, ErrDeliveryStatusInvalid) {
		t.Fatalf("expected Pending->Completed rejected, got %v", err)
	}
	if _, err := env.deliveries.UpdateDeliveryStatus(courier.ID, delivery.ID, "Lost"); !errors.Is(err, ErrDeliveryStatusInvalid) {
		t.Fatalf("expected unknown status rejected, got %v", err)
	}
	if _, err := env.deliveries.UpdateDeliveryStatus(courier.ID, delivery.ID, constants.DeliveryStatusInProgress); err != nil {
		t.Fatalf("start delivery failed: %v", err)
	}
	updated, err := env.deliveries.UpdateDeliveryStatus(courier.ID, delivery.ID, constants.DeliveryStatusCompleted)
	if err != nil {
		t.Fatalf("complete delivery failed: %v", err)
	}
	if updated.Status != constants.DeliveryStatusCompleted || updated.CompletedAt == nil {
		t.Fatalf("unexpected delivery after completion: %+v", updated)
	}
	if status := env.orderStatus(t, orderID); status != constants.OrderStatusDelivered {
		t.Fatalf("expected order Delivered, got %s", status)
	}
}

func TestReassignRequiresNoActiveDelivery(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "A", 10, 10)
	customer := env.createUser(t, "alice@example.com", constants.RoleCustomer)
	first := env.createUser(t, "dan@example.com", constants.RoleDelivery)
	second := env.createUser(t, "eve@example.com", constants.RoleDelivery)
	orderID := env.checkoutOrder(t, customer.ID, product.ID, 1)
	if _, err := env.orders.UpdateOrderStatus(orderID, constants.OrderStatusConfirmed); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	delivery, err := env.deliveries.AssignDeliveryPartner(orderID, first.ID)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if _, err := env.deliveries.AssignDeliveryPartner(orderID, second.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected reassignment with active delivery rejected, got %v", err)
	}
	if _, err := env.deliveries.UpdateDeliveryStatus(first.ID, delivery.ID, constants.DeliveryStatusCancelled); err != nil {
		t.Fatalf("cancel delivery failed: %v", err)
	}
	reassigned, err := env.deliveries.AssignDeliveryPartner(orderID, second.ID)
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	if reassigned.DeliveryPersonID != second.ID {
		t.Fatalf("expected delivery for second courier, got %d", reassigned.DeliveryPersonID)
	}
	if status := env.orderStatus(t, orderID); status != constants.OrderStatusShipped {
		t.Fatalf("expected order to stay Shipped, got %s", status)
	}
}

func TestListDeliveryPartners(t *testing.T) {
	env := setupServiceTest(t)
	env.createUser(t, "alice@example.com", constants.RoleCustomer)
	env.createUser(t, "dan@example.com", constants.RoleDelivery)

	partners, err := env.deliveries.ListDeliveryPartners()
	if err != nil {
		t.Fatalf("list partners failed: %v", err)
	}
	if len(partners) != 1 || partners[0].Email != "dan@example.com" {
		t.Fatalf("unexpected partners: %+v", partners)
	}
}

// hookOrderRepo 在 GetByID 读取完成后执行一次 afterRead
type hookOrderRepo struct {
	repository.OrderRepository
	afterRead func()
}

func (r *hookOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, err := r.OrderRepository.GetByID(id)
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return order, err
}

func TestReassignRejectsOrderCancelledAfterRead(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "A", 10, 10)
	customer := env.createUser(t, "alice@example.com", constants.RoleCustomer)
	first := env.createUser(t, "dan@example.com", constants.RoleDelivery)
	second := env.createUser(t, "eve@example.com", constants.RoleDelivery)
	orderID := env.checkoutOrder(t, customer.ID, product.ID, 1)
	if _, err := env.orders.UpdateOrderStatus(orderID, constants.OrderStatusConfirmed); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := env.deliveries.AssignDeliveryPartner(orderID, first.ID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	hooked := &hookOrderRepo{OrderRepository: repository.NewOrderRepository(env.db)}
	hooked.afterRead = func() {
		if _, err := env.orders.UpdateOrderStatus(orderID, constants.OrderStatusCancelled); err != nil {
			t.Fatalf("cancel order failed: %v", err)
		}
	}
	svc := NewDeliveryService(repository.NewDeliveryRepository(env.db), hooked, repository.NewUserRepository(env.db))

	if _, err := svc.AssignDeliveryPartner(orderID, second.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid for cancelled order, got %v", err)
	}
	if status := env.orderStatus(t, orderID); status != constants.OrderStatusCancelled {
		t.Fatalf("expected order Cancelled, got %s", status)
	}
	var count int64
	if err := env.db.Model(&models.Delivery{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		t.Fatalf("count deliveries failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected no new delivery on cancelled order, got %d deliveries", count)
	}
}
