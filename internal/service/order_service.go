package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo             repository.OrderRepository
	cartRepo              repository.CartRepository
	deliveryRepo          repository.DeliveryRepository
	paymentRepo           repository.PaymentRepository
	estimatedDeliveryDays int
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, deliveryRepo repository.DeliveryRepository, paymentRepo repository.PaymentRepository, estimatedDeliveryDays int) *OrderService {
	if estimatedDeliveryDays <= 0 {
		estimatedDeliveryDays = constants.DefaultEstimatedDeliveryDays
	}
	return &OrderService{
		orderRepo:             orderRepo,
		cartRepo:              cartRepo,
		deliveryRepo:          deliveryRepo,
		paymentRepo:           paymentRepo,
		estimatedDeliveryDays: estimatedDeliveryDays,
	}
}

// CheckoutResult 结算结果
type CheckoutResult struct {
	OrderID     uint         `json:"order_id"`
	OrderNo     string       `json:"order_no"`
	TotalAmount models.Money `json:"total_amount"`
	Status      string       `json:"status"`
}

// OrderItemView 订单项（含小计）
type OrderItemView struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	Quantity  int          `json:"quantity"`
	LineTotal models.Money `json:"line_total"`
}

// OrderCustomer 下单用户信息
type OrderCustomer struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address *models.Address `json:"address,omitempty"`
}

// OrderDetail 订单详情
type OrderDetail struct {
	ID                uint            `json:"id"`
	OrderNo           string          `json:"order_no"`
	Status            string          `json:"status"`
	TotalAmount       models.Money    `json:"total_amount"`
	Items             []OrderItemView `json:"items"`
	Customer          *OrderCustomer  `json:"customer,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
}

// AdminOrderDetail 管理端订单详情
type AdminOrderDetail struct {
	OrderDetail
	UserID     uint              `json:"user_id"`
	Deliveries []models.Delivery `json:"deliveries"`
	Payments   []models.Payment  `json:"payments"`
}

// Checkout 将购物车结算为订单，订单创建与清空购物车在同一事务内
func (s *OrderService) Checkout(userID uint) (*CheckoutResult, error) {
	var order *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.GetByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(cart.Items))
		lineIDs := make([]uint, 0, len(cart.Items))
		for _, line := range cart.Items {
			lineIDs = append(lineIDs, line.ID)
			if line.Product == nil {
				return ErrProductNotFound
			}
			item := models.OrderItem{
				ProductID: line.ProductID,
				Name:      line.Product.Name,
				Price:     line.Product.Price,
				Quantity:  line.Quantity,
			}
			total = total.Add(item.LineTotal().Decimal)
			items = append(items, item)
		}

		order = &models.Order{
			OrderNo:     generateOrderNo(),
			UserID:      userID,
			Status:      constants.OrderStatusPendingPayment,
			TotalAmount: models.NewMoneyFromDecimal(total),
		}
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		// 读取后被并发删除的行不能进入订单
		affected, err := cartRepo.DeleteItems(cart.ID, lineIDs)
		if err != nil {
			return err
		}
		if affected != int64(len(lineIDs)) {
			return ErrCartChanged
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) || errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrCartChanged) {
			return nil, err
		}
		logger.Errorw("order_checkout_failed", "user_id", userID, "error", err)
		return nil, ErrOrderCreateFailed
	}
	logger.Infow("order_checkout_created", "user_id", userID, "order_id", order.ID, "order_no", order.OrderNo, "total_amount", order.TotalAmount.String())
	return &CheckoutResult{
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
	}, nil
}

// GetOrderByID 获取当前用户的订单详情
func (s *OrderService) GetOrderByID(userID, orderID uint) (*OrderDetail, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.buildOrderDetail(order), nil
}

// ListOrderHistory 当前用户订单列表（最新优先），无订单时返回空列表
func (s *OrderService) ListOrderHistory(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	orders, total, err := s.orderRepo.ListByUser(repository.OrderListFilter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}

// ListAdminOrders 管理端订单列表
func (s *OrderService) ListAdminOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" && !isKnownOrderStatus(filter.Status) {
		return nil, 0, ErrOrderStatusInvalid
	}
	orders, total, err := s.orderRepo.ListAdmin(filter)
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}

// GetAdminOrder 管理端订单详情（含配送与支付记录）
func (s *OrderService) GetAdminOrder(orderID uint) (*AdminOrderDetail, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	deliveries, err := s.deliveryRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	payments, err := s.paymentRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	return &AdminOrderDetail{
		OrderDetail: *s.buildOrderDetail(order),
		UserID:      order.UserID,
		Deliveries:  deliveries,
		Payments:    payments,
	}, nil
}

// UpdateOrderStatus 管理端更新订单状态，仅允许流转表中的状态变更
func (s *OrderService) UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	target := strings.TrimSpace(status)
	if !isKnownOrderStatus(target) {
		return nil, ErrOrderStatusInvalid
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"updated_at": now}
		if field := orderStatusTimestampField(target); field != "" {
			updates[field] = now
		}
		affected, err := s.orderRepo.WithTx(tx).UpdateStatus(order.ID, order.Status, target, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStatusInvalid
		}
		if target != constants.OrderStatusCancelled {
			return nil
		}
		// 取消订单时同步取消进行中的配送
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		deliveries, err := deliveryRepo.ListByOrder(order.ID)
		if err != nil {
			return err
		}
		for _, delivery := range deliveries {
			if !isDeliveryTransitionAllowed(delivery.Status, constants.DeliveryStatusCancelled) {
				continue
			}
			if _, err := deliveryRepo.UpdateStatus(delivery.ID, delivery.Status, constants.DeliveryStatusCancelled, map[string]interface{}{"updated_at": now}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOrderStatusInvalid) {
			return nil, err
		}
		logger.Errorw("order_update_status_failed", "order_id", orderID, "status", target, "error", err)
		return nil, ErrOrderUpdateFailed
	}
	logger.Infow("order_status_updated", "order_id", order.ID, "from", order.Status, "to", target)
	return s.reload(order.ID)
}

// DeleteOrder 管理端删除订单，订单项与配送记录一并删除
func (s *OrderService) DeleteOrder(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return ErrOrderFetchFailed
	}
	if order == nil {
		return ErrOrderNotFound
	}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.deliveryRepo.WithTx(tx).DeleteByOrder(order.ID); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).Delete(order.ID)
	})
	if err != nil {
		logger.Errorw("order_delete_failed", "order_id", orderID, "error", err)
		return ErrOrderUpdateFailed
	}
	return nil
}

func (s *OrderService) reload(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) buildOrderDetail(order *models.Order) *OrderDetail {
	detail := &OrderDetail{
		ID:                order.ID,
		OrderNo:           order.OrderNo,
		Status:            order.Status,
		TotalAmount:       order.TotalAmount,
		Items:             make([]OrderItemView, 0, len(order.Items)),
		CreatedAt:         order.CreatedAt,
		EstimatedDelivery: order.CreatedAt.AddDate(0, 0, s.estimatedDeliveryDays),
	}
	for _, item := range order.Items {
		detail.Items = append(detail.Items, OrderItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}
	if order.User != nil {
		detail.Customer = &OrderCustomer{
			Name:  order.User.Name,
			Email: order.User.Email,
			Phone: order.User.Phone,
		}
		if !order.User.Address.IsEmpty() {
			address := order.User.Address
			detail.Customer.Address = &address
		}
	}
	return detail
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("%s%s%s", constants.OrderNoPrefix, now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(n.String())
	}
	return b.String()
}
