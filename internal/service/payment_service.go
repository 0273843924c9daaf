package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChargeResult 网关扣款结果
type ChargeResult struct {
	Provider    string
	ProviderRef string
	Status      string
	PaidAt      time.Time
}

// PaymentGateway 支付网关
type PaymentGateway interface {
	Charge(ctx context.Context, order *models.Order) (*ChargeResult, error)
}

// stubGateway 桩网关：总是扣款成功
type stubGateway struct{}

// NewStubGateway 创建桩网关
func NewStubGateway() PaymentGateway {
	return stubGateway{}
}

func (stubGateway) Charge(_ context.Context, _ *models.Order) (*ChargeResult, error) {
	return &ChargeResult{
		Provider:    constants.PaymentProviderStub,
		ProviderRef: uuid.NewString(),
		Status:      constants.PaymentStatusSuccess,
		PaidAt:      time.Now(),
	}, nil
}

// PaymentService 支付确认服务
type PaymentService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	gateway     PaymentGateway
}

// NewPaymentService 创建支付服务
func NewPaymentService(orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository, gateway PaymentGateway) *PaymentService {
	if gateway == nil {
		gateway = NewStubGateway()
	}
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}
}

// ConfirmPaymentInput 支付确认输入
type ConfirmPaymentInput struct {
	OrderID uint
	UserID  uint
	Role    string
}

// ConfirmPayment 确认支付：写入支付记录并将订单置为已确认
func (s *PaymentService) ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) (*models.Order, error) {
	var (
		order *models.Order
		err   error
	)
	// 顾客只能确认自己的订单
	if input.Role == constants.RoleCustomer {
		order, err = s.orderRepo.GetByIDAndUser(input.OrderID, input.UserID)
	} else {
		order, err = s.orderRepo.GetByID(input.OrderID)
	}
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == constants.OrderStatusConfirmed {
		return nil, ErrOrderAlreadyConfirmed
	}
	if !isTransitionAllowed(order.Status, constants.OrderStatusConfirmed) {
		return nil, ErrOrderStatusInvalid
	}

	charge, err := s.gateway.Charge(ctx, order)
	if err != nil {
		logger.Errorw("payment_gateway_charge_failed", "order_id", order.ID, "error", err)
		return nil, ErrPaymentFailed
	}
	if charge.Status != constants.PaymentStatusSuccess {
		return nil, ErrPaymentFailed
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.orderRepo.WithTx(tx).UpdateStatus(order.ID, order.Status, constants.OrderStatusConfirmed, map[string]interface{}{
			"paid_at":    charge.PaidAt,
			"updated_at": time.Now(),
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			// 并发确认时以先提交者为准
			latest, err := s.orderRepo.WithTx(tx).GetByID(order.ID)
			if err == nil && latest != nil && latest.Status == constants.OrderStatusConfirmed {
				return ErrOrderAlreadyConfirmed
			}
			return ErrOrderStatusInvalid
		}
		paidAt := charge.PaidAt
		return s.paymentRepo.WithTx(tx).Create(&models.Payment{
			OrderID:     order.ID,
			Provider:    charge.Provider,
			ProviderRef: charge.ProviderRef,
			Amount:      order.TotalAmount,
			Status:      charge.Status,
			PaidAt:      &paidAt,
		})
	})
	if err != nil {
		if errors.Is(err, ErrOrderAlreadyConfirmed) || errors.Is(err, ErrOrderStatusInvalid) {
			return nil, err
		}
		logger.Errorw("payment_confirm_failed", "order_id", order.ID, "error", err)
		return nil, ErrPaymentCreateFailed
	}
	logger.Infow("payment_confirmed", "order_id", order.ID, "provider", charge.Provider, "provider_ref", charge.ProviderRef)

	updated, err := s.orderRepo.GetByID(order.ID)
	if err != nil || updated == nil {
		return nil, ErrOrderFetchFailed
	}
	return updated, nil
}
