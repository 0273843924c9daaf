package service

import (
	"errors"
	"strings"
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"gorm.io/gorm"
)

// DeliveryService 配送服务
type DeliveryService struct {
	deliveryRepo repository.DeliveryRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
}

// NewDeliveryService 创建配送服务
func NewDeliveryService(deliveryRepo repository.DeliveryRepository, orderRepo repository.OrderRepository, userRepo repository.UserRepository) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
	}
}

// DeliveryPartner 配送员（用于响应）
type DeliveryPartner struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AssignDeliveryPartner 为订单指派配送员，创建配送记录并将订单置为已发货
func (s *DeliveryService) AssignDeliveryPartner(orderID, deliveryPersonID uint) (*models.Delivery, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	person, err := s.userRepo.GetByID(deliveryPersonID)
	if err != nil {
		return nil, ErrDeliveryUpdateFailed
	}
	if person == nil || person.Role != constants.RoleDelivery || person.Status != constants.UserStatusActive {
		return nil, ErrInvalidDeliveryPerson
	}
	if order.Status != constants.OrderStatusShipped && !isTransitionAllowed(order.Status, constants.OrderStatusShipped) {
		return nil, ErrOrderStatusInvalid
	}

	delivery := &models.Delivery{
		OrderID:          order.ID,
		DeliveryPersonID: person.ID,
		Status:           constants.DeliveryStatusPending,
	}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		// 状态以事务内加锁读取为准
		locked, err := orderRepo.GetByIDForUpdate(order.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrOrderNotFound
		}
		switch {
		case locked.Status == constants.OrderStatusShipped:
			// 已发货订单仅在没有进行中的配送时允许改派，订单状态保持不变
			active, err := deliveryRepo.CountActiveByOrder(locked.ID)
			if err != nil {
				return err
			}
			if active > 0 {
				return ErrOrderStatusInvalid
			}
		case isTransitionAllowed(locked.Status, constants.OrderStatusShipped):
			now := time.Now()
			affected, err := orderRepo.UpdateStatus(locked.ID, locked.Status, constants.OrderStatusShipped, map[string]interface{}{
				"shipped_at": now,
				"updated_at": now,
			})
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrOrderStatusInvalid
			}
		default:
			return ErrOrderStatusInvalid
		}
		return deliveryRepo.Create(delivery)
	})
	if err != nil {
		if errors.Is(err, ErrOrderStatusInvalid) || errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
		logger.Errorw("delivery_assign_failed", "order_id", orderID, "delivery_person_id", deliveryPersonID, "error", err)
		return nil, ErrDeliveryUpdateFailed
	}
	logger.Infow("delivery_assigned", "order_id", order.ID, "delivery_id", delivery.ID, "delivery_person_id", person.ID)
	return delivery, nil
}

// ListDeliveryPartners 全部配送员
func (s *DeliveryService) ListDeliveryPartners() ([]DeliveryPartner, error) {
	users, err := s.userRepo.ListByRole(constants.RoleDelivery)
	if err != nil {
		return nil, err
	}
	partners := make([]DeliveryPartner, 0, len(users))
	for _, user := range users {
		partners = append(partners, DeliveryPartner{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		})
	}
	return partners, nil
}

// ListAssignedOrders 当前配送员名下的配送记录（含订单与订单项）
func (s *DeliveryService) ListAssignedOrders(deliveryPersonID uint) ([]models.Delivery, error) {
	deliveries, err := s.deliveryRepo.ListByDeliveryPerson(deliveryPersonID)
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}

// UpdateDeliveryStatus 配送员更新配送状态，完成配送时订单同步置为已送达
func (s *DeliveryService) UpdateDeliveryStatus(deliveryPersonID, deliveryID uint, status string) (*models.Delivery, error) {
	target := strings.TrimSpace(status)
	if !isKnownDeliveryStatus(target) {
		return nil, ErrDeliveryStatusInvalid
	}
	delivery, err := s.deliveryRepo.GetByID(deliveryID)
	if err != nil {
		return nil, ErrDeliveryUpdateFailed
	}
	if delivery == nil || delivery.DeliveryPersonID != deliveryPersonID {
		return nil, ErrDeliveryNotFound
	}
	if !isDeliveryTransitionAllowed(delivery.Status, target) {
		return nil, ErrDeliveryStatusInvalid
	}

	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"updated_at": now}
		if target == constants.DeliveryStatusCompleted {
			updates["completed_at"] = now
		}
		affected, err := s.deliveryRepo.WithTx(tx).UpdateStatus(delivery.ID, delivery.Status, target, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrDeliveryStatusInvalid
		}
		if target != constants.DeliveryStatusCompleted {
			return nil
		}
		orderRepo := s.orderRepo.WithTx(tx)
		order, err := orderRepo.GetByID(delivery.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !isTransitionAllowed(order.Status, constants.OrderStatusDelivered) {
			return ErrOrderStatusInvalid
		}
		affected, err = orderRepo.UpdateStatus(order.ID, order.Status, constants.OrderStatusDelivered, map[string]interface{}{
			"delivered_at": now,
			"updated_at":   now,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStatusInvalid
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDeliveryStatusInvalid) || errors.Is(err, ErrOrderStatusInvalid) || errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
		logger.Errorw("delivery_update_status_failed", "delivery_id", deliveryID, "status", target, "error", err)
		return nil, ErrDeliveryUpdateFailed
	}

	updated, err := s.deliveryRepo.GetByID(delivery.ID)
	if err != nil || updated == nil {
		return nil, ErrDeliveryUpdateFailed
	}
	return updated, nil
}
