package repository

import (
	"errors"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"

	"gorm.io/gorm"
)

// DeliveryRepository 配送记录数据访问接口
type DeliveryRepository interface {
	Create(delivery *models.Delivery) error
	GetByID(id uint) (*models.Delivery, error)
	ListByDeliveryPerson(deliveryPersonID uint) ([]models.Delivery, error)
	ListByOrder(orderID uint) ([]models.Delivery, error)
	CountActiveByOrder(orderID uint) (int64, error)
	UpdateStatus(id uint, fromStatus, toStatus string, updates map[string]interface{}) (int64, error)
	DeleteByOrder(orderID uint) error
	WithTx(tx *gorm.DB) DeliveryRepository
}

// GormDeliveryRepository GORM 实现
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository 创建配送记录仓库
func NewDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormDeliveryRepository) WithTx(tx *gorm.DB) DeliveryRepository {
	if tx == nil {
		return r
	}
	return &GormDeliveryRepository{db: tx}
}

// Create 创建配送记录
func (r *GormDeliveryRepository) Create(delivery *models.Delivery) error {
	return r.db.Omit("Order", "DeliveryPerson").Create(delivery).Error
}

// GetByID 根据 ID 获取配送记录
func (r *GormDeliveryRepository) GetByID(id uint) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := r.db.First(&delivery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

// ListByDeliveryPerson 配送员名下的配送记录（含订单、订单项、下单用户）
func (r *GormDeliveryRepository) ListByDeliveryPerson(deliveryPersonID uint) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	if err := r.db.
		Preload("Order").
		Preload("Order.Items").
		Preload("Order.User").
		Where("delivery_person_id = ?", deliveryPersonID).
		Order("created_at DESC, id DESC").
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// ListByOrder 订单的配送记录
func (r *GormDeliveryRepository) ListByOrder(orderID uint) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	if err := r.db.Preload("DeliveryPerson").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// CountActiveByOrder 统计订单进行中的配送记录
func (r *GormDeliveryRepository) CountActiveByOrder(orderID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Delivery{}).
		Where("order_id = ? AND status IN ?", orderID, []string{constants.DeliveryStatusPending, constants.DeliveryStatusInProgress}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus 仅当当前状态为 fromStatus 时更新
func (r *GormDeliveryRepository) UpdateStatus(id uint, fromStatus, toStatus string, updates map[string]interface{}) (int64, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = toStatus
	result := r.db.Model(&models.Delivery{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteByOrder 删除订单的全部配送记录
func (r *GormDeliveryRepository) DeleteByOrder(orderID uint) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.Delivery{}).Error
}
