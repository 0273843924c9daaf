package models

import (
	"time"

	"gorm.io/gorm"
)

// Delivery 配送记录（订单与配送员的关联）
type Delivery struct {
	ID               uint           `gorm:"primarykey" json:"id"`                          // 主键
	OrderID          uint           `gorm:"index;not null" json:"order_id"`                // 订单ID
	DeliveryPersonID uint           `gorm:"index;not null" json:"delivery_person_id"`      // 配送员用户ID
	Status           string         `gorm:"type:varchar(32);index;not null" json:"status"` // 配送状态
	CompletedAt      *time.Time     `json:"completed_at"`                                  // 完成时间
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt        time.Time      `gorm:"index" json:"updated_at"`                       // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除时间

	Order          *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`                    // 关联订单
	DeliveryPerson *User  `gorm:"foreignKey:DeliveryPersonID" json:"delivery_person,omitempty"` // 配送员
}

// TableName 指定表名
func (Delivery) TableName() string {
	return "deliveries"
}
