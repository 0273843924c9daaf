package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment 支付记录（网关为桩实现，确认即成功）
type Payment struct {
	ID          uint           `gorm:"primarykey" json:"id"`                      // 主键
	OrderID     uint           `gorm:"index;not null" json:"order_id"`            // 订单ID
	Provider    string         `gorm:"type:varchar(32);not null" json:"provider"` // 支付提供方
	ProviderRef string         `gorm:"index" json:"provider_ref"`                 // 第三方流水号
	Amount      Money          `gorm:"type:decimal(20,2);not null" json:"amount"` // 支付金额
	Status      string         `gorm:"index;not null" json:"status"`              // 支付状态
	PaidAt      *time.Time     `gorm:"index" json:"paid_at"`                      // 支付时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                   // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                            // 软删除时间
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
