package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（顾客、管理员、配送员共用）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                           // 主键
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`                         // 姓名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`                              // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                                              // 密码哈希（不返回给前端）
	Role         string         `gorm:"type:varchar(20);index;not null;default:'customer'" json:"role"` // 角色
	Status       string         `gorm:"default:'active'" json:"status"`                                 // 账号状态
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"`                                    // Token 版本（用于全量失效）
	Phone        string         `gorm:"type:varchar(32);default:''" json:"phone"`                       // 手机号
	Address      Address        `gorm:"embedded;embeddedPrefix:address_" json:"address"`                // 收货地址
	LastLoginAt  *time.Time     `json:"last_login_at"`                                                  // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                                        // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                                 // 软删除时间
}

// Address 地址（内嵌于用户表）
type Address struct {
	Street     string `gorm:"type:varchar(255);default:''" json:"street"`
	City       string `gorm:"type:varchar(100);default:''" json:"city"`
	State      string `gorm:"type:varchar(100);default:''" json:"state"`
	PostalCode string `gorm:"type:varchar(20);default:''" json:"postal_code"`
	Country    string `gorm:"type:varchar(100);default:''" json:"country"`
}

// IsEmpty 地址是否未填写
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.PostalCode == "" && a.Country == ""
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
