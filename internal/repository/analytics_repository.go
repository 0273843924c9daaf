package repository

import (
	"time"

	"github.com/shopfront/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository 统计聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type AnalyticsRepository interface {
	ListOrderCreatedAt(startAt, endAt time.Time) ([]time.Time, error)
	ListCategoryQuantities() ([]CategoryQuantityRow, error)
}

// CategoryQuantityRow 分类销量原始行
type CategoryQuantityRow struct {
	Category string
	Quantity int64
}

// GormAnalyticsRepository GORM 统计实现
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository 创建统计仓库
func NewAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// ListOrderCreatedAt 返回 [startAt, endAt) 内订单的创建时间，按天分组在服务层完成
func (r *GormAnalyticsRepository) ListOrderCreatedAt(startAt, endAt time.Time) ([]time.Time, error) {
	var createdAt []time.Time
	if err := r.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Order("created_at ASC").
		Pluck("created_at", &createdAt).Error; err != nil {
		return nil, err
	}
	return createdAt, nil
}

// ListCategoryQuantities 按分类名汇总订单项数量，商品或分类已不存在的订单项不计入
func (r *GormAnalyticsRepository) ListCategoryQuantities() ([]CategoryQuantityRow, error) {
	var rows []CategoryQuantityRow
	err := r.db.Table("order_items").
		Select("categories.name AS category, COALESCE(SUM(order_items.quantity), 0) AS quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.deleted_at IS NULL").
		Joins("JOIN products ON products.id = order_items.product_id AND products.deleted_at IS NULL").
		Joins("JOIN categories ON categories.id = products.category_id AND categories.deleted_at IS NULL").
		Where("order_items.deleted_at IS NULL").
		Group("categories.name").
		Order("categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
