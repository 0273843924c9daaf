package service

import (
	"strings"
	"time"

	"github.com/shopfront/internal/repository"
)

const analyticsDateLayout = "2006-01-02"

// AnalyticsService 销售统计服务
type AnalyticsService struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService 创建统计服务
func NewAnalyticsService(repo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// OrderFrequencyPoint 每日订单数
type OrderFrequencyPoint struct {
	Day         string `json:"_id"`
	TotalOrders int64  `json:"totalOrders"`
}

// CategoryBreakdownItem 分类销量
type CategoryBreakdownItem struct {
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
}

// OrderFrequency 按服务器本地自然日统计 [startDate, endDate] 内的订单数
func (s *AnalyticsService) OrderFrequency(startDate, endDate string) ([]OrderFrequencyPoint, error) {
	startAt, endAt, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	createdAt, err := s.repo.ListOrderCreatedAt(startAt, endAt)
	if err != nil {
		return nil, err
	}

	points := make([]OrderFrequencyPoint, 0)
	index := make(map[string]int)
	for _, ts := range createdAt {
		day := ts.In(time.Local).Format(analyticsDateLayout)
		if i, ok := index[day]; ok {
			points[i].TotalOrders++
			continue
		}
		index[day] = len(points)
		points = append(points, OrderFrequencyPoint{Day: day, TotalOrders: 1})
	}
	return points, nil
}

// CategoryBreakdown 按分类汇总全部订单的商品数量
func (s *AnalyticsService) CategoryBreakdown() ([]CategoryBreakdownItem, error) {
	rows, err := s.repo.ListCategoryQuantities()
	if err != nil {
		return nil, err
	}
	items := make([]CategoryBreakdownItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, CategoryBreakdownItem{Category: row.Category, Quantity: row.Quantity})
	}
	return items, nil
}

// parseDateRange 严格解析 YYYY-MM-DD，返回 [start 00:00, end+1 00:00)
func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	startAt, err := time.ParseInLocation(analyticsDateLayout, strings.TrimSpace(startDate), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	endDay, err := time.ParseInLocation(analyticsDateLayout, strings.TrimSpace(endDate), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if startAt.After(endDay) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return startAt, endDay.AddDate(0, 0, 1), nil
}
