package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"golang.org/x/sync/singleflight"
)

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	sfg          singleflight.Group
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput 商品创建/更新输入
type ProductInput struct {
	CategoryID  uint
	Name        string
	Description string
	Price       models.Money
	Stock       int
	IsActive    *bool
}

// ProductSearchInput 商品检索输入
type ProductSearchInput struct {
	Page     int
	PageSize int
	Name     string
	Category string
	MinPrice *models.Money
	MaxPrice *models.Money
}

// List 上架商品列表
func (s *ProductService) List(page, pageSize int) ([]models.Product, int64, error) {
	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		OnlyActive:   true,
		WithCategory: true,
	})
	if err != nil {
		return nil, 0, ErrProductFetchFailed
	}
	return products, total, nil
}

// Search 按名称、分类、价格区间检索上架商品
func (s *ProductService) Search(input ProductSearchInput) ([]models.Product, int64, error) {
	if input.MinPrice != nil && input.MaxPrice != nil && input.MinPrice.GreaterThan(input.MaxPrice.Decimal) {
		return nil, 0, ErrInvalidInput
	}
	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     input.PageSize,
		Search:       input.Name,
		CategoryName: input.Category,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		OnlyActive:   true,
		WithCategory: true,
	})
	if err != nil {
		return nil, 0, ErrProductFetchFailed
	}
	return products, total, nil
}

// GetByID 获取上架商品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// load 读取商品，缓存未命中时合并并发回源
func (s *ProductService) load(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	ctx := context.Background()
	if cached, hit, err := cache.GetProduct(ctx, id); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("product_cache_get_failed", "product_id", id, "error", err)
	}

	v, err, shared := s.sfg.Do(strconv.FormatUint(uint64(id), 10), func() (interface{}, error) {
		logger.Debugw("product_cache_miss", "product_id", id)
		product, err := s.productRepo.GetByID(id)
		if err != nil {
			return nil, ErrProductFetchFailed
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if err := cache.SetProduct(ctx, product); err != nil {
			logger.Warnw("product_cache_set_failed", "product_id", id, "error", err)
		}
		return product, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debugw("product_load_coalesced", "product_id", id)
	}
	return v.(*models.Product), nil
}

// Create 管理端创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	product := &models.Product{
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       models.NewMoneyFromDecimal(input.Price.Decimal),
		Stock:       input.Stock,
		IsActive:    true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Create(product); err != nil {
		logger.Errorw("product_create_failed", "name", product.Name, "error", err)
		return nil, ErrProductUpdateFailed
	}
	return product, nil
}

// Update 管理端更新商品
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, ErrProductFetchFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	product.CategoryID = input.CategoryID
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = models.NewMoneyFromDecimal(input.Price.Decimal)
	product.Stock = input.Stock
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.Category = nil
	if err := s.productRepo.Update(product); err != nil {
		logger.Errorw("product_update_failed", "product_id", id, "error", err)
		return nil, ErrProductUpdateFailed
	}
	s.invalidate(id)
	return product, nil
}

// Delete 管理端删除商品（软删除）
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return ErrProductFetchFailed
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		logger.Errorw("product_delete_failed", "product_id", id, "error", err)
		return ErrProductUpdateFailed
	}
	s.invalidate(id)
	return nil
}

func (s *ProductService) validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrInvalidInput
	}
	if input.Price.IsNegative() {
		return ErrProductPriceInvalid
	}
	if input.Stock < 0 {
		return ErrProductStockInvalid
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return ErrProductFetchFailed
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *ProductService) invalidate(id uint) {
	if err := cache.InvalidateProducts(context.Background(), id); err != nil {
		logger.Warnw("product_cache_invalidate_failed", "product_id", id, "error", err)
	}
}
