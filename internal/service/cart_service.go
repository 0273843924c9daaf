package service

import (
	"context"
	"errors"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItemView 购物车项（用于响应）
type CartItemView struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	Quantity  int          `json:"quantity"`
	LineTotal models.Money `json:"line_total"`
}

// CartView 购物车（用于响应）
type CartView struct {
	CartID      uint           `json:"cart_id"`
	UserID      uint           `json:"user_id"`
	Items       []CartItemView `json:"items"`
	TotalAmount models.Money   `json:"total_amount"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem 加入购物车并同步扣减库存
func (s *CartService) AddItem(userID, productID uint, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, ErrProductFetchFailed
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		locked, err := productRepo.GetByIDForUpdate(productID)
		if err != nil {
			return err
		}
		if locked == nil || !locked.IsActive {
			return ErrProductNotFound
		}
		cart, err := cartRepo.GetOrCreateByUser(userID)
		if err != nil {
			return err
		}
		existing, err := cartRepo.GetItemForUpdate(cart.ID, productID)
		if err != nil {
			return err
		}
		required := quantity
		if existing != nil {
			required += existing.Quantity
		}
		if locked.Stock < required {
			return ErrInsufficientStock
		}

		if existing != nil {
			if err := cartRepo.UpdateItemQuantity(existing.ID, existing.Quantity+quantity); err != nil {
				return err
			}
		} else {
			item := &models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
			if err := cartRepo.CreateItem(item); err != nil {
				return err
			}
		}

		affected, err := productRepo.DecrementStock(productID, quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientStock
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		logger.Errorw("cart_add_item_failed", "user_id", userID, "product_id", productID, "quantity", quantity, "error", err)
		return nil, ErrCartUpdateFailed
	}
	s.invalidateProduct(productID)
	return s.GetCart(userID)
}

// RemoveItem 删除购物车项并回补库存（商品已删除时不回补）
// 购物车行在事务内重新加锁读取，回补数量以实际删除的行为准
func (s *CartService) RemoveItem(userID, productID uint) error {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return ErrCartUpdateFailed
	}
	if cart == nil {
		return ErrCartNotFound
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		item, err := cartRepo.GetItemForUpdate(cart.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrCartItemNotFound
		}
		affected, err := cartRepo.DeleteItem(item.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCartItemNotFound
		}
		if _, err := s.productRepo.WithTx(tx).IncrementStock(productID, item.Quantity); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCartItemNotFound) {
			return err
		}
		logger.Errorw("cart_remove_item_failed", "user_id", userID, "product_id", productID, "error", err)
		return ErrCartUpdateFailed
	}
	s.invalidateProduct(productID)
	return nil
}

// GetCart 获取购物车视图，已下架或删除的商品显示为空名称与零价格
func (s *CartService) GetCart(userID uint) (*CartView, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, ErrCartUpdateFailed
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return buildCartView(cart), nil
}

func buildCartView(cart *models.Cart) *CartView {
	view := &CartView{
		CartID: cart.ID,
		UserID: cart.UserID,
		Items:  make([]CartItemView, 0, len(cart.Items)),
	}
	total := decimal.Zero
	for _, item := range cart.Items {
		line := CartItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if item.Product != nil {
			line.Name = item.Product.Name
			line.Price = item.Product.Price
		}
		line.LineTotal = line.Price.MulInt(item.Quantity)
		total = total.Add(line.LineTotal.Decimal)
		view.Items = append(view.Items, line)
	}
	view.TotalAmount = models.NewMoneyFromDecimal(total)
	return view
}

func (s *CartService) invalidateProduct(productID uint) {
	if err := cache.InvalidateProducts(context.Background(), productID); err != nil {
		logger.Warnw("cart_product_cache_invalidate_failed", "product_id", productID, "error", err)
	}
}
