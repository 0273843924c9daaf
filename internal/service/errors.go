package service

import "errors"

// 通用
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)

// 商品与分类
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductFetchFailed  = errors.New("product fetch failed")
	ErrProductUpdateFailed = errors.New("product update failed")
	ErrProductPriceInvalid = errors.New("product price invalid")
	ErrProductStockInvalid = errors.New("product stock invalid")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("category already exists")
)

// 购物车
var (
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrCartUpdateFailed  = errors.New("cart update failed")
	ErrCartChanged       = errors.New("cart changed during checkout")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// 订单
var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderFetchFailed      = errors.New("order fetch failed")
	ErrOrderCreateFailed     = errors.New("order create failed")
	ErrOrderUpdateFailed     = errors.New("order update failed")
	ErrOrderAlreadyConfirmed = errors.New("order already confirmed")
	ErrOrderStatusInvalid    = errors.New("order status transition not allowed")
)

// 支付
var (
	ErrPaymentFailed       = errors.New("payment failed")
	ErrPaymentCreateFailed = errors.New("payment create failed")
)

// 配送
var (
	ErrInvalidDeliveryPerson = errors.New("invalid delivery person")
	ErrDeliveryNotFound      = errors.New("delivery not found")
	ErrDeliveryStatusInvalid = errors.New("delivery status transition not allowed")
	ErrDeliveryUpdateFailed  = errors.New("delivery update failed")
)

// 统计
var (
	ErrInvalidDateRange = errors.New("invalid date range")
)

// 用户与认证
var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidRole        = errors.New("invalid role")
	ErrProfileEmpty       = errors.New("profile update empty")
	ErrInvalidToken       = errors.New("invalid token")
)
