package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db         *gorm.DB
	cfg        *config.Config
	cart       *CartService
	orders     *OrderService
	payments   *PaymentService
	deliveries *DeliveryService
	analytics  *AnalyticsService
	products   *ProductService
	categories *CategoryService
	auth       *UserAuthService
}

func setupServiceTest(t *testing.T) *serviceTestEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.Tables()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret"
	cfg.UserJWT.ExpireHours = 1
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 8, RequireLower: true, RequireNumber: true}

	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &serviceTestEnv{
		db:         db,
		cfg:        cfg,
		cart:       NewCartService(cartRepo, productRepo),
		orders:     NewOrderService(orderRepo, cartRepo, deliveryRepo, paymentRepo, 5),
		payments:   NewPaymentService(orderRepo, paymentRepo, NewStubGateway()),
		deliveries: NewDeliveryService(deliveryRepo, orderRepo, userRepo),
		analytics:  NewAnalyticsService(repository.NewAnalyticsRepository(db)),
		products:   NewProductService(productRepo, categoryRepo),
		categories: NewCategoryService(categoryRepo),
		auth:       NewUserAuthService(cfg, userRepo),
	}
}

func (env *serviceTestEnv) createCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := env.db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func (env *serviceTestEnv) createProduct(t *testing.T, categoryID uint, name string, price int64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: categoryID,
		Name:       name,
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Stock:      stock,
		IsActive:   true,
	}
	if err := env.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (env *serviceTestEnv) createUser(t *testing.T, email, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := &models.User{
		Name:         strings.Split(email, "@")[0],
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       constants.UserStatusActive,
	}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func (env *serviceTestEnv) stockOf(t *testing.T, productID uint) int {
	t.Helper()
	var product models.Product
	if err := env.db.Unscoped().First(&product, productID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	return product.Stock
}

func (env *serviceTestEnv) orderStatus(t *testing.T, orderID uint) string {
	t.Helper()
	var order models.Order
	if err := env.db.First(&order, orderID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	return order.Status
}

// checkoutOrder 下单一件商品并返回订单 ID
func (env *serviceTestEnv) checkoutOrder(t *testing.T, userID, productID uint, quantity int) uint {
	t.Helper()
	if _, err := env.cart.AddItem(userID, productID, quantity); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	result, err := env.orders.Checkout(userID)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	return result.OrderID
}
