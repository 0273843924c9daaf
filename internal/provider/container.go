package provider

import (
	"github.com/shopfront/internal/authz"
	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
	"github.com/shopfront/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CategoryRepository
	CartRepo      repository.CartRepository
	OrderRepo     repository.OrderRepository
	DeliveryRepo  repository.DeliveryRepository
	PaymentRepo   repository.PaymentRepository
	AnalyticsRepo repository.AnalyticsRepository

	// Services
	AuthzService     *authz.Service
	UserAuthService  *service.UserAuthService
	ProductService   *service.ProductService
	CategoryService  *service.CategoryService
	CartService      *service.CartService
	OrderService     *service.OrderService
	PaymentService   *service.PaymentService
	DeliveryService  *service.DeliveryService
	AnalyticsService *service.AnalyticsService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) (*Container, error) {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{
		Config: cfg,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	if err := c.initServices(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.DeliveryRepo = repository.NewDeliveryRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
	c.AnalyticsRepo = repository.NewAnalyticsRepository(db)
}

func (c *Container) initServices() error {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		return err
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		return err
	}

	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.DeliveryRepo, c.PaymentRepo, c.Config.Order.EstimatedDeliveryDays)
	c.PaymentService = service.NewPaymentService(c.OrderRepo, c.PaymentRepo, service.NewStubGateway())
	c.DeliveryService = service.NewDeliveryService(c.DeliveryRepo, c.OrderRepo, c.UserRepo)
	c.AnalyticsService = service.NewAnalyticsService(c.AnalyticsRepo)
	return nil
}
