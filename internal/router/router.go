package router

import (
	"sort"
	"strings"

	"github.com/shopfront/internal/authz"
	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/config"
	adminhandlers "github.com/shopfront/internal/http/handlers/admin"
	publichandlers "github.com/shopfront/internal/http/handlers/public"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/metrics"
	"github.com/shopfront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	var serverMetrics *metrics.ServerMetrics
	var onLimited LimitedObserver
	if cfg.Metrics.Enabled {
		serverMetrics = metrics.NewServerMetrics(cfg.Metrics.Namespace)
		onLimited = serverMetrics.IncRateLimited
	}
	authRule := LoginRateLimitRule(cfg.Security.LoginRateLimit)
	redisClient := cache.Client()

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	if serverMetrics != nil {
		r.Use(serverMetrics.Middleware())
	}

	apiV1 := r.Group("/api/v1")
	{
		// 认证接口（限流，无需登录）
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", RateLimitMiddleware(redisClient, authRule, KeyByIP, onLimited), publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, authRule, KeyByIPAndJSONField("email"), onLimited), publicHandler.Login)
		}

		// 需登录接口，授权策略在处理器之前执行
		authed := apiV1.Group("")
		authed.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserAuthService), AuthorizeMiddleware(c.AuthzService))
		{
			authed.GET("/me/profile", publicHandler.GetProfile)
			authed.PUT("/me/profile", publicHandler.UpdateProfile)

			authed.GET("/categories", publicHandler.ListCategories)
			authed.GET("/products", publicHandler.ListProducts)
			authed.GET("/products/search", publicHandler.SearchProducts)
			authed.GET("/products/:id", publicHandler.GetProduct)

			authed.GET("/cart", publicHandler.GetCart)
			authed.POST("/cart/items", publicHandler.AddCartItem)
			authed.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)

			authed.POST("/orders/checkout", publicHandler.Checkout)
			authed.GET("/orders/history", publicHandler.ListOrderHistory)
			authed.GET("/orders/:id", publicHandler.GetOrder)

			authed.PUT("/payments/confirm/:order_id", publicHandler.ConfirmPayment)

			authed.GET("/delivery/orders", publicHandler.ListAssignedOrders)
			authed.PUT("/delivery/deliveries/:id/status", publicHandler.UpdateDeliveryStatus)

			// 管理端
			admin := authed.Group("/admin")
			{
				admin.GET("/orders", adminHandler.ListOrders)
				admin.GET("/orders/:id", adminHandler.GetOrder)
				admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
				admin.DELETE("/orders/:id", adminHandler.DeleteOrder)

				admin.GET("/delivery-partners", adminHandler.ListDeliveryPartners)
				admin.POST("/deliveries", adminHandler.AssignDelivery)

				admin.GET("/analytics/sales", adminHandler.GetSalesAnalytics)
				admin.GET("/analytics/products", adminHandler.GetProductAnalytics)

				admin.POST("/products", adminHandler.CreateProduct)
				admin.PUT("/products/:id", adminHandler.UpdateProduct)
				admin.DELETE("/products/:id", adminHandler.DeleteProduct)
				admin.POST("/categories", adminHandler.CreateCategory)

				admin.POST("/users", adminHandler.CreateStaffUser)

				admin.GET("/authz/roles/:role/policies", adminHandler.GetRolePolicies)
				admin.POST("/authz/policies", adminHandler.GrantRolePolicy)
				admin.DELETE("/authz/policies", adminHandler.RevokeRolePolicy)
				admin.POST("/authz/reload", adminHandler.ReloadPolicy)
				admin.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
					response.Success(ctx, buildPermissionCatalog(r))
				})
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if serverMetrics != nil {
		path := strings.TrimSpace(cfg.Metrics.Path)
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(serverMetrics.Handler()))
	}

	return r
}

type permissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// buildPermissionCatalog 列出所有需鉴权接口，供配置角色策略时参考
func buildPermissionCatalog(engine *gin.Engine) []permissionCatalogItem {
	if engine == nil {
		return []permissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]permissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/") || strings.HasPrefix(item.Path, "/api/v1/auth/") {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, permissionCatalogItem{
			Module:     derivePermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func derivePermissionModule(object string) string {
	segments := strings.Split(strings.TrimPrefix(strings.TrimSpace(object), "/"), "/")
	if segments[0] == "admin" && len(segments) > 1 {
		return "admin." + segments[1]
	}
	if segments[0] == "" {
		return "system"
	}
	return segments[0]
}
