package main

import (
	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type seedProduct struct {
	Category    string
	Name        string
	Description string
	Price       string
	Stock       int
}

type seedUser struct {
	Name  string
	Email string
	Role  string
	Phone string
}

const seedPassword = "shopfront123"

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, cfg.Database.LogLevel); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 分类
	categoryIDs := map[string]uint{}
	for _, name := range []string{"Electronics", "Books", "Clothing"} {
		var category models.Category
		if err := models.DB.Where("name = ?", name).FirstOrCreate(&category, models.Category{Name: name}).Error; err != nil {
			stdLog.Printf("Failed to create category %s: %v", name, err)
			continue
		}
		categoryIDs[name] = category.ID
	}

	// 商品
	products := []seedProduct{
		{Category: "Electronics", Name: "Wireless Mouse", Description: "2.4GHz ergonomic mouse", Price: "19.99", Stock: 120},
		{Category: "Electronics", Name: "USB-C Hub", Description: "7-in-1 adapter", Price: "35.50", Stock: 60},
		{Category: "Books", Name: "The Go Programming Language", Description: "Donovan & Kernighan", Price: "42.00", Stock: 25},
		{Category: "Books", Name: "Designing Data-Intensive Applications", Description: "Martin Kleppmann", Price: "48.90", Stock: 18},
		{Category: "Clothing", Name: "Cotton T-Shirt", Description: "Unisex, navy", Price: "12.00", Stock: 200},
	}
	for _, item := range products {
		categoryID, ok := categoryIDs[item.Category]
		if !ok {
			continue
		}
		var count int64
		models.DB.Model(&models.Product{}).Where("name = ?", item.Name).Count(&count)
		if count > 0 {
			stdLog.Printf("Product already exists: %s", item.Name)
			continue
		}
		product := models.Product{
			CategoryID:  categoryID,
			Name:        item.Name,
			Description: item.Description,
			Price:       models.NewMoneyFromDecimal(decimal.RequireFromString(item.Price)),
			Stock:       item.Stock,
			IsActive:    true,
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", item.Name, err)
			continue
		}
		stdLog.Printf("Created product: %s", item.Name)
	}

	// 示例账号
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("Failed to hash password: %v", err)
	}
	users := []seedUser{
		{Name: "Demo Customer", Email: "customer@shopfront.local", Role: constants.RoleCustomer, Phone: "555-0100"},
		{Name: "Demo Courier", Email: "courier@shopfront.local", Role: constants.RoleDelivery, Phone: "555-0101"},
	}
	for _, item := range users {
		user := models.User{
			Name:         item.Name,
			Email:        item.Email,
			PasswordHash: string(hash),
			Role:         item.Role,
			Status:       constants.UserStatusActive,
			Phone:        item.Phone,
		}
		if err := models.DB.Where("email = ?", item.Email).FirstOrCreate(&user).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", item.Email, err)
			continue
		}
		stdLog.Printf("Seed user ready: %s (%s)", item.Email, item.Role)
	}

	if err := models.InitDefaultAdmin(cfg.Admin.DefaultEmail, cfg.Admin.DefaultPassword); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}
	stdLog.Printf("Seed completed, demo password: %s", seedPassword)
}
