package service

import (
	"errors"
	"testing"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func money(v int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(v))
}

func TestProductCreateValidation(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")

	cases := []struct {
		name  string
		input ProductInput
		want  error
	}{
		{"blank name", ProductInput{CategoryID: category.ID, Name: " ", Price: money(1)}, ErrInvalidInput},
		{"negative price", ProductInput{CategoryID: category.ID, Name: "A", Price: money(-1)}, ErrProductPriceInvalid},
		{"negative stock", ProductInput{CategoryID: category.ID, Name: "A", Price: money(1), Stock: -1}, ErrProductStockInvalid},
		{"missing category", ProductInput{CategoryID: category.ID + 100, Name: "A", Price: money(1)}, ErrCategoryNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.products.Create(tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	created, err := env.products.Create(ProductInput{CategoryID: category.ID, Name: " Go Book ", Price: money(12), Stock: 3})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if created.Name != "Go Book" || !created.IsActive {
		t.Fatalf("unexpected product: %+v", created)
	}
}

func TestProductGetByIDHidesInactive(t *testing.T) {
	env := setupServiceTest(t)
	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "A", 10, 1)
	inactive := false
	if _, err := env.products.Update(product.ID, ProductInput{CategoryID: category.ID, Name: "A", Price: money(10), Stock: 1, IsActive: &inactive}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := env.products.GetByID(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected inactive product hidden, got %v", err)
	}
}

func TestProductSearchRejectsInvertedPriceRange(t *testing.T) {
	env := setupServiceTest(t)
	minPrice, maxPrice := money(10), money(5)
	if _, _, err := env.products.Search(ProductSearchInput{MinPrice: &minPrice, MaxPrice: &maxPrice}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProductCacheInvalidatedOnUpdate(t *testing.T) {
	env := setupServiceTest(t)
	mr := miniredis.RunT(t)
	cache.UseClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test")
	t.Cleanup(func() {
		_ = cache.Close()
	})

	category := env.createCategory(t, "Books")
	product := env.createProduct(t, category.ID, "Original", 10, 1)

	if _, err := env.products.GetByID(product.ID); err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	// 绕过服务直接改库，缓存仍返回旧值
	if err := env.db.Model(&models.Product{}).Where("id = ?", product.ID).Update("name", "Renamed").Error; err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	cached, err := env.products.GetByID(product.ID)
	if err != nil {
		t.Fatalf("cached read failed: %v", err)
	}
	if cached.Name != "Original" {
		t.Fatalf("expected cached name, got %s", cached.Name)
	}

	if _, err := env.products.Update(product.ID, ProductInput{CategoryID: category.ID, Name: "Updated", Price: money(11), Stock: 1}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	fresh, err := env.products.GetByID(product.ID)
	if err != nil {
		t.Fatalf("fresh read failed: %v", err)
	}
	if fresh.Name != "Updated" || fresh.Price.String() != "11.00" {
		t.Fatalf("expected refreshed product, got %+v", fresh)
	}
}

func TestCategoryCreateRejectsDuplicate(t *testing.T) {
	env := setupServiceTest(t)
	if _, err := env.categories.Create("Books", ""); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if _, err := env.categories.Create(" Books ", "again"); !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
	if _, err := env.categories.Create("", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
