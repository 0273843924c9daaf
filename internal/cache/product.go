package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/shopfront/internal/models"
)

const productCacheTTL = 5 * time.Minute

func productKey(productID uint) string {
	return fmt.Sprintf("catalog:product:%d", productID)
}

// GetProduct 读取商品缓存
func GetProduct(ctx context.Context, productID uint) (*models.Product, bool, error) {
	if productID == 0 {
		return nil, false, nil
	}
	var product models.Product
	hit, err := GetJSON(ctx, productKey(productID), &product)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &product, true, nil
}

// SetProduct 写入商品缓存
func SetProduct(ctx context.Context, product *models.Product) error {
	if product == nil || product.ID == 0 {
		return nil
	}
	return SetJSON(ctx, productKey(product.ID), product, productCacheTTL)
}

// InvalidateProducts 库存或商品信息变更后清理缓存
func InvalidateProducts(ctx context.Context, productIDs ...uint) error {
	keys := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		if id == 0 {
			continue
		}
		keys = append(keys, productKey(id))
	}
	return Del(ctx, keys...)
}
