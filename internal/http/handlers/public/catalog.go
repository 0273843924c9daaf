package public

import (
	"strings"

	handlershared "github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// ListProducts 上架商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	products, total, err := h.ProductService.List(page, pageSize)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, "error.product_fetch_failed")
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// SearchProducts 按名称、分类、价格区间检索商品
func (h *Handler) SearchProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	minPrice, ok := parsePriceQuery(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := parsePriceQuery(c, "max_price")
	if !ok {
		return
	}
	products, total, err := h.ProductService.Search(service.ProductSearchInput{
		Page:     page,
		PageSize: pageSize,
		Name:     strings.TrimSpace(c.Query("name")),
		Category: strings.TrimSpace(c.Query("category")),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, "error.product_fetch_failed")
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}

func parsePriceQuery(c *gin.Context, name string) (*models.Money, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	value, err := models.NewMoneyFromString(raw)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.price_range_invalid", nil)
		return nil, false
	}
	return &value, true
}
