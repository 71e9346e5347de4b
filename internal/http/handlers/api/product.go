package api

import (
	"strconv"

	"github.com/minimarket/internal/http/response"
	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest 创建商品请求
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock"`
	CategoryID  uint            `json:"category_id" binding:"required"`
}

// ProductUpdateRequest 更新商品请求，未出现的字段保持不变
type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *uint            `json:"category_id"`
}

// ProductResponse 商品响应
type ProductResponse struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        models.Money `json:"price"`
	Stock        int          `json:"stock"`
	CategoryID   uint         `json:"category_id"`
	CategoryName string       `json:"category_name,omitempty"`
}

func buildProductResponse(product *models.Product) ProductResponse {
	resp := ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CategoryID:  product.CategoryID,
	}
	if product.Category != nil {
		resp.CategoryName = product.Category.Name
	}
	return resp
}

// ListProducts 获取商品列表，可按分类过滤
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePagination(c)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	products, total, err := h.ProductService.List(uint(categoryID), page, pageSize)
	if err != nil {
		respondProductError(c, err)
		return
	}
	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, buildProductResponse(&products[i]))
	}
	response.SuccessWithPage(c, gin.H{"items": items}, buildPagination(page, pageSize, total))
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, buildProductResponse(product))
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}
	product, err := h.ProductService.Create(service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, buildProductResponse(product))
}

// UpdateProduct 部分更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}
	product, err := h.ProductService.Update(id, service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, buildProductResponse(product))
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
