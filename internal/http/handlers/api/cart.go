package api

import (
	"github.com/minimarket/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetCart 获取用户购物车
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.CartService.GetCart(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}

// AddCartItem 添加商品到购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}
	detail, err := h.CartService.AddToCart(userID, req.ProductID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}

// RemoveCartItem 从购物车移除商品
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}
	detail, err := h.CartService.RemoveFromCart(userID, productID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}
