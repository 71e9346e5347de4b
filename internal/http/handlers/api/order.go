package api

import (
	"strconv"

	"github.com/minimarket/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Purchase 结算用户购物车
func (h *Handler) Purchase(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	result, err := h.PurchaseService.Purchase(userID)
	if err != nil {
		respondPurchaseError(c, err)
		return
	}
	requestLog(c).Infow("purchase_completed",
		"user_id", result.UserID,
		"order_no", result.OrderNo,
		"total_amount", result.TotalAmount.String(),
	)
	response.Success(c, result)
}

// ListOrders 订单列表，可按用户或包含的商品过滤
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := parsePagination(c)
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)
	productID, _ := strconv.ParseUint(c.Query("product_id"), 10, 64)

	orders, total, err := h.OrderService.List(uint(userID), uint(productID), page, pageSize)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{"items": orders}, buildPagination(page, pageSize, total))
}

// GetOrder 获取订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(id)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}
