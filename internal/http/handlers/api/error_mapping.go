package api

import (
	"errors"

	"github.com/minimarket/internal/http/response"
	"github.com/minimarket/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidID, code: response.CodeBadRequest, msg: "分类 ID 无效"},
	{target: service.ErrCategoryNameInvalid, code: response.CodeBadRequest, msg: "分类名称无效"},
	{target: service.ErrCategoryNameExists, code: response.CodeConflict, msg: "分类名称已存在"},
	{target: service.ErrCategoryInUse, code: response.CodeConflict, msg: "分类下仍有商品，无法删除"},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, msg: "分类不存在"},
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidID, code: response.CodeBadRequest, msg: "商品 ID 无效"},
	{target: service.ErrProductInvalid, code: response.CodeBadRequest, msg: "商品参数无效"},
	// 创建商品引用了不存在的分类属于请求参数错误
	{target: service.ErrCategoryNotFound, code: response.CodeBadRequest, msg: "分类不存在"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "商品不存在"},
}

var userErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidID, code: response.CodeBadRequest, msg: "用户 ID 无效"},
	{target: service.ErrUsernameInvalid, code: response.CodeBadRequest, msg: "用户名无效"},
	{target: service.ErrBalanceInvalid, code: response.CodeBadRequest, msg: "余额参数无效"},
	{target: service.ErrUsernameExists, code: response.CodeConflict, msg: "用户名已存在"},
	{target: service.ErrUserReferenced, code: response.CodeConflict, msg: "用户仍被订单或购物车引用，无法删除"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "用户不存在"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidID, code: response.CodeBadRequest, msg: "请求参数无效"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "用户不存在"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "商品不存在"},
	{target: service.ErrCartNotFound, code: response.CodeNotFound, msg: "购物车不存在"},
	{target: service.ErrCartLineExists, code: response.CodeConflict, msg: "商品已在购物车中"},
}

var purchaseErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidID, code: response.CodeBadRequest, msg: "用户 ID 无效"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "用户不存在"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "商品不存在"},
	{target: service.ErrCartEmpty, code: response.CodeUnprocessable, msg: "购物车为空"},
	{target: service.ErrInsufficientBalance, code: response.CodeUnprocessable, msg: "余额不足"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidID, code: response.CodeBadRequest, msg: "订单 ID 无效"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "订单不存在"},
}

func respondCategoryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "分类操作失败")
}

func respondProductError(c *gin.Context, err error) {
	respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "商品操作失败")
}

func respondUserError(c *gin.Context, err error) {
	respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "用户操作失败")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "购物车操作失败")
}

func respondPurchaseError(c *gin.Context, err error) {
	respondWithMappedError(c, err, purchaseErrorRules, response.CodeInternal, "结算失败")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "订单查询失败")
}
