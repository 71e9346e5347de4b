package service

import "errors"

// 业务错误定义，由各 handler 映射为接口状态码。
var (
	ErrInvalidID           = errors.New("ID 无效")
	ErrCategoryNameInvalid = errors.New("分类名称无效")
	ErrCategoryNameExists  = errors.New("分类名称已存在")
	ErrCategoryInUse       = errors.New("分类下仍有商品")
	ErrCategoryNotFound    = errors.New("分类不存在")
	ErrProductInvalid      = errors.New("商品参数无效")
	ErrProductNotFound     = errors.New("商品不存在")
	ErrUsernameInvalid     = errors.New("用户名无效")
	ErrUsernameExists      = errors.New("用户名已存在")
	ErrBalanceInvalid      = errors.New("余额参数无效")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserReferenced      = errors.New("用户仍被订单或购物车引用")
	ErrCartNotFound        = errors.New("购物车不存在")
	ErrCartLineExists      = errors.New("商品已在购物车中")
	ErrCartEmpty           = errors.New("购物车为空")
	ErrInsufficientBalance = errors.New("余额不足")
	ErrOrderNotFound       = errors.New("订单不存在")
)
