package router

import (
	"fmt"
	"strings"

	"github.com/minimarket/internal/cache"
	"github.com/minimarket/internal/config"
	"github.com/minimarket/internal/constants"
	apihandlers "github.com/minimarket/internal/http/handlers/api"
	"github.com/minimarket/internal/http/response"
	"github.com/minimarket/internal/logger"
	"github.com/minimarket/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := apihandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	purchaseRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:%s", redisPrefix, constants.RateLimitPurchasePrefix),
		WindowSeconds: cfg.Security.PurchaseRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.PurchaseRateLimit.MaxAttempts,
		Message:       "结算请求过于频繁",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		// 分类
		apiV1.GET("/categories", handler.ListCategories)
		apiV1.POST("/categories", handler.CreateCategory)
		apiV1.GET("/categories/:id", handler.GetCategory)
		apiV1.DELETE("/categories/:id", handler.DeleteCategory)

		// 商品
		apiV1.GET("/products", handler.ListProducts)
		apiV1.POST("/products", handler.CreateProduct)
		apiV1.GET("/products/:id", handler.GetProduct)
		apiV1.PATCH("/products/:id", handler.UpdateProduct)
		apiV1.DELETE("/products/:id", handler.DeleteProduct)

		// 用户
		apiV1.GET("/users", handler.ListUsers)
		apiV1.POST("/users", handler.CreateUser)
		apiV1.GET("/users/:id", handler.GetUser)
		apiV1.DELETE("/users/:id", handler.DeleteUser)

		// 购物车
		apiV1.GET("/users/:id/cart", handler.GetCart)
		apiV1.POST("/users/:id/cart/items", handler.AddCartItem)
		apiV1.DELETE("/users/:id/cart/items/:product_id", handler.RemoveCartItem)

		// 结算
		apiV1.POST("/users/:id/purchase", RateLimitMiddleware(redisClient, purchaseRule, KeyByPathParam("id")), handler.Purchase)

		// 订单
		apiV1.GET("/orders", handler.ListOrders)
		apiV1.GET("/orders/:id", handler.GetOrder)
	}

	return r
}
