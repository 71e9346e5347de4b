package provider

import (
	"github.com/minimarket/internal/cache"
	"github.com/minimarket/internal/config"
	"github.com/minimarket/internal/logger"
	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/queue"
	"github.com/minimarket/internal/repository"
	"github.com/minimarket/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	UserRepo     repository.UserRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository

	// Services
	CategoryService *service.CategoryService
	ProductService  *service.ProductService
	UserService     *service.UserService
	CartService     *service.CartService
	PurchaseService *service.PurchaseService
	OrderService    *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.CartRepo, c.OrderRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.UserRepo, c.ProductRepo)
	c.PurchaseService = service.NewPurchaseService(c.UserRepo, c.CartRepo, c.ProductRepo, c.OrderRepo, c.QueueClient)
	c.OrderService = service.NewOrderService(c.OrderRepo)
}
