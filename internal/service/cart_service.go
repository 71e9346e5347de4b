package service

import (
	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/repository"

	"gorm.io/gorm"
)

// CartService 购物车业务服务
type CartService struct {
	repo        repository.CartRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(repo repository.CartRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{repo: repo, userRepo: userRepo, productRepo: productRepo}
}

// CartDetail 购物车视图
type CartDetail struct {
	CartID     uint   `json:"cart_id"`
	UserID     uint   `json:"user_id"`
	ProductIDs []uint `json:"product_ids"`
}

// GetCart 获取用户购物车。尚未创建购物车时返回空视图，不落库。
func (s *CartService) GetCart(userID uint) (*CartDetail, error) {
	if userID == 0 {
		return nil, ErrInvalidID
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	cart, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartDetail{UserID: userID, ProductIDs: []uint{}}, nil
	}

	lines, err := s.repo.ListLines(cart.ID)
	if err != nil {
		return nil, err
	}
	detail := &CartDetail{
		CartID:     cart.ID,
		UserID:     userID,
		ProductIDs: make([]uint, 0, len(lines)),
	}
	for _, line := range lines {
		detail.ProductIDs = append(detail.ProductIDs, line.ProductID)
	}
	return detail, nil
}

// AddToCart 添加商品到购物车。首次添加时创建购物车，重复添加报冲突。
func (s *CartService) AddToCart(userID, productID uint) (*CartDetail, error) {
	if userID == 0 || productID == 0 {
		return nil, ErrInvalidID
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.repo.WithTx(tx)
		cart, err := cartRepo.GetByUserIDForUpdate(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			cart = &models.Cart{UserID: userID}
			if err := cartRepo.Create(cart); err != nil {
				return err
			}
		}

		exists, err := cartRepo.LineExists(cart.ID, productID)
		if err != nil {
			return err
		}
		if exists {
			return ErrCartLineExists
		}
		return cartRepo.CreateLine(&models.CartLine{
			CartID:    cart.ID,
			ProductID: productID,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(userID)
}

// RemoveFromCart 从购物车移除商品。用户、商品、购物车必须存在，
// 商品不在购物车中才视为成功（幂等）。
func (s *CartService) RemoveFromCart(userID, productID uint) (*CartDetail, error) {
	if userID == 0 || productID == 0 {
		return nil, ErrInvalidID
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.repo.WithTx(tx)
		cart, err := cartRepo.GetByUserIDForUpdate(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		_, err = cartRepo.DeleteLine(cart.ID, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(userID)
}
