package service

import (
	"strings"

	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserService 用户业务服务
type UserService struct {
	repo      repository.UserRepository
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, cartRepo repository.CartRepository, orderRepo repository.OrderRepository) *UserService {
	return &UserService{repo: repo, cartRepo: cartRepo, orderRepo: orderRepo}
}

// CreateUserInput 创建用户输入
type CreateUserInput struct {
	Username string
	Balance  decimal.Decimal
}

// List 用户列表
func (s *UserService) List(keyword string, page, pageSize int) ([]models.User, int64, error) {
	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(keyword),
	}
	return s.repo.List(filter)
}

// Get 获取用户详情
func (s *UserService) Get(id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create 创建用户，用户名唯一，初始余额可选且非负
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameInvalid
	}
	if input.Balance.IsNegative() {
		return nil, ErrBalanceInvalid
	}

	count, err := s.repo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameExists
	}

	user := models.User{
		Username: username,
		Balance:  models.NewMoneyFromDecimal(input.Balance),
	}
	if err := s.repo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete 删除用户。存在订单或购物车非空时拒绝，空购物车随用户一并删除。
func (s *UserService) Delete(id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	orderCount, err := s.orderRepo.CountByUser(id)
	if err != nil {
		return err
	}
	if orderCount > 0 {
		return ErrUserReferenced
	}
	lineCount, err := s.cartRepo.CountLinesByUser(id)
	if err != nil {
		return err
	}
	if lineCount > 0 {
		return ErrUserReferenced
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.cartRepo.WithTx(tx).DeleteByUserID(id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(id)
	})
}
