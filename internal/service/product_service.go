package service

import (
	"strings"

	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{repo: repo, categoryRepo: categoryRepo}
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  uint
}

// UpdateProductInput 更新商品输入，仅更新非 nil 字段
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	CategoryID  *uint
}

// List 获取商品列表，可按分类过滤
func (s *ProductService) List(categoryID uint, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		WithCategory: true,
	}
	return s.repo.List(filter)
}

// Get 获取商品详情
func (s *ProductService) Get(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品，分类必须已存在
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.CategoryID == 0 {
		return nil, ErrProductInvalid
	}
	if input.Price.LessThanOrEqual(decimal.Zero) || input.Stock < 0 {
		return nil, ErrProductInvalid
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = models.DefaultProductDescription
	}

	product := models.Product{
		Name:        name,
		Description: description,
		Price:       models.NewMoneyFromDecimal(input.Price),
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update 部分更新商品字段
func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrProductInvalid
		}
		product.Name = name
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		if input.Price.LessThanOrEqual(decimal.Zero) {
			return nil, ErrProductInvalid
		}
		product.Price = models.NewMoneyFromDecimal(*input.Price)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, ErrProductInvalid
		}
		product.Stock = *input.Stock
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = *input.CategoryID
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.repo.Delete(id)
}
