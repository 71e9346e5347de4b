package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/minimarket/internal/cache"
	"github.com/minimarket/internal/logger"
	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/repository"
)

const categoryNameMaxLen = 50

const (
	categoryListCacheKey = "category:list"
	categoryListCacheTTL = 5 * time.Minute
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List 获取分类列表。分类变动少，走缓存，写操作时失效。
func (s *CategoryService) List() ([]models.Category, error) {
	ctx := context.Background()
	var cached []models.Category
	if hit, err := cache.GetJSON(ctx, categoryListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	categories, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, categoryListCacheKey, categories, categoryListCacheTTL); err != nil {
		logger.Warnw("category_list_cache_set_failed", "error", err)
	}
	return categories, nil
}

// Get 获取分类详情
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create 创建分类，名称必填且唯一，最长 50 字符
func (s *CategoryService) Create(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > categoryNameMaxLen {
		return nil, ErrCategoryNameInvalid
	}

	count, err := s.repo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryNameExists
	}

	category := models.Category{
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	s.invalidateListCache()
	return &category, nil
}

// Delete 删除分类，分类下仍有商品时拒绝
func (s *CategoryService) Delete(id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateListCache()
	return nil
}

func (s *CategoryService) invalidateListCache() {
	if err := cache.Del(context.Background(), categoryListCacheKey); err != nil {
		logger.Warnw("category_list_cache_del_failed", "error", err)
	}
}
