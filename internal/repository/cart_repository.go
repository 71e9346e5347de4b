package repository

import (
	"errors"

	"github.com/minimarket/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByUserID(userID uint) (*models.Cart, error)
	GetByUserIDForUpdate(userID uint) (*models.Cart, error)
	Create(cart *models.Cart) error
	ListLines(cartID uint) ([]models.CartLine, error)
	LineExists(cartID, productID uint) (bool, error)
	CreateLine(line *models.CartLine) error
	DeleteLine(cartID, productID uint) (int64, error)
	ClearLines(cartID uint) error
	CountLinesByUser(userID uint) (int64, error)
	DeleteByUserID(userID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByUserID 获取用户购物车
func (r *GormCartRepository) GetByUserID(userID uint) (*models.Cart, error) {
	if userID == 0 {
		return nil, nil
	}
	var cart models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetByUserIDForUpdate 按用户 ID 加锁获取购物车（串行化同一购物车的增删）
func (r *GormCartRepository) GetByUserIDForUpdate(userID uint) (*models.Cart, error) {
	if userID == 0 {
		return nil, nil
	}
	var cart models.Cart
	if err := lockForUpdate(r.db).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Create 创建购物车
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// ListLines 获取购物车项，按加入顺序返回
func (r *GormCartRepository) ListLines(cartID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Where("cart_id = ?", cartID).Order("id ASC").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// LineExists 判断商品是否已在购物车中
func (r *GormCartRepository) LineExists(cartID, productID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CartLine{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateLine 添加购物车项
func (r *GormCartRepository) CreateLine(line *models.CartLine) error {
	return r.db.Create(line).Error
}

// DeleteLine 删除购物车项，返回删除行数（0 表示本就不存在）
func (r *GormCartRepository) DeleteLine(cartID, productID uint) (int64, error) {
	result := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&models.CartLine{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ClearLines 清空购物车
func (r *GormCartRepository) ClearLines(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartLine{}).Error
}

// CountLinesByUser 统计用户购物车中的商品数
func (r *GormCartRepository) CountLinesByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CartLine{}).
		Joins("JOIN carts ON carts.id = cart_lines.cart_id").
		Where("carts.user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByUserID 删除用户的购物车行（仅限空车，随用户删除时调用）
func (r *GormCartRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Cart{}).Error
}
