package models

import "time"

// DefaultProductDescription 商品默认描述
const DefaultProductDescription = "No product description"

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`                             // 主键
	Name        string    `gorm:"not null" json:"name"`                             // 商品名称
	Description string    `gorm:"type:varchar(500)" json:"description"`             // 商品描述
	Price       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	Stock       int       `gorm:"not null;default:0" json:"stock"`                  // 库存（仅记录，不参与校验）
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`                // 分类ID
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                       // 更新时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
