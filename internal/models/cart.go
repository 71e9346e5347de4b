package models

import "time"

// Cart 购物车表（每个用户至多一条，由首次加购创建）
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`             // 主键
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"` // 用户ID（一人一车）
	CreatedAt time.Time `gorm:"index" json:"created_at"`          // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                       // 更新时间

	Lines []CartLine `gorm:"foreignKey:CartID" json:"lines,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// CartLine 购物车项表，(cart_id, product_id) 唯一
type CartLine struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                        // 主键
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_line_cart_product" json:"cart_id"`    // 购物车ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_line_cart_product" json:"product_id"` // 商品ID
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                     // 创建时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartLine) TableName() string {
	return "cart_lines"
}
