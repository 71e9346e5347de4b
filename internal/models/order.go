package models

import "time"

// Order 订单表（下单即终态，创建后不再修改）
type Order struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                   // 主键
	OrderNo     string    `gorm:"uniqueIndex;not null" json:"order_no"`                   // 订单编号
	UserID      uint      `gorm:"index;not null" json:"user_id"`                          // 用户ID
	TotalAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 实付金额
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                // 创建时间

	Lines []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
