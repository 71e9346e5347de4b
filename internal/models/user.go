package models

import "time"

// User 用户表
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                 // 主键
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`                 // 用户名（唯一）
	Balance   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"account_balance"` // 账户余额（非负）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                              // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                           // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
