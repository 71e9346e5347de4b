package models

import "time"

// Category 分类表
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`                          // 主键
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // 分类名称（唯一，最长 50）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                       // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
