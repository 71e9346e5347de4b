package repository

import (
	"github.com/minimarket/internal/constants"

	"gorm.io/gorm"
)

// applyPagination 应用分页参数，统一处理非法页码并限制单页上限。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return query.Limit(pageSize).Offset(offset)
}
