package api

import (
	"github.com/minimarket/internal/http/response"
	"github.com/minimarket/internal/models"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 创建分类请求
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse 分类响应
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func buildCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

// ListCategories 获取分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondCategoryError(c, err)
		return
	}
	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, buildCategoryResponse(&categories[i]))
	}
	response.Success(c, gin.H{"items": items})
}

// GetCategory 获取分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.CategoryService.Get(id)
	if err != nil {
		respondCategoryError(c, err)
		return
	}
	response.Success(c, buildCategoryResponse(category))
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}
	category, err := h.CategoryService.Create(req.Name)
	if err != nil {
		respondCategoryError(c, err)
		return
	}
	response.Success(c, buildCategoryResponse(category))
}

// DeleteCategory 删除分类
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondCategoryError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
