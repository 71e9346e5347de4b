package api

import (
	"github.com/minimarket/internal/http/response"
	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// UserRequest 创建用户请求
type UserRequest struct {
	Username string          `json:"username" binding:"required"`
	Balance  decimal.Decimal `json:"account_balance"`
}

// UserResponse 用户响应
type UserResponse struct {
	ID       uint         `json:"id"`
	Username string       `json:"username"`
	Balance  models.Money `json:"account_balance"`
}

func buildUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Balance:  user.Balance,
	}
}

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := parsePagination(c)
	keyword := c.Query("keyword")

	users, total, err := h.UserService.List(keyword, page, pageSize)
	if err != nil {
		respondUserError(c, err)
		return
	}
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, buildUserResponse(&users[i]))
	}
	response.SuccessWithPage(c, gin.H{"items": items}, buildPagination(page, pageSize, total))
}

// GetUser 获取用户详情
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.Get(id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	response.Success(c, buildUserResponse(user))
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}
	user, err := h.UserService.Create(service.CreateUserInput{
		Username: req.Username,
		Balance:  req.Balance,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}
	response.Success(c, buildUserResponse(user))
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.UserService.Delete(id); err != nil {
		respondUserError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
