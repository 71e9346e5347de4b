package service

import (
	"time"

	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/repository"
)

// OrderService 订单查询服务。订单只在结算时创建，此处只读。
type OrderService struct {
	repo repository.OrderRepository
}

// NewOrderService 创建订单服务
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// OrderDetail 订单视图
type OrderDetail struct {
	OrderID     uint         `json:"order_id"`
	OrderNo     string       `json:"order_no"`
	UserID      uint         `json:"user_id"`
	TotalAmount models.Money `json:"total_amount"`
	ProductIDs  []uint       `json:"product_ids"`
	CreatedAt   time.Time    `json:"created_at"`
}

// List 订单列表，可按用户或包含的商品过滤
func (s *OrderService) List(userID, productID uint, page, pageSize int) ([]OrderDetail, int64, error) {
	filter := repository.OrderListFilter{
		Page:      page,
		PageSize:  pageSize,
		UserID:    userID,
		ProductID: productID,
	}
	orders, total, err := s.repo.List(filter)
	if err != nil {
		return nil, 0, err
	}

	details := make([]OrderDetail, 0, len(orders))
	for i := range orders {
		details = append(details, buildOrderDetail(&orders[i]))
	}
	return details, total, nil
}

// Get 获取订单详情
func (s *OrderService) Get(id uint) (*OrderDetail, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	detail := buildOrderDetail(order)
	return &detail, nil
}

func buildOrderDetail(order *models.Order) OrderDetail {
	productIDs := make([]uint, 0, len(order.Lines))
	for _, line := range order.Lines {
		productIDs = append(productIDs, line.ProductID)
	}
	return OrderDetail{
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		ProductIDs:  productIDs,
		CreatedAt:   order.CreatedAt,
	}
}
