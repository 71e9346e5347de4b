package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/minimarket/internal/logger"
	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/queue"
	"github.com/minimarket/internal/repository"

	"gorm.io/gorm"
)

// PurchaseService 结算服务。扣款、建单、清空购物车在同一事务内完成。
type PurchaseService struct {
	userRepo    repository.UserRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewPurchaseService 创建结算服务
func NewPurchaseService(
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	queueClient *queue.Client,
) *PurchaseService {
	return &PurchaseService{
		userRepo:    userRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// PurchaseResult 结算结果
type PurchaseResult struct {
	OrderID     uint         `json:"order_id"`
	OrderNo     string       `json:"order_no"`
	UserID      uint         `json:"user_id"`
	ProductIDs  []uint       `json:"product_ids"`
	TotalAmount models.Money `json:"total_amount"`
	Balance     models.Money `json:"account_balance"`
}

// Purchase 结算用户购物车。
// 先对用户行加锁串行化同一用户的并发结算，再在事务内核对购物车、
// 按当前价格计算总额、校验余额。任一校验失败整个事务回滚，不产生任何写入。
func (s *PurchaseService) Purchase(userID uint) (*PurchaseResult, error) {
	if userID == 0 {
		return nil, ErrInvalidID
	}

	var result PurchaseResult
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		user, err := userRepo.GetByIDForUpdate(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		cart, err := cartRepo.GetByUserIDForUpdate(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartEmpty
		}
		lines, err := cartRepo.ListLines(cart.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		productIDs := make([]uint, 0, len(lines))
		for _, line := range lines {
			productIDs = append(productIDs, line.ProductID)
		}
		products, err := productRepo.GetByIDs(productIDs)
		if err != nil {
			return err
		}
		priceByID := make(map[uint]models.Money, len(products))
		for _, product := range products {
			priceByID[product.ID] = product.Price
		}

		total := models.Money{}
		orderLines := make([]models.OrderLine, 0, len(lines))
		for _, line := range lines {
			price, ok := priceByID[line.ProductID]
			if !ok {
				return ErrProductNotFound
			}
			total = total.Add(price)
			orderLines = append(orderLines, models.OrderLine{
				ProductID: line.ProductID,
				UnitPrice: price,
			})
		}

		if user.Balance.LessThan(total) {
			return ErrInsufficientBalance
		}

		newBalance := user.Balance.Sub(total)
		if err := userRepo.UpdateBalance(userID, newBalance); err != nil {
			return err
		}

		order := models.Order{
			OrderNo:     generateOrderNo(),
			UserID:      userID,
			TotalAmount: total,
		}
		if err := orderRepo.Create(&order, orderLines); err != nil {
			return err
		}
		if err := cartRepo.ClearLines(cart.ID); err != nil {
			return err
		}

		result = PurchaseResult{
			OrderID:     order.ID,
			OrderNo:     order.OrderNo,
			UserID:      userID,
			ProductIDs:  productIDs,
			TotalAmount: total,
			Balance:     newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 事务已提交，回执入队失败只记日志
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderRecorded(queue.OrderRecordedPayload{
			OrderID: result.OrderID,
			OrderNo: result.OrderNo,
			UserID:  result.UserID,
		}); err != nil {
			logger.Warnw("purchase_receipt_enqueue_failed", "order_no", result.OrderNo, "error", err)
		}
	}
	return &result, nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("MK%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
