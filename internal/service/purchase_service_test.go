package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/repository"

	"gorm.io/gorm"
)

type purchaseFixture struct {
	purchase *PurchaseService
	cart     *CartService
	db       *gorm.DB
}

func setupPurchaseServiceTest(t *testing.T) purchaseFixture {
	t.Helper()
	db := newTestDB(t, "purchase_service_test")
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	return purchaseFixture{
		purchase: NewPurchaseService(userRepo, cartRepo, productRepo, orderRepo, nil),
		cart:     NewCartService(cartRepo, userRepo, productRepo),
		db:       db,
	}
}

func (f purchaseFixture) balanceOf(t *testing.T, userID uint) string {
	t.Helper()
	var user models.User
	if err := f.db.First(&user, userID).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	return user.Balance.String()
}

func (f purchaseFixture) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := f.db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows failed: %v", err)
	}
	return count
}

func TestPurchaseSuccess(t *testing.T) {
	f := setupPurchaseServiceTest(t)
	user := createTestUser(t, f.db, "alice", "100.00")
	category := createTestCategory(t, f.db, "电子产品")
	book := createTestProduct(t, f.db, category.ID, "图书", "30.00")
	lamp := createTestProduct(t, f.db, category.ID, "台灯", "45.00")

	if _, err := f.cart.AddToCart(user.ID, book.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if _, err := f.cart.AddToCart(user.ID, lamp.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	result, err := f.purchase.Purchase(user.ID)
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if result.TotalAmount.String() != "75.00" {
		t.Fatalf("total want 75.00 got %s", result.TotalAmount.String())
	}
	if result.Balance.String() != "25.00" {
		t.Fatalf("result balance want 25.00 got %s", result.Balance.String())
	}
	if f.balanceOf(t, user.ID) != "25.00" {
		t.Fatalf("stored balance want 25.00 got %s", f.balanceOf(t, user.ID))
	}
	if !strings.HasPrefix(result.OrderNo, "MK") || len(result.OrderNo) != 22 {
		t.Fatalf("unexpected order no %q", result.OrderNo)
	}

	// 订单行为成交价快照
	var order models.Order
	if err := f.db.Preload("Lines").First(&order, result.OrderID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("order lines want 2 got %d", len(order.Lines))
	}
	priceByProduct := map[uint]string{}
	for _, line := range order.Lines {
		priceByProduct[line.ProductID] = line.UnitPrice.String()
	}
	if priceByProduct[book.ID] != "30.00" || priceByProduct[lamp.ID] != "45.00" {
		t.Fatalf("unit price snapshots wrong: %v", priceByProduct)
	}

	// 购物车已清空，但购物车本身保留
	detail, err := f.cart.GetCart(user.ID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(detail.ProductIDs) != 0 {
		t.Fatalf("cart should be empty after purchase, got %v", detail.ProductIDs)
	}
	if detail.CartID == 0 {
		t.Fatalf("cart row should survive the purchase")
	}
}

func TestPurchaseEmptyCart(t *testing.T) {
	f := setupPurchaseServiceTest(t)
	user := createTestUser(t, f.db, "alice", "100.00")

	// 从未创建购物车
	if _, err := f.purchase.Purchase(user.ID); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("no cart want ErrCartEmpty got %v", err)
	}

	// 购物车存在但没有商品
	category := createTestCategory(t, f.db, "电子产品")
	product := createTestProduct(t, f.db, category.ID, "无线耳机", "99.99")
	if _, err := f.cart.AddToCart(user.ID, product.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if _, err := f.cart.RemoveFromCart(user.ID, product.ID); err != nil {
		t.Fatalf("remove from cart failed: %v", err)
	}
	if _, err := f.purchase.Purchase(user.ID); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("empty cart want ErrCartEmpty got %v", err)
	}

	if f.balanceOf(t, user.ID) != "100.00" {
		t.Fatalf("failed purchase must not touch balance, got %s", f.balanceOf(t, user.ID))
	}
	if f.countRows(t, &models.Order{}) != 0 {
		t.Fatalf("failed purchase must not create orders")
	}
}

func TestPurchaseInsufficientBalance(t *testing.T) {
	f := setupPurchaseServiceTest(t)
	user := createTestUser(t, f.db, "bob", "50.00")
	category := createTestCategory(t, f.db, "电子产品")
	product := createTestProduct(t, f.db, category.ID, "智能手表", "199.99")

	if _, err := f.cart.AddToCart(user.ID, product.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	if _, err := f.purchase.Purchase(user.ID); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("want ErrInsufficientBalance got %v", err)
	}

	// 回滚后余额、订单、购物车均不变
	if f.balanceOf(t, user.ID) != "50.00" {
		t.Fatalf("balance want 50.00 got %s", f.balanceOf(t, user.ID))
	}
	if f.countRows(t, &models.Order{}) != 0 {
		t.Fatalf("failed purchase must not create orders")
	}
	detail, err := f.cart.GetCart(user.ID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(detail.ProductIDs) != 1 {
		t.Fatalf("cart should keep its line after rollback, got %v", detail.ProductIDs)
	}
}

func TestPurchaseAfterDebitFails(t *testing.T) {
	f := setupPurchaseServiceTest(t)
	user := createTestUser(t, f.db, "alice", "100.00")
	category := createTestCategory(t, f.db, "电子产品")
	product := createTestProduct(t, f.db, category.ID, "台灯", "60.00")

	if _, err := f.cart.AddToCart(user.ID, product.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if _, err := f.purchase.Purchase(user.ID); err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}
	if f.balanceOf(t, user.ID) != "40.00" {
		t.Fatalf("balance want 40.00 got %s", f.balanceOf(t, user.ID))
	}

	// 余额已扣减，再次购买同一商品超出余额
	if _, err := f.cart.AddToCart(user.ID, product.ID); err != nil {
		t.Fatalf("re-add to cart failed: %v", err)
	}
	if _, err := f.purchase.Purchase(user.ID); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("second purchase want ErrInsufficientBalance got %v", err)
	}
	if f.countRows(t, &models.Order{}) != 1 {
		t.Fatalf("only the first order should exist")
	}
}

func TestPurchaseDecimalExactness(t *testing.T) {
	f := setupPurchaseServiceTest(t)
	user := createTestUser(t, f.db, "alice", "0.10")
	category := createTestCategory(t, f.db, "生活用品")
	product := createTestProduct(t, f.db, category.ID, "别针", "0.01")

	// 0.01 反复结算十次后余额应精确归零
	for i := 0; i < 10; i++ {
		if _, err := f.cart.AddToCart(user.ID, product.ID); err != nil {
			t.Fatalf("round %d add failed: %v", i, err)
		}
		result, err := f.purchase.Purchase(user.ID)
		if err != nil {
			t.Fatalf("round %d purchase failed: %v", i, err)
		}
		want := fmt.Sprintf("0.0%d", 9-i)
		if result.Balance.String() != want {
			t.Fatalf("round %d balance want %s got %s", i, want, result.Balance.String())
		}
	}
	if f.balanceOf(t, user.ID) != "0.00" {
		t.Fatalf("final balance want exactly 0.00 got %s", f.balanceOf(t, user.ID))
	}

	// 余额归零后再买一次失败
	if _, err := f.cart.AddToCart(user.ID, product.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if _, err := f.purchase.Purchase(user.ID); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("want ErrInsufficientBalance got %v", err)
	}
}

func TestPurchaseConcurrentOnlyOneSucceeds(t *testing.T) {
	f := setupPurchaseServiceTest(t)
	sqlDB, err := f.db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	// 内存库限制为单连接，写事务串行执行
	sqlDB.SetMaxOpenConns(1)

	user := createTestUser(t, f.db, "alice", "100.00")
	category := createTestCategory(t, f.db, "电子产品")
	product := createTestProduct(t, f.db, category.ID, "台灯", "60.00")

	if _, err := f.cart.AddToCart(user.ID, product.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	// 余额只够买一次，两个并发结算只能成功一个
	errCh := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// 补货到购物车，已在车中的冲突可忽略
			if _, err := f.cart.AddToCart(user.ID, product.ID); err != nil && !errors.Is(err, ErrCartLineExists) {
				errCh <- err
				return
			}
			_, err := f.purchase.Purchase(user.ID)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var succeeded, failed int
	for err := range errCh {
		if err == nil {
			succeeded++
			continue
		}
		failed++
		if !errors.Is(err, ErrInsufficientBalance) && !errors.Is(err, ErrCartEmpty) {
			t.Fatalf("losing purchase want precondition failure, got %v", err)
		}
	}
	if succeeded != 1 || failed != 1 {
		t.Fatalf("want exactly one success and one failure, got %d/%d", succeeded, failed)
	}
	if f.countRows(t, &models.Order{}) != 1 {
		t.Fatalf("exactly one order should exist")
	}
	if f.balanceOf(t, user.ID) != "40.00" {
		t.Fatalf("balance should be debited once, want 40.00 got %s", f.balanceOf(t, user.ID))
	}
}

func TestPurchaseUserNotFound(t *testing.T) {
	f := setupPurchaseServiceTest(t)

	if _, err := f.purchase.Purchase(9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user want ErrUserNotFound got %v", err)
	}
}

func TestGenerateOrderNo(t *testing.T) {
	no := generateOrderNo()
	if !strings.HasPrefix(no, "MK") {
		t.Fatalf("order no should start with MK, got %s", no)
	}
	if len(no) != 22 {
		t.Fatalf("order no length want 22 got %d (%s)", len(no), no)
	}
	for _, r := range no[2:] {
		if r < '0' || r > '9' {
			t.Fatalf("order no suffix should be numeric, got %s", no)
		}
	}
}
