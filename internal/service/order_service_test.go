package service

import (
	"errors"
	"testing"
)

func TestOrderServiceListAndGet(t *testing.T) {
	f := setupPurchaseServiceTest(t)
	orderSvc := NewOrderService(f.purchase.orderRepo)

	alice := createTestUser(t, f.db, "alice", "500.00")
	bob := createTestUser(t, f.db, "bob", "500.00")
	category := createTestCategory(t, f.db, "电子产品")
	earbuds := createTestProduct(t, f.db, category.ID, "无线耳机", "99.99")
	watch := createTestProduct(t, f.db, category.ID, "智能手表", "199.99")

	// alice 买耳机+手表，bob 只买耳机
	if _, err := f.cart.AddToCart(alice.ID, earbuds.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if _, err := f.cart.AddToCart(alice.ID, watch.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	aliceResult, err := f.purchase.Purchase(alice.ID)
	if err != nil {
		t.Fatalf("alice purchase failed: %v", err)
	}
	if _, err := f.cart.AddToCart(bob.ID, earbuds.ID); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if _, err := f.purchase.Purchase(bob.ID); err != nil {
		t.Fatalf("bob purchase failed: %v", err)
	}

	all, total, err := orderSvc.List(0, 0, 1, 20)
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Fatalf("all orders want 2 got total=%d len=%d", total, len(all))
	}

	aliceOrders, total, err := orderSvc.List(alice.ID, 0, 1, 20)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if total != 1 || len(aliceOrders) != 1 {
		t.Fatalf("alice orders want 1 got total=%d len=%d", total, len(aliceOrders))
	}
	if aliceOrders[0].TotalAmount.String() != "299.98" {
		t.Fatalf("alice total want 299.98 got %s", aliceOrders[0].TotalAmount.String())
	}
	if len(aliceOrders[0].ProductIDs) != 2 {
		t.Fatalf("alice order product ids want 2 got %v", aliceOrders[0].ProductIDs)
	}

	// 按商品过滤：耳机出现在两张订单里，手表只有一张
	_, total, err = orderSvc.List(0, earbuds.ID, 1, 20)
	if err != nil {
		t.Fatalf("list by product failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("orders containing earbuds want 2 got %d", total)
	}
	watchOrders, total, err := orderSvc.List(0, watch.ID, 1, 20)
	if err != nil {
		t.Fatalf("list by product failed: %v", err)
	}
	if total != 1 || len(watchOrders) != 1 || watchOrders[0].UserID != alice.ID {
		t.Fatalf("orders containing watch want alice's only, got total=%d %v", total, watchOrders)
	}

	detail, err := orderSvc.Get(aliceResult.OrderID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if detail.OrderNo != aliceResult.OrderNo {
		t.Fatalf("order no want %s got %s", aliceResult.OrderNo, detail.OrderNo)
	}

	if _, err := orderSvc.Get(9999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order want ErrOrderNotFound got %v", err)
	}
}
