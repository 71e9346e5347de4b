package service

import (
	"errors"
	"testing"

	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/repository"

	"gorm.io/gorm"
)

func setupUserServiceTest(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t, "user_service_test")
	svc := NewUserService(
		repository.NewUserRepository(db),
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
	)
	return svc, db
}

func TestUserServiceCreate(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	user, err := svc.Create(CreateUserInput{Username: " alice ", Balance: mustDecimal(t, "500")})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("username should be trimmed, got %q", user.Username)
	}
	if user.Balance.String() != "500.00" {
		t.Fatalf("balance want 500.00 got %s", user.Balance.String())
	}

	if _, err := svc.Create(CreateUserInput{Username: "alice"}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("duplicate username want ErrUsernameExists got %v", err)
	}
	if _, err := svc.Create(CreateUserInput{Username: "   "}); !errors.Is(err, ErrUsernameInvalid) {
		t.Fatalf("blank username want ErrUsernameInvalid got %v", err)
	}
	if _, err := svc.Create(CreateUserInput{Username: "carol", Balance: mustDecimal(t, "-0.01")}); !errors.Is(err, ErrBalanceInvalid) {
		t.Fatalf("negative balance want ErrBalanceInvalid got %v", err)
	}
}

func TestUserServiceDeleteBlockedByOrders(t *testing.T) {
	svc, db := setupUserServiceTest(t)
	user := createTestUser(t, db, "alice", "100.00")

	order := models.Order{OrderNo: "MK20260101000000000001", UserID: user.ID, TotalAmount: models.NewMoneyFromDecimal(mustDecimal(t, "30.00"))}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := svc.Delete(user.ID); !errors.Is(err, ErrUserReferenced) {
		t.Fatalf("delete with orders want ErrUserReferenced got %v", err)
	}
}

func TestUserServiceDeleteBlockedByCartLines(t *testing.T) {
	svc, db := setupUserServiceTest(t)
	user := createTestUser(t, db, "bob", "100.00")
	category := createTestCategory(t, db, "电子产品")
	product := createTestProduct(t, db, category.ID, "无线耳机", "99.99")

	cart := models.Cart{UserID: user.ID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	if err := db.Create(&models.CartLine{CartID: cart.ID, ProductID: product.ID}).Error; err != nil {
		t.Fatalf("create cart line failed: %v", err)
	}

	if err := svc.Delete(user.ID); !errors.Is(err, ErrUserReferenced) {
		t.Fatalf("delete with cart lines want ErrUserReferenced got %v", err)
	}
}

func TestUserServiceDeleteRemovesEmptyCart(t *testing.T) {
	svc, db := setupUserServiceTest(t)
	user := createTestUser(t, db, "carol", "100.00")

	cart := models.Cart{UserID: user.ID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}

	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}

	if _, err := svc.Get(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("deleted user want ErrUserNotFound got %v", err)
	}
	var cartCount int64
	if err := db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("empty cart should be deleted with the user, got %d rows", cartCount)
	}
}

func TestUserServiceDeleteNotFound(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	if err := svc.Delete(9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user want ErrUserNotFound got %v", err)
	}
}
