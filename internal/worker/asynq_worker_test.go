package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/minimarket/internal/models"
	"github.com/minimarket/internal/provider"
	"github.com/minimarket/internal/queue"
	"github.com/minimarket/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newWorkerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderLine{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestHandleOrderRecorded(t *testing.T) {
	db := newWorkerTestDB(t)
	consumer := NewConsumer(&provider.Container{
		OrderRepo: repository.NewOrderRepository(db),
	})

	order := models.Order{
		OrderNo:     "MK20260101000000000001",
		UserID:      1,
		TotalAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("75.00")),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	task, err := queue.NewOrderRecordedTask(queue.OrderRecordedPayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		UserID:  order.UserID,
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderRecorded(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}
}

func TestHandleOrderRecordedSkipsMissingOrder(t *testing.T) {
	db := newWorkerTestDB(t)
	consumer := NewConsumer(&provider.Container{
		OrderRepo: repository.NewOrderRepository(db),
	})

	task, err := queue.NewOrderRecordedTask(queue.OrderRecordedPayload{OrderID: 9999})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	// 订单查不到不算失败，任务不应重试
	if err := consumer.handleOrderRecorded(context.Background(), task); err != nil {
		t.Fatalf("missing order should not fail the task: %v", err)
	}
}

func TestHandleOrderRecordedBadPayload(t *testing.T) {
	db := newWorkerTestDB(t)
	consumer := NewConsumer(&provider.Container{
		OrderRepo: repository.NewOrderRepository(db),
	})

	task := asynq.NewTask(queue.TaskOrderRecorded, []byte("{not json"))
	if err := consumer.handleOrderRecorded(context.Background(), task); err == nil {
		t.Fatalf("malformed payload should fail the task")
	}
}
