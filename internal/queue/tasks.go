package queue

import (
	"encoding/json"

	"github.com/minimarket/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderRecorded 订单回执任务
	TaskOrderRecorded = constants.TaskOrderRecorded
)

// OrderRecordedPayload 订单回执任务载荷
type OrderRecordedPayload struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
	UserID  uint   `json:"user_id"`
}

// NewOrderRecordedTask 创建订单回执任务
func NewOrderRecordedTask(payload OrderRecordedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderRecorded, body), nil
}
