package tasks

import (
	"encoding/json"
	"time"

	"staypay/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirmed = "booking:confirmed"
	TypePaymentSucceeded = "payment:succeeded"
)

const maxRetry = 5

func NewBookingConfirmedTask(payload models.BookingConfirmation) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmed, b)
	opts := []asynq.Option{asynq.MaxRetry(maxRetry), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

func NewPaymentSucceededTask(payload models.PaymentSucceeded) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePaymentSucceeded, b)
	opts := []asynq.Option{asynq.MaxRetry(maxRetry), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}
