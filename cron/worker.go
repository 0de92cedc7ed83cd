package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staypay/models"
	"staypay/services/notification"
	"staypay/services/tasks"
	"staypay/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitWebhookWorker runs the webhook side-effect worker in background and
// returns the server so the caller can shut it down.
func InitWebhookWorker(notifier notification.BookingNotifier, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		utils.QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := NewWebhookMux(notifier, logger)

	go func() {
		logger.Info("[WebhookWorker] Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("[WebhookWorker] Failed to start worker",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("[WebhookWorker] Max retry attempts reached, side effects stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// NewWebhookMux routes queued webhook side effects to the notifier.
func NewWebhookMux(notifier notification.BookingNotifier, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmed, handleBookingConfirmed(notifier, logger))
	mux.HandleFunc(tasks.TypePaymentSucceeded, handlePaymentSucceeded(notifier, logger))
	return mux
}

func handleBookingConfirmed(notifier notification.BookingNotifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingConfirmation
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("[WebhookWorker] Invalid booking payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return notifier.BookingConfirmed(ctx, p)
	}
}

func handlePaymentSucceeded(notifier notification.BookingNotifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PaymentSucceeded
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("[WebhookWorker] Invalid payment payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return notifier.PaymentSucceeded(ctx, p)
	}
}
