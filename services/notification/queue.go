package notification

import (
	"context"
	"fmt"

	"staypay/models"
	"staypay/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is the part of *asynq.Client the queue notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier defers booking side effects to the webhook worker.
type QueueNotifier struct {
	Client Enqueuer
	Logger *zap.Logger
}

func NewQueueNotifier(client Enqueuer, logger *zap.Logger) *QueueNotifier {
	return &QueueNotifier{Client: client, Logger: logger}
}

func (n *QueueNotifier) BookingConfirmed(ctx context.Context, b models.BookingConfirmation) error {
	task, opts, err := tasks.NewBookingConfirmedTask(b)
	if err != nil {
		return err
	}
	return n.enqueue(ctx, task, opts)
}

func (n *QueueNotifier) PaymentSucceeded(ctx context.Context, p models.PaymentSucceeded) error {
	task, opts, err := tasks.NewPaymentSucceededTask(p)
	if err != nil {
		return err
	}
	return n.enqueue(ctx, task, opts)
}

func (n *QueueNotifier) enqueue(ctx context.Context, task *asynq.Task, opts []asynq.Option) error {
	info, err := n.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}
	n.Logger.Debug("Webhook side effect enqueued", zap.String("type", task.Type()), zap.String("taskID", info.ID))
	return nil
}
