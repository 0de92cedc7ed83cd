package notification

import (
	"context"

	"staypay/models"
)

// BookingNotifier receives the side effects of processor webhook events.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, b models.BookingConfirmation) error
	PaymentSucceeded(ctx context.Context, p models.PaymentSucceeded) error
}
