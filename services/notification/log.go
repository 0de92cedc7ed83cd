package notification

import (
	"context"

	"staypay/models"

	"go.uber.org/zap"
)

// LogNotifier records booking side effects in the structured log.
type LogNotifier struct {
	Logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) BookingConfirmed(_ context.Context, b models.BookingConfirmation) error {
	n.Logger.Info("Payment Link booking confirmed",
		zap.String("bookingID", b.BookingID),
		zap.String("sessionID", b.SessionID),
		zap.String("guestName", b.GuestName),
		zap.String("guestEmail", b.GuestEmail),
		zap.String("checkIn", b.CheckIn),
		zap.String("checkOut", b.CheckOut),
		zap.Float64("totalAmount", b.TotalAmount),
		zap.String("currency", b.Currency),
	)
	return nil
}

func (n *LogNotifier) PaymentSucceeded(_ context.Context, p models.PaymentSucceeded) error {
	n.Logger.Info("Payment succeeded",
		zap.String("paymentIntentID", p.PaymentIntentID),
		zap.Float64("amount", p.Amount),
		zap.String("currency", p.Currency),
		zap.String("flowType", p.FlowType),
	)
	return nil
}
