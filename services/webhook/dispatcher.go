package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"staypay/models"
	"staypay/services/notification"
	"staypay/utils"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

var errNoEventData = errors.New("event has no data object")

// Dispatcher routes processor events to the booking notifier. Dispatch
// never fails the delivery: problems are logged and the event is acked.
type Dispatcher struct {
	Notifier notification.BookingNotifier
	Logger   *zap.Logger
}

func NewDispatcher(n notification.BookingNotifier, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{Notifier: n, Logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event stripe.Event) {
	var err error
	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		err = d.checkoutCompleted(ctx, event)
	case stripe.EventTypePaymentIntentSucceeded:
		err = d.paymentSucceeded(ctx, event)
	default:
		d.Logger.Info("Unhandled event type", zap.String("type", string(event.Type)), zap.String("eventID", event.ID))
		return
	}
	if err != nil {
		d.Logger.Error("Webhook event not processed",
			zap.String("type", string(event.Type)),
			zap.String("eventID", event.ID),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) checkoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := decodeObject(event, &sess); err != nil {
		return err
	}
	if sess.Metadata[models.MetaIntegrationType] != models.IntegrationPaymentLink {
		d.Logger.Debug("Checkout session is not a payment link booking", zap.String("sessionID", sess.ID))
		return nil
	}
	return d.Notifier.BookingConfirmed(ctx, BookingFromSession(&sess))
}

func (d *Dispatcher) paymentSucceeded(ctx context.Context, event stripe.Event) error {
	var pi stripe.PaymentIntent
	if err := decodeObject(event, &pi); err != nil {
		return err
	}
	return d.Notifier.PaymentSucceeded(ctx, models.PaymentSucceeded{
		PaymentIntentID: pi.ID,
		Amount:          utils.FromMinorUnits(pi.Amount),
		Currency:        string(pi.Currency),
		FlowType:        pi.Metadata[models.MetaFlowType],
	})
}

// BookingFromSession reads the booking fields stamped on the payment link.
func BookingFromSession(sess *stripe.CheckoutSession) models.BookingConfirmation {
	return models.BookingConfirmation{
		SessionID:   sess.ID,
		BookingID:   sess.Metadata[models.MetaBookingID],
		GuestName:   sess.Metadata[models.MetaGuestName],
		GuestEmail:  sess.Metadata[models.MetaGuestEmail],
		CheckIn:     sess.Metadata[models.MetaCheckInDate],
		CheckOut:    sess.Metadata[models.MetaCheckOutDate],
		TotalAmount: utils.FromMinorUnits(sess.AmountTotal),
		Currency:    string(sess.Currency),
	}
}

func decodeObject(event stripe.Event, v interface{}) error {
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return errNoEventData
	}
	if err := json.Unmarshal(event.Data.Raw, v); err != nil {
		return fmt.Errorf("decode %s object: %w", event.Type, err)
	}
	return nil
}
