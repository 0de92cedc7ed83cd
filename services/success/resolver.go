package success

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"staypay/models"
	"staypay/services/processor"
	"staypay/utils"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// ErrNoCallback means the success page was visited without any reference.
var ErrNoCallback = errors.New("no success reference in callback")

// Resolver re-fetches the completed processor object and projects it for the confirmation page.
type Resolver interface {
	Resolve(ctx context.Context, cb models.SuccessCallback) (*models.ConfirmationData, error)
}

// DefaultResolver implements Resolver.
type DefaultResolver struct {
	Processor processor.Processor
	Logger    *zap.Logger
}

func NewResolver(p processor.Processor, logger *zap.Logger) *DefaultResolver {
	return &DefaultResolver{Processor: p, Logger: logger}
}

func (r *DefaultResolver) Resolve(ctx context.Context, cb models.SuccessCallback) (*models.ConfirmationData, error) {
	switch cb.Kind {
	case models.CallbackSession:
		return r.resolveSession(ctx, cb.ID)
	case models.CallbackPaymentIntent:
		return r.resolvePaymentIntent(ctx, cb.ID)
	case models.CallbackSetupIntent:
		return r.resolveSetupIntent(ctx, cb.ID)
	default:
		return nil, ErrNoCallback
	}
}

func (r *DefaultResolver) resolveSession(ctx context.Context, id string) (*models.ConfirmationData, error) {
	sess, err := r.Processor.GetCheckoutSession(ctx, id, "line_items", "customer_details")
	if err != nil {
		r.Logger.Error("Error retrieving session", zap.String("sessionID", id), zap.Error(err))
		return nil, fmt.Errorf("%w: session %s: %v", models.ErrRetrieval, id, err)
	}
	data := ProjectSession(sess)
	r.Logger.Info("Payment Links success",
		zap.String("sessionID", sess.ID),
		zap.String("bookingID", data.BookingID),
		zap.String("customerEmail", data.CustomerEmail),
	)
	return data, nil
}

func (r *DefaultResolver) resolvePaymentIntent(ctx context.Context, id string) (*models.ConfirmationData, error) {
	pi, err := r.Processor.GetPaymentIntent(ctx, id)
	if err != nil {
		r.Logger.Error("Error retrieving payment intent", zap.String("paymentIntentID", id), zap.Error(err))
		return nil, fmt.Errorf("%w: payment intent %s: %v", models.ErrRetrieval, id, err)
	}
	data := ProjectPaymentIntent(pi)
	r.Logger.Info("PaymentIntent success",
		zap.String("paymentIntentID", pi.ID),
		zap.Float64("amount", *data.Amount),
		zap.String("currency", data.Currency),
	)
	return data, nil
}

func (r *DefaultResolver) resolveSetupIntent(ctx context.Context, id string) (*models.ConfirmationData, error) {
	si, err := r.Processor.GetSetupIntent(ctx, id)
	if err != nil {
		r.Logger.Error("Error retrieving setup intent", zap.String("setupIntentID", id), zap.Error(err))
		return nil, fmt.Errorf("%w: setup intent %s: %v", models.ErrRetrieval, id, err)
	}
	fields := []zap.Field{zap.String("setupIntentID", si.ID)}
	if si.PaymentMethod != nil {
		fields = append(fields, zap.String("paymentMethod", si.PaymentMethod.ID))
	}
	r.Logger.Info("SetupIntent success", fields...)
	return ProjectSetupIntent(si), nil
}

// ProjectSession maps a checkout session backing a payment link.
func ProjectSession(sess *stripe.CheckoutSession) *models.ConfirmationData {
	name := metadata(sess.Metadata, models.MetaGuestName)
	email := metadata(sess.Metadata, models.MetaGuestEmail)
	if sess.CustomerDetails != nil {
		if sess.CustomerDetails.Name != "" {
			name = sess.CustomerDetails.Name
		}
		if sess.CustomerDetails.Email != "" {
			email = sess.CustomerDetails.Email
		}
	}
	amount := utils.FromMinorUnits(sess.AmountTotal)
	return &models.ConfirmationData{
		Type:          models.ConfirmationPaymentLink,
		BookingID:     metadata(sess.Metadata, models.MetaBookingID),
		Amount:        &amount,
		Currency:      strings.ToUpper(string(sess.Currency)),
		CustomerName:  name,
		CustomerEmail: email,
		CheckIn:       metadata(sess.Metadata, models.MetaCheckInDate),
		CheckOut:      metadata(sess.Metadata, models.MetaCheckOutDate),
	}
}

// ProjectPaymentIntent maps the full Payment Element flow.
func ProjectPaymentIntent(pi *stripe.PaymentIntent) *models.ConfirmationData {
	amount := utils.FromMinorUnits(pi.Amount)
	flow := metadata(pi.Metadata, models.MetaFlowType)
	if flow == "" {
		flow = "payment"
	}
	return &models.ConfirmationData{
		Type:          models.ConfirmationElementFull,
		IntentID:      pi.ID,
		Amount:        &amount,
		Currency:      strings.ToUpper(string(pi.Currency)),
		CustomerName:  metadata(pi.Metadata, models.MetaCustomerName),
		CustomerEmail: metadata(pi.Metadata, models.MetaCustomerEmail),
		Flow:          flow,
	}
}

// ProjectSetupIntent maps the deferred flow. Setup intents carry no amount.
func ProjectSetupIntent(si *stripe.SetupIntent) *models.ConfirmationData {
	flow := metadata(si.Metadata, models.MetaFlowType)
	if flow == "" {
		flow = "setup"
	}
	return &models.ConfirmationData{
		Type:               models.ConfirmationElementDeferred,
		IntentID:           si.ID,
		PaymentMethodSaved: true,
		CustomerName:       metadata(si.Metadata, models.MetaCustomerName),
		CustomerEmail:      metadata(si.Metadata, models.MetaCustomerEmail),
		Flow:               flow,
	}
}

func metadata(m map[string]string, key string) string {
	if m == nil {
		return ""
	}
	return m[key]
}
