package paymentlink

import (
	"context"

	"staypay/models"
	"staypay/services/pricing"
	"staypay/services/processor"

	"go.uber.org/zap"
)

// PaymentLinkService hands a whole booking off to a hosted, single-use checkout.
type PaymentLinkService interface {
	CreatePaymentLink(ctx context.Context, req models.BookingRequest, origin string) (*models.PaymentLinkResult, error)
}

// Options are the deployment-specific parts of a payment link.
type Options struct {
	DefaultCurrency   string
	BaseURL           string
	ShippingCountries []string
	Images            pricing.Images
}

// DefaultPaymentLinkService implements PaymentLinkService.
type DefaultPaymentLinkService struct {
	Processor  processor.Processor
	BookingIDs *BookingIDGenerator
	Options    Options
	Logger     *zap.Logger
}

func NewPaymentLinkService(p processor.Processor, ids *BookingIDGenerator, opts Options, logger *zap.Logger) *DefaultPaymentLinkService {
	return &DefaultPaymentLinkService{
		Processor:  p,
		BookingIDs: ids,
		Options:    opts,
		Logger:     logger,
	}
}
