package intent

import (
	"context"

	"staypay/models"
	"staypay/services/customer"
	"staypay/services/processor"

	"go.uber.org/zap"
)

// IntentService creates the intents behind the two Payment Element flows.
type IntentService interface {
	CreatePaymentIntent(ctx context.Context, amount float64, currency string, info *models.CustomerInfo) (*models.IntentResult, error)
	CreateSetupIntent(ctx context.Context, info *models.CustomerInfo, currency string) (*models.IntentResult, error)
}

// DefaultIntentService implements IntentService.
type DefaultIntentService struct {
	Processor       processor.Processor
	Customers       customer.CustomerService
	DefaultCurrency string
	Logger          *zap.Logger
}

func NewIntentService(p processor.Processor, customers customer.CustomerService, defaultCurrency string, logger *zap.Logger) *DefaultIntentService {
	return &DefaultIntentService{
		Processor:       p,
		Customers:       customers,
		DefaultCurrency: defaultCurrency,
		Logger:          logger,
	}
}
