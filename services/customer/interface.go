package customer

import (
	"context"

	"staypay/models"
	"staypay/services/processor"

	"go.uber.org/zap"
)

// CustomerService provisions customers before billing details are known and
// enriches them once the payment form has been submitted.
type CustomerService interface {
	CreateProvisional(ctx context.Context) (*models.Customer, error)
	Update(ctx context.Context, customerID string, billing *models.BillingDetails) (*UpdateResult, error)
}

// UpdateResult reports which fields were sent to the processor.
type UpdateResult struct {
	CustomerID    string
	UpdatedFields []string
}

// DefaultCustomerService implements CustomerService on top of a Processor.
type DefaultCustomerService struct {
	Processor processor.Processor
	Logger    *zap.Logger
}

func NewCustomerService(p processor.Processor, logger *zap.Logger) *DefaultCustomerService {
	return &DefaultCustomerService{
		Processor: p,
		Logger:    logger,
	}
}
