package intent

import (
	"context"
	"fmt"

	"staypay/models"
	"staypay/services/customer"
	"staypay/utils"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// CreatePaymentIntent starts the full (immediate charge) flow. The saved
// payment method stays usable off-session afterwards.
func (s *DefaultIntentService) CreatePaymentIntent(ctx context.Context, amount float64, currency string, info *models.CustomerInfo) (*models.IntentResult, error) {
	if amount <= 0 {
		return nil, models.NewValidationError("amount", "must be greater than zero")
	}
	minor, err := utils.ToMinorUnits(amount)
	if err != nil {
		return nil, models.NewValidationError("amount", amountRangeMessage)
	}
	currency = utils.NormalizeCurrency(currency, s.DefaultCurrency)
	s.Logger.Info("Creating PaymentIntent for full payment",
		zap.Float64("amount", amount),
		zap.String("currency", currency),
	)

	cust := s.provisionCustomer(ctx)
	params := BuildPaymentIntentParams(minor, currency, cust.CustomerID(), info)

	pi, err := s.Processor.CreatePaymentIntent(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	s.Logger.Info("PaymentIntent created", zap.String("paymentIntentID", pi.ID))

	return &models.IntentResult{
		ClientSecret: pi.ClientSecret,
		IntentID:     pi.ID,
		CustomerID:   cust.CustomerID(),
	}, nil
}

// CreateSetupIntent starts the deferred flow: the card is saved, nothing is charged.
func (s *DefaultIntentService) CreateSetupIntent(ctx context.Context, info *models.CustomerInfo, currency string) (*models.IntentResult, error) {
	s.Logger.Info("Creating SetupIntent for deferred payment",
		zap.String("currency", utils.NormalizeCurrency(currency, s.DefaultCurrency)),
	)

	cust := s.provisionCustomer(ctx)
	params := BuildSetupIntentParams(cust.CustomerID(), info)

	si, err := s.Processor.CreateSetupIntent(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create setup intent: %w", err)
	}
	s.Logger.Info("SetupIntent created", zap.String("setupIntentID", si.ID))

	return &models.IntentResult{
		ClientSecret: si.ClientSecret,
		IntentID:     si.ID,
		CustomerID:   cust.CustomerID(),
	}, nil
}

// provisionCustomer is best-effort: on failure the intent is created without a customer.
func (s *DefaultIntentService) provisionCustomer(ctx context.Context) *models.Customer {
	c, err := s.Customers.CreateProvisional(ctx)
	if err != nil {
		s.Logger.Warn("Error creating customer, continuing without one", zap.Error(err))
		return nil
	}
	return c
}

const amountRangeMessage = "must not exceed 999999.99"

// BuildPaymentIntentParams assembles the request for the full flow. amount is in minor units.
func BuildPaymentIntentParams(amount int64, currency, customerID string, info *models.CustomerInfo) *stripe.PaymentIntentParams {
	params := &stripe.PaymentIntentParams{
		Amount:           stripe.Int64(amount),
		Currency:         stripe.String(currency),
		SetupFutureUsage: stripe.String(string(stripe.PaymentIntentSetupFutureUsageOffSession)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}

	if info != nil {
		if info.Address != nil {
			name := info.Name
			if name == "" {
				name = "Customer"
			}
			params.Shipping = &stripe.ShippingDetailsParams{
				Name:    stripe.String(name),
				Address: customer.AddressParams(info.Address),
			}
		}
		if info.Email != "" {
			params.ReceiptEmail = stripe.String(info.Email)
		}
	}

	params.Metadata = elementMetadata(models.FlowFull, info)
	return params
}

// BuildSetupIntentParams assembles the request for the deferred flow.
func BuildSetupIntentParams(customerID string, info *models.CustomerInfo) *stripe.SetupIntentParams {
	params := &stripe.SetupIntentParams{
		AutomaticPaymentMethods: &stripe.SetupIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Usage: stripe.String(string(stripe.SetupIntentUsageOffSession)),
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}
	params.Metadata = elementMetadata(models.FlowDeferred, info)
	return params
}

func elementMetadata(flow string, info *models.CustomerInfo) map[string]string {
	if info == nil {
		info = &models.CustomerInfo{}
	}
	return map[string]string{
		models.MetaIntegrationType: models.IntegrationPaymentElement,
		models.MetaFlowType:        flow,
		models.MetaCustomerName:    info.Name,
		models.MetaCustomerEmail:   info.Email,
		models.MetaCustomerPhone:   info.Phone,
	}
}
