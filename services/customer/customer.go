package customer

import (
	"context"
	"fmt"
	"strings"

	"staypay/models"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// CreateProvisional creates an empty customer so an id exists to attach to an intent.
func (s *DefaultCustomerService) CreateProvisional(ctx context.Context) (*models.Customer, error) {
	c, err := s.Processor.CreateCustomer(ctx, &stripe.CustomerParams{})
	if err != nil {
		return nil, fmt.Errorf("create provisional customer: %w", err)
	}
	s.Logger.Info("Empty customer created", zap.String("customerID", c.ID))
	return &models.Customer{ID: c.ID, State: models.CustomerProvisional}, nil
}

// Update merges the present billing fields into the customer. An empty id is
// rejected before any remote call.
func (s *DefaultCustomerService) Update(ctx context.Context, customerID string, billing *models.BillingDetails) (*UpdateResult, error) {
	ref := &models.Customer{ID: strings.TrimSpace(customerID), State: models.CustomerProvisional}
	if err := ref.Enrich(); err != nil {
		return nil, err
	}

	params, fields := BuildUpdateParams(billing)
	s.Logger.Info("Updating customer with billing details",
		zap.String("customerID", ref.ID),
		zap.Strings("fields", fields),
	)

	c, err := s.Processor.UpdateCustomer(ctx, ref.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update customer %s: %w", ref.ID, err)
	}
	s.Logger.Info("Customer updated successfully", zap.String("customerID", c.ID))

	return &UpdateResult{CustomerID: c.ID, UpdatedFields: fields}, nil
}

// BuildUpdateParams maps billing details to customer params, skipping empty fields.
// The returned field names are in a stable order: name, email, phone, address.
func BuildUpdateParams(billing *models.BillingDetails) (*stripe.CustomerParams, []string) {
	params := &stripe.CustomerParams{}
	fields := []string{}
	if billing == nil {
		return params, fields
	}

	if billing.Name != "" {
		params.Name = stripe.String(billing.Name)
		fields = append(fields, "name")
	}
	if billing.Email != "" {
		params.Email = stripe.String(billing.Email)
		fields = append(fields, "email")
	}
	if billing.Phone != "" {
		params.Phone = stripe.String(billing.Phone)
		fields = append(fields, "phone")
	}
	if billing.Address != nil {
		params.Address = AddressParams(billing.Address)
		fields = append(fields, "address")
	}
	return params, fields
}

// AddressParams converts an address to its Stripe form, leaving blank parts unset.
func AddressParams(a *models.Address) *stripe.AddressParams {
	if a == nil {
		return nil
	}
	return &stripe.AddressParams{
		Line1:      optional(a.Line1),
		Line2:      optional(a.Line2),
		City:       optional(a.City),
		State:      optional(a.State),
		PostalCode: optional(a.PostalCode),
		Country:    optional(a.Country),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return stripe.String(s)
}
