// Package mocks holds testify doubles for the processor package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v76"
)

// MockProcessor is a testify mock of processor.Processor.
type MockProcessor struct {
	mock.Mock
}

// NewMockProcessor registers AssertExpectations as a test cleanup.
func NewMockProcessor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProcessor {
	m := &MockProcessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProcessor) CreateCustomer(ctx context.Context, params *stripe.CustomerParams) (*stripe.Customer, error) {
	args := m.Called(ctx, params)
	c, _ := args.Get(0).(*stripe.Customer)
	return c, args.Error(1)
}

func (m *MockProcessor) UpdateCustomer(ctx context.Context, id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	args := m.Called(ctx, id, params)
	c, _ := args.Get(0).(*stripe.Customer)
	return c, args.Error(1)
}

func (m *MockProcessor) CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, params)
	pi, _ := args.Get(0).(*stripe.PaymentIntent)
	return pi, args.Error(1)
}

func (m *MockProcessor) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, id)
	pi, _ := args.Get(0).(*stripe.PaymentIntent)
	return pi, args.Error(1)
}

func (m *MockProcessor) CreateSetupIntent(ctx context.Context, params *stripe.SetupIntentParams) (*stripe.SetupIntent, error) {
	args := m.Called(ctx, params)
	si, _ := args.Get(0).(*stripe.SetupIntent)
	return si, args.Error(1)
}

func (m *MockProcessor) GetSetupIntent(ctx context.Context, id string) (*stripe.SetupIntent, error) {
	args := m.Called(ctx, id)
	si, _ := args.Get(0).(*stripe.SetupIntent)
	return si, args.Error(1)
}

func (m *MockProcessor) GetCheckoutSession(ctx context.Context, id string, expand ...string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, id, expand)
	s, _ := args.Get(0).(*stripe.CheckoutSession)
	return s, args.Error(1)
}

func (m *MockProcessor) CreatePaymentLink(ctx context.Context, params *stripe.PaymentLinkParams) (*stripe.PaymentLink, error) {
	args := m.Called(ctx, params)
	pl, _ := args.Get(0).(*stripe.PaymentLink)
	return pl, args.Error(1)
}
