package processor

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProcessor implements Processor with the Stripe SDK.
type StripeProcessor struct {
	api *client.API
}

// NewStripeProcessor builds a client bound to apiKey. The SDK's global key is left untouched.
func NewStripeProcessor(apiKey string) *StripeProcessor {
	return &StripeProcessor{api: client.New(apiKey, nil)}
}

// NewStripeProcessorWithBackends is NewStripeProcessor against custom backends (tests, proxies).
func NewStripeProcessorWithBackends(apiKey string, backends *stripe.Backends) *StripeProcessor {
	return &StripeProcessor{api: client.New(apiKey, backends)}
}

func (p *StripeProcessor) CreateCustomer(ctx context.Context, params *stripe.CustomerParams) (*stripe.Customer, error) {
	if params == nil {
		params = &stripe.CustomerParams{}
	}
	params.Context = ctx
	return p.api.Customers.New(params)
}

func (p *StripeProcessor) UpdateCustomer(ctx context.Context, id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	if params == nil {
		params = &stripe.CustomerParams{}
	}
	params.Context = ctx
	return p.api.Customers.Update(id, params)
}

func (p *StripeProcessor) CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	params.Context = ctx
	return p.api.PaymentIntents.New(params)
}

func (p *StripeProcessor) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	return p.api.PaymentIntents.Get(id, params)
}

func (p *StripeProcessor) CreateSetupIntent(ctx context.Context, params *stripe.SetupIntentParams) (*stripe.SetupIntent, error) {
	params.Context = ctx
	return p.api.SetupIntents.New(params)
}

func (p *StripeProcessor) GetSetupIntent(ctx context.Context, id string) (*stripe.SetupIntent, error) {
	params := &stripe.SetupIntentParams{}
	params.Context = ctx
	return p.api.SetupIntents.Get(id, params)
}

func (p *StripeProcessor) GetCheckoutSession(ctx context.Context, id string, expand ...string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	for _, field := range expand {
		params.AddExpand(field)
	}
	return p.api.CheckoutSessions.Get(id, params)
}

func (p *StripeProcessor) CreatePaymentLink(ctx context.Context, params *stripe.PaymentLinkParams) (*stripe.PaymentLink, error) {
	params.Context = ctx
	return p.api.PaymentLinks.New(params)
}
