package processor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func newTestProcessor(t *testing.T, handler http.HandlerFunc) *StripeProcessor {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backends := stripe.NewBackendsWithConfig(&stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeProcessorWithBackends("sk_test_123", backends)
}

func TestStripeProcessor_GetCheckoutSession_Expands(t *testing.T) {
	var gotPath string
	var gotExpand []string
	p := newTestProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		q := r.URL.Query()
		gotExpand = []string{q.Get("expand[0]"), q.Get("expand[1]")}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_123","object":"checkout.session","amount_total":15000,"currency":"eur"}`))
	})

	sess, err := p.GetCheckoutSession(context.Background(), "cs_123", "line_items", "customer_details")
	require.NoError(t, err)

	assert.Equal(t, "/v1/checkout/sessions/cs_123", gotPath)
	assert.Equal(t, []string{"line_items", "customer_details"}, gotExpand)
	assert.Equal(t, int64(15000), sess.AmountTotal)
	assert.Equal(t, stripe.Currency("eur"), sess.Currency)
}

func TestStripeProcessor_CreateCustomer_Empty(t *testing.T) {
	var gotMethod, gotPath string
	p := newTestProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cus_123","object":"customer"}`))
	})

	c, err := p.CreateCustomer(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/customers", gotPath)
	assert.Equal(t, "cus_123", c.ID)
}

func TestStripeProcessor_PaymentLink_SendsExtras(t *testing.T) {
	var form map[string][]string
	p := newTestProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"plink_123","object":"payment_link","url":"https://buy.stripe.com/test_123"}`))
	})

	params := &stripe.PaymentLinkParams{BillingAddressCollection: stripe.String("required")}
	params.AddExtra("line_items[0][price_data][unit_amount]", "10000")

	link, err := p.CreatePaymentLink(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "https://buy.stripe.com/test_123", link.URL)
	assert.Equal(t, []string{"10000"}, form["line_items[0][price_data][unit_amount]"])
	assert.Equal(t, []string{"required"}, form["billing_address_collection"])
}

func TestStripeProcessor_ErrorIsReturned(t *testing.T) {
	p := newTestProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such payment_intent: 'pi_missing'"}}`))
	})

	_, err := p.GetPaymentIntent(context.Background(), "pi_missing")
	require.Error(t, err)

	var stripeErr *stripe.Error
	require.ErrorAs(t, err, &stripeErr)
	assert.Equal(t, http.StatusNotFound, stripeErr.HTTPStatusCode)
	assert.Contains(t, stripeErr.Msg, "pi_missing")
}
