package paymentlink

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"staypay/models"
	"staypay/services/pricing"
	"staypay/services/processor/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

var bookingIDPattern = regexp.MustCompile(`^TDG-\d+-[A-Z0-9]{9}$`)

func fixedClock() time.Time {
	return time.UnixMilli(1735689600000)
}

func newService(t *testing.T) (*DefaultPaymentLinkService, *mocks.MockProcessor) {
	t.Helper()
	p := mocks.NewMockProcessor(t)
	ids := &BookingIDGenerator{Prefix: "TDG", Now: fixedClock}
	opts := Options{
		DefaultCurrency:   "eur",
		BaseURL:           "http://localhost:3000",
		ShippingCountries: []string{"GB", "IE"},
		Images:            pricing.Images{Room: "https://img/room.jpg", AddOn: "https://img/addon.jpg"},
	}
	return NewPaymentLinkService(p, ids, opts, zap.NewNop()), p
}

func validBooking() models.BookingRequest {
	return models.BookingRequest{
		GuestName:      "Ada Lovelace",
		GuestEmail:     "ada@example.com",
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-03",
		RoomType:       "Sea View Double",
		NightlyRate:    100,
		NumberOfNights: 2,
		AddOns:         []models.AddOn{{Name: "Breakfast", Description: "Continental", Price: 20, Quantity: 1}},
	}
}

func TestBookingIDGenerator_Format(t *testing.T) {
	g := NewBookingIDGenerator("TDG")
	for i := 0; i < 50; i++ {
		assert.Regexp(t, bookingIDPattern, g.Next())
	}
}

func TestBookingIDGenerator_SameMillisecondDiffers(t *testing.T) {
	g := &BookingIDGenerator{Prefix: "TDG", Now: fixedClock}

	a, b := g.Next(), g.Next()
	assert.NotEqual(t, a, b)
	assert.Equal(t, a[:len("TDG-1735689600000-")], b[:len("TDG-1735689600000-")])
}

func TestCreatePaymentLink_Success(t *testing.T) {
	svc, p := newService(t)

	var got *stripe.PaymentLinkParams
	p.On("CreatePaymentLink", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*stripe.PaymentLinkParams) }).
		Return(&stripe.PaymentLink{ID: "plink_1", URL: "https://buy.stripe.com/test_1"}, nil)

	res, err := svc.CreatePaymentLink(context.Background(), validBooking(), "https://hotel.example")
	require.NoError(t, err)
	assert.Equal(t, "https://buy.stripe.com/test_1", res.URL)
	assert.Regexp(t, bookingIDPattern, res.BookingID)

	require.NotNil(t, got)
	assert.Equal(t, "always", *got.CustomerCreation)
	assert.Equal(t, "off_session", *got.PaymentIntentData.SetupFutureUsage)
	assert.Equal(t, int64(1), *got.Restrictions.CompletedSessions.Limit)
	assert.Equal(t, "required", *got.BillingAddressCollection)
	assert.Equal(t, []*string{stripe.String("GB"), stripe.String("IE")}, got.ShippingAddressCollection.AllowedCountries)
	assert.Equal(t, "redirect", *got.AfterCompletion.Type)
	assert.Equal(t, "https://hotel.example/success?session_id={CHECKOUT_SESSION_ID}", *got.AfterCompletion.Redirect.URL)

	assert.Equal(t, map[string]string{
		"booking_id":       res.BookingID,
		"guest_name":       "Ada Lovelace",
		"guest_email":      "ada@example.com",
		"check_in_date":    "2025-06-01",
		"check_out_date":   "2025-06-03",
		"room_type":        "Sea View Double",
		"total_nights":     "2",
		"integration_type": "payment_link",
		"nightly_rate":     "100",
	}, got.Metadata)

	extra := got.Extra.Values
	assert.Equal(t, "Sea View Double - Night 1", extra.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "01/06/2025 - Premium accommodation", extra.Get("line_items[0][price_data][product_data][description]"))
	assert.Equal(t, "02/06/2025 - Premium accommodation", extra.Get("line_items[1][price_data][product_data][description]"))
	assert.Equal(t, "10000", extra.Get("line_items[1][price_data][unit_amount]"))
	assert.Equal(t, "Breakfast", extra.Get("line_items[2][price_data][product_data][name]"))
	assert.Equal(t, "2000", extra.Get("line_items[2][price_data][unit_amount]"))
	assert.Equal(t, "1", extra.Get("line_items[2][quantity]"))
	assert.Equal(t, "eur", extra.Get("line_items[2][price_data][currency]"))
	assert.Equal(t, "https://img/addon.jpg", extra.Get("line_items[2][price_data][product_data][images][0]"))
	assert.Empty(t, extra.Get("line_items[3][quantity]"))
}

func TestCreatePaymentLink_FallsBackToBaseURL(t *testing.T) {
	svc, p := newService(t)

	p.On("CreatePaymentLink", mock.Anything, mock.MatchedBy(func(params *stripe.PaymentLinkParams) bool {
		return *params.AfterCompletion.Redirect.URL == "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}"
	})).Return(&stripe.PaymentLink{ID: "plink_2", URL: "https://buy.stripe.com/test_2"}, nil)

	_, err := svc.CreatePaymentLink(context.Background(), validBooking(), "")
	require.NoError(t, err)
}

func TestCreatePaymentLink_ValidationSkipsProcessor(t *testing.T) {
	svc, p := newService(t)

	req := validBooking()
	req.CheckInDate = "not-a-date"

	res, err := svc.CreatePaymentLink(context.Background(), req, "")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, models.IsValidationError(err))
	p.AssertNotCalled(t, "CreatePaymentLink", mock.Anything, mock.Anything)
}

func TestCreatePaymentLink_ProcessorError(t *testing.T) {
	svc, p := newService(t)
	p.On("CreatePaymentLink", mock.Anything, mock.Anything).Return(nil, errors.New("Invalid URL"))

	_, err := svc.CreatePaymentLink(context.Background(), validBooking(), "")
	require.Error(t, err)
	assert.False(t, models.IsValidationError(err))
	assert.Contains(t, err.Error(), "Invalid URL")
}

func TestCreatePaymentLink_CurrencyOverride(t *testing.T) {
	svc, p := newService(t)

	p.On("CreatePaymentLink", mock.Anything, mock.MatchedBy(func(params *stripe.PaymentLinkParams) bool {
		return params.Extra.Values.Get("line_items[0][price_data][currency]") == "gbp"
	})).Return(&stripe.PaymentLink{ID: "plink_3", URL: "u"}, nil)

	req := validBooking()
	req.Currency = "GBP"
	_, err := svc.CreatePaymentLink(context.Background(), req, "")
	require.NoError(t, err)
}
