package paymentlink

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"staypay/models"
	"staypay/services/pricing"
	"staypay/utils"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// SessionPlaceholder is substituted by Stripe with the checkout session id on redirect.
const SessionPlaceholder = "{CHECKOUT_SESSION_ID}"

// CreatePaymentLink prices the stay, tags it with a new booking id and
// creates a single-use hosted link that redirects to /success.
func (s *DefaultPaymentLinkService) CreatePaymentLink(ctx context.Context, req models.BookingRequest, origin string) (*models.PaymentLinkResult, error) {
	currency := utils.NormalizeCurrency(req.Currency, s.Options.DefaultCurrency)
	s.Logger.Info("Creating payment link for booking",
		zap.String("guestEmail", req.GuestEmail),
		zap.String("checkIn", req.CheckInDate),
		zap.String("checkOut", req.CheckOutDate),
		zap.String("roomType", req.RoomType),
		zap.Int("nights", req.NumberOfNights),
	)

	items, err := pricing.BuildLineItems(req, currency, s.Options.Images)
	if err != nil {
		return nil, err
	}

	bookingID := s.BookingIDs.Next()
	params := BuildPaymentLinkParams(items, s.redirectURL(origin), s.Options.ShippingCountries, BookingMetadata(bookingID, req))

	link, err := s.Processor.CreatePaymentLink(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create payment link: %w", err)
	}
	s.Logger.Info("Payment link created",
		zap.String("paymentLinkID", link.ID),
		zap.String("bookingID", bookingID),
		zap.Int64("totalMinor", pricing.Total(items)),
		zap.String("url", link.URL),
	)

	return &models.PaymentLinkResult{URL: link.URL, BookingID: bookingID}, nil
}

func (s *DefaultPaymentLinkService) redirectURL(origin string) string {
	base := strings.TrimSpace(origin)
	if base == "" {
		base = s.Options.BaseURL
	}
	return strings.TrimRight(base, "/") + "/success?session_id=" + SessionPlaceholder
}

// BuildPaymentLinkParams assembles a single-use link request. Line items use
// inline price_data, which the pinned SDK does not model for payment links,
// so they are sent as extra form parameters.
func BuildPaymentLinkParams(items []models.LineItem, redirectURL string, countries []string, metadata map[string]string) *stripe.PaymentLinkParams {
	params := &stripe.PaymentLinkParams{
		CustomerCreation: stripe.String(string(stripe.PaymentLinkCustomerCreationAlways)),
		PaymentIntentData: &stripe.PaymentLinkPaymentIntentDataParams{
			SetupFutureUsage: stripe.String(string(stripe.PaymentLinkPaymentIntentDataSetupFutureUsageOffSession)),
		},
		Restrictions: &stripe.PaymentLinkRestrictionsParams{
			CompletedSessions: &stripe.PaymentLinkRestrictionsCompletedSessionsParams{
				Limit: stripe.Int64(1),
			},
		},
		BillingAddressCollection: stripe.String(string(stripe.PaymentLinkBillingAddressCollectionRequired)),
		ShippingAddressCollection: &stripe.PaymentLinkShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(countries),
		},
		AfterCompletion: &stripe.PaymentLinkAfterCompletionParams{
			Type: stripe.String(string(stripe.PaymentLinkAfterCompletionTypeRedirect)),
			Redirect: &stripe.PaymentLinkAfterCompletionRedirectParams{
				URL: stripe.String(redirectURL),
			},
		},
		Metadata: metadata,
	}

	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		params.AddExtra(prefix+"[price_data][currency]", item.Currency)
		params.AddExtra(prefix+"[price_data][product_data][name]", item.Name)
		if item.Description != "" {
			params.AddExtra(prefix+"[price_data][product_data][description]", item.Description)
		}
		if item.ImageURL != "" {
			params.AddExtra(prefix+"[price_data][product_data][images][0]", item.ImageURL)
		}
		params.AddExtra(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		params.AddExtra(prefix+"[quantity]", strconv.FormatInt(item.Quantity, 10))
	}
	return params
}

// BookingMetadata carries the booking id and every guest/stay field as strings.
func BookingMetadata(bookingID string, req models.BookingRequest) map[string]string {
	return map[string]string{
		models.MetaBookingID:       bookingID,
		models.MetaGuestName:       req.GuestName,
		models.MetaGuestEmail:      req.GuestEmail,
		models.MetaCheckInDate:     req.CheckInDate,
		models.MetaCheckOutDate:    req.CheckOutDate,
		models.MetaRoomType:        req.RoomType,
		models.MetaTotalNights:     strconv.Itoa(req.NumberOfNights),
		models.MetaIntegrationType: models.IntegrationPaymentLink,
		models.MetaNightlyRate:     utils.FormatAmount(req.NightlyRate),
	}
}
