package models

import "fmt"

// Metadata keys attached to Stripe objects. Every value is a string.
const (
	MetaBookingID       = "booking_id"
	MetaGuestName       = "guest_name"
	MetaGuestEmail      = "guest_email"
	MetaCheckInDate     = "check_in_date"
	MetaCheckOutDate    = "check_out_date"
	MetaRoomType        = "room_type"
	MetaTotalNights     = "total_nights"
	MetaNightlyRate     = "nightly_rate"
	MetaIntegrationType = "integration_type"
	MetaFlowType        = "flow_type"
	MetaCustomerName    = "customer_name"
	MetaCustomerEmail   = "customer_email"
	MetaCustomerPhone   = "customer_phone"
)

// Integration and flow tags carried in metadata.
const (
	IntegrationPaymentLink    = "payment_link"
	IntegrationPaymentElement = "payment_element"

	FlowFull     = "full"
	FlowDeferred = "deferred"
)

// Address mirrors the address sub-object of the Payment Element.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// CustomerInfo is what the checkout page knows about the guest before the
// payment form has been submitted.
type CustomerInfo struct {
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// BillingDetails is collected by the Payment Element after confirmation.
type BillingDetails struct {
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type CustomerState string

const (
	CustomerProvisional CustomerState = "provisional"
	CustomerEnriched    CustomerState = "enriched"
)

// Customer is a processor customer reference. It is created empty
// (provisional) and enriched at most once with billing details.
type Customer struct {
	ID    string        `json:"id"`
	State CustomerState `json:"state"`
}

// CanEnrich reports whether billing details may be attached.
func (c *Customer) CanEnrich() bool {
	return c != nil && c.ID != "" && c.State == CustomerProvisional
}

// Enrich moves a provisional customer to the enriched state. It fails for a
// missing id and for a customer that was already enriched.
func (c *Customer) Enrich() error {
	if c == nil || c.ID == "" {
		return NewValidationError("customer_id", "Customer ID is required")
	}
	if !c.CanEnrich() {
		return NewValidationError("customer_id", fmt.Sprintf("Customer %s is already %s", c.ID, c.State))
	}
	c.State = CustomerEnriched
	return nil
}

// CustomerID returns the id or "" for a missing reference.
func (c *Customer) CustomerID() string {
	if c == nil {
		return ""
	}
	return c.ID
}

// IntentResult is returned to the browser so it can mount the Payment Element.
type IntentResult struct {
	ClientSecret string
	IntentID     string
	CustomerID   string
}

// PaymentLinkResult is the hosted checkout handed back to the booking page.
type PaymentLinkResult struct {
	URL       string
	BookingID string
}
