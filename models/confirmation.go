package models

// CallbackKind tags which processor object a success redirect refers to.
// Values are ordered by precedence.
type CallbackKind int

const (
	CallbackSession CallbackKind = iota
	CallbackPaymentIntent
	CallbackSetupIntent
	CallbackNone
)

func (k CallbackKind) String() string {
	switch k {
	case CallbackSession:
		return "session"
	case CallbackPaymentIntent:
		return "payment_intent"
	case CallbackSetupIntent:
		return "setup_intent"
	default:
		return "none"
	}
}

// SuccessCallback is the resolved reference carried by /success.
type SuccessCallback struct {
	Kind CallbackKind
	ID   string
}

// Confirmation page types.
const (
	ConfirmationPaymentLink     = "payment_link"
	ConfirmationElementFull     = "payment_element_full"
	ConfirmationElementDeferred = "payment_element_deferred"
)

// ConfirmationData is embedded in the success page as window.sessionData.
type ConfirmationData struct {
	Type               string   `json:"type"`
	BookingID          string   `json:"bookingId,omitempty"`
	IntentID           string   `json:"intentId,omitempty"`
	Amount             *float64 `json:"amount,omitempty"`
	Currency           string   `json:"currency,omitempty"`
	CustomerName       string   `json:"customerName"`
	CustomerEmail      string   `json:"customerEmail"`
	CheckIn            string   `json:"checkIn,omitempty"`
	CheckOut           string   `json:"checkOut,omitempty"`
	Flow               string   `json:"flow,omitempty"`
	PaymentMethodSaved bool     `json:"paymentMethodSaved,omitempty"`
}

// BookingConfirmation is the side-effect payload of a completed payment link checkout.
type BookingConfirmation struct {
	SessionID   string  `json:"sessionId"`
	BookingID   string  `json:"bookingId"`
	GuestName   string  `json:"guestName"`
	GuestEmail  string  `json:"guestEmail"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	TotalAmount float64 `json:"totalAmount"`
	Currency    string  `json:"currency"`
}

// PaymentSucceeded is the side-effect payload of a succeeded payment intent.
type PaymentSucceeded struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	FlowType        string  `json:"flowType,omitempty"`
}
