package models

// BookingRequest is the guest/stay payload posted by the booking page.
// It only lives for the duration of one request.
type BookingRequest struct {
	GuestName      string  `json:"guestName"`
	GuestEmail     string  `json:"guestEmail"`
	CheckInDate    string  `json:"checkInDate"`  // YYYY-MM-DD
	CheckOutDate   string  `json:"checkOutDate"` // YYYY-MM-DD
	RoomType       string  `json:"roomType"`
	NightlyRate    float64 `json:"nightlyRate"`
	NumberOfNights int     `json:"numberOfNights"`
	AddOns         []AddOn `json:"addOns,omitempty"`
	Currency       string  `json:"currency,omitempty"`
}

// AddOn is an extra service sold alongside the room.
type AddOn struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity,omitempty"` // 0 means 1
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// EffectiveQuantity returns the quantity billed for the add-on.
func (a AddOn) EffectiveQuantity() int {
	if a.Quantity == 0 {
		return 1
	}
	return a.Quantity
}

// LineItem is one priced row of a hosted checkout, amounts in minor units.
type LineItem struct {
	Currency    string `json:"currency"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	UnitAmount  int64  `json:"unitAmount"`
	Quantity    int64  `json:"quantity"`
}

// Total returns UnitAmount * Quantity.
func (li LineItem) Total() int64 {
	return li.UnitAmount * li.Quantity
}
