package pricing

import (
	"fmt"
	"strings"
	"time"

	"staypay/models"
	"staypay/utils"
)

// DateLayout is the format of check-in/check-out dates posted by the booking page.
const DateLayout = "2006-01-02"

// MaxLineItems is the most line items a hosted payment link accepts.
const MaxLineItems = 20

// nightDateLayout renders the night date the way the hosted page shows it (en-GB).
const nightDateLayout = "02/01/2006"

// Images holds the fallback product images for hosted line items.
type Images struct {
	Room  string
	AddOn string
}

// BuildLineItems derives the ordered line items of a stay: one per night,
// dated sequentially from check-in, then one per add-on in input order.
func BuildLineItems(req models.BookingRequest, currency string, images Images) ([]models.LineItem, error) {
	checkIn, err := ValidateStay(req)
	if err != nil {
		return nil, err
	}
	if n := req.NumberOfNights + len(req.AddOns); n > MaxLineItems {
		return nil, models.NewValidationError("addOns", fmt.Sprintf("a booking has %d line items, at most %d are allowed", n, MaxLineItems))
	}
	addOnAmounts := make([]int64, len(req.AddOns))
	for i, addon := range req.AddOns {
		amount, err := validateAddOn(i, addon)
		if err != nil {
			return nil, err
		}
		addOnAmounts[i] = amount
	}
	nightly, err := utils.ToMinorUnits(req.NightlyRate)
	if err != nil {
		return nil, models.NewValidationError("nightlyRate", amountRangeMessage)
	}

	items := make([]models.LineItem, 0, req.NumberOfNights+len(req.AddOns))
	for night := 0; night < req.NumberOfNights; night++ {
		date := checkIn.AddDate(0, 0, night)
		items = append(items, models.LineItem{
			Currency:    currency,
			Name:        fmt.Sprintf("%s - Night %d", req.RoomType, night+1),
			Description: date.Format(nightDateLayout) + " - Premium accommodation",
			ImageURL:    images.Room,
			UnitAmount:  nightly,
			Quantity:    1,
		})
	}

	for i, addon := range req.AddOns {
		image := addon.ImageURL
		if image == "" {
			image = images.AddOn
		}
		items = append(items, models.LineItem{
			Currency:    currency,
			Name:        addon.Name,
			Description: addon.Description,
			ImageURL:    image,
			UnitAmount:  addOnAmounts[i],
			Quantity:    int64(addon.EffectiveQuantity()),
		})
	}
	return items, nil
}

// ValidateStay checks the stay fields and returns the parsed check-in date.
// The number of nights must match the calendar days between check-in and check-out.
func ValidateStay(req models.BookingRequest) (time.Time, error) {
	if req.NumberOfNights <= 0 {
		return time.Time{}, models.NewValidationError("numberOfNights", "must be a positive integer")
	}
	if req.NumberOfNights > MaxLineItems {
		return time.Time{}, models.NewValidationError("numberOfNights", fmt.Sprintf("must be at most %d", MaxLineItems))
	}
	if req.NightlyRate < 0 {
		return time.Time{}, models.NewValidationError("nightlyRate", "must not be negative")
	}
	if strings.TrimSpace(req.RoomType) == "" {
		return time.Time{}, models.NewValidationError("roomType", "is required")
	}
	checkIn, err := parseDate("checkInDate", req.CheckInDate)
	if err != nil {
		return time.Time{}, err
	}
	checkOut, err := parseDate("checkOutDate", req.CheckOutDate)
	if err != nil {
		return time.Time{}, err
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, models.NewValidationError("checkOutDate", "must be after checkInDate")
	}
	// Both dates parse as UTC midnight, so the difference is a whole number of days.
	if span := int(checkOut.Sub(checkIn).Hours() / 24); span != req.NumberOfNights {
		return time.Time{}, models.NewValidationError("numberOfNights",
			fmt.Sprintf("is %d but the stay from %s to %s is %d nights", req.NumberOfNights, req.CheckInDate, req.CheckOutDate, span))
	}
	return checkIn, nil
}

// Total sums the line items in minor units.
func Total(items []models.LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Total()
	}
	return total
}

func parseDate(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, models.NewValidationError(field, "is required")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, models.NewValidationError(field, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return t, nil
}

const amountRangeMessage = "must not exceed 999999.99"

// validateAddOn returns the add-on's unit price in minor units.
func validateAddOn(i int, addon models.AddOn) (int64, error) {
	field := fmt.Sprintf("addOns[%d]", i)
	if strings.TrimSpace(addon.Name) == "" {
		return 0, models.NewValidationError(field+".name", "is required")
	}
	if addon.Quantity < 0 {
		return 0, models.NewValidationError(field+".quantity", "must be at least 1")
	}
	if addon.Price < 0 {
		return 0, models.NewValidationError(field+".price", "must not be negative")
	}
	amount, err := utils.ToMinorUnits(addon.Price)
	if err != nil {
		return 0, models.NewValidationError(field+".price", amountRangeMessage)
	}
	return amount, nil
}
