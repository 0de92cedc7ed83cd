package paymentlink

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const bookingSuffixLen = 9

// BookingIDGenerator builds correlation ids of the form <prefix>-<unix millis>-<9 uppercase alphanumerics>.
// Uniqueness is not checked against existing processor metadata.
type BookingIDGenerator struct {
	Prefix string
	Now    func() time.Time
}

func NewBookingIDGenerator(prefix string) *BookingIDGenerator {
	return &BookingIDGenerator{Prefix: prefix, Now: time.Now}
}

// Next returns a fresh booking id.
func (g *BookingIDGenerator) Next() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return fmt.Sprintf("%s-%d-%s", g.Prefix, now().UnixMilli(), randomSuffix())
}

// randomSuffix takes the first hex digits of a random UUID.
func randomSuffix() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:bookingSuffixLen])
}
