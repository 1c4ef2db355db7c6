package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Visible booking reference prefixes, kept from the product's confirmation copy.
const (
	BookingIDPrefix = "BK-"
	FlightIDPrefix  = "FL-"
)

// IDGenerator mints booking references. A booking reference identifies one act
// of booking; it is never derived from catalog identity and never reused, even
// when the same catalog item is re-booked after a cancellation.
type IDGenerator interface {
	BookingID(prefix string) string
}

// UUIDGenerator issues UUID-backed booking references. Uniqueness holds across
// process restarts, so references loaded back from the store can never collide
// with freshly minted ones.
type UUIDGenerator struct{}

func (UUIDGenerator) BookingID(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString())
}
