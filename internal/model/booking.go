package model

// BookingStatus enumerates the states a booking can be in.  The core only
// reads bookings; status transitions happen in the external booking flow.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking records that a user holds tickets for an event.  Bookings are
// created externally (the booking flow is outside this app); the core
// filters them by user and joins them to catalog events for display.
//
// Fields:
//  ID        – booking identifier.
//  EventID   – event the booking is for.
//  UserID    – owning user, matched against the host identity.
//  Status    – confirmed or cancelled.
//  Reference – human-readable reference code shown on the bookings screen.
type Booking struct {
	ID        string
	EventID   string
	UserID    int64
	Status    BookingStatus
	Reference string
}
