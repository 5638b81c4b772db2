package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking. A booking is only ever
// persisted as confirmed; pending exists during the synchronous creation
// call and cancelled is terminal.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed},
	BookingConfirmed: {BookingCancelled},
	BookingCancelled: {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0 && s.IsValid()
}

func (s BookingStatus) String() string { return string(s) }

// Booking is a confirmed reservation against a trip. Rows are never
// physically deleted; cancellation only flips the status.
type Booking struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	Reference       string        `db:"reference" json:"booking_reference"`
	TripID          uuid.UUID     `db:"trip_id" json:"trip_id"`
	UserID          uuid.UUID     `db:"user_account_id" json:"user_id"`
	Travelers       int           `db:"travelers" json:"travelers"`
	TravelDate      time.Time     `db:"travel_date" json:"travel_date"`
	SpecialRequests string        `db:"special_requests" json:"special_requests,omitempty"`
	ContactEmail    string        `db:"contact_email" json:"contact_email"`
	ContactPhone    string        `db:"contact_phone" json:"contact_phone"`
	Status          BookingStatus `db:"status" json:"status"`
	TotalPrice      float64       `db:"total_price" json:"total_price"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
}

// BookingSummary is a booking joined with the display fields of its trip.
// The join happens at read time so the summary reflects the current catalog.
type BookingSummary struct {
	Booking
	TripTitle   string  `db:"trip_title" json:"trip_title"`
	TripCountry string  `db:"trip_country" json:"trip_country"`
	TripImage   string  `db:"trip_image" json:"trip_image"`
	TripDays    int     `db:"trip_days" json:"trip_days"`
	TripPrice   string  `db:"trip_price" json:"trip_price"`
	TripRating  float64 `db:"trip_rating" json:"trip_rating"`
}
