package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedTrip marks a trip a user has saved. Membership only; saving a trip
// that no longer exists in the catalog is tolerated.
type SavedTrip struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_account_id" json:"user_id"`
	TripID    uuid.UUID `db:"trip_id" json:"trip_id"`
	CreatedAt time.Time `db:"created_at" json:"saved_at"`
}

// SavedTripItem is a saved-trip row joined with the trip's display fields.
// Trips that have since been removed from the catalog are skipped by the
// listing query.
type SavedTripItem struct {
	SavedTrip
	TripTitle   string  `db:"trip_title" json:"trip_title"`
	TripCountry string  `db:"trip_country" json:"trip_country"`
	TripImage   string  `db:"trip_image" json:"trip_image"`
	TripPrice   string  `db:"trip_price" json:"trip_price"`
	TripRating  float64 `db:"trip_rating" json:"trip_rating"`
}
