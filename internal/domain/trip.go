package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CategoryAll is the filter wildcard. It is never stored on a trip.
const CategoryAll = "All"

// Categories lists the continents a trip may belong to.
var Categories = []string{
	"Asia",
	"Europe",
	"South America",
	"North America",
	"Africa",
	"Oceania",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ItineraryActivity is a single timed entry within an itinerary day.
type ItineraryActivity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// ItineraryDay groups the activities planned for one day of a trip,
// numbered from 1.
type ItineraryDay struct {
	Day        int                 `json:"day"`
	Title      string              `json:"title"`
	Activities []ItineraryActivity `json:"activities"`
}

// Itinerary is stored as a single JSONB column.
type Itinerary []ItineraryDay

func (i Itinerary) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	return json.Marshal(i)
}

func (i *Itinerary) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*i = Itinerary{}
		return nil
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("itinerary: cannot scan %T", src)
	}
}

// Trip is a bookable multi-day travel package. Price is kept as both a
// display string and a numeric value; the repository keeps the two in sync.
type Trip struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Country     string         `db:"country" json:"country"`
	Category    string         `db:"category" json:"category"`
	Subtitle    string         `db:"subtitle" json:"subtitle"`
	Description string         `db:"description" json:"description"`
	Image       string         `db:"image_url" json:"image"`
	Gallery     pq.StringArray `db:"gallery" json:"gallery,omitempty"`
	Days        int            `db:"days" json:"days"`
	Rating      float64        `db:"rating" json:"rating"`
	Reviews     int            `db:"reviews" json:"reviews"`
	Price       string         `db:"price" json:"price"`
	PriceValue  float64        `db:"price_value" json:"priceValue"`
	Itinerary   Itinerary      `db:"itinerary" json:"itinerary"`
	AuthorID    uuid.UUID      `db:"author_id" json:"author_id"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// Validate checks the catalog invariants before a trip is stored.
func (t *Trip) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if t.Country == "" {
		return fmt.Errorf("country is required")
	}
	if !IsValidCategory(t.Category) {
		return fmt.Errorf("unknown category %q", t.Category)
	}
	if t.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	if t.Rating < 0 || t.Rating > 5 {
		return fmt.Errorf("rating must be between 0.0 and 5.0")
	}
	if t.Reviews < 0 {
		return fmt.Errorf("reviews must not be negative")
	}
	if t.PriceValue < 0 {
		return fmt.Errorf("price value must not be negative")
	}
	for _, day := range t.Itinerary {
		if day.Day < 1 {
			return fmt.Errorf("itinerary day numbers start at 1")
		}
		if day.Day > t.Days {
			return fmt.Errorf("itinerary day %d exceeds trip length of %d days", day.Day, t.Days)
		}
	}
	return nil
}
