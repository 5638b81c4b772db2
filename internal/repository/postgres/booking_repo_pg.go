package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
)

const bookingColumns = `
	id, reference, trip_id, user_account_id, travelers, travel_date,
	special_requests, contact_email, contact_phone, status, total_price,
	created_at
`

// Summaries join the current trip row so "My Trips" always shows the
// catalog as it is now, not as it was at booking time.
const bookingSummaryQuery = `
	SELECT
		b.id, b.reference, b.trip_id, b.user_account_id, b.travelers,
		b.travel_date, b.special_requests, b.contact_email, b.contact_phone,
		b.status, b.total_price, b.created_at,
		t.title   AS trip_title,
		t.country AS trip_country,
		t.image_url AS trip_image,
		t.days    AS trip_days,
		t.price   AS trip_price,
		t.rating  AS trip_rating
	FROM booking b
	JOIN trip t ON t.id = b.trip_id
`

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	const query = `
		INSERT INTO booking (
			reference, trip_id, user_account_id, travelers, travel_date,
			special_requests, contact_email, contact_phone, status, total_price
		) VALUES (
			:reference, :trip_id, :user_account_id, :travelers, :travel_date,
			:special_requests, :contact_email, :contact_phone, :status, :total_price
		)
		RETURNING ` + bookingColumns

	rows, err := r.db.NamedQueryContext(ctx, query, booking)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var stored domain.Booking
		if err := rows.StructScan(&stored); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, sql.ErrNoRows
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM booking WHERE id = $1`

	var booking domain.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelConfirmed is the serialization point for concurrent cancels: the
// status guard in the WHERE clause lets exactly one caller win.
func (r *BookingRepository) CancelConfirmed(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const query = `
		UPDATE booking
		SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING ` + bookingColumns

	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking, query,
		domain.BookingCancelled, id, domain.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.BookingSummary, error) {
	const query = bookingSummaryQuery + `
		WHERE b.user_account_id = $1
		ORDER BY b.created_at DESC, b.id DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.BookingSummary, 0)
	for rows.Next() {
		var item domain.BookingSummary
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BookingRepository) FindSummaryByID(ctx context.Context, id uuid.UUID) (*domain.BookingSummary, error) {
	const query = bookingSummaryQuery + ` WHERE b.id = $1`

	var item domain.BookingSummary
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
