package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
)

type SavedTripRepository struct {
	db *sqlx.DB
}

func NewSavedTripRepo(db *sqlx.DB) *SavedTripRepository {
	return &SavedTripRepository{db: db}
}

func (r *SavedTripRepository) Add(ctx context.Context, userID, tripID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO saved_trip (user_account_id, trip_id)
		VALUES ($1, $2)
		ON CONFLICT (user_account_id, trip_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, userID, tripID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SavedTripRepository) Remove(ctx context.Context, userID, tripID uuid.UUID) error {
	const query = `
		DELETE FROM saved_trip
		WHERE user_account_id = $1 AND trip_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, tripID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SavedTripRepository) Exists(ctx context.Context, userID, tripID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM saved_trip
			WHERE user_account_id = $1 AND trip_id = $2
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, tripID); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByUser joins the catalog; saved ids whose trip has been removed are
// silently skipped, matching the best-effort nature of saved trips.
func (r *SavedTripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedTripItem, error) {
	const query = `
		SELECT
			s.id, s.user_account_id, s.trip_id, s.created_at,
			t.title   AS trip_title,
			t.country AS trip_country,
			t.image_url AS trip_image,
			t.price   AS trip_price,
			t.rating  AS trip_rating
		FROM saved_trip s
		JOIN trip t ON t.id = s.trip_id
		WHERE s.user_account_id = $1
		ORDER BY s.created_at DESC, s.id DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.SavedTripItem, 0)
	for rows.Next() {
		var item domain.SavedTripItem
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

var _ ports.SavedTripRepository = (*SavedTripRepository)(nil)
