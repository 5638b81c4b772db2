package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
)

const tripColumns = `
	id, title, country, category, subtitle, description, image_url,
	gallery, days, rating, reviews, price, price_value, itinerary,
	author_id, created_at
`

type TripRepository struct {
	db *sqlx.DB
}

func NewTripRepo(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	const query = `
		INSERT INTO trip (
			title, country, category, subtitle, description, image_url,
			gallery, days, rating, reviews, price, price_value, itinerary,
			author_id
		) VALUES (
			:title, :country, :category, :subtitle, :description, :image_url,
			:gallery, :days, :rating, :reviews, :price, :price_value, :itinerary,
			:author_id
		)
		RETURNING ` + tripColumns

	rows, err := r.db.NamedQueryContext(ctx, query, trip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var stored domain.Trip
		if err := rows.StructScan(&stored); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, sql.ErrNoRows
}

func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	const query = `
		UPDATE trip SET
			title = :title,
			country = :country,
			category = :category,
			subtitle = :subtitle,
			description = :description,
			image_url = :image_url,
			gallery = :gallery,
			days = :days,
			rating = :rating,
			reviews = :reviews,
			price = :price,
			price_value = :price_value,
			itinerary = :itinerary
		WHERE id = :id
		RETURNING ` + tripColumns

	rows, err := r.db.NamedQueryContext(ctx, query, trip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var stored domain.Trip
		if err := rows.StructScan(&stored); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, sql.ErrNoRows
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trip WHERE id = $1`, id)
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

func (r *TripRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	const query = `SELECT ` + tripColumns + ` FROM trip WHERE id = $1`

	var trip domain.Trip
	if err := r.db.GetContext(ctx, &trip, query, id); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) ListAll(ctx context.Context) ([]domain.Trip, error) {
	const query = `SELECT ` + tripColumns + ` FROM trip ORDER BY created_at DESC, id DESC`

	trips := make([]domain.Trip, 0)
	if err := r.db.SelectContext(ctx, &trips, query); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM trip`); err != nil {
		return 0, err
	}
	return count, nil
}

var _ ports.TripRepository = (*TripRepository)(nil)
