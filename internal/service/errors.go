package service

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrTripNotFound   = errors.New("trip not found")
	ErrTripValidation = errors.New("trip validation failed")
	ErrTripForbidden  = errors.New("not the author of this trip")

	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingValidation       = errors.New("booking validation failed")
	ErrBookingForbidden        = errors.New("not the owner of this booking")
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")
	// ErrReferenceExhausted means reference generation hit its retry
	// budget. Rare enough to treat as an operational alert.
	ErrReferenceExhausted = errors.New("could not allocate a unique booking reference")
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
