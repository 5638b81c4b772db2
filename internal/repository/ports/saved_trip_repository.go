package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripglide/tripglide-api/internal/domain"
)

type SavedTripRepository interface {
	// Add is a no-op when the pair already exists; it reports whether a
	// row was inserted.
	Add(ctx context.Context, userID, tripID uuid.UUID) (bool, error)
	Remove(ctx context.Context, userID, tripID uuid.UUID) error
	Exists(ctx context.Context, userID, tripID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedTripItem, error)
}
