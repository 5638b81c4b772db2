package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripglide/tripglide-api/internal/domain"
)

type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	// ListAll returns the full catalog snapshot in creation order,
	// newest first. Filtering and sorting happen above the repository.
	ListAll(ctx context.Context) ([]domain.Trip, error)
	Count(ctx context.Context) (int64, error)
}
