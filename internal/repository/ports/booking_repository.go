package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripglide/tripglide-api/internal/domain"
)

type BookingRepository interface {
	// Create persists the booking as a single row. A duplicate reference
	// surfaces as a unique violation so the caller can regenerate.
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	// CancelConfirmed flips status to cancelled only if the row is still
	// confirmed. The conditional update is the serialization point for
	// concurrent cancel attempts; a lost race returns no rows.
	CancelConfirmed(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.BookingSummary, error)
	FindSummaryByID(ctx context.Context, id uuid.UUID) (*domain.BookingSummary, error)
}
