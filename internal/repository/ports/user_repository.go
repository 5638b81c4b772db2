package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripglide/tripglide-api/internal/domain"
)

type UserRepository interface {
	// UpsertByEmail records an identity the external provider vouched for.
	UpsertByEmail(ctx context.Context, email, name string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
