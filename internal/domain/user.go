package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the local record for an identity established by the external
// provider. No credentials are stored; the provider vouches for the email.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
