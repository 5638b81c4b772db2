package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
)

// SavedTripService maintains the per-user set of saved trips. It never
// checks the catalog: a save against a trip that has since been removed is
// a harmless marker, so only the id's shape matters.
type SavedTripService struct {
	saved ports.SavedTripRepository
}

func NewSavedTripService(savedRepo ports.SavedTripRepository) *SavedTripService {
	return &SavedTripService{saved: savedRepo}
}

// Toggle flips membership and returns the new state. Toggling twice always
// returns to the original state.
func (s *SavedTripService) Toggle(ctx context.Context, userID, tripID uuid.UUID) (bool, error) {
	inserted, err := s.saved.Add(ctx, userID, tripID)
	if err != nil {
		return false, err
	}
	if inserted {
		return true, nil
	}
	if err := s.saved.Remove(ctx, userID, tripID); err != nil {
		if isNotFound(err) {
			// A concurrent toggle removed it first; last write wins.
			return false, nil
		}
		return false, err
	}
	return false, nil
}

func (s *SavedTripService) List(ctx context.Context, userID uuid.UUID) ([]domain.SavedTripItem, error) {
	return s.saved.ListByUser(ctx, userID)
}
