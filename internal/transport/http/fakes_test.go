package http

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
)

type stubTripRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*domain.Trip
	order []uuid.UUID
}

func newStubTripRepo() *stubTripRepo {
	return &stubTripRepo{items: map[uuid.UUID]*domain.Trip{}}
}

func (r *stubTripRepo) Create(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *trip
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	r.items[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	out := stored
	return &out, nil
}

func (r *stubTripRepo) Update(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[trip.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	stored := *trip
	r.items[trip.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *stubTripRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trip, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := *trip
	return &out, nil
}

func (r *stubTripRepo) ListAll(_ context.Context) ([]domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Trip, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if trip, ok := r.items[r.order[i]]; ok {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (r *stubTripRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

var _ ports.TripRepository = (*stubTripRepo)(nil)

type stubBookingRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*domain.Booking
	trips *stubTripRepo
}

func newStubBookingRepo(trips *stubTripRepo) *stubBookingRepo {
	return &stubBookingRepo{items: map[uuid.UUID]*domain.Booking{}, trips: trips}
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *booking
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	r.items[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := *booking
	return &out, nil
}

func (r *stubBookingRepo) CancelConfirmed(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.items[id]
	if !ok || booking.Status != domain.BookingConfirmed {
		return nil, sql.ErrNoRows
	}
	booking.Status = domain.BookingCancelled
	out := *booking
	return &out, nil
}

func (r *stubBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.BookingSummary, error) {
	r.mu.Lock()
	bookings := make([]domain.Booking, 0)
	for _, b := range r.items {
		if b.UserID == userID {
			bookings = append(bookings, *b)
		}
	}
	r.mu.Unlock()

	out := make([]domain.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		summary, err := r.summarize(ctx, b)
		if err != nil {
			return nil, err
		}
		out = append(out, *summary)
	}
	return out, nil
}

func (r *stubBookingRepo) FindSummaryByID(ctx context.Context, id uuid.UUID) (*domain.BookingSummary, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.summarize(ctx, *booking)
}

func (r *stubBookingRepo) summarize(ctx context.Context, booking domain.Booking) (*domain.BookingSummary, error) {
	trip, err := r.trips.FindByID(ctx, booking.TripID)
	if err != nil {
		return nil, err
	}
	return &domain.BookingSummary{
		Booking:     booking,
		TripTitle:   trip.Title,
		TripCountry: trip.Country,
		TripImage:   trip.Image,
		TripDays:    trip.Days,
		TripPrice:   trip.Price,
		TripRating:  trip.Rating,
	}, nil
}

var _ ports.BookingRepository = (*stubBookingRepo)(nil)

type stubSavedTripRepo struct {
	mu    sync.Mutex
	pairs map[uuid.UUID]map[uuid.UUID]time.Time
}

func newStubSavedTripRepo() *stubSavedTripRepo {
	return &stubSavedTripRepo{pairs: map[uuid.UUID]map[uuid.UUID]time.Time{}}
}

func (r *stubSavedTripRepo) Add(_ context.Context, userID, tripID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.pairs[userID]
	if !ok {
		set = map[uuid.UUID]time.Time{}
		r.pairs[userID] = set
	}
	if _, exists := set[tripID]; exists {
		return false, nil
	}
	set[tripID] = time.Now()
	return true, nil
}

func (r *stubSavedTripRepo) Remove(_ context.Context, userID, tripID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pairs[userID][tripID]; !exists {
		return sql.ErrNoRows
	}
	delete(r.pairs[userID], tripID)
	return nil
}

func (r *stubSavedTripRepo) Exists(_ context.Context, userID, tripID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.pairs[userID][tripID]
	return exists, nil
}

func (r *stubSavedTripRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.SavedTripItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SavedTripItem, 0)
	for tripID, at := range r.pairs[userID] {
		out = append(out, domain.SavedTripItem{
			SavedTrip: domain.SavedTrip{UserID: userID, TripID: tripID, CreatedAt: at},
		})
	}
	return out, nil
}

var _ ports.SavedTripRepository = (*stubSavedTripRepo)(nil)

type stubUserRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*domain.User
	email map[string]uuid.UUID
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: map[uuid.UUID]*domain.User{}, email: map[string]uuid.UUID{}}
}

func (r *stubUserRepo) UpsertByEmail(_ context.Context, email, name string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.email[email]; ok {
		user := r.byID[id]
		user.Name = name
		out := *user
		return &out, nil
	}
	user := &domain.User{ID: uuid.New(), Email: email, Name: name, CreatedAt: time.Now()}
	r.byID[user.ID] = user
	r.email[email] = user.ID
	out := *user
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := *user
	return &out, nil
}

var _ ports.UserRepository = (*stubUserRepo)(nil)
