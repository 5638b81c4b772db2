package service

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "booking_reference_key"}
}

type memoryTripRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*domain.Trip
	order []uuid.UUID
}

func newMemoryTripRepo() *memoryTripRepo {
	return &memoryTripRepo{items: map[uuid.UUID]*domain.Trip{}}
}

func (r *memoryTripRepo) Create(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
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

func (r *memoryTripRepo) Update(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[trip.ID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	stored := *trip
	stored.CreatedAt = existing.CreatedAt
	r.items[trip.ID] = &stored
	out := stored
	return &out, nil
}

func (r *memoryTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *memoryTripRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trip, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := *trip
	return &out, nil
}

func (r *memoryTripRepo) ListAll(_ context.Context) ([]domain.Trip, error) {
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

func (r *memoryTripRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

var _ ports.TripRepository = (*memoryTripRepo)(nil)

type memoryBookingRepo struct {
	mu       sync.Mutex
	items    map[uuid.UUID]*domain.Booking
	refs     map[string]bool
	seq      int64
	trips    *memoryTripRepo
	attempts int
	// failNextCreates injects unique violations for the next n creates.
	failNextCreates int
}

func newMemoryBookingRepo(trips *memoryTripRepo) *memoryBookingRepo {
	return &memoryBookingRepo{
		items: map[uuid.UUID]*domain.Booking{},
		refs:  map[string]bool{},
		trips: trips,
	}
}

func (r *memoryBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts++
	if r.failNextCreates > 0 {
		r.failNextCreates--
		return nil, uniqueViolation()
	}
	if r.refs[booking.Reference] {
		return nil, uniqueViolation()
	}
	stored := *booking
	stored.ID = uuid.New()
	r.seq++
	stored.CreatedAt = time.Unix(r.seq, 0)
	r.items[stored.ID] = &stored
	r.refs[stored.Reference] = true
	out := stored
	return &out, nil
}

func (r *memoryBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := *booking
	return &out, nil
}

func (r *memoryBookingRepo) CancelConfirmed(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
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

func (r *memoryBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.BookingSummary, error) {
	r.mu.Lock()
	bookings := make([]domain.Booking, 0)
	for _, b := range r.items {
		if b.UserID == userID {
			bookings = append(bookings, *b)
		}
	}
	r.mu.Unlock()

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

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

func (r *memoryBookingRepo) FindSummaryByID(ctx context.Context, id uuid.UUID) (*domain.BookingSummary, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.summarize(ctx, *booking)
}

func (r *memoryBookingRepo) summarize(ctx context.Context, booking domain.Booking) (*domain.BookingSummary, error) {
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

func (r *memoryBookingRepo) createAttempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts
}

var _ ports.BookingRepository = (*memoryBookingRepo)(nil)

type memorySavedTripRepo struct {
	mu    sync.Mutex
	pairs map[uuid.UUID]map[uuid.UUID]time.Time
}

func newMemorySavedTripRepo() *memorySavedTripRepo {
	return &memorySavedTripRepo{pairs: map[uuid.UUID]map[uuid.UUID]time.Time{}}
}

func (r *memorySavedTripRepo) Add(_ context.Context, userID, tripID uuid.UUID) (bool, error) {
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

func (r *memorySavedTripRepo) Remove(_ context.Context, userID, tripID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.pairs[userID]
	if _, exists := set[tripID]; !exists {
		return sql.ErrNoRows
	}
	delete(set, tripID)
	return nil
}

func (r *memorySavedTripRepo) Exists(_ context.Context, userID, tripID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.pairs[userID][tripID]
	return exists, nil
}

func (r *memorySavedTripRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.SavedTripItem, error) {
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

var _ ports.SavedTripRepository = (*memorySavedTripRepo)(nil)

type memoryUserRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*domain.User
	email map[string]uuid.UUID
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byID: map[uuid.UUID]*domain.User{}, email: map[string]uuid.UUID{}}
}

func (r *memoryUserRepo) UpsertByEmail(_ context.Context, email, name string) (*domain.User, error) {
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

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := *user
	return &out, nil
}

var _ ports.UserRepository = (*memoryUserRepo)(nil)

// recordingNotifier captures notifications and signals on a channel so tests
// can wait for the asynchronous dispatch.
type recordingNotifier struct {
	mu        sync.Mutex
	confirmed []domain.Booking
	cancelled []domain.Booking
	err       error
	notified  chan string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{notified: make(chan string, 8)}
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, booking domain.Booking, _ domain.Trip) error {
	n.mu.Lock()
	n.confirmed = append(n.confirmed, booking)
	n.mu.Unlock()
	n.notified <- "confirmed"
	return n.err
}

func (n *recordingNotifier) BookingCancelled(_ context.Context, booking domain.Booking, _ domain.Trip) error {
	n.mu.Lock()
	n.cancelled = append(n.cancelled, booking)
	n.mu.Unlock()
	n.notified <- "cancelled"
	return n.err
}

func (n *recordingNotifier) wait(t testingT) string {
	t.Helper()
	select {
	case event := <-n.notified:
		return event
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for notification")
		return ""
	}
}

type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}
