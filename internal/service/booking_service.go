package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
)

const (
	bookingReferencePrefix = "TRV"
	referenceAttempts      = 5
	defaultNotifyTimeout   = 5 * time.Second
)

// BookingNotifier is told about confirm/cancel transitions after they have
// been committed. Failures are logged and swallowed; they never undo the
// transition.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, booking domain.Booking, trip domain.Trip) error
	BookingCancelled(ctx context.Context, booking domain.Booking, trip domain.Trip) error
}

// BookingDraft is the fully assembled output of the client-side booking
// wizard. Intermediate wizard steps are never server state.
type BookingDraft struct {
	Travelers       int
	TravelDate      string
	SpecialRequests string
	ContactEmail    string
	ContactPhone    string
	// TotalPrice is advisory only. The server-computed value wins.
	TotalPrice *float64
}

type BookingService struct {
	bookings ports.BookingRepository
	trips    ports.TripRepository
	notifier BookingNotifier

	now           func() time.Time
	randomRef     func() int
	notifyTimeout time.Duration
}

func NewBookingService(bookingRepo ports.BookingRepository, tripRepo ports.TripRepository, notifier BookingNotifier) *BookingService {
	return &BookingService{
		bookings:      bookingRepo,
		trips:         tripRepo,
		notifier:      notifier,
		now:           func() time.Time { return time.Now().UTC() },
		randomRef:     randomReferenceNumber,
		notifyTimeout: defaultNotifyTimeout,
	}
}

// SetClockForTest overrides the clock for deterministic tests.
func (s *BookingService) SetClockForTest(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// SetReferenceRandForTest overrides the random reference digits for
// deterministic tests.
func (s *BookingService) SetReferenceRandForTest(fn func() int) {
	if fn != nil {
		s.randomRef = fn
	}
}

// Create validates the draft, prices it server-side, allocates a unique
// booking reference, and persists the booking as confirmed in a single
// write. Nothing is persisted when validation fails.
func (s *BookingService) Create(ctx context.Context, tripID, userID uuid.UUID, draft BookingDraft) (*domain.Booking, error) {
	trip, err := s.trips.FindByID(ctx, tripID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	travelDate, err := s.validateDraft(draft)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		TripID:          tripID,
		UserID:          userID,
		Travelers:       draft.Travelers,
		TravelDate:      travelDate,
		SpecialRequests: strings.TrimSpace(draft.SpecialRequests),
		ContactEmail:    strings.TrimSpace(draft.ContactEmail),
		ContactPhone:    strings.TrimSpace(draft.ContactPhone),
		// Pending only while this call is in flight; rows are always
		// written as confirmed.
		Status:     domain.BookingPending,
		TotalPrice: trip.PriceValue * float64(draft.Travelers),
	}

	var stored *domain.Booking
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		booking.Reference = s.newReference()
		booking.Status = domain.BookingConfirmed
		stored, err = s.bookings.Create(ctx, booking)
		if err == nil {
			break
		}
		if isUniqueViolation(err) {
			continue
		}
		return nil, err
	}
	if stored == nil {
		log.Printf("ALERT booking: reference generation exhausted %d attempts for trip %s", referenceAttempts, tripID)
		return nil, ErrReferenceExhausted
	}

	s.notifyAsync("confirmation", func(ctx context.Context) error {
		return s.notifier.BookingConfirmed(ctx, *stored, *trip)
	})
	return stored, nil
}

// Cancel moves a confirmed booking to cancelled. The transition is one-way
// and not idempotent: repeating it reports a conflict rather than a silent
// success.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrBookingForbidden
	}
	if booking.Status == domain.BookingCancelled {
		return nil, ErrBookingAlreadyCancelled
	}

	cancelled, err := s.bookings.CancelConfirmed(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			// A concurrent cancel won the conditional update.
			return nil, ErrBookingAlreadyCancelled
		}
		return nil, err
	}

	trip, err := s.trips.FindByID(ctx, cancelled.TripID)
	if err != nil {
		trip = &domain.Trip{ID: cancelled.TripID}
	}
	s.notifyAsync("cancellation", func(ctx context.Context) error {
		return s.notifier.BookingCancelled(ctx, *cancelled, *trip)
	})
	return cancelled, nil
}

// ListForUser returns the user's bookings, any status, newest first, with
// the trip display fields joined at read time.
func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.BookingSummary, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// GetForUser returns a single booking summary, owner-scoped.
func (s *BookingService) GetForUser(ctx context.Context, bookingID, userID uuid.UUID) (*domain.BookingSummary, error) {
	summary, err := s.bookings.FindSummaryByID(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if summary.UserID != userID {
		return nil, ErrBookingForbidden
	}
	return summary, nil
}

func (s *BookingService) validateDraft(draft BookingDraft) (time.Time, error) {
	if draft.Travelers < 1 {
		return time.Time{}, fmt.Errorf("%w: travelers must be at least 1", ErrBookingValidation)
	}
	if strings.TrimSpace(draft.ContactEmail) == "" {
		return time.Time{}, fmt.Errorf("%w: contact email is required", ErrBookingValidation)
	}
	if strings.TrimSpace(draft.ContactPhone) == "" {
		return time.Time{}, fmt.Errorf("%w: contact phone is required", ErrBookingValidation)
	}

	raw := strings.TrimSpace(draft.TravelDate)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: travel date is required", ErrBookingValidation)
	}

	now := s.now()
	if date, err := time.Parse("2006-01-02", raw); err == nil {
		// Date-only input: today still counts as valid.
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(today) {
			return time.Time{}, fmt.Errorf("%w: travel date is in the past", ErrBookingValidation)
		}
		return date, nil
	}
	if date, err := time.Parse(time.RFC3339, raw); err == nil {
		if date.Before(now) {
			return time.Time{}, fmt.Errorf("%w: travel date is in the past", ErrBookingValidation)
		}
		return date, nil
	}
	return time.Time{}, fmt.Errorf("%w: travel date %q is not a valid date", ErrBookingValidation, raw)
}

// newReference builds PREFIX-NNNNNN-TTTT: a random six-digit number plus the
// low-order four digits of the creation timestamp.
func (s *BookingService) newReference() string {
	return fmt.Sprintf("%s-%06d-%04d", bookingReferencePrefix, s.randomRef(), s.now().Unix()%10000)
}

func randomReferenceNumber() int {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand is unavailable only in broken environments;
		// fall back to the timestamp rather than failing the booking.
		return 100000 + int(time.Now().UnixNano()%900000)
	}
	return 100000 + int(n.Int64())
}

func (s *BookingService) notifyAsync(event string, fn func(context.Context) error) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			log.Printf("booking: %s notification failed: %v", event, err)
		}
	}()
}
