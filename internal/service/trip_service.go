package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/media"
	"github.com/tripglide/tripglide-api/internal/ranking"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
)

type TripService struct {
	trips     ports.TripRepository
	storage   ports.ObjectStorage
	processor media.Processor
	bucket    string
}

type TripServiceConfig struct {
	Storage        ports.ObjectStorage
	ImageProcessor media.Processor
	Bucket         string
}

func NewTripService(tripRepo ports.TripRepository, cfg TripServiceConfig) *TripService {
	return &TripService{
		trips:     tripRepo,
		storage:   cfg.Storage,
		processor: cfg.ImageProcessor,
		bucket:    cfg.Bucket,
	}
}

// TripInput carries the author-supplied fields for create/update. The
// display price is derived from PriceValue here, never by callers.
type TripInput struct {
	Title       string
	Country     string
	Category    string
	Subtitle    string
	Description string
	ImageURL    string
	Gallery     []string
	Days        int
	Rating      float64
	Reviews     int
	PriceValue  float64
	Itinerary   domain.Itinerary
}

// Browse snapshots the catalog and applies the ranking engine. The ordering
// is recomputed on every call; there is nothing to invalidate.
func (s *TripService) Browse(ctx context.Context, category, query string, key ranking.SortKey) ([]domain.Trip, error) {
	catalog, err := s.trips.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Rank(catalog, category, query, key), nil
}

func (s *TripService) Get(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	trip, err := s.trips.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

// Search is the free-text projection; it shares the Browse predicate.
func (s *TripService) Search(ctx context.Context, query string) ([]domain.Trip, error) {
	return s.Browse(ctx, domain.CategoryAll, query, ranking.SortRecommended)
}

// ByCategory lists one category in recommended order.
func (s *TripService) ByCategory(ctx context.Context, category string) ([]domain.Trip, error) {
	return s.Browse(ctx, category, "", ranking.SortRecommended)
}

// ByCountry filters on exact country match, keeping catalog order.
func (s *TripService) ByCountry(ctx context.Context, country string) ([]domain.Trip, error) {
	catalog, err := s.trips.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Trip, 0, len(catalog))
	for _, trip := range catalog {
		if strings.EqualFold(trip.Country, country) {
			out = append(out, trip)
		}
	}
	return out, nil
}

func (s *TripService) Create(ctx context.Context, authorID uuid.UUID, input TripInput, heroImage *media.Upload) (*domain.Trip, error) {
	trip := s.tripFromInput(input)
	trip.AuthorID = authorID

	if heroImage != nil {
		url, err := s.uploadHeroImage(ctx, heroImage)
		if err != nil {
			return nil, err
		}
		trip.Image = url
	}

	if err := trip.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTripValidation, err)
	}
	return s.trips.Create(ctx, trip)
}

func (s *TripService) Update(ctx context.Context, tripID, authorID uuid.UUID, input TripInput, heroImage *media.Upload) (*domain.Trip, error) {
	existing, err := s.trips.FindByID(ctx, tripID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	if existing.AuthorID != authorID {
		return nil, ErrTripForbidden
	}

	trip := s.tripFromInput(input)
	trip.ID = tripID
	trip.AuthorID = existing.AuthorID
	if trip.Image == "" {
		trip.Image = existing.Image
	}

	if heroImage != nil {
		url, err := s.uploadHeroImage(ctx, heroImage)
		if err != nil {
			return nil, err
		}
		trip.Image = url
	}

	if err := trip.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTripValidation, err)
	}
	return s.trips.Update(ctx, trip)
}

func (s *TripService) Delete(ctx context.Context, tripID, authorID uuid.UUID) error {
	existing, err := s.trips.FindByID(ctx, tripID)
	if err != nil {
		if isNotFound(err) {
			return ErrTripNotFound
		}
		return err
	}
	if existing.AuthorID != authorID {
		return ErrTripForbidden
	}
	if err := s.trips.Delete(ctx, tripID); err != nil {
		if isNotFound(err) {
			return ErrTripNotFound
		}
		return err
	}
	return nil
}

// SetHeroImage processes and stores a new hero image for the trip,
// author-scoped like every other mutation.
func (s *TripService) SetHeroImage(ctx context.Context, tripID, authorID uuid.UUID, upload media.Upload) (*domain.Trip, error) {
	existing, err := s.trips.FindByID(ctx, tripID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	if existing.AuthorID != authorID {
		return nil, ErrTripForbidden
	}

	url, err := s.uploadHeroImage(ctx, &upload)
	if err != nil {
		return nil, err
	}
	existing.Image = url
	return s.trips.Update(ctx, existing)
}

func (s *TripService) tripFromInput(input TripInput) *domain.Trip {
	return &domain.Trip{
		Title:       strings.TrimSpace(input.Title),
		Country:     strings.TrimSpace(input.Country),
		Category:    strings.TrimSpace(input.Category),
		Subtitle:    strings.TrimSpace(input.Subtitle),
		Description: strings.TrimSpace(input.Description),
		Image:       strings.TrimSpace(input.ImageURL),
		Gallery:     pq.StringArray(input.Gallery),
		Days:        input.Days,
		Rating:      input.Rating,
		Reviews:     input.Reviews,
		Price:       FormatPrice(input.PriceValue),
		PriceValue:  input.PriceValue,
		Itinerary:   input.Itinerary,
	}
}

func (s *TripService) uploadHeroImage(ctx context.Context, upload *media.Upload) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("%w: image uploads are not configured", ErrTripValidation)
	}
	reader, size, contentType, err := prepareImageForUpload(ctx, s.processor, *upload, media.DefaultMaxDimension)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTripValidation, err)
	}
	ext := extensionFor(contentType)
	objectName := fmt.Sprintf("trips/%s%s", uuid.NewString(), ext)
	return s.storage.Upload(ctx, s.bucket, objectName, contentType, reader, size)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

// FormatPrice renders the numeric price as the display string stored next to
// it, e.g. 1199 -> "$1,199". Whole amounts drop the cents.
func FormatPrice(value float64) string {
	cents := ""
	whole := int64(value)
	if frac := value - float64(whole); frac > 0.004 {
		cents = fmt.Sprintf(".%02d", int(frac*100+0.5))
	}

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return "$" + b.String() + cents
}
