package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/tripglide/tripglide-api/internal/config"
	"github.com/tripglide/tripglide-api/internal/logging"
	"github.com/tripglide/tripglide-api/internal/media"
	miniostore "github.com/tripglide/tripglide-api/internal/repository/minio"
	"github.com/tripglide/tripglide-api/internal/repository/postgres"
	"github.com/tripglide/tripglide-api/internal/seed"
	"github.com/tripglide/tripglide-api/internal/service"
	transport "github.com/tripglide/tripglide-api/internal/transport/http"
	"github.com/tripglide/tripglide-api/internal/transport/mail"
	"github.com/tripglide/tripglide-api/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	tripRepo := postgres.NewTripRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)
	savedRepo := postgres.NewSavedTripRepo(db)
	userRepo := postgres.NewUserRepo(db)

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		log.Printf("invalid SESSION_TTL %q, using 24h", cfg.SessionTTL)
		sessionTTL = 24 * time.Hour
	}
	tokens := util.NewJWTManager(cfg.JWTSecret, sessionTTL)
	auth := service.NewAuthService(userRepo, tokens, cfg.GoogleAudience)

	tripCfg := service.TripServiceConfig{Bucket: cfg.MinIOBucketTrips}
	if cfg.MinIOEndpoint != "" {
		client, err := miniostore.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			log.Fatalf("connect minio: %v", err)
		}
		tripCfg.Storage = miniostore.NewStorage(client, cfg.MinIOPublicURL, cfg.MinIOUseSSL)
		tripCfg.ImageProcessor = media.NewFFMPEGProcessor(cfg.FFMPEGPath, media.DefaultMaxDimension)
	}
	trips := service.NewTripService(tripRepo, tripCfg)

	var notifier service.BookingNotifier
	if cfg.SMTPHost != "" {
		notifier = mail.NewBookingMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	}
	bookings := service.NewBookingService(bookingRepo, tripRepo, notifier)
	saved := service.NewSavedTripService(savedRepo)

	if cfg.SeedOnEmpty {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		author, err := userRepo.UpsertByEmail(ctx, "catalog@tripglide.app", "TripGlide Catalog")
		if err != nil {
			log.Fatalf("seed author: %v", err)
		}
		if err := seed.EnsureCatalog(ctx, tripRepo, author.ID); err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
		cancel()
	}

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterAuth(e, auth)
	transport.RegisterTrips(e, auth, trips)
	transport.RegisterBookings(e, auth, bookings)
	transport.RegisterSavedTrips(e, auth, saved)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
