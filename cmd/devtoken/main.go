package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tripglide/tripglide-api/internal/config"
	"github.com/tripglide/tripglide-api/internal/repository/postgres"
	"github.com/tripglide/tripglide-api/internal/util"
)

// devtoken mints a session token for local development so protected routes
// can be exercised without a Google sign-in round trip. It upserts the user
// the same way the Google exchange would.
func main() {
	email := flag.String("email", "dev@tripglide.app", "email for the session")
	name := flag.String("name", "Dev User", "display name for the session")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := postgres.NewUserRepo(db)
	user, err := users.UpsertByEmail(ctx, *email, *name)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	tokens := util.NewJWTManager(cfg.JWTSecret, *ttl)
	token, expiresAt, err := tokens.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		log.Fatalf("mint token: %v", err)
	}

	fmt.Printf("user:    %s (%s)\n", user.Email, user.ID)
	fmt.Printf("expires: %s\n", expiresAt.Format(time.RFC3339))
	fmt.Printf("token:   %s\n", token)
}
