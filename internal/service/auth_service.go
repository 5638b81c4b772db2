package service

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
	"github.com/tripglide/tripglide-api/internal/util"
)

var (
	ErrInvalidGoogleToken = errors.New("invalid google token")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// AuthService bridges to the external identity provider. Credentials are
// never stored or checked here; Google vouches for the identity and the
// session token only carries the opaque user id back on later requests.
type AuthService struct {
	users  ports.UserRepository
	tokens *util.JWTManager
	aud    string
}

func NewAuthService(userRepo ports.UserRepository, tokens *util.JWTManager, googleAudience string) *AuthService {
	return &AuthService{users: userRepo, tokens: tokens, aud: googleAudience}
}

// LoginWithGoogle validates a Google ID token, records the identity, and
// returns a session token for subsequent calls.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idTok string) (string, *domain.User, error) {
	payload, err := idtoken.Validate(ctx, idTok, s.aud)
	if err != nil {
		return "", nil, ErrInvalidGoogleToken
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", nil, ErrInvalidGoogleToken
	}

	user, err := s.users.UpsertByEmail(ctx, email, name)
	if err != nil {
		return "", nil, err
	}

	token, _, err := s.tokens.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a session token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}
