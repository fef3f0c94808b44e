package admin

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/oakstay/hotel-booking-backend/internal/auth"
	"github.com/oakstay/hotel-booking-backend/internal/pkg/apperror"
)

var ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")

// Credentials holds the single admin identity injected from configuration.
type Credentials struct {
	Email        string
	PasswordHash string // bcrypt hash
}

type Service interface {
	// Login checks the supplied credentials against the configured admin
	// identity and returns a signed access token on success.
	Login(ctx context.Context, email, password string) (string, error)
}

type service struct {
	creds  Credentials
	hasher auth.PasswordHasher
	jwt    *auth.JWTManager
}

func NewService(creds Credentials, hasher auth.PasswordHasher, jwt *auth.JWTManager) Service {
	return &service{
		creds:  creds,
		hasher: hasher,
		jwt:    jwt,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	cleanEmail := strings.ToLower(strings.TrimSpace(email))
	if cleanEmail == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	// Constant-time email comparison; the bcrypt compare below already is.
	wantEmail := strings.ToLower(strings.TrimSpace(s.creds.Email))
	emailOK := subtle.ConstantTimeCompare([]byte(cleanEmail), []byte(wantEmail)) == 1

	if err := s.hasher.Compare(s.creds.PasswordHash, password); err != nil || !emailOK {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(wantEmail, auth.RoleAdmin)
	if err != nil {
		return "", apperror.Wrap(err, http.StatusInternalServerError, "failed to issue token")
	}

	return token, nil
}
