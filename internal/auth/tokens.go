package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"internportal/internal/domain"
)

// Purpose tells the issuer which flow a token is minted for.
type Purpose int

const (
	PurposeLogin Purpose = iota
	PurposeSignup
)

const (
	LoginToken  = "dummy-jwt-token-12345"
	SignupToken = "dummy-jwt-token-67890"
)

// TokenIssuer mints the opaque token returned to the client.
type TokenIssuer interface {
	Issue(ctx context.Context, user domain.User, purpose Purpose) (string, error)
}

// StaticTokens returns one constant token per purpose.
type StaticTokens struct{}

func (StaticTokens) Issue(_ context.Context, _ domain.User, purpose Purpose) (string, error) {
	if purpose == PurposeSignup {
		return SignupToken, nil
	}
	return LoginToken, nil
}

// JWTIssuer signs HS256 tokens. Nothing in the portal verifies them; they
// only replace the constants with something a real backend could check.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Claims are the JWT claims minted by JWTIssuer.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

func NewJWTIssuer(secret, issuer string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("auth: jwt secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

func (j *JWTIssuer) Issue(_ context.Context, user domain.User, _ Purpose) (string, error) {
	now := j.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.Itoa(user.ID),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Email: user.Email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}
