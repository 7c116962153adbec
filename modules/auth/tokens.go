package auth

import (
	"errors"
	"fmt"
	"time"

	domain "github.com/KodFikirSanat/focussuite/domain/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when the token is malformed, forged or of the wrong kind.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// DevelopmentSecret is used when no secret is configured. Never deploy with it.
const DevelopmentSecret = "focussuite-development-secret"

type tokenKind string

const (
	accessToken  tokenKind = "access"
	refreshToken tokenKind = "refresh"
)

// TokenConfig configures token signing.
type TokenConfig struct {
	SecretKey  string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// DefaultTokenConfig returns the configuration used when nothing is overridden.
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		SecretKey:  DevelopmentSecret,
		Issuer:     "focussuite",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}
}

// tokenClaims are the signed claims. The user id travels as the subject.
type tokenClaims struct {
	Email string    `json:"email"`
	Kind  tokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access and refresh tokens.
type TokenIssuer struct {
	config TokenConfig
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer.
func NewTokenIssuer(config TokenConfig) *TokenIssuer {
	return &TokenIssuer{
		config: config,
		now:    time.Now,
	}
}

// Issue creates a fresh access/refresh token pair for the user.
func (i *TokenIssuer) Issue(userID uuid.UUID, email string) (*domain.TokenPair, error) {
	access, err := i.sign(userID, email, accessToken, i.config.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := i.sign(userID, email, refreshToken, i.config.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(i.config.AccessTTL.Seconds()),
		TokenType:    "Bearer",
	}, nil
}

// ParseAccess verifies an access token.
func (i *TokenIssuer) ParseAccess(token string) (*domain.Claims, error) {
	return i.parse(token, accessToken)
}

// ParseRefresh verifies a refresh token.
func (i *TokenIssuer) ParseRefresh(token string) (*domain.Claims, error) {
	return i.parse(token, refreshToken)
}

func (i *TokenIssuer) sign(userID uuid.UUID, email string, kind tokenKind, ttl time.Duration) (string, error) {
	now := i.now()
	claims := tokenClaims{
		Email: email,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.config.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.config.SecretKey))
}

func (i *TokenIssuer) parse(token string, kind tokenKind) (*domain.Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return []byte(i.config.SecretKey), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.config.Issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if claims.Kind != kind {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &domain.Claims{UserID: userID, Email: claims.Email}, nil
}
