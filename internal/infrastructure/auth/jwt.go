package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/loja/backend/internal/infrastructure/config"
)

// Verification errors. Each maps to its own 401 error code at the HTTP layer.
var (
	ErrMissingToken     = errors.New("token not provided")
	ErrMalformedToken   = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpiredToken     = errors.New("token has expired")
)

const bearerType = "Bearer"

// Claims carried by an access token
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenPair is the result of a successful login
type TokenPair struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	TokenType string    `json:"tokenType"`
}

// JWTService issues and verifies HS256 tokens with a single process-wide key.
// It is read-only after construction and safe for concurrent use.
type JWTService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	now        func() time.Time
}

// NewJWTService creates a JWT service from configuration
func NewJWTService(cfg config.JWTConfig) *JWTService {
	expiration := cfg.AccessTokenExpiration
	if expiration <= 0 {
		expiration = time.Hour
	}
	return &JWTService{
		secret:     []byte(cfg.Secret),
		expiration: expiration,
		issuer:     cfg.Issuer,
		now:        time.Now,
	}
}

// IssueToken signs a token whose email and subject claims are email
func (s *JWTService) IssueToken(email string) (*TokenPair, error) {
	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		Token:     signed,
		// exp is truncated to whole seconds, report what was signed
		ExpiresAt: claims.ExpiresAt.UTC(),
		TokenType: bearerType,
	}, nil
}

// VerifyToken checks signature and validity window and returns the email claim
func (s *JWTService) VerifyToken(tokenString string) (string, error) {
	claims, err := s.ParseClaims(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// ParseClaims is VerifyToken returning the full claim set
func (s *JWTService) ParseClaims(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(s.now),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if claims.Email == "" {
		return nil, ErrMalformedToken
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// ExpiresIn returns the configured token lifetime
func (s *JWTService) ExpiresIn() time.Duration {
	return s.expiration
}

// classify maps jwt library errors onto the verification sentinels.
// Only a passed exp counts as expired; a token whose nbf or iat lies in the
// future was never valid and is reported as malformed.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	default:
		return ErrMalformedToken
	}
}
