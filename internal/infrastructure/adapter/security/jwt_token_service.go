package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/security"
)

// TokenTypeBearer is reported to clients alongside the access token
const TokenTypeBearer = "bearer"

var signingMethods = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// JWTTokenService issues HMAC-signed access tokens whose subject is the user ID
type JWTTokenService struct {
	secret       []byte
	method       *jwt.SigningMethodHMAC
	expiry       time.Duration
	timeProvider core.TimeProvider
	parser       *jwt.Parser
}

var _ security.TokenService = (*JWTTokenService)(nil)

// NewJWTTokenService validates the signing settings and creates the service
func NewJWTTokenService(secret, algorithm string, expiry time.Duration, timeProvider core.TimeProvider) (*JWTTokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is empty")
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q", algorithm)
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("token expiry must be positive, got %s", expiry)
	}

	return &JWTTokenService{
		secret:       []byte(secret),
		method:       method,
		expiry:       expiry,
		timeProvider: timeProvider,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(timeProvider.Now),
		),
	}, nil
}

// Issue signs a token for the user that expires after the configured window
func (s *JWTTokenService) Issue(userID uint64) (security.Token, error) {
	now := s.timeProvider.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return security.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return security.Token{
		AccessToken: signed,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Subject validates the token and returns the user ID it was issued for.
// Every failure is reported as ErrUnauthenticated wrapping the cause.
func (s *JWTTokenService) Subject(token string) (uint64, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrUnauthenticated, err)
	}

	if claims.Subject == "" {
		return 0, fmt.Errorf("%w: token has no subject", errs.ErrUnauthenticated)
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("%w: invalid subject %q", errs.ErrUnauthenticated, claims.Subject)
	}

	return userID, nil
}
