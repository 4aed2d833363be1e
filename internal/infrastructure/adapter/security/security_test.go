package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/currency-detector/mocks/port/core"
)

const testSecret = "test-secret"

// clock returns a time provider whose current time can be moved in tests
func clock(t *testing.T, now *time.Time) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().RunAndReturn(func() time.Time { return *now }).Maybe()
	return tp
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	svc, err := NewJWTTokenService(testSecret, "HS256", 30*time.Minute, clock(t, &now))
	require.NoError(t, err)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, now.Add(30*time.Minute), token.ExpiresAt)

	t.Run("Immediately valid", func(t *testing.T) {
		userID, err := svc.Subject(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), userID)
	})

	t.Run("Expired token fails closed", func(t *testing.T) {
		saved := now
		now = now.Add(31 * time.Minute)
		defer func() { now = saved }()

		_, err := svc.Subject(token.AccessToken)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Tampered token", func(t *testing.T) {
		_, err := svc.Subject(token.AccessToken + "x")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.Subject("not.a.token")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestJWTTokenService_RejectsForeignTokens(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	svc, err := NewJWTTokenService(testSecret, "HS256", time.Hour, clock(t, &now))
	require.NoError(t, err)

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := jwt.NewNumericDate(now.Add(time.Hour))

	testCases := []struct {
		name  string
		token string
	}{
		{"other secret", sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{Subject: "1", ExpiresAt: valid})},
		{"other algorithm", sign(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.RegisteredClaims{Subject: "1", ExpiresAt: valid})},
		{"none algorithm", sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.RegisteredClaims{Subject: "1", ExpiresAt: valid})},
		{"missing subject", sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{ExpiresAt: valid})},
		{"non-numeric subject", sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "admin", ExpiresAt: valid})},
		{"missing expiry", sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "1"})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Subject(tc.token)
			assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		})
	}
}

func TestNewJWTTokenService_Validation(t *testing.T) {
	now := time.Now()
	tp := clock(t, &now)

	_, err := NewJWTTokenService("", "HS256", time.Hour, tp)
	assert.Error(t, err)

	_, err = NewJWTTokenService(testSecret, "RS256", time.Hour, tp)
	assert.Error(t, err)

	_, err = NewJWTTokenService(testSecret, "HS384", 0, tp)
	assert.Error(t, err)

	_, err = NewJWTTokenService(testSecret, "HS384", time.Minute, tp)
	assert.NoError(t, err)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, h.Verify(hash, "correct horse"))
	assert.False(t, h.Verify(hash, "wrong horse"))
	assert.False(t, h.Verify("not-a-hash", "correct horse"))

	t.Run("Same password hashes differently", func(t *testing.T) {
		other, err := h.Hash("correct horse")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})

	t.Run("Too long password is a client error", func(t *testing.T) {
		_, err := h.Hash(strings.Repeat("p", 73))
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Invalid cost falls back to default", func(t *testing.T) {
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	})
}
