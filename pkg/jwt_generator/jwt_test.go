//go:build unit

package jwt_generator

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beauty-base-api/pkg/config"
)

const (
	TestIdentityEmail = "test@test.com"
	TestSecret        = "beauty-base-secret"
	TestAnotherSecret = "another-secret"
)

func newTestJwtGenerator(t *testing.T, secret string) *jwtGenerator {
	generator, err := NewJwtGenerator(config.JwtConfig{Secret: secret})
	require.NoError(t, err)

	return generator.(*jwtGenerator)
}

func TestNewJwtGenerator(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{Secret: TestSecret})

		assert.NoError(t, err)
		assert.Implements(t, (*JwtGenerator)(nil), jwtGenerator)
	})

	t.Run("when secret is empty should return error", func(t *testing.T) {
		jwtGenerator, err := NewJwtGenerator(config.JwtConfig{})

		assert.ErrorIs(t, err, ErrEmptySecret)
		assert.Nil(t, jwtGenerator)
	})
}

func TestJwtGenerator_GenerateToken(t *testing.T) {
	issuedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	generator := newTestJwtGenerator(t, TestSecret)
	generator.now = func() time.Time { return issuedAt }

	token, expiresAt, err := generator.GenerateToken(TestIdentityEmail)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, issuedAt.Add(10*24*time.Hour), expiresAt)
}

func TestJwtGenerator_VerifyToken(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		generator := newTestJwtGenerator(t, TestSecret)

		token, expiresAt, err := generator.GenerateToken(TestIdentityEmail)
		require.NoError(t, err)

		claims, err := generator.VerifyToken(token)

		require.NoError(t, err)
		assert.Equal(t, TestIdentityEmail, claims.Email)
		assert.Equal(t, IssuerDefault, claims.Issuer)
		assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("when token is signed with another secret should return error", func(t *testing.T) {
		issuer := newTestJwtGenerator(t, TestAnotherSecret)
		verifier := newTestJwtGenerator(t, TestSecret)

		token, _, err := issuer.GenerateToken(TestIdentityEmail)
		require.NoError(t, err)

		claims, err := verifier.VerifyToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("when token is older than its lifetime should return error", func(t *testing.T) {
		generator := newTestJwtGenerator(t, TestSecret)
		generator.now = func() time.Time {
			return time.Now().UTC().Add(-TokenLifetime - time.Minute)
		}

		token, _, err := generator.GenerateToken(TestIdentityEmail)
		require.NoError(t, err)

		generator.now = func() time.Time { return time.Now().UTC() }
		claims, err := generator.VerifyToken(token)

		assert.ErrorIs(t, err, ErrTokenExpired)
		assert.Nil(t, claims)
	})

	t.Run("when token is just inside its lifetime should return claims", func(t *testing.T) {
		generator := newTestJwtGenerator(t, TestSecret)
		generator.now = func() time.Time {
			return time.Now().UTC().Add(-TokenLifetime + time.Hour)
		}

		token, _, err := generator.GenerateToken(TestIdentityEmail)
		require.NoError(t, err)

		generator.now = func() time.Time { return time.Now().UTC() }
		claims, err := generator.VerifyToken(token)

		assert.NoError(t, err)
		assert.Equal(t, TestIdentityEmail, claims.Email)
	})

	t.Run("when token is malformed should return error", func(t *testing.T) {
		generator := newTestJwtGenerator(t, TestSecret)

		claims, err := generator.VerifyToken("abcd.abcd.abcd")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("when token has another issuer should return error", func(t *testing.T) {
		generator := newTestJwtGenerator(t, TestSecret)
		now := time.Now().UTC()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Email: TestIdentityEmail,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}).SignedString([]byte(TestSecret))
		require.NoError(t, err)

		claims, err := generator.VerifyToken(token)

		assert.ErrorIs(t, err, ErrAmbiguousIssuer)
		assert.Nil(t, claims)
	})

	t.Run("when token carries no email should return error", func(t *testing.T) {
		generator := newTestJwtGenerator(t, TestSecret)

		token, _, err := generator.GenerateToken("")
		require.NoError(t, err)

		claims, err := generator.VerifyToken(token)

		assert.ErrorIs(t, err, ErrTokenWithoutMail)
		assert.Nil(t, claims)
	})

	t.Run("when token is signed with none algorithm should return error", func(t *testing.T) {
		generator := newTestJwtGenerator(t, TestSecret)
		now := time.Now().UTC()
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			Email: TestIdentityEmail,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    IssuerDefault,
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := generator.VerifyToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
