package jwt_generator

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"beauty-base-api/pkg/config"
)

var (
	ErrEmptySecret      = errors.New("jwt signing secret is empty")
	ErrSigningMethod    = errors.New("jwt token is not signed with hmac")
	ErrAmbiguousIssuer  = errors.New("ambiguous jwt token issuer")
	ErrTokenExpired     = errors.New("expired jwt token")
	ErrTokenNotStarted  = errors.New("jwt token is not started")
	ErrTokenWithoutMail = errors.New("jwt token does not carry an email claim")
)

type JwtGenerator interface {
	GenerateToken(email string) (string, time.Time, error)
	VerifyToken(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	secret []byte
	now    func() time.Time
}

func NewJwtGenerator(jwtConfig config.JwtConfig) (JwtGenerator, error) {
	if jwtConfig.Secret == "" {
		return nil, ErrEmptySecret
	}

	return &jwtGenerator{
		secret: []byte(jwtConfig.Secret),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateToken(email string) (string, time.Time, error) {
	now := jwtGenerator.now()
	expiresAt := now.Add(TokenLifetime)
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(jwtGenerator.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signedToken, expiresAt, nil
}

func (jwtGenerator *jwtGenerator) VerifyToken(rawJwtToken string) (*Claims, error) {
	var (
		err    error
		claims Claims
	)

	_, err = jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrSigningMethod
		}

		return jwtGenerator.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, ErrAmbiguousIssuer
	}

	now := jwtGenerator.now()
	isJwtTokenAlive := claims.VerifyExpiresAt(now, true)
	if !isJwtTokenAlive {
		return nil, ErrTokenExpired
	}

	isTokenStarted := claims.VerifyNotBefore(now, true)
	if !isTokenStarted {
		return nil, ErrTokenNotStarted
	}

	if claims.Email == "" {
		return nil, ErrTokenWithoutMail
	}

	return &claims, nil
}
