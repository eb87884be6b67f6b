package jwt_generator

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	IssuerDefault = "beauty-base"
	TokenLifetime = 10 * 24 * time.Hour
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
