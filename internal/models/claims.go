package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the authenticated user identity inside the JWT along with
// the standard registered fields (ExpiresAt, IssuedAt, ID).
type Claims struct {
	UserID               uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenDetails holds an issued access token and its expiry (unix seconds).
type TokenDetails struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}
