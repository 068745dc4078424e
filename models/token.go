package models

import "github.com/golang-jwt/jwt/v5"

// Token is the parsed form of a bearer token issued by the external
// identity provider. Only the owner identifier is of interest to this
// application; everything else stays inside the embedded claims.
type Token struct {
	jwt.RegisteredClaims

	// UserID is the owner identifier extracted from the subject claim.
	UserID string `json:"-"`

	// SignedString is the raw compact serialization the token was
	// parsed from, kept for outbound requests.
	SignedString string `json:"-"`
}
