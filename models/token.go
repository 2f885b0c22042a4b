package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a parsed session JWT.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The "sub" claim carries the session identifier used as the key into the
// data-key session store.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SessionID is a cached copy of the "sub" claim.
	SessionID string `json:"-"`
}

// GetSessionID returns the session identifier held in the "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetSessionID() (string, error) {
	sessionID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting SessionID from token: %w", err)
	}
	if sessionID == "" {
		return "", fmt.Errorf("error extracting SessionID from token: empty subject")
	}

	return sessionID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
