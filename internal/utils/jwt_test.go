package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "session-1", time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "session-1", token.SessionID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "session-1", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		sessionID string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "s", time.Hour, "key"},
		{"empty session", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "s", 0, "key"},
		{"empty key", "iss", "s", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.sessionID, tt.duration, tt.key)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("issuer", "session-1", time.Hour, "key")
	require.NoError(t, err)

	expired, err := GenerateJWTToken("issuer", "session-1", -time.Minute, "key")
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		key       string
		issuer    string
		wantErr   bool
		sessionID string
	}{
		{name: "valid", token: valid.SignedString, key: "key", issuer: "issuer", sessionID: "session-1"},
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "issuer", wantErr: true},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "other", wantErr: true},
		{name: "expired", token: expired.SignedString, key: "key", issuer: "issuer", wantErr: true},
		{name: "garbage", token: "not.a.token", key: "key", issuer: "issuer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sessionID, got.SessionID)
		})
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "issuer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "issuer")
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(h)
		assert.Error(t, err, h)
	}
}
