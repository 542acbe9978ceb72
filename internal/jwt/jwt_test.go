package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", time.Hour)

	userID := uuid.New()
	token, err := j.Generate(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	assert.NoError(t, j.Validate(ctx, token))
}

func TestJWT_GetClaims_Invalid(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		claims, err := j.GetClaims(ctx, "not-a-token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := New("other-secret", time.Hour)
		token, err := other.Generate(ctx, uuid.New())
		require.NoError(t, err)

		claims, err := j.GetClaims(ctx, token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := New("test-secret", -time.Minute)
		token, err := expired.Generate(ctx, uuid.New())
		require.NoError(t, err)

		claims, err := j.GetClaims(ctx, token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := j.Generate(ctx, uuid.Nil)
		require.NoError(t, err)

		claims, err := j.GetClaims(ctx, token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", time.Hour)

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{"valid bearer", "Bearer token-123", "token-123", false},
		{"lowercase scheme", "bearer token-123", "token-123", false},
		{"missing header", "", "", true},
		{"no scheme", "token-123", "", true},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
