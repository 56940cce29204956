package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateJWT(1, 42, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name        string
		makeToken   func() string
		expectError bool
	}{
		{
			name: "Valid token",
			makeToken: func() string {
				token, _ := service.GenerateJWT(1, 42, time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
		},
		{
			name: "Expired token",
			makeToken: func() string {
				token, _ := service.GenerateJWT(1, 42, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Token signed with another secret",
			makeToken: func() string {
				other := NewJWTService("other-secret")
				token, _ := other.GenerateJWT(1, 42, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Garbage token",
			makeToken: func() string {
				return "not.a.token"
			},
			expectError: true,
		},
		{
			name: "Missing restaurant claim",
			makeToken: func() string {
				token, _ := service.GenerateJWT(1, 0, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.makeToken())
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, claims.TerminalID)
				assert.Equal(t, 42, claims.RestaurantID)
			}
		})
	}
}
