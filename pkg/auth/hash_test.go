package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSecret(t *testing.T) {
	service := &HashService{}

	tests := []struct {
		name        string
		secret      string
		expectError bool
	}{
		{name: "Valid secret", secret: "terminal-secret", expectError: false},
		{name: "Empty secret", secret: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := service.HashSecret(tt.secret)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hash)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hash)
				assert.NotEqual(t, tt.secret, hash)
			}
		})
	}
}

func TestCompareSecret(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashSecret("terminal-secret")
	assert.NoError(t, err)

	assert.True(t, service.CompareSecret(hash, "terminal-secret"))
	assert.False(t, service.CompareSecret(hash, "wrong-secret"))
	assert.False(t, service.CompareSecret("not-a-hash", "terminal-secret"))
}
