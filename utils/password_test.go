package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Abcdef12", nil},
		{"no uppercase or digit", "abcdefgh", ErrPasswordNoUpper},
		{"no digit", "Abcdefgh", ErrPasswordNoDigit},
		{"no lowercase", "ABCDEF12", ErrPasswordNoLower},
		{"too short", "Abc12", ErrPasswordTooShort},
		{"too long", strings.Repeat("Ab1", 43), ErrPasswordTooLong},
		{"exactly 8 chars", "Abcdef12", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Abcdef12")
	assert.NoError(t, err)
	assert.NotEqual(t, "Abcdef12", hashed)

	assert.True(t, CheckPassword(hashed, "Abcdef12"))
	assert.False(t, CheckPassword(hashed, "Abcdef13"))
}
