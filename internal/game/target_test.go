package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTarget(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"777", "777"},
		{"12", "12"},
		{"1a2b3c4", "123"},
		{"  0 0 7", "007"},
		{"абв", ""},
		{"98765", "987"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeTarget(tt.raw), tt.raw)
	}
}

func TestIsValidTarget(t *testing.T) {
	assert.True(t, IsValidTarget("000"))
	assert.True(t, IsValidTarget("901"))
	assert.False(t, IsValidTarget("12"))
	assert.False(t, IsValidTarget("1234"))
	assert.False(t, IsValidTarget("12a"))
	assert.False(t, IsValidTarget(""))
}
