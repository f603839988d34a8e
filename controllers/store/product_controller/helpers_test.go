package product_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSortClause(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"price-asc", "price ASC"},
		{"price-desc", "price DESC"},
		{"popularity", "sold DESC"},
		{"newest", "created_at DESC"},
		{"oldest", "created_at ASC"},
		{"", "created_at DESC"},
		{"bogus", "created_at DESC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, buildSortClause(tt.sortBy), "sortBy=%q", tt.sortBy)
	}
}

func TestHexIDPattern(t *testing.T) {
	assert.True(t, hexIDPattern.MatchString("5f1a2b3c4d5e6f7a8b9c0d1e"))

	// Malformed suffixes must fall through to the name search.
	assert.False(t, hexIDPattern.MatchString("12345"))
	assert.False(t, hexIDPattern.MatchString("5f1a2b3c4d5e6f7a8b9c0d1"))   // 23 chars
	assert.False(t, hexIDPattern.MatchString("5f1a2b3c4d5e6f7a8b9c0d1ef")) // 25 chars
	assert.False(t, hexIDPattern.MatchString("5F1A2B3C4D5E6F7A8B9C0D1E"))  // uppercase, caller lowercases first
	assert.False(t, hexIDPattern.MatchString("zz1a2b3c4d5e6f7a8b9c0d1e"))
}
