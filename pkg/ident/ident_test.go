package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		ident string
		want  bool
	}{
		{"simple lowercase", "customers", true},
		{"leading underscore", "_internal", true},
		{"mixed case with digits", "Order2Items", true},
		{"single letter", "c", true},
		{"single underscore", "_", true},
		{"empty string", "", false},
		{"leading digit", "2fast", false},
		{"contains hyphen", "order-items", false},
		{"contains space", "order items", false},
		{"contains dot", "a.b", false},
		{"wildcard is not an identifier", "*", false},
		{"non-ascii letter", "tablé", false},
		{"reserved uppercase", "SELECT", false},
		{"reserved lowercase", "order", false},
		{"reserved mixed case", "Between", false},
		{"reserved as substring is fine", "selection", true},
		{"reserved with suffix is fine", "order_id", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.ident))
		})
	}
}

func TestReserved(t *testing.T) {
	assert.True(t, Reserved("select"))
	assert.True(t, Reserved("END"))
	assert.False(t, Reserved("customers"))
}
