package helper

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestKebabify(t *testing.T) {
	var tests = []struct {
		in       string
		expected string
	}{
		{"The     Gateway", "the-gateway"},
		{"not_a_ __name", "not-a-name"},
		{"already-kebab", "already-kebab"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out := Kebabify(tt.in)

			assert.Equal(t, out, tt.expected)
		})
	}
}
