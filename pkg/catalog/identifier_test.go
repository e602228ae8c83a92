package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SGDS-123", "sgds123"},
		{"sgds-123", "sgds123"},
		{"SGDS-123_extra", "sgds123"},
		{"SGDS-123_do_something", "sgds123"},
		{" OMICS-456 ", "omics456"},
		{"already", "already"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"SGDS-123", "sgds123", "OMICS-456_x", "a-b-c_d-e"} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", raw)
	}
}
