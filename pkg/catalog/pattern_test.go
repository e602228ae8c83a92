package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePattern(t *testing.T) {
	tests := []struct {
		name     string
		members  []string
		expected string
	}{
		{
			"numbered csv files",
			[]string{"abc_1.csv", "abc_2.csv", "abc_3.csv"},
			"abc_*.csv",
		},
		{
			"shared prefix only",
			[]string{"run_a", "run_b"},
			"run_*",
		},
		{
			"shared suffix only",
			[]string{"alpha.txt", "beta.txt"},
			"*a.txt",
		},
		{
			"nothing in common",
			[]string{"abc", "xyz"},
			"*",
		},
		{
			// prefix and suffix grow independently and may overlap
			"identical members double count",
			[]string{"a.csv", "a.csv"},
			"a.csv*a.csv",
		},
		{
			"empty members",
			nil,
			"*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DerivePattern(tt.members))
		})
	}
}
