package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		input          string
		expectedBucket string
		expectedKey    string
		wantErr        bool
	}{
		{"s3://bucket/path/to/file.csv", "bucket", "path/to/file.csv", false},
		{"s3://bucket/prefix/", "bucket", "prefix/", false},
		{"s3://bucket", "bucket", "", false},
		{"/local/path", "", "", true},
		{"s3:///nobucket", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bucket, key, err := ParseLocation(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBucket, bucket)
			assert.Equal(t, tt.expectedKey, key)
		})
	}
}

func TestJoinLocation(t *testing.T) {
	tests := []struct {
		base     string
		elems    []string
		expected string
	}{
		{"s3://b/p/", []string{"x.csv"}, "s3://b/p/x.csv"},
		{"s3://b/p", []string{"sub/", "x.csv"}, "s3://b/p/sub/x.csv"},
		{"s3://b/p", []string{"sub/"}, "s3://b/p/sub/"},
		{"s3://b/p", []string{"", "x.csv"}, "s3://b/p/x.csv"},
		{"s3://b/p", nil, "s3://b/p"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinLocation(tt.base, tt.elems...))
		})
	}
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "SGDS-123", LastSegment("s3://b/base/SGDS-123/"))
	assert.Equal(t, "x.csv", LastSegment("s3://b/base/x.csv"))
	assert.Equal(t, "b", LastSegment("s3://b"))
}

func TestParentPrefix(t *testing.T) {
	assert.Equal(t, "s3://b/base", ParentPrefix("s3://b/base/x.csv"))
	assert.Equal(t, "s3://b/base", ParentPrefix("s3://b/base/sub/"))
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("s3://b/k"))
	assert.False(t, IsRemote("/tmp/k"))
}

func TestListOptionsMatch(t *testing.T) {
	tests := []struct {
		name     string
		opts     []ListOption
		entry    string
		expected bool
	}{
		{"no filters", nil, "s3://b/p/x.csv", true},
		{"pattern hit", []ListOption{WithNamePattern("sgds123")}, "s3://b/p/sgds123-qc/", true},
		{"pattern miss", []ListOption{WithNamePattern("sgds999")}, "s3://b/p/sgds123-qc/", false},
		{"pattern scoped to last segment", []ListOption{WithNamePattern("p")}, "s3://b/p/xy.csv", false},
		{"suffix hit", []ListOption{WithSuffix("csv")}, "s3://b/p/x.csv", true},
		{"suffix miss", []ListOption{WithSuffix("csv")}, "s3://b/p/x.json", false},
		{"suffix ignores trailing slash", []ListOption{WithSuffix("qc")}, "s3://b/p/run-qc/", true},
		{
			"combined",
			[]ListOption{WithNamePattern("x"), WithSuffix("csv")},
			"s3://b/p/x.csv",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := BuildListOptions(tt.opts...)
			assert.Equal(t, tt.expected, o.Match(tt.entry))
		})
	}
}
