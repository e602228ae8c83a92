package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "sample,gene,count\ns1,BRCA1,12\ns2,BRCA1,7\ns3,TP53,3\n"

func TestReadCSV(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sampleCSV), 0)
	require.NoError(t, err)

	assert.Equal(t, "sample", f.IndexName)
	assert.Equal(t, []string{"gene", "count"}, f.Columns)
	assert.Equal(t, []string{"s1", "s2", "s3"}, f.Index)
	assert.Equal(t, 3, f.NumRows())

	row, err := f.Row("s2")
	require.NoError(t, err)
	assert.Equal(t, []string{"BRCA1", "7"}, row)

	counts, err := f.Column("count")
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "7", "3"}, counts)
}

func TestReadCSVOtherIndexColumn(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sampleCSV), 1)
	require.NoError(t, err)

	assert.Equal(t, "gene", f.IndexName)
	assert.Equal(t, []string{"sample", "count"}, f.Columns)
	assert.Equal(t, []string{"BRCA1", "BRCA1", "TP53"}, f.Index)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		indexCol int
	}{
		{"empty input", "", 0},
		{"index out of range", sampleCSV, 5},
		{"ragged row", "a,b\n1\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.data), tt.indexCol)
			assert.Error(t, err)
		})
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sampleCSV), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))
	assert.Equal(t, sampleCSV, buf.String())
}

func TestColumnMissing(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sampleCSV), 0)
	require.NoError(t, err)

	_, err = f.Column("nope")
	assert.Error(t, err)

	_, err = f.Row("s9")
	assert.Error(t, err)
}
