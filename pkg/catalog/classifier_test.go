package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoannaDrx/Catalog/pkg/logging"
)

const testGroupPrefix = "s3://bucket/projects/sgds123/"

func testClassifier(client *fakeClient) *Classifier {
	return NewClassifier(client, logging.NewNopLogger(), DefaultArrayThreshold)
}

func leafEntries(n int, format string) []string {
	entries := make([]string, n)
	for i := range entries {
		entries[i] = fmt.Sprintf("%ssample_%02d.%s", testGroupPrefix, i+1, format)
	}
	return entries
}

func TestClassifyArrayAboveThreshold(t *testing.T) {
	client := newFakeClient()
	listing := leafEntries(11, "csv")

	result, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", true)
	require.NoError(t, err)
	require.Len(t, result, 1)

	entry, ok := result["sgds123_array"]
	require.True(t, ok)
	require.False(t, entry.Multi())

	ds := entry.Single
	assert.Equal(t, KindArray, ds.Kind)
	assert.Equal(t, 11, ds.Count)
	assert.Equal(t, "CSV", ds.Format)
	assert.Equal(t, "s3://bucket/projects/sgds123/", ds.Location)
	assert.Equal(t, "s3://bucket/projects/sgds123/sample_*.csv", ds.Pattern)
	assert.Equal(t, "s3://bucket/projects/sgds123/sample_01.csv", ds.Example)
}

func TestClassifySinglesBelowThreshold(t *testing.T) {
	client := newFakeClient()
	listing := leafEntries(9, "csv")

	result, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", true)
	require.NoError(t, err)
	require.Len(t, result, 9)

	entry, ok := result["sample_03"]
	require.True(t, ok)
	ds := entry.Single
	assert.Equal(t, KindFile, ds.Kind)
	assert.Equal(t, "CSV", ds.Format)
	assert.Equal(t, testGroupPrefix+"sample_03.csv", ds.Location)
	assert.Zero(t, ds.Count)
	assert.Empty(t, ds.Pattern)
}

func TestClassifyArraysDisabled(t *testing.T) {
	client := newFakeClient()
	listing := leafEntries(11, "csv")

	result, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", false)
	require.NoError(t, err)
	assert.Len(t, result, 11)
}

func TestClassifyFormatCollision(t *testing.T) {
	client := newFakeClient()
	listing := []string{
		testGroupPrefix + "report.csv",
		testGroupPrefix + "report.json",
	}

	result, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", true)
	require.NoError(t, err)
	require.Len(t, result, 1)

	entry, ok := result["report"]
	require.True(t, ok)
	require.True(t, entry.Multi())
	require.Len(t, entry.Formats, 2)
	assert.Equal(t, "CSV", entry.Formats["csv"].Format)
	assert.Equal(t, "JSON", entry.Formats["json"].Format)
	assert.Equal(t, testGroupPrefix+"report.json", entry.Formats["json"].Location)
}

func TestClassifySubPrefixBecomesArray(t *testing.T) {
	client := newFakeClient()
	sub := testGroupPrefix + "alignments/"
	client.listings[sub] = []string{
		sub + "run_1.bam",
		sub + "run_2.bam",
		sub + "run_3.bam",
	}
	listing := []string{sub, testGroupPrefix + "summary.csv"}

	result, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", true)
	require.NoError(t, err)
	require.Len(t, result, 2)

	entry, ok := result["alignments_array"]
	require.True(t, ok)
	ds := entry.Single
	assert.Equal(t, KindArray, ds.Kind)
	assert.Equal(t, 3, ds.Count)
	assert.Equal(t, "BAM", ds.Format)
	assert.Equal(t, sub, ds.Location)
	assert.Equal(t, sub+"run_*.bam", ds.Pattern)

	require.NotNil(t, result["summary"].Single)
}

func TestClassifySubPrefixMultipleExtensions(t *testing.T) {
	client := newFakeClient()
	sub := testGroupPrefix + "qc/"
	client.listings[sub] = []string{
		sub + "metrics_1.csv",
		sub + "metrics_2.csv",
		sub + "plot.png",
	}
	listing := []string{sub}

	result, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", true)
	require.NoError(t, err)
	require.Len(t, result, 2)

	csvEntry, ok := result["qc_CSV_array"]
	require.True(t, ok)
	assert.Equal(t, KindArray, csvEntry.Single.Kind)
	assert.Equal(t, 2, csvEntry.Single.Count)

	// a single member of an extension group stays a plain file
	pngEntry, ok := result["qc_PNG_array"]
	require.True(t, ok)
	assert.Equal(t, KindFile, pngEntry.Single.Kind)
	assert.Equal(t, sub+"plot.png", pngEntry.Single.Location)
}

func TestClassifySubPrefixExtensionlessFallback(t *testing.T) {
	client := newFakeClient()
	sub := testGroupPrefix + "docs/"
	client.listings[sub] = []string{sub + "README"}
	listing := []string{sub}

	result, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", true)
	require.NoError(t, err)
	require.Len(t, result, 1)

	entry, ok := result["docs_array"]
	require.True(t, ok)
	ds := entry.Single
	assert.Equal(t, FormatNA, ds.Format)
	assert.Equal(t, KindFile, ds.Kind)
	assert.Equal(t, "README", ds.Location)
}

func TestClassifyEmptySubPrefixSkipped(t *testing.T) {
	client := newFakeClient()
	sub := testGroupPrefix + "empty/"
	listing := []string{sub}

	result, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", true)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestClassifyLeafWithoutExtension(t *testing.T) {
	client := newFakeClient()
	listing := []string{testGroupPrefix + "README"}

	_, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", false)
	assert.ErrorIs(t, err, ErrNoExtension)
}

func TestClassifySubPrefixListError(t *testing.T) {
	client := newFakeClient()
	sub := testGroupPrefix + "broken/"
	client.listErrs[sub] = assert.AnError
	listing := []string{sub}

	_, err := testClassifier(client).Classify(context.Background(), listing, "sgds123", true)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestClassifyCustomThreshold(t *testing.T) {
	client := newFakeClient()
	classifier := NewClassifier(client, logging.NewNopLogger(), 2)

	result, err := classifier.Classify(context.Background(), leafEntries(3, "csv"), "sgds123", true)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, KindArray, result["sgds123_array"].Single.Kind)
}
