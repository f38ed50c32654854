package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSamples(t *testing.T) []Sample {
	t.Helper()
	samples, err := NewFileStore(writeFixtureTable(t)).Samples(context.Background())
	require.NoError(t, err)
	return samples
}

func TestSummarize(t *testing.T) {
	sum := Summarize(fixtureSamples(t))
	assert.Equal(t, 4, sum.TotalSamples)
	assert.Equal(t, 2, sum.Countries) // the sample without a country is not counted
	assert.Equal(t, 3, sum.Lineages)
}

func TestLineageStats(t *testing.T) {
	stats := LineageStats(fixtureSamples(t))
	require.Len(t, stats, 3)

	// Sorted by lineage name.
	assert.Equal(t, "lineage1", stats[0].Lineage)
	assert.Equal(t, "lineage2", stats[1].Lineage)
	assert.Equal(t, "lineage4", stats[2].Lineage)

	assert.Equal(t, 1, stats[0].SampleCount)
	assert.InDelta(t, 980, stats[0].MeanSNPs, 1e-9)

	assert.Equal(t, 2, stats[2].SampleCount)
	assert.InDelta(t, (1220+1104)/2.0, stats[2].MeanSNPs, 1e-9)

	// Group sizes sum to the total row count.
	total := 0
	for _, s := range stats {
		total += s.SampleCount
	}
	assert.Equal(t, 4, total)
}

func TestCountryCountsSumToRowsWithCountry(t *testing.T) {
	samples := fixtureSamples(t)
	counts := CountryCounts(samples)
	require.Len(t, counts, 2)

	withCountry := 0
	for _, s := range samples {
		if s.Country != "" {
			withCountry++
		}
	}
	total := 0
	for _, c := range counts {
		total += c.Samples
	}
	assert.Equal(t, withCountry, total)

	// Descending by count.
	assert.Equal(t, CountryCount{Country: "Peru", Samples: 2}, counts[0])
	assert.Equal(t, CountryCount{Country: "India", Samples: 1}, counts[1])
}

func TestStatsEmptyInput(t *testing.T) {
	assert.Empty(t, LineageStats(nil))
	assert.Empty(t, CountryCounts(nil))
	assert.Equal(t, Summary{}, Summarize(nil))
}
