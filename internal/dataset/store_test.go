package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureTSV = "Sample\tCountry of isolation\tlevel 1\tlevel 2\tlevel 3\tlevel 4\tlevel 5\tno. of SNPs\t%GC\tTotal sequences\tAverage sequence length\t%Reads mapped\tAverage coverage depth\n" +
	"ERR001\tPeru\tlineage4\tlineage4.3\tlineage4.3.3\t\t\t1220\t65\t2100000\t108.40\t98.72\t61.30\n" +
	"ERR002\tPeru\tlineage4\tlineage4.1\t\t\t\t1104\t64\t1900000\t101.25\t97.10\t55.02\n" +
	"ERR003\tIndia\tlineage1\tlineage1.1\tlineage1.1.1\tlineage1.1.1.1\t\t980\t65\t2400000\t99.80\t99.01\t70.44\n" +
	"ERR004\t\tlineage2\tlineage2.2\t\t\t\t1310\t65\t2250000\t103.00\t96.55\t64.90\n"

func writeFixtureTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples_data.tsv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureTSV), 0o644))
	return path
}

func TestFileStoreSamples(t *testing.T) {
	store := NewFileStore(writeFixtureTable(t))

	samples, err := store.Samples(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, samples)
	assert.Len(t, samples, 4)

	first := samples[0]
	assert.Equal(t, "ERR001", first.Name)
	assert.Equal(t, "Peru", first.Country)
	assert.Equal(t, "lineage4", first.Level1)
	assert.Equal(t, 1220, first.SNPs)
	assert.InDelta(t, 108.40, first.AvgSeqLength, 1e-9)
	assert.InDelta(t, 98.72, first.ReadsMapped, 1e-9)
}

func TestFileStoreSampleLookup(t *testing.T) {
	store := NewFileStore(writeFixtureTable(t))

	s, err := store.Sample(context.Background(), "ERR003")
	require.NoError(t, err)
	assert.Equal(t, "India", s.Country)
	assert.Equal(t, "lineage1.1.1.1", s.Level4)

	_, err = store.Sample(context.Background(), "ERR999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreReloadKeepsCacheOnFailure(t *testing.T) {
	path := writeFixtureTable(t)
	store := NewFileStore(path)
	require.NoError(t, store.Reload(context.Background()))

	require.NoError(t, os.Remove(path))
	assert.Error(t, store.Reload(context.Background()))

	// Previous rows must still be served.
	samples, err := store.Samples(context.Background())
	require.NoError(t, err)
	assert.Len(t, samples, 4)
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.tsv"))
	_, err := store.Samples(context.Background())
	assert.Error(t, err)
}

func TestFileStoreEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples_data.tsv")
	header := "Sample\tCountry of isolation\tlevel 1\tlevel 2\tlevel 3\tlevel 4\tlevel 5\tno. of SNPs\t%GC\tTotal sequences\tAverage sequence length\t%Reads mapped\tAverage coverage depth\n"
	require.NoError(t, os.WriteFile(path, []byte(header), 0o644))

	_, err := NewFileStore(path).Samples(context.Background())
	assert.ErrorContains(t, err, "no rows")
}
