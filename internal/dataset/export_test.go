package dataset

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeExport(t *testing.T, data []byte, sep rune) []Sample {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sep
	var rows []Sample
	require.NoError(t, gocsv.UnmarshalCSV(r, &rows))
	return rows
}

func TestEncodeRoundTrip(t *testing.T) {
	samples := fixtureSamples(t)

	for name, sep := range map[string]rune{"csv": ',', "tsv": '\t'} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, samples, sep))

			header := strings.SplitN(buf.String(), "\n", 2)[0]
			header = strings.TrimRight(header, "\r")
			assert.Equal(t, strings.Join(Columns(), string(sep)), header)

			assert.Equal(t, samples, decodeExport(t, buf.Bytes(), sep))
		})
	}
}

func TestSubset(t *testing.T) {
	samples := fixtureSamples(t)

	sub, err := Subset(samples, []string{"ERR003", "ERR001"})
	require.NoError(t, err)
	require.Len(t, sub, 2)
	// Table order preserved regardless of selection order.
	assert.Equal(t, "ERR001", sub[0].Name)
	assert.Equal(t, "ERR003", sub[1].Name)
}

func TestSubsetEmptySelection(t *testing.T) {
	samples := fixtureSamples(t)

	_, err := Subset(samples, nil)
	assert.ErrorIs(t, err, ErrEmptySelection)

	// A selection matching no rows counts as empty too.
	_, err = Subset(samples, []string{"ERR999"})
	assert.ErrorIs(t, err, ErrEmptySelection)
}
