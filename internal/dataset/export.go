package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ErrEmptySelection is returned when an export is requested for an
// explicitly empty subset of samples.
var ErrEmptySelection = errors.New("empty sample selection")

// Encode writes rows to w with the given field separator (',' for CSV,
// '\t' for TSV), header line included.
func Encode(w io.Writer, rows []Sample, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("encode sample table: %w", err)
	}
	return nil
}

// Subset filters rows down to the named samples, preserving table order.
// Unknown names are ignored; an empty name list is rejected with
// ErrEmptySelection, and a selection matching nothing is rejected the same
// way so the caller can surface a warning instead of an empty file.
func Subset(rows []Sample, names []string) ([]Sample, error) {
	if len(names) == 0 {
		return nil, ErrEmptySelection
	}
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	var out []Sample
	for _, r := range rows {
		if _, ok := want[r.Name]; ok {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptySelection
	}
	return out, nil
}
