package dataset

// Sample is one row of the reference sample metadata table.
// CSV tags match the column headers of samples_data.tsv exactly.
type Sample struct {
	Name           string  `csv:"Sample" json:"sample"`
	Country        string  `csv:"Country of isolation" json:"country"`
	Level1         string  `csv:"level 1" json:"level1"`
	Level2         string  `csv:"level 2" json:"level2"`
	Level3         string  `csv:"level 3" json:"level3"`
	Level4         string  `csv:"level 4" json:"level4"`
	Level5         string  `csv:"level 5" json:"level5"`
	SNPs           int     `csv:"no. of SNPs" json:"snps"`
	GC             float64 `csv:"%GC" json:"gc"`
	TotalSequences int     `csv:"Total sequences" json:"totalSequences"`
	AvgSeqLength   float64 `csv:"Average sequence length" json:"avgSequenceLength"`
	ReadsMapped    float64 `csv:"%Reads mapped" json:"readsMapped"`
	AvgCoverage    float64 `csv:"Average coverage depth" json:"avgCoverageDepth"`
}

// Columns is the canonical column order of the metadata table, as shown in
// the dashboard grid and written by the exporter.
func Columns() []string {
	return []string{
		"Sample",
		"Country of isolation",
		"level 1",
		"level 2",
		"level 3",
		"level 4",
		"level 5",
		"no. of SNPs",
		"%GC",
		"Total sequences",
		"Average sequence length",
		"%Reads mapped",
		"Average coverage depth",
	}
}
