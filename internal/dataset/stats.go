package dataset

import "sort"

// Summary holds headline numbers for the dataset page.
type Summary struct {
	TotalSamples int `json:"totalSamples"`
	Countries    int `json:"countries"`
	Lineages     int `json:"lineages"`
}

// LineageStat aggregates samples sharing a main lineage (level 1).
type LineageStat struct {
	Lineage     string  `json:"lineage"`
	SampleCount int     `json:"sampleCount"`
	MeanSNPs    float64 `json:"meanSnps"`
}

// CountryCount is the number of samples isolated in one country.
type CountryCount struct {
	Country string `json:"country"`
	Samples int    `json:"samples"`
}

// Summarize computes the dataset-wide summary.
func Summarize(samples []Sample) Summary {
	countries := map[string]struct{}{}
	lineages := map[string]struct{}{}
	for _, s := range samples {
		if s.Country != "" {
			countries[s.Country] = struct{}{}
		}
		if s.Level1 != "" {
			lineages[s.Level1] = struct{}{}
		}
	}
	return Summary{
		TotalSamples: len(samples),
		Countries:    len(countries),
		Lineages:     len(lineages),
	}
}

// LineageStats groups samples by main lineage and reports the sample count
// and mean SNP count per group, sorted by lineage name.
func LineageStats(samples []Sample) []LineageStat {
	type acc struct {
		n    int
		snps int
	}
	groups := map[string]*acc{}
	for _, s := range samples {
		if s.Level1 == "" {
			continue
		}
		a := groups[s.Level1]
		if a == nil {
			a = &acc{}
			groups[s.Level1] = a
		}
		a.n++
		a.snps += s.SNPs
	}

	stats := make([]LineageStat, 0, len(groups))
	for lineage, a := range groups {
		stats = append(stats, LineageStat{
			Lineage:     lineage,
			SampleCount: a.n,
			MeanSNPs:    float64(a.snps) / float64(a.n),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Lineage < stats[j].Lineage })
	return stats
}

// CountryCounts groups samples by country of isolation, sorted by descending
// count then name. Samples without a country are skipped.
func CountryCounts(samples []Sample) []CountryCount {
	groups := map[string]int{}
	for _, s := range samples {
		if s.Country == "" {
			continue
		}
		groups[s.Country]++
	}

	counts := make([]CountryCount, 0, len(groups))
	for country, n := range groups {
		counts = append(counts, CountryCount{Country: country, Samples: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Samples != counts[j].Samples {
			return counts[i].Samples > counts[j].Samples
		}
		return counts[i].Country < counts[j].Country
	})
	return counts
}
