package web

import "github.com/fossabot/TB-gen/internal/dataset"

// Vega-Lite specs for the two statistics bar charts, built server-side and
// embedded in the dataset page for vega-embed to render.

const (
	snpBarColor    = "#A65AA3"
	sampleBarColor = "#88AAC7"
)

func barSpec(values []map[string]any, field, title, color string) map[string]any {
	return map[string]any{
		"$schema": "https://vega.github.io/schema/vega-lite/v5.json",
		"width":   "container",
		"height":  280,
		"data":    map[string]any{"values": values},
		"mark": map[string]any{
			"type":                 "bar",
			"cornerRadiusTopLeft":  3,
			"cornerRadiusTopRight": 3,
		},
		"encoding": map[string]any{
			"x": map[string]any{
				"field": "lineage",
				"type":  "nominal",
				"axis":  map[string]any{"title": "", "labelAngle": 0},
			},
			"y": map[string]any{
				"field": field,
				"type":  "quantitative",
				"axis":  map[string]any{"title": title},
			},
			"color": map[string]any{"value": color},
		},
	}
}

// snpChartSpec charts the mean SNP count per main lineage.
func snpChartSpec(stats []dataset.LineageStat) map[string]any {
	values := make([]map[string]any, 0, len(stats))
	for _, s := range stats {
		values = append(values, map[string]any{"lineage": s.Lineage, "meanSnps": s.MeanSNPs})
	}
	return barSpec(values, "meanSnps", "Number of SNPs", snpBarColor)
}

// sampleChartSpec charts the sample count per main lineage.
func sampleChartSpec(stats []dataset.LineageStat) map[string]any {
	values := make([]map[string]any, 0, len(stats))
	for _, s := range stats {
		values = append(values, map[string]any{"lineage": s.Lineage, "samples": s.SampleCount})
	}
	return barSpec(values, "samples", "Number of Samples", sampleBarColor)
}
