package api

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"

	"github.com/fossabot/TB-gen/internal/dataset"
	"github.com/fossabot/TB-gen/internal/geo"
	"github.com/fossabot/TB-gen/internal/vcf"
)

// Handler holds dependencies for the JSON and download API.
type Handler struct {
	store  dataset.Store
	gaz    *geo.Gazetteer
	shapes *geojson.FeatureCollection
	vcfs   *vcf.Locator
}

// NewHandler creates a new API handler.
func NewHandler(store dataset.Store, gaz *geo.Gazetteer, shapes *geojson.FeatureCollection, vcfs *vcf.Locator) *Handler {
	return &Handler{store: store, gaz: gaz, shapes: shapes, vcfs: vcfs}
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListSamples returns the full metadata table with its column order.
func (h *Handler) ListSamples(c *gin.Context) {
	samples, err := h.store.Samples(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to load sample table", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load sample table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": dataset.Columns(), "samples": samples})
}

// GetSample returns one sample's metrics.
func (h *Handler) GetSample(c *gin.Context) {
	name := c.Param("sample")
	s, err := h.store.Sample(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown sample %q", name)})
			return
		}
		slog.ErrorContext(c.Request.Context(), "Failed to load sample", "sample", name, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load sample table"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// GetVariants parses and returns a sample's variant calls. A sample without
// a VCF on disk yields a warning payload rather than an error page.
func (h *Handler) GetVariants(c *gin.Context) {
	name := c.Param("sample")
	parsed, err := h.vcfs.Open(name)
	if err != nil {
		if errors.Is(err, vcf.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"warning": "VCF file is not available"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "Failed to read VCF", "sample", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read VCF"})
		return
	}
	c.JSON(http.StatusOK, parsed)
}

// DownloadVCF streams the raw gzipped VCF for a sample.
func (h *Handler) DownloadVCF(c *gin.Context) {
	name := c.Param("sample")
	path, err := h.vcfs.Path(name)
	if err != nil {
		if errors.Is(err, vcf.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"warning": "VCF file is not available"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "Failed to locate VCF", "sample", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to locate VCF"})
		return
	}
	c.FileAttachment(path, name+".vcf.gz")
}

// Export writes the table, or a selected subset of it, as CSV or TSV.
// Selections that match nothing are rejected with a warning so the UI can
// tell the user to pick rows first.
func (h *Handler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	var sep rune
	var filename string
	switch format {
	case "csv":
		sep, filename = ',', "dataset.csv"
	case "tsv":
		sep, filename = '\t', "dataset.tsv"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format %q", format)})
		return
	}

	rows, err := h.store.Samples(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to load sample table", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load sample table"})
		return
	}

	if sel, ok := c.GetQuery("samples"); ok {
		names := splitSelection(sel)
		rows, err = dataset.Subset(rows, names)
		if err != nil {
			if errors.Is(err, dataset.ErrEmptySelection) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"warning": "subset selection is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subset samples"})
			return
		}
		filename = "subsetted_" + filename
	}

	var buf bytes.Buffer
	if err := dataset.Encode(&buf, rows, sep); err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to encode export", "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode export"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// StatsSummary returns the dataset headline numbers.
func (h *Handler) StatsSummary(c *gin.Context) {
	samples, err := h.store.Samples(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load sample table"})
		return
	}
	c.JSON(http.StatusOK, dataset.Summarize(samples))
}

// StatsLineages returns per-main-lineage sample counts and mean SNP counts.
func (h *Handler) StatsLineages(c *gin.Context) {
	samples, err := h.store.Samples(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load sample table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lineages": dataset.LineageStats(samples)})
}

// StatsCountries returns per-country sample counts.
func (h *Handler) StatsCountries(c *gin.Context) {
	samples, err := h.store.Samples(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load sample table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": dataset.CountryCounts(samples)})
}

// MapChoropleth returns the country shapes with sample counts merged on.
func (h *Handler) MapChoropleth(c *gin.Context) {
	samples, err := h.store.Samples(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load sample table"})
		return
	}
	fc := geo.Choropleth(h.shapes, dataset.CountryCounts(samples))
	c.JSON(http.StatusOK, fc)
}

// MapPoints returns one point per mappable sample.
func (h *Handler) MapPoints(c *gin.Context) {
	samples, err := h.store.Samples(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load sample table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": geo.Points(samples, h.gaz)})
}

func splitSelection(sel string) []string {
	var names []string
	for _, n := range strings.Split(sel, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
