// Package web renders the dashboard's HTML pages. The pages are server-side
// templates; the dataset grid, charts, and map pull their data from the
// JSON API and render client-side with vanilla JS, vega-embed, and Leaflet.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fossabot/TB-gen/internal/dataset"
	"github.com/fossabot/TB-gen/internal/phylo"
)

var funcMap = template.FuncMap{
	// json marshals a value for direct embedding in a <script> block.
	"json": func(v any) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
	"fmtFloat": func(f float64) string { return fmt.Sprintf("%.2f", f) },
}

// Pages renders the dashboard pages.
type Pages struct {
	store dataset.Store
	trees *phylo.Library
}

func NewPages(store dataset.Store, trees *phylo.Library) *Pages {
	return &Pages{store: store, trees: trees}
}

// RegisterRoutes sets up the HTML page routes.
func (p *Pages) RegisterRoutes(router *gin.Engine) {
	router.GET("/", p.Home)
	router.GET("/dataset", p.Dataset)
	router.GET("/phylogeny", p.Phylogeny)
	router.GET("/trees/:tree", p.TreeFrame)
}

func render(c *gin.Context, tmplStr string, data any) {
	t, err := template.New("page").Funcs(funcMap).Parse(tmplBase + tmplStr)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Template parse failed", "error", err)
		c.String(http.StatusInternalServerError, "template error: %v", err)
		return
	}
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(c.Writer, "base", data); err != nil {
		slog.ErrorContext(c.Request.Context(), "Template execute failed", "error", err)
	}
}

// Home renders the landing page with the three navigation buttons.
func (p *Pages) Home(c *gin.Context) {
	render(c, tmplHome, gin.H{"Active": "home"})
}

// Dataset renders the reference-dataset page: grid, metric cards, the two
// lineage bar charts, and the distribution map.
func (p *Pages) Dataset(c *gin.Context) {
	samples, err := p.store.Samples(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to load sample table", "error", err)
		c.String(http.StatusServiceUnavailable, "failed to load sample table: %v", err)
		return
	}
	stats := dataset.LineageStats(samples)
	names := make([]string, 0, len(samples))
	for _, s := range samples {
		names = append(names, s.Name)
	}
	render(c, tmplDataset, gin.H{
		"Active":      "dataset",
		"Summary":     dataset.Summarize(samples),
		"SampleNames": names,
		"SNPChart":    snpChartSpec(stats),
		"SampleChart": sampleChartSpec(stats),
	})
}

// Phylogeny renders the tree tabs. Each tab embeds its pre-rendered tree
// via an iframe on /trees/:tree.
func (p *Pages) Phylogeny(c *gin.Context) {
	render(c, tmplPhylogeny, gin.H{
		"Active": "phylogeny",
		"Trees":  phylo.Catalog(),
	})
}

// TreeFrame serves one pre-rendered tree page verbatim. A missing file
// renders a warning panel inside the frame rather than an error page.
func (p *Pages) TreeFrame(c *gin.Context) {
	id := c.Param("tree")
	html, err := p.trees.HTML(id)
	if err != nil {
		if errors.Is(err, phylo.ErrNotFound) {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8",
				[]byte(`<div style="font-family:sans-serif;color:#8a6d3b;background:#fcf8e3;border:1px solid #faebcc;border-radius:6px;padding:16px;margin:16px">&#9888; Tree visualization is not available</div>`))
			return
		}
		slog.ErrorContext(c.Request.Context(), "Failed to read tree page", "tree", id, "error", err)
		c.String(http.StatusInternalServerError, "failed to read tree page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
