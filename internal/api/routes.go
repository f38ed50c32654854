package api

import "github.com/gin-gonic/gin"

// RegisterRoutes sets up the API routes.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	router.GET("/healthz", h.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// The exporter lives outside the samples group: a static /samples/export
		// would conflict with the /samples/:sample wildcard in gin's route tree.
		v1.GET("/export", h.Export)

		samples := v1.Group("/samples")
		{
			samples.GET("", h.ListSamples)
			samples.GET("/:sample", h.GetSample)
			samples.GET("/:sample/variants", h.GetVariants)
			samples.GET("/:sample/vcf", h.DownloadVCF)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/summary", h.StatsSummary)
			stats.GET("/lineages", h.StatsLineages)
			stats.GET("/countries", h.StatsCountries)
		}

		mapped := v1.Group("/map")
		{
			mapped.GET("/choropleth", h.MapChoropleth)
			mapped.GET("/points", h.MapPoints)
		}
	}
}
