package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paystublab/analyzer/config"
)

// SetupRouter wires the HTTP surface. Separate from main so tests can
// stand up the full route table.
func SetupRouter(cfg *config.Config, paystubHandler *PaystubHandler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Paystub Analyzer",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		paystub := api.Group("/paystub")
		{
			paystub.POST("/analyze",
				RateLimit(cfg.RateLimit.AnalyzePerSecond, cfg.RateLimit.AnalyzeBurst),
				paystubHandler.AnalyzePaystub)
			paystub.POST("/summary", paystubHandler.ComputeSummary)
		}
	}

	return router
}
