package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/paystublab/analyzer/dto"
)

// RateLimit caps how fast requests may arrive on a route. Analyze runs
// OCR on cold stubs, so it gets a small shared bucket.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error:   "RATE_LIMITED",
				Message: "too many requests",
				Code:    http.StatusTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
