package middleware

import (
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var clientRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "client_requests_total",
		Help: "Total number of requests by client platform",
	},
	[]string{"browser", "os", "device"},
)

func RequestTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		browser, os, device := utils.ParseUserAgent(c.Request.UserAgent())
		clientRequestsTotal.WithLabelValues(browser, os, device).Inc()

		c.Next()
	}
}
