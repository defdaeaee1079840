package handler

import (
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// HealthHandler reports process health plus the system and connection pool
// gauges scraped less formally than /metrics.
func HealthHandler(c *gin.Context) {
	pool := utils.GetMongoPoolMetrics()

	utils.Success(c, gin.H{
		"status":         "ok",
		"uptime_seconds": int(time.Since(startedAt).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
		"mongo_pool": gin.H{
			"active":  pool.ActiveConnections,
			"created": pool.CreatedConnections,
			"closed":  pool.ClosedConnections,
		},
	})
}
