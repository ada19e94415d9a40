package middlewares

import (
	"strconv"

	"github.com/dxtoolkit/dxgo/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics counts served requests by remote method and response status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		method := c.Param("method")

		if method == "" {
			method = c.FullPath()
		}

		metrics.EmulatorRequests.Increment(method, strconv.Itoa(c.Writer.Status()))
	}
}
