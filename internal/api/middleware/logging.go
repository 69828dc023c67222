package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Azz3m90/LandPage/internal/logging"
	"github.com/Azz3m90/LandPage/internal/utils"
)

// RequestLogger logs every request through the application logger.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
