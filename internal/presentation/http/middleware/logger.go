package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/pkg/utils"
)

// LoggerMiddleware creates a request logging middleware
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate request ID if not present
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = utils.NewRequestID()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		cashier := "-"
		if user := CurrentUser(c); user != nil {
			cashier = user.Name
		}

		log.Printf("[%s] %s | %d | %v | %s | %s | %s",
			utils.ShortID(requestID),
			c.Request.Method,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			cashier,
			path,
		)

		for _, e := range c.Errors {
			log.Printf("[%s] Error: %v", utils.ShortID(requestID), e.Err)
		}
	}
}
