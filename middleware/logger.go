package middleware

import (
	"strconv"
	"time"

	"Greenway/pkg/log"
	"Greenway/pkg/snowflake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap 访问日志，每个请求带一个雪花 request_id
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := strconv.FormatInt(snowflake.GenRequestID(), 10)
		c.Set("request_id", requestID)
		c.Header("X-Request-Id", requestID)

		c.Next()

		log.L.Info("http request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
