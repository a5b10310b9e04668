package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// slowRequest 超过该耗时的请求会被额外标记
const slowRequest = time.Second

// Logger 请求日志中间件，健康检查不记录
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		target := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			target += "?" + raw
		}

		c.Next()

		elapsed := time.Since(start)
		line := "[%s] %s %s %d %dB %v"
		args := []interface{}{c.Request.Method, target, c.ClientIP(), c.Writer.Status(), c.Writer.Size(), elapsed}
		if elapsed > slowRequest {
			line += " SLOW"
		}
		if len(c.Errors) > 0 {
			line += " errors=%s"
			args = append(args, c.Errors.String())
		}
		log.Printf(line, args...)
	}
}
