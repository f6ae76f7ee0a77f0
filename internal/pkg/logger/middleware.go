package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates middleware for Echo framework using the Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Calculate metrics
			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			// Get user ID if available
			userID := "anonymous"
			if uid := c.Get("user_id"); uid != nil {
				userID = fmt.Sprintf("%v", uid)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			fields := []Field{
				Int("status", statusCode),
				Duration("latency", latency),
				String("client_ip", clientIP),
				String("method", method),
				String("path", path),
				String("user_id", userID),
				String("request_id", requestID),
			}

			switch {
			case statusCode >= 500:
				if err != nil {
					fields = append(fields, Err(err))
				}
				logger.Error("Server error", fields...)
			case statusCode >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
