package routes

import (
	"net/http"
	"strconv"
	"time"

	"afdian_adapter/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(requestLogger())
	router.Use(instrument())
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"latency":  time.Since(start).String(),
			"clientIP": c.ClientIP(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("[http] request")
			return
		}
		entry.Debug("[http] request")
	}
}

// instrument counts requests per route template, so user ids in paths do
// not blow up label cardinality.
func instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
