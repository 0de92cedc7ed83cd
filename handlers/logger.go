package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request logger set by middleware.RequestLogger,
// tagged with the matched route. Without one it uses the handler's own
// logger, then the global logger.
func getLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	base := fallback
	if l, ok := c.Get("logger"); ok {
		if reqLogger, ok := l.(*zap.Logger); ok {
			base = reqLogger
		}
	}
	if base == nil {
		base = zap.L()
	}
	if route := c.FullPath(); route != "" {
		return base.With(zap.String("route", route))
	}
	return base
}
