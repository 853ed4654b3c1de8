package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig holds CORS middleware configuration
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
	MaxAge       time.Duration
}

// CORS returns the gin-contrib/cors middleware for cfg. Without configured
// origins no CORS headers are set and only same-origin callers work.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	corsCfg := cors.DefaultConfig()
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if len(cfg.AllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.AllowMethods
	}
	if len(cfg.AllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.AllowHeaders
	}
	corsCfg.ExposeHeaders = []string{RequestIDHeader}
	if cfg.MaxAge > 0 {
		corsCfg.MaxAge = cfg.MaxAge
	}
	return cors.New(corsCfg)
}
