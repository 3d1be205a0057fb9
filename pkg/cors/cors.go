package cors

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Gate decides whether a cross-origin request may proceed.
type Gate struct {
	// ProductionOrigin is the deployed frontend origin, e.g. "https://voicelog.jp".
	// The origin header never carries a path, so allowing the origin allows
	// every tenant path under it.
	ProductionOrigin string
	// ExtraOrigins is the optional ALLOWED_ORIGINS list, consulted only when
	// the origin is neither localhost nor the production origin.
	ExtraOrigins []string
}

func NewGate(productionOrigin string, extraOrigins []string) *Gate {
	return &Gate{ProductionOrigin: productionOrigin, ExtraOrigins: extraOrigins}
}

// IsAllowed reports whether the given Origin header value is permitted.
// An absent origin is never allowed.
func (g *Gate) IsAllowed(origin string) bool {
	if origin == "" {
		return false
	}

	// Development: any localhost port
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	if g.ProductionOrigin != "" {
		if origin == g.ProductionOrigin || strings.HasPrefix(origin, g.ProductionOrigin+":") {
			return true
		}
	}

	for _, o := range g.ExtraOrigins {
		if origin == o {
			return true
		}
	}

	return false
}

// Middleware sets CORS headers per the gate's decision, answers preflight
// requests, and rejects disallowed mutating requests before any handler runs.
// GET stays open so health checks work without an Origin header.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		allowed := g.IsAllowed(origin)

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		if c.Request.Method != http.MethodGet && !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "CORS policy: Origin not allowed",
			})
			return
		}

		c.Next()
	}
}
