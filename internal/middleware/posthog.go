package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/parenting_journal_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful authenticated API calls.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}
		eventName := EventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		// Entry content never leaves the service; only route-level metadata is sent.
		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		}
		if familyID := c.Param("family_id"); familyID != "" {
			props["family_id"] = familyID
		}
		posthogClient.Enqueue(userID, eventName, props)
	}
}

// EventName derives an analytics event name from a route template, e.g.
// GET /api/v1/families/:family_id/stats/mood -> get_families_stats_mood.
func EventName(method, route string) string {
	if route == "" {
		return ""
	}
	parts := []string{strings.ToLower(method)}
	for _, seg := range strings.Split(strings.TrimPrefix(route, "/api/v1"), "/") {
		if seg == "" || strings.HasPrefix(seg, ":") {
			continue
		}
		parts = append(parts, seg)
	}
	return strings.Join(parts, "_")
}
