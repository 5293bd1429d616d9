package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/utils"
)

func HasValidAPIKey(validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		keysInHeader, ok := c.Request.Header["Api-Key"]
		if !ok || len(keysInHeader) < 1 {
			slog.Error("A valid API key missing")
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid API key missing"})
			c.Abort()
			return
		}

		for _, k := range keysInHeader {
			if utils.ContainsString(validKeys, k) {
				c.Next()
				return
			}
		}

		slog.Error("A valid API key missing")
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid API key missing"})
		c.Abort()
	}
}
