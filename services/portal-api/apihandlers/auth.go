package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/apihelpers/middlewares"
	jwthandling "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/token/renew", mw.GetAndValidatePortalUserJWT(h.tokenSignKey), h.renewToken)
	}
}

// renewToken re-issues a token with a fresh expiry from the validated claims.
// Identity is established upstream, so there is no user lookup here.
func (h *HttpEndpoints) renewToken(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	newToken, err := jwthandling.GenerateNewPortalUserToken(
		h.tokenExpiresIn,
		token.Subject,
		token.Email,
		token.FullName,
		token.Roles,
		token.Payload,
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("failed to generate new token", slog.String("subject", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": newToken,
		"expiresIn":   h.tokenExpiresIn.Seconds(),
	})
}
