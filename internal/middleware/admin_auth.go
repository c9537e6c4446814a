package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "bankledger/internal/core/ports/services"
)

// AdminSecretHeader carries the shared admin secret on admin routes.
const AdminSecretHeader = "X-Admin-Secret"

// RequireAdmin gates destructive and administrative routes behind the
// shared admin secret. It fails closed on any mismatch; there is no
// lockout or backoff.
func RequireAdmin(authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authSvc.AuthorizeAdmin(c.GetHeader(AdminSecretHeader)); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("admin authorization failed",
				slog.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}
