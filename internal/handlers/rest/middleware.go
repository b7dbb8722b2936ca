package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hearthforge/sheet-api/internal/services/auth"
)

const (
	// usernameKey is the gin context key holding the authenticated username.
	usernameKey = "username"

	// requestIDKey is the gin context key holding the request ID.
	requestIDKey = "requestID"

	requestIDHeader = "X-Request-ID"
)

// requestID tags every request with an ID and echoes it in the response
// header so log lines and client reports can be correlated. An inbound
// X-Request-ID is reused.
func (h *Handler) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = h.idGen.Generate()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requireAuth verifies the Bearer token and stores the username on the
// request context. Requests without a valid token never reach a sheet
// handler.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		out, err := h.authService.VerifyToken(c.Request.Context(), &auth.VerifyTokenInput{Token: token})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}

		c.Set(usernameKey, out.Username)
		c.Next()
	}
}

// username returns the authenticated username set by requireAuth.
func username(c *gin.Context) string {
	return c.GetString(usernameKey)
}
