package middleware

import (
	"context"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/safeland/safetravel-api/internal/pkg/response"
)

// TokenVerifier verifies a provider-issued ID token. *auth.Client
// satisfies this; tests plug in a fake.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Auth requires a bearer ID token and injects the verified identity into
// the request context. Missing and invalid tokens are deliberately
// indistinguishable to the caller.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), fields[1])
		if err != nil {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		c.Set("uid", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set("email", email)
		}
		c.Next()
	}
}
