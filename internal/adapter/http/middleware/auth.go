package middleware

import (
	"net/http"
	"strings"

	"finestra/pkg"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

const ctxUserID = "user_id"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// FirebaseAuth validates the Bearer ID token on every request and stores
// the Firebase UID in the context. Anonymous Firebase sessions carry a
// UID like any other and go through the same path.
//
// When authClient is nil the middleware runs in mock mode and trusts the
// X-User-ID header instead. That mode exists for local development
// without Firebase credentials; routes.go only enables it when AUTH_MOCK
// is set.
func FirebaseAuth(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authClient == nil {
			uid := strings.TrimSpace(c.GetHeader("X-User-ID"))
			if uid == "" {
				c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
				return
			}
			c.Set(ctxUserID, uid)
			c.Next()
			return
		}

		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		decoded, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ctxUserID, decoded.UID)
		c.Next()
	}
}

// UserID returns the authenticated user's id set by FirebaseAuth.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(ctxUserID))
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}
