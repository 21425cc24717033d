package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authservice "github.com/cctvshop/storefront-api/internal/service/auth"
	userservice "github.com/cctvshop/storefront-api/internal/service/user"
	"github.com/cctvshop/storefront-api/pkg/httputil"
)

// ContextUserEmail is the gin context key the authenticated identity is
// stored under.
const ContextUserEmail = "userEmail"

type AuthMiddleware struct {
	authService *authservice.Service
	userService *userservice.Service
}

func NewAuthMiddleware(authService *authservice.Service, userService *userservice.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userService: userService,
	}
}

// Authenticate verifies the bearer token and sets the caller's email in
// context. A missing header is 401; a malformed header or a token that fails
// verification is 403.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, httputil.NewErrorResponse("unauthorized access"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusForbidden, httputil.NewErrorResponse("forbidden access"))
			c.Abort()
			return
		}

		claims, err := m.authService.VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, httputil.NewErrorResponse("forbidden access"))
			c.Abort()
			return
		}

		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

// RequireAdmin checks the stored role of the authenticated identity. Composed
// strictly after Authenticate. An identity with no user record is treated as
// not admin, never as an error.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextUserEmail)

		isAdmin, err := m.userService.IsAdmin(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httputil.NewErrorResponse("failed to check role"))
			c.Abort()
			return
		}

		if !isAdmin {
			c.JSON(http.StatusForbidden, httputil.NewErrorResponse("forbidden access"))
			c.Abort()
			return
		}

		c.Next()
	}
}
