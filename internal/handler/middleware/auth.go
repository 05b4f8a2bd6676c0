package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"vehicle-rental/internal/handler/httperr"
	"vehicle-rental/internal/pkg/cookie"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey = "user_id"
	ctxClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth rejects the request unless it carries a valid access token.
// The 401 body points the client at the login page.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing access token"),
				"Access token required", gin.H{"redirect": LoginPath})
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err,
				"Invalid or expired token", gin.H{"redirect": LoginPath})
			return
		}

		setUser(c, userID)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Debug("Ignoring invalid optional token", "error", err.Error())
			c.Next()
			return
		}

		setUser(c, userID)
		c.Next()
	}
}

// LoginPath is where unauthenticated clients are sent.
const LoginPath = "/login"

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setUser(c *gin.Context, userID uuid.UUID) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": userID.String(),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
