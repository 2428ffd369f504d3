package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/presentation/http/dto/response"
	"github.com/sangkips/kasir/pkg/utils"
)

// Context keys set by SessionMiddleware
const (
	CurrentUserKey = "current_user"
	SessionIDKey   = "session_id"
)

// SessionMiddleware reads the cashier's session token and exposes the user
// behind it. A user without a branch claim is assigned defaultBranch.
func SessionMiddleware(sessions *utils.SessionManager, defaultBranch string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := sessions.ParseSession(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired session")
			c.Abort()
			return
		}

		user := &entity.CurrentUser{
			ID:         claims.UserID,
			Name:       claims.Name,
			Email:      claims.Email,
			Role:       claims.Role,
			BranchName: claims.BranchName,
		}
		if user.BranchName == "" {
			user.BranchName = defaultBranch
		}

		// One cart per session: the token id when issued, otherwise the user
		sessionID := claims.ID
		if sessionID == "" {
			sessionID = claims.UserID
		}

		c.Set(CurrentUserKey, user)
		c.Set(SessionIDKey, sessionID)

		c.Next()
	}
}

// CurrentUser returns the authenticated cashier, or nil
func CurrentUser(c *gin.Context) *entity.CurrentUser {
	val, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, _ := val.(*entity.CurrentUser)
	return user
}

// SessionID returns the session the request belongs to
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
