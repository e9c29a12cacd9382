package middleware

import (
	"net/http"
	"strings"

	"hotel-management/config"
	"hotel-management/models"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ContextUserID   = "userId"
	ContextUserRole = "userRole"
)

// AccessTokenCookie mirrors the cookie set by the login handler.
const AccessTokenCookie = "accessToken"

// RoleAllowed is the authorization predicate: the caller's role against an
// operation's allow-list.
func RoleAllowed(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func tokenFromRequest(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// Authenticate verifies the bearer token (header or cookie), confirms the
// user still exists and is active, and stores id + role on the context.
func Authenticate(cfg config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			utils.JSONError(c, http.StatusUnauthorized, "error.missingToken", "you are not logged in")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(cfg.JWTSecret, tokenStr)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidToken", "invalid or expired token")
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.userGone", "user belonging to token no longer exists")
			c.Abort()
			return
		}
		if !user.Active {
			utils.JSONError(c, http.StatusForbidden, "error.accountDisabled", "account is disabled")
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Next()
	}
}

// RequireRoles gates an operation on an explicit role allow-list. It must
// run after Authenticate.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role == "" {
			utils.JSONError(c, http.StatusUnauthorized, "error.notAuthenticated", "user not authenticated")
			c.Abort()
			return
		}
		if !RoleAllowed(role, roles...) {
			utils.JSONError(c, http.StatusForbidden, "error.forbidden", "you do not have permission to access this resource")
			c.Abort()
			return
		}
		c.Next()
	}
}
