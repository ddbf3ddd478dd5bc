package middleware

import (
	"errors"
	"net/http"
	"strings"

	"localconnect/database/repository"
	userRepo "localconnect/database/repository/user"
	"localconnect/models"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by the authenticator.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)

// Authenticator resolves bearer tokens to a caller. The role is read from the
// stored user, so role changes apply to tokens already issued.
type Authenticator struct {
	Tokens *utils.TokenIssuer
	Users  userRepo.UserRepository
}

// Required rejects requests without a valid bearer token.
func (a *Authenticator) Required() gin.HandlerFunc {
	return a.handler(false)
}

// Optional lets anonymous requests through. A token that is present but
// invalid is still rejected.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return a.handler(true)
}

func (a *Authenticator) handler(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" && optional {
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Not authorized, no token")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abortUnauthorized(c, "Not authorized, no token")
			return
		}

		claims, err := a.Tokens.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Not authorized, token failed")
			return
		}
		user, err := a.Users.GetByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				abortUnauthorized(c, "Not authorized, user not found")
				return
			}
			utils.RespondError(c, utils.Internal("failed to load caller", err))
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(RoleKey, string(user.Role))
		if l, ok := c.Get(utils.LoggerKey); ok {
			if zl, ok := l.(*zap.Logger); ok {
				c.Set(utils.LoggerKey, zl.With(zap.String("userId", user.ID)))
			}
		}
		c.Next()
	}
}

// RoleRequired enforces that the caller has one of the allowed roles. It must run after Required.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		if caller == nil {
			abortUnauthorized(c, "Not authorized")
			return
		}
		for _, r := range roles {
			if caller.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "Access denied"})
	}
}

// CallerFrom returns the authenticated caller, or nil for anonymous requests.
func CallerFrom(c *gin.Context) *models.Caller {
	id := c.GetString(UserIDKey)
	if id == "" {
		return nil
	}
	return &models.Caller{ID: id, Role: models.Role(c.GetString(RoleKey))}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: msg})
}
