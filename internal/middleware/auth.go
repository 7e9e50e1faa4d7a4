package middleware

import (
	"context"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// SessionResolver turns a session token into a user, or nil.
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) *model.User
}

// Session resolves the current user from the session cookie once per
// request. It never rejects; guards below decide.
func Session(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(util.SessionCookieName)
		if err == nil && token != "" {
			if user := resolver.CurrentUser(c.Request.Context(), token); user != nil {
				c.Set(currentUserKey, user)
			}
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OwnerLoader returns the owner id of the entity addressed by id.
type OwnerLoader func(ctx context.Context, id string) (string, error)

// OwnerOrAdmin lets the request through when the current user owns the
// entity named by the path parameter or is an admin. Checks run in the
// order 401, 404, 403.
func OwnerOrAdmin(param string, load OwnerLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		ownerID, err := load(c.Request.Context(), c.Param(param))
		if err != nil {
			if util.IsNotFound(err) {
				util.NotFoundMessage(c, err.Error())
			} else {
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}

		if !user.CanManage(ownerID) {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
