package controller

import (
	"educonexa_backend/internal/middleware"
	"educonexa_backend/internal/service"
	"educonexa_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	SessionTTL  time.Duration
	IsRelease   bool
}

func NewAuthController(authService *service.AuthService, sessionTTL time.Duration, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		SessionTTL:  sessionTTL,
		IsRelease:   isRelease,
	}
}

func (c *AuthController) startSession(ctx *gin.Context, userID string) bool {
	token, err := c.AuthService.IssueSession(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return false
	}
	util.SetSessionCookie(ctx, token, c.SessionTTL, c.IsRelease)
	return true
}

// Register godoc
// @Summary Register a new account
// @Description Creates the user with an empty profile and starts a session cookie
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body service.RegisterRequest true "Account details"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	user, err := c.AuthService.Register(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !c.startSession(ctx, user.ID) {
		return
	}
	util.Created(ctx, gin.H{"user": service.NewSessionUser(user)})
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body service.LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Invalid credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	user, err := c.AuthService.Login(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !c.startSession(ctx, user.ID) {
		return
	}
	util.Success(ctx, gin.H{"user": service.NewSessionUser(user)})
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce  json
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	util.ClearSessionCookie(ctx, c.IsRelease)
	util.Success(ctx, gin.H{"ok": true})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce  json
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response{data=object} "No session"
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, util.Response{
			Code:    http.StatusUnauthorized,
			Message: "Unauthorized",
			Data:    gin.H{"user": nil},
		})
		return
	}
	util.Success(ctx, gin.H{"user": service.NewSessionUser(user)})
}
