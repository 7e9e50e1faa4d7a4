package controller

import (
	"educonexa_backend/internal/middleware"
	"educonexa_backend/internal/service"
	"educonexa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController handles public profiles, follows, the own profile and the
// admin user list.
type UserController struct {
	UserService   *service.UserService
	FollowService *service.FollowService
}

func NewUserController(userService *service.UserService, followService *service.FollowService) *UserController {
	return &UserController{
		UserService:   userService,
		FollowService: followService,
	}
}

// GetUser godoc
// @Summary Public profile
// @Description Profile, follower counts and the ten most recent posts
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} util.Response{data=service.PublicProfile} "Success"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	profile, err := c.UserService.PublicProfile(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// Follow godoc
// @Summary Follow a user
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Cannot follow yourself"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/users/{id}/follow [post]
func (c *UserController) Follow(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if err := c.FollowService.Follow(ctx.Request.Context(), user.ID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"following": true})
}

// Unfollow godoc
// @Summary Stop following a user
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/users/{id}/follow [delete]
func (c *UserController) Unfollow(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if err := c.FollowService.Unfollow(ctx.Request.Context(), user.ID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"following": false})
}

// Followers godoc
// @Summary Followers of a user
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} util.Response{data=[]model.UserSummary} "Success"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/users/{id}/followers [get]
func (c *UserController) Followers(ctx *gin.Context) {
	users, err := c.FollowService.Followers(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// Following godoc
// @Summary Users a user follows
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} util.Response{data=[]model.UserSummary} "Success"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/users/{id}/following [get]
func (c *UserController) Following(ctx *gin.Context) {
	users, err := c.FollowService.Following(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// UpdateProfile godoc
// @Summary Edit my profile
// @Tags profile
// @Accept  json
// @Produce  json
// @Param   body body service.UpdateProfileRequest true "Changes"
// @Success 200 {object} util.Response{data=service.ProfileResult} "Success"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [patch]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req service.UpdateProfileRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	result, err := c.UserService.UpdateProfile(ctx.Request.Context(), user.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Tags profile
// @Accept  multipart/form-data
// @Produce  json
// @Param   avatar formData file true "Image, at most 5MB"
// @Success 200 {object} util.Response{data=service.ProfileResult} "Success"
// @Failure 400 {object} util.Response "Invalid file"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.ValidationFailed(ctx, map[string]string{"avatar": "is required"})
		return
	}

	user := middleware.CurrentUser(ctx)
	result, err := c.UserService.UploadAvatar(ctx.Request.Context(), user.ID, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ListUsers godoc
// @Summary All users
// @Description Admin only, newest first
// @Tags admin
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.AdminUserView} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// ChangeRole godoc
// @Summary Change the role of a user
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   body body service.ChangeRoleRequest true "Role"
// @Success 200 {object} util.Response{data=service.AdminUserView} "Success"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/admin/users/{id}/role [patch]
func (c *UserController) ChangeRole(ctx *gin.Context) {
	var req service.ChangeRoleRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	user, err := c.UserService.ChangeRole(ctx.Request.Context(), ctx.Param("id"), req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
